package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"specmap/internal/application/commands"
	"specmap/internal/domain"
)

var detailCmd = &cobra.Command{
	Use:   "detail <id>",
	Short: "Show one node's metadata, body, and annotations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detail, err := commands.NewReadDetailCommand(repo, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render(detail.Title))
		fmt.Println(mutedStyle.Render("id: " + detail.ID))
		if detail.ParentID != nil {
			fmt.Println(mutedStyle.Render("parent: " + *detail.ParentID))
		}
		fmt.Printf("completed: %t\n", detail.Completed)
		if detail.IsState {
			fmt.Println(stateStyle.Render("state node"))
		}
		if detail.Content != "" {
			fmt.Printf("\n%s\n", detail.Content)
		}

		entries, err := annotations.Annotations(detail.ID)
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			fmt.Println()
			for _, a := range entries {
				label := "[" + string(a.Kind) + "]"
				if a.Kind == domain.AnnotationIssue {
					label = issueStyle.Render(label)
				} else {
					label = mutedStyle.Render(label)
				}
				fmt.Printf("%s %s\n", label, a.Body)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detailCmd)
}
