package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"specmap/internal/application/commands"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a node's title, flags, or body",
	Long: `Update a node. Only the flags you pass change; everything else keeps
its current value.

Examples:
  specmap-cli update 6f1c... --title "Token refresh v2"
  specmap-cli update 6f1c... --completed
  specmap-cli update 6f1c... --content ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updateCmd := commands.NewUpdateNodeCommand(repo, args[0])

		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			updateCmd.Title = &title
		}
		if cmd.Flags().Changed("completed") {
			completed, _ := cmd.Flags().GetBool("completed")
			updateCmd.Completed = &completed
		}
		if cmd.Flags().Changed("state") {
			isState, _ := cmd.Flags().GetBool("state")
			updateCmd.IsState = &isState
		}
		if cmd.Flags().Changed("content") {
			content, _ := cmd.Flags().GetString("content")
			updateCmd.Content = &content
		}

		result, err := updateCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().String("title", "", "new title")
	updateCmd.Flags().Bool("completed", false, "new completion flag")
	updateCmd.Flags().Bool("state", false, "new state flag")
	updateCmd.Flags().String("content", "", "new body text (empty clears the body)")
}
