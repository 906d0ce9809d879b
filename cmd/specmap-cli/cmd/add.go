package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"specmap/internal/application/commands"
)

var (
	addParentID string
	addContent  string
	addIsState  bool
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new node to the tree",
	Long: `Add a new node to the specification tree.

Examples:
  specmap-cli add "Authentication"
  specmap-cli add "Token refresh" --parent 6f1c...
  specmap-cli add "Logged in" --parent 6f1c... --state`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var parentID *string
		if addParentID != "" {
			parentID = &addParentID
		}

		addCmd := commands.NewAddNodeCommand(repo, uuid.NewString(), parentID, args[0])
		addCmd.Content = addContent
		addCmd.IsState = addIsState

		result, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addParentID, "parent", "", "id of the parent node (omit for a root)")
	addCmd.Flags().StringVar(&addContent, "content", "", "body text for the node")
	addCmd.Flags().BoolVar(&addIsState, "state", false, "mark the node as a state node")
}
