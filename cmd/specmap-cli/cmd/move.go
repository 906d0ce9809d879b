package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"specmap/internal/application/commands"
)

var moveToParent string

var moveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a node under a new parent",
	Long: `Move a node under a new parent. Omit --to to move it to the root.
Moves into the node's own subtree are rejected.

Examples:
  specmap-cli move 6f1c... --to 9a2b...
  specmap-cli move 6f1c...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var newParentID *string
		if moveToParent != "" {
			newParentID = &moveToParent
		}

		result, err := commands.NewMoveNodeCommand(repo, args[0], newParentID).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().StringVar(&moveToParent, "to", "", "id of the new parent (omit for the root)")
}
