package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"specmap/internal/application/commands"
	"specmap/internal/domain"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the specification tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		roots, err := commands.NewLoadTreeCommand(repo).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(roots) == 0 {
			fmt.Println("The tree is empty.")
			return nil
		}

		for i, root := range roots {
			printTree(root, fmt.Sprintf("%d", i+1))
		}
		return nil
	},
}

func printTree(node *domain.TreeNode, index string) {
	depth := strings.Count(index, ".")
	indent := strings.Repeat("  ", depth)

	glyph := "[ ]"
	if node.Completed {
		glyph = "[x]"
	}

	line := fmt.Sprintf("%s%s %s %s", indent, index, glyph, node.Title)
	if node.IsState {
		line += " " + stateStyle.Render("[STATE]")
	}
	if node.HasIssues {
		line += " " + issueStyle.Render("!")
	}
	line += "  " + mutedStyle.Render("(id: "+node.ID+")")
	fmt.Println(line)

	for i, child := range node.Children {
		printTree(child, fmt.Sprintf("%s.%d", index, i+1))
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
