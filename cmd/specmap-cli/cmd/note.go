package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"specmap/internal/application/commands"
	"specmap/internal/domain"
)

var noteCmd = &cobra.Command{
	Use:   "note <id> <body>",
	Short: "Attach a note to a node",
	Long: `Attach a note annotation to a node. An empty body clears the note.

Examples:
  specmap-cli note 6f1c... "blocked on schema migration"
  specmap-cli note 6f1c... ""`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnnotate(args[0], domain.AnnotationNote, args[1])
	},
}

var issueCmd = &cobra.Command{
	Use:   "issue <id> <body>",
	Short: "Attach an issue to a node",
	Long:  `Attach an issue annotation to a node. An empty body clears the issue.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnnotate(args[0], domain.AnnotationIssue, args[1])
	},
}

func runAnnotate(id string, kind domain.AnnotationKind, body string) error {
	result, err := commands.NewAnnotateCommand(repo, annotations, id, kind, body).Execute(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(result.Message)
	return nil
}

func init() {
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(issueCmd)
}
