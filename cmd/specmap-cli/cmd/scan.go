package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"specmap/internal/adapters/openai"
	"specmap/internal/analysis"
	"specmap/internal/application/commands"
	"specmap/internal/domain"
	"specmap/internal/prompt"
)

var scanProjectDir string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one analysis scan and reconcile it with the previous snapshot",
	Long: `Run one implementation-status analysis of the project against the
specification tree, diff it against the previous mapping snapshot, and
persist the result.

Requires OPENAI_API_KEY to be set.

Examples:
  specmap-cli scan --project .
  specmap-cli scan`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectTree := ""
		if scanProjectDir != "" {
			var err error
			projectTree, err = prompt.RenderDirectoryTree(scanProjectDir)
			if err != nil {
				return err
			}
		}

		service, err := openai.NewAnalyzer(cfg.BaseURL)
		if err != nil {
			return err
		}
		orchestrator := analysis.NewOrchestrator(repo, service, cfg.Model, cfg.MaxTokens, logger)

		scanCmd := commands.NewScanCommand(orchestrator, snapshots, time.Duration(cfg.ScanTimeout), projectTree)
		result, err := scanCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		for _, change := range result.Snapshot.Changelog {
			if change.ChangeType == domain.ChangeUnchanged {
				continue
			}
			printChange(change)
		}
		return nil
	},
}

func printChange(change domain.MappingChange) {
	status := ""
	if change.CurrentStatus != nil {
		status = "  " + renderStatus(*change.CurrentStatus)
	}
	summary := ""
	if change.ChangeSummary != "" {
		summary = "  " + mutedStyle.Render(change.ChangeSummary)
	}
	fmt.Printf("%-9s %s%s%s\n", change.ChangeType, change.ObjectTitle, status, summary)
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanProjectDir, "project", "", "project directory to render as analysis context")
}
