package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"specmap/internal/application/commands"
)

var snapshotJSON bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show the last persisted mapping snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewReadSnapshotCommand(snapshots).Execute(context.Background())
		if err != nil {
			return err
		}
		if result.Snapshot == nil {
			fmt.Println("No snapshot yet. Run scan first.")
			return nil
		}

		if snapshotJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result.Snapshot)
		}

		snap := result.Snapshot
		fmt.Printf("Scanned at: %s\n", snap.ScannedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Printf("Tokens: %d in / %d out\n\n", snap.TokenUsage.InputTokens, snap.TokenUsage.OutputTokens)

		for _, entry := range snap.Entries {
			fmt.Printf("%s  %s\n", renderStatus(entry.Status), titleStyle.Render(entry.ObjectTitle))
			if entry.Summary != "" {
				fmt.Printf("    %s\n", entry.Summary)
			}
			for _, f := range entry.ImplFiles {
				fmt.Printf("    %s\n", mutedStyle.Render(f.Path))
			}
		}

		if len(snap.Changelog) > 0 {
			fmt.Println("\nChangelog:")
			for _, change := range snap.Changelog {
				printChange(change)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "print the raw snapshot document")
}
