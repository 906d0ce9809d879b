package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"specmap/internal/adapters/fsstore"
	"specmap/internal/adapters/sqlite"
	"specmap/internal/config"
	"specmap/internal/logging"
	"specmap/internal/ports"
)

var (
	workspace string
	debug     bool

	cfg         *config.Config
	logger      *zap.Logger
	repo        ports.SpecRepository
	annotations ports.AnnotationIndex
	snapshots   ports.SnapshotStore
)

var rootCmd = &cobra.Command{
	Use:   "specmap-cli",
	Short: "CLI for managing specification trees and implementation mappings",
	Long: `specmap-cli manages a versioned, hierarchical specification tree stored
on the filesystem and reconciles it against AI-produced implementation-status
analyses.

It provides commands to inspect and edit the tree, attach notes and issues
to nodes, run analysis scans, and read the resulting mapping snapshot.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(workspace)
		if err != nil {
			return err
		}
		logger, err = logging.New(debug)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		idx := sqlite.NewIndex()
		if err := idx.Open(fsstore.AnnotationsPath(workspace)); err != nil {
			return fmt.Errorf("failed to open annotation index: %w", err)
		}
		annotations = idx

		repo = fsstore.NewStore(workspace, annotations, logger)
		snapshots = fsstore.NewSnapshotStore(fsstore.SnapshotPath(workspace), logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if annotations != nil {
			_ = annotations.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", config.Workspace(), "path to the workspace")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
