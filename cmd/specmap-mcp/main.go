package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"specmap/internal/adapters/fsstore"
	mcpadapter "specmap/internal/adapters/mcp"
	"specmap/internal/adapters/openai"
	"specmap/internal/adapters/sqlite"
	"specmap/internal/analysis"
	"specmap/internal/config"
	"specmap/internal/logging"
)

func main() {
	workspaceFlag := flag.String("workspace", config.Workspace(), "path to the workspace")
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*workspaceFlag)
	if err != nil {
		log.Fatalf("specmap-mcp: %v", err)
	}
	logger, err := logging.New(*debugFlag)
	if err != nil {
		log.Fatalf("specmap-mcp: %v", err)
	}
	defer logger.Sync()

	annotations := sqlite.NewIndex()
	if err := annotations.Open(fsstore.AnnotationsPath(cfg.Workspace)); err != nil {
		log.Fatalf("specmap-mcp: %v", err)
	}
	defer annotations.Close()

	repo := fsstore.NewStore(cfg.Workspace, annotations, logger)
	snapshots := fsstore.NewSnapshotStore(fsstore.SnapshotPath(cfg.Workspace), logger)

	mcpServer := server.NewMCPServer(
		"specmap-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, annotations, snapshots)
	mcpadapter.RegisterWriteTools(mcpServer, repo, annotations)

	// The scan tool is only wired when the analysis service is reachable.
	if service, err := openai.NewAnalyzer(cfg.BaseURL); err != nil {
		logger.Warn("analysis service unavailable, scan tool disabled", zap.Error(err))
	} else {
		orchestrator := analysis.NewOrchestrator(repo, service, cfg.Model, cfg.MaxTokens, logger)
		mcpadapter.RegisterScanTool(mcpServer, orchestrator, snapshots, time.Duration(cfg.ScanTimeout))
	}

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("specmap-mcp: %v", err)
	}
}
