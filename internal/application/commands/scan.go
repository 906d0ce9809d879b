package commands

import (
	"context"
	"fmt"
	"time"

	"specmap/internal/analysis"
	"specmap/internal/domain"
	"specmap/internal/ports"
)

// ScanResult contains the result of a full mapping scan
type ScanResult struct {
	Snapshot *domain.MappingSnapshot
	Message  string
}

// ScanCommand runs an implementation-status analysis of the project and
// reconciles the results against the previous mapping snapshot. The new
// snapshot is persisted only after the analysis succeeds end to end; any
// failure leaves the previous snapshot untouched.
type ScanCommand struct {
	orchestrator *analysis.Orchestrator
	snapshots    ports.SnapshotStore
	timeout      time.Duration
	ProjectTree  string
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(orchestrator *analysis.Orchestrator, snapshots ports.SnapshotStore, timeout time.Duration, projectTree string) *ScanCommand {
	return &ScanCommand{orchestrator: orchestrator, snapshots: snapshots, timeout: timeout, ProjectTree: projectTree}
}

// Validate checks the command parameters
func (c *ScanCommand) Validate() error {
	return nil
}

// Execute runs the scan and saves the resulting snapshot
func (c *ScanCommand) Execute(ctx context.Context) (*ScanResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.orchestrator.Scan(ctx, c.ProjectTree)
	if err != nil {
		return nil, err
	}

	previous, err := c.snapshots.Load()
	if err != nil {
		return nil, err
	}

	changelog := domain.Reconcile(result.Entries, previous)

	snapshot := &domain.MappingSnapshot{
		Version:       domain.SnapshotVersion,
		ScannedAt:     time.Now().UTC(),
		DirectoryTree: result.DirectoryTree,
		TokenUsage:    result.Usage,
		Entries:       result.Entries,
		Changelog:     changelog,
	}

	if err := c.snapshots.Save(snapshot); err != nil {
		return nil, err
	}

	return &ScanResult{
		Snapshot: snapshot,
		Message:  fmt.Sprintf("Scanned %d objects, %d changes", len(snapshot.Entries), len(changelog)),
	}, nil
}
