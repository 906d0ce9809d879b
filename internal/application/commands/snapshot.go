package commands

import (
	"context"

	"specmap/internal/domain"
	"specmap/internal/ports"
)

// ReadSnapshotResult contains the stored mapping snapshot, if any
type ReadSnapshotResult struct {
	Snapshot *domain.MappingSnapshot
}

// ReadSnapshotCommand loads the last persisted mapping snapshot.
// A missing or unreadable snapshot yields a nil Snapshot rather than an error.
type ReadSnapshotCommand struct {
	snapshots ports.SnapshotStore
}

// NewReadSnapshotCommand creates a new ReadSnapshotCommand
func NewReadSnapshotCommand(snapshots ports.SnapshotStore) *ReadSnapshotCommand {
	return &ReadSnapshotCommand{snapshots: snapshots}
}

// Validate checks the command parameters
func (c *ReadSnapshotCommand) Validate() error {
	return nil
}

// Execute loads the snapshot
func (c *ReadSnapshotCommand) Execute(ctx context.Context) (*ReadSnapshotResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snapshot, err := c.snapshots.Load()
	if err != nil {
		return nil, err
	}
	return &ReadSnapshotResult{Snapshot: snapshot}, nil
}
