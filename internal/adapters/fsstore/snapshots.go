package fsstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"specmap/internal/domain"
	"specmap/internal/ports"
)

// SnapshotStore persists the mapping snapshot as one JSON document.
type SnapshotStore struct {
	path   string
	logger *zap.Logger
}

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a snapshot store over the given document path.
func NewSnapshotStore(path string, logger *zap.Logger) *SnapshotStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotStore{path: path, logger: logger}
}

// Load returns the last persisted snapshot, or nil when none exists. A
// corrupt document degrades to nil the same way the index does, with the
// parse failure logged so it stays observable.
func (s *SnapshotStore) Load() (*domain.MappingSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		s.logger.Warn("snapshot unreadable, treating as absent",
			zap.String("path", s.path), zap.Error(err))
		return nil, nil
	}

	var snap domain.MappingSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("snapshot corrupt, treating as absent",
			zap.String("path", s.path), zap.Error(err))
		return nil, nil
	}
	return &snap, nil
}

// Save replaces the persisted snapshot wholesale.
func (s *SnapshotStore) Save(snapshot *domain.MappingSnapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
