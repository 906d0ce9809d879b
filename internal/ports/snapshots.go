package ports

import "specmap/internal/domain"

// SnapshotStore persists the current mapping snapshot. There is no history:
// Save replaces the whole document, and Load returns nil (not an error)
// when no snapshot exists yet or the document cannot be parsed.
type SnapshotStore interface {
	Load() (*domain.MappingSnapshot, error)
	Save(snapshot *domain.MappingSnapshot) error
}
