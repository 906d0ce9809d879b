package ports

import "specmap/internal/domain"

// AnnotationFlags are the per-node presence flags derived from the
// side-annotation index.
type AnnotationFlags struct {
	HasNotes  bool
	HasIssues bool
}

// AnnotationIndex provides cached access to the side-annotation stores
// (notes, issues) attached to tree nodes.
type AnnotationIndex interface {
	// Lifecycle
	Open(dir string) error
	Close() error

	// Queries
	Flags(nodeID string) (AnnotationFlags, error)
	Annotations(nodeID string) ([]domain.Annotation, error)

	// Mutations
	Set(nodeID string, kind domain.AnnotationKind, body string) error
	DeleteFor(nodeIDs ...string) error
}
