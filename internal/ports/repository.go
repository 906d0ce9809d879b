package ports

import (
	"context"

	"specmap/internal/domain"
)

// SpecRepository is the system of record for the specification tree. No
// other component mutates node metadata. Implementations must serialize
// the read-modify-write sequences of the mutating operations per
// workspace; callers may invoke reads while a scan is outstanding.
type SpecRepository interface {
	// LoadTree reads the index, recomputes derived content/annotation
	// flags and assembles the nested tree. Read-only.
	LoadTree(ctx context.Context) ([]*domain.TreeNode, error)

	// AddNode persists the body and appends a new index entry. The id
	// must be caller-supplied; the repository never generates ids.
	AddNode(ctx context.Context, detail *domain.NodeDetail) error

	// UpdateNode persists the body and replaces the index entry in
	// place. Full-replace semantics; callers wanting a partial patch
	// must ReadDetail first and merge.
	UpdateNode(ctx context.Context, detail *domain.NodeDetail) error

	// DeleteNode removes the node and all transitive descendants. The
	// index write is the commit point; body and annotation cleanup
	// trails it best-effort.
	DeleteNode(ctx context.Context, id string) error

	// MoveNode re-parents a node, rejecting any move that would make
	// the node its own ancestor. nil parent moves it to the root.
	MoveNode(ctx context.Context, id string, newParentID *string) error

	// ReadDetail joins one index entry with its body and annotation
	// flags. Returns nil (not an error) when the id is absent.
	ReadDetail(ctx context.Context, id string) (*domain.NodeDetail, error)
}
