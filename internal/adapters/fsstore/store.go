package fsstore

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"specmap/internal/application"
	"specmap/internal/domain"
	"specmap/internal/ports"
)

const storeDirName = ".specmap"

// StoreDir returns the store directory for a workspace.
func StoreDir(workspace string) string {
	return filepath.Join(workspace, storeDirName)
}

// IndexPath returns the index document path for a workspace.
func IndexPath(workspace string) string {
	return filepath.Join(StoreDir(workspace), "index.json")
}

// ContentDir returns the per-node body directory for a workspace.
func ContentDir(workspace string) string {
	return filepath.Join(StoreDir(workspace), "content")
}

// SnapshotPath returns the mapping snapshot document path for a workspace.
func SnapshotPath(workspace string) string {
	return filepath.Join(StoreDir(workspace), "mapping.json")
}

// AnnotationsPath returns the side-annotation database path for a workspace.
func AnnotationsPath(workspace string) string {
	return filepath.Join(StoreDir(workspace), "annotations.db")
}

// Store composes the content store and index store into the specification
// object store. The read-modify-write sequences over the index document are
// not atomic across the two file accesses, so a per-workspace mutex
// serializes them; an interleaving second writer would otherwise silently
// lose an update.
type Store struct {
	content     *ContentStore
	index       *IndexStore
	annotations ports.AnnotationIndex
	logger      *zap.Logger
	mu          sync.Mutex
}

var _ ports.SpecRepository = (*Store)(nil)

// NewStore creates the object store for a workspace. annotations may be nil
// when no side-annotation index is attached; derived flags then stay false.
func NewStore(workspace string, annotations ports.AnnotationIndex, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		content:     NewContentStore(ContentDir(workspace)),
		index:       NewIndexStore(IndexPath(workspace), logger),
		annotations: annotations,
		logger:      logger,
	}
}

// LoadTree reads the index, recomputes each node's content fingerprint and
// annotation flags, and assembles the nested tree. Read-only.
func (s *Store) LoadTree(ctx context.Context) ([]*domain.TreeNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	nodes := s.index.ReadAll()
	s.mu.Unlock()

	for i := range nodes {
		fp, err := s.content.Fingerprint(nodes[i].ID)
		if err != nil {
			return nil, err
		}
		nodes[i].ContentFingerprint = fp
	}

	roots := domain.AssembleTree(nodes)
	if s.annotations != nil {
		var walkErr error
		domain.WalkTree(roots, func(tn *domain.TreeNode) {
			flags, err := s.annotations.Flags(tn.ID)
			if err != nil && walkErr == nil {
				walkErr = err
				return
			}
			tn.HasNotes = flags.HasNotes
			tn.HasIssues = flags.HasIssues
		})
		if walkErr != nil {
			return nil, fmt.Errorf("failed to read annotation flags: %w", walkErr)
		}
	}
	return roots, nil
}

// AddNode writes the body and appends a new index entry. The id must be
// caller-supplied and unique; the store never generates ids.
func (s *Store) AddNode(ctx context.Context, detail *domain.NodeDetail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if detail.ID == "" {
		return &application.ValidationError{Field: "id", Message: "id is required"}
	}
	if detail.Title == "" {
		return &application.ValidationError{Field: "title", Message: "title is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nodes := s.index.ReadAll()
	for _, n := range nodes {
		if n.ID == detail.ID {
			return &application.ValidationError{Field: "id", Message: fmt.Sprintf("id %s already exists", detail.ID)}
		}
	}

	if err := s.content.Write(detail.ID, detail.Content); err != nil {
		return err
	}
	fp, err := s.content.Fingerprint(detail.ID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	nodes = append(nodes, domain.Node{
		ID:                 detail.ID,
		ParentID:           detail.ParentID,
		Title:              detail.Title,
		Completed:          detail.Completed,
		IsState:            detail.IsState,
		ContentFingerprint: fp,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	return s.index.WriteAll(nodes)
}

// UpdateNode writes the body and replaces the index entry in place. The
// store itself does not reject unknown ids: an entry that is missing is
// appended, and the caller layer is responsible for raising not-found when
// update is used as a patch.
func (s *Store) UpdateNode(ctx context.Context, detail *domain.NodeDetail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if detail.ID == "" {
		return &application.ValidationError{Field: "id", Message: "id is required"}
	}
	if detail.Title == "" {
		return &application.ValidationError{Field: "title", Message: "title is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.content.Write(detail.ID, detail.Content); err != nil {
		return err
	}
	fp, err := s.content.Fingerprint(detail.ID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	nodes := s.index.ReadAll()
	replaced := false
	for i := range nodes {
		if nodes[i].ID != detail.ID {
			continue
		}
		nodes[i].ParentID = detail.ParentID
		nodes[i].Title = detail.Title
		nodes[i].Completed = detail.Completed
		nodes[i].IsState = detail.IsState
		nodes[i].ContentFingerprint = fp
		nodes[i].UpdatedAt = now
		replaced = true
		break
	}
	if !replaced {
		nodes = append(nodes, domain.Node{
			ID:                 detail.ID,
			ParentID:           detail.ParentID,
			Title:              detail.Title,
			Completed:          detail.Completed,
			IsState:            detail.IsState,
			ContentFingerprint: fp,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}
	return s.index.WriteAll(nodes)
}

// DeleteNode removes the node and its whole subtree. The index write is
// the commit point: after it succeeds the subtree is gone from the
// caller's point of view, and body/annotation deletion trails best-effort.
func (s *Store) DeleteNode(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nodes := s.index.ReadAll()
	found := false
	for _, n := range nodes {
		if n.ID == id {
			found = true
			break
		}
	}
	if !found {
		return &application.NotFoundError{ID: id}
	}

	doomed := domain.DescendantIDs(nodes, id)
	doomedSet := make(map[string]bool, len(doomed))
	for _, d := range doomed {
		doomedSet[d] = true
	}

	kept := nodes[:0]
	for _, n := range nodes {
		if !doomedSet[n.ID] {
			kept = append(kept, n)
		}
	}
	if err := s.index.WriteAll(kept); err != nil {
		return err
	}

	for _, d := range doomed {
		if err := s.content.Write(d, ""); err != nil {
			s.logger.Warn("content cleanup failed after delete",
				zap.String("id", d), zap.Error(err))
		}
	}
	if s.annotations != nil {
		if err := s.annotations.DeleteFor(doomed...); err != nil {
			s.logger.Warn("annotation cleanup failed after delete",
				zap.String("id", id), zap.Error(err))
		}
	}
	return nil
}

// MoveNode re-parents a node. Before mutating it walks the new parent's
// ancestor chain and rejects any move that would make the node its own
// ancestor; on success it bumps updatedAt and recomputes the fingerprint
// for consistency bookkeeping.
func (s *Store) MoveNode(ctx context.Context, id string, newParentID *string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nodes := s.index.ReadAll()
	idx := -1
	parentExists := newParentID == nil
	for i, n := range nodes {
		if n.ID == id {
			idx = i
		}
		if newParentID != nil && n.ID == *newParentID {
			parentExists = true
		}
	}
	if idx == -1 {
		return &application.NotFoundError{ID: id}
	}
	if !parentExists {
		return &application.NotFoundError{ID: *newParentID}
	}
	if domain.WouldCreateCycle(nodes, id, newParentID) {
		target := *newParentID
		reason := "target is a descendant of the node"
		if target == id {
			reason = "cannot move a node into itself"
		}
		return &application.MoveError{ID: id, TargetID: target, Reason: reason}
	}

	fp, err := s.content.Fingerprint(id)
	if err != nil {
		return err
	}
	nodes[idx].ParentID = newParentID
	nodes[idx].ContentFingerprint = fp
	nodes[idx].UpdatedAt = time.Now().UTC()
	return s.index.WriteAll(nodes)
}

// ReadDetail joins one index entry with its body text and annotation
// flags. Returns nil when the id is absent.
func (s *Store) ReadDetail(ctx context.Context, id string) (*domain.NodeDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	nodes := s.index.ReadAll()
	s.mu.Unlock()

	for _, n := range nodes {
		if n.ID != id {
			continue
		}
		fp, err := s.content.Fingerprint(id)
		if err != nil {
			return nil, err
		}
		n.ContentFingerprint = fp

		detail := &domain.NodeDetail{
			Node:    n,
			Content: s.content.Read(id),
		}
		if s.annotations != nil {
			flags, err := s.annotations.Flags(id)
			if err != nil {
				return nil, fmt.Errorf("failed to read annotation flags: %w", err)
			}
			detail.HasNotes = flags.HasNotes
			detail.HasIssues = flags.HasIssues
		}
		return detail, nil
	}
	return nil, nil
}
