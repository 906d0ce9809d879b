package fsstore

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specmap/internal/application"
	"specmap/internal/domain"
)

func strptr(s string) *string { return &s }

func setupStore(t *testing.T) (*Store, string) {
	t.Helper()
	workspace := t.TempDir()
	return NewStore(workspace, nil, nil), workspace
}

func addNode(t *testing.T, s *Store, id string, parentID *string, title, content string) {
	t.Helper()
	err := s.AddNode(context.Background(), &domain.NodeDetail{
		Node:    domain.Node{ID: id, ParentID: parentID, Title: title},
		Content: content,
	})
	require.NoError(t, err)
}

func TestStore_AddAndLoadTree(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	addNode(t, s, "root", nil, "Root", "root body")
	addNode(t, s, "child", strptr("root"), "Child", "")

	roots, err := s.LoadTree(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "Root", roots[0].Title)
	assert.True(t, roots[0].HasContent)
	assert.NotNil(t, roots[0].ContentFingerprint)

	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "child", roots[0].Children[0].ID)
	assert.False(t, roots[0].Children[0].HasContent)
	assert.Nil(t, roots[0].Children[0].ContentFingerprint)
}

func TestStore_AddRejectsDuplicateID(t *testing.T) {
	s, _ := setupStore(t)

	addNode(t, s, "n1", nil, "First", "")
	err := s.AddNode(context.Background(), &domain.NodeDetail{
		Node: domain.Node{ID: "n1", Title: "Second"},
	})

	var verr *application.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)
}

func TestStore_UpdateReplacesInPlace(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	addNode(t, s, "n1", nil, "Old title", "old body")
	addNode(t, s, "n2", nil, "Other", "")

	before, err := s.ReadDetail(ctx, "n1")
	require.NoError(t, err)

	err = s.UpdateNode(ctx, &domain.NodeDetail{
		Node:    domain.Node{ID: "n1", Title: "New title", Completed: true},
		Content: "new body",
	})
	require.NoError(t, err)

	after, err := s.ReadDetail(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "New title", after.Title)
	assert.True(t, after.Completed)
	assert.Equal(t, "new body", after.Content)
	assert.NotEqual(t, *before.ContentFingerprint, *after.ContentFingerprint)

	// Ordering preserved: n1 still first.
	roots, err := s.LoadTree(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "n1", roots[0].ID)
}

func TestStore_ReadDetailAbsentIsNil(t *testing.T) {
	s, _ := setupStore(t)

	detail, err := s.ReadDetail(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestStore_CascadeDeleteCompleteness(t *testing.T) {
	s, workspace := setupStore(t)
	ctx := context.Background()

	addNode(t, s, "root", nil, "Root", "root body")
	addNode(t, s, "a", strptr("root"), "A", "a body")
	addNode(t, s, "a1", strptr("a"), "A1", "a1 body")
	addNode(t, s, "b", strptr("root"), "B", "b body")
	addNode(t, s, "other", nil, "Other", "other body")

	require.NoError(t, s.DeleteNode(ctx, "a"))

	roots, err := s.LoadTree(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "b", roots[0].Children[0].ID)

	for _, id := range []string{"a", "a1"} {
		detail, err := s.ReadDetail(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, detail, "%s should be gone from the index", id)
		assert.NoFileExists(t, ContentDir(workspace)+"/"+id+".md")
	}

	// Unrelated nodes untouched.
	detail, err := s.ReadDetail(ctx, "other")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "other body", detail.Content)
}

func TestStore_DeleteUnknownIDIsNotFound(t *testing.T) {
	s, _ := setupStore(t)

	err := s.DeleteNode(context.Background(), "ghost")
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestStore_MoveNode(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	addNode(t, s, "a", nil, "A", "")
	addNode(t, s, "b", nil, "B", "")

	require.NoError(t, s.MoveNode(ctx, "b", strptr("a")))

	roots, err := s.LoadTree(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "b", roots[0].Children[0].ID)

	// Move back to root.
	require.NoError(t, s.MoveNode(ctx, "b", nil))
	roots, err = s.LoadTree(ctx)
	require.NoError(t, err)
	assert.Len(t, roots, 2)
}

func TestStore_MoveIntoOwnDescendantRejected(t *testing.T) {
	s, workspace := setupStore(t)
	ctx := context.Background()

	addNode(t, s, "x", nil, "X", "")
	addNode(t, s, "mid", strptr("x"), "Mid", "")
	addNode(t, s, "y", strptr("mid"), "Y", "")

	indexBefore, err := os.ReadFile(IndexPath(workspace))
	require.NoError(t, err)

	err = s.MoveNode(ctx, "x", strptr("y"))
	assert.ErrorIs(t, err, application.ErrInvalidOperation)
	var merr *application.MoveError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "x", merr.ID)
	assert.Equal(t, "y", merr.TargetID)

	indexAfter, err := os.ReadFile(IndexPath(workspace))
	require.NoError(t, err)
	assert.Equal(t, indexBefore, indexAfter, "index document on disk must be unchanged")
}

func TestStore_MoveIntoSelfRejected(t *testing.T) {
	s, _ := setupStore(t)

	addNode(t, s, "x", nil, "X", "")
	err := s.MoveNode(context.Background(), "x", strptr("x"))
	assert.ErrorIs(t, err, application.ErrInvalidOperation)
}

func TestStore_MoveUnknownIDsAreNotFound(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	addNode(t, s, "x", nil, "X", "")

	assert.ErrorIs(t, s.MoveNode(ctx, "ghost", nil), application.ErrNotFound)
	assert.ErrorIs(t, s.MoveNode(ctx, "x", strptr("ghost")), application.ErrNotFound)
}

func TestStore_AcyclicityUnderMoves(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	addNode(t, s, "a", nil, "A", "")
	addNode(t, s, "b", strptr("a"), "B", "")
	addNode(t, s, "c", strptr("b"), "C", "")

	// Any accepted sequence of moves keeps every ancestor chain finite.
	require.NoError(t, s.MoveNode(ctx, "c", strptr("a")))
	require.NoError(t, s.MoveNode(ctx, "b", strptr("c")))
	assert.ErrorIs(t, s.MoveNode(ctx, "a", strptr("b")), application.ErrInvalidOperation)

	roots, err := s.LoadTree(ctx)
	require.NoError(t, err)

	flat := domain.FlattenTree(roots)
	assert.Len(t, flat, 3, "every node still reachable from a root")
	for _, n := range flat {
		assert.False(t, domain.WouldCreateCycle(flat, n.ID, n.ParentID))
	}
}

func TestIndexStore_CorruptDocumentDegradesToEmpty(t *testing.T) {
	workspace := t.TempDir()
	require.NoError(t, os.MkdirAll(StoreDir(workspace), 0755))
	require.NoError(t, os.WriteFile(IndexPath(workspace), []byte("{not json"), 0644))

	s := NewStore(workspace, nil, nil)
	roots, err := s.LoadTree(context.Background())
	require.NoError(t, err)
	assert.Empty(t, roots)

	// The degraded store keeps working: first write re-establishes the document.
	addNode(t, s, "fresh", nil, "Fresh", "")
	roots, err = s.LoadTree(context.Background())
	require.NoError(t, err)
	assert.Len(t, roots, 1)
}

func TestSnapshotStore_RoundTripAndDegradedLoad(t *testing.T) {
	workspace := t.TempDir()
	ss := NewSnapshotStore(SnapshotPath(workspace), nil)

	snap, err := ss.Load()
	require.NoError(t, err)
	assert.Nil(t, snap, "no snapshot before first scan")

	saved := &domain.MappingSnapshot{
		Version:   domain.SnapshotVersion,
		Entries:   []domain.AnalysisResult{{ObjectID: "a", Status: domain.StatusPartial}},
		Changelog: []domain.MappingChange{{ObjectID: "a", ChangeType: domain.ChangeAdded}},
	}
	require.NoError(t, ss.Save(saved))

	loaded, err := ss.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.Entries, loaded.Entries)

	require.NoError(t, os.WriteFile(SnapshotPath(workspace), []byte("<garbage>"), 0644))
	loaded, err = ss.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded, "corrupt snapshot reads as absent")
}
