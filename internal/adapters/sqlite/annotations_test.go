package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specmap/internal/domain"
	"specmap/internal/ports"
)

func setupIndex(t *testing.T) *Index {
	t.Helper()
	idx := NewIndex()
	require.NoError(t, idx.Open(filepath.Join(t.TempDir(), "annotations.db")))
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestIndex_FlagsEmptyByDefault(t *testing.T) {
	idx := setupIndex(t)

	flags, err := idx.Flags("n1")
	require.NoError(t, err)
	assert.Equal(t, ports.AnnotationFlags{}, flags)
}

func TestIndex_SetAndFlags(t *testing.T) {
	idx := setupIndex(t)

	require.NoError(t, idx.Set("n1", domain.AnnotationNote, "remember this"))
	require.NoError(t, idx.Set("n1", domain.AnnotationIssue, "blocked on auth"))
	require.NoError(t, idx.Set("n2", domain.AnnotationNote, "other node"))

	flags, err := idx.Flags("n1")
	require.NoError(t, err)
	assert.True(t, flags.HasNotes)
	assert.True(t, flags.HasIssues)

	flags, err = idx.Flags("n2")
	require.NoError(t, err)
	assert.True(t, flags.HasNotes)
	assert.False(t, flags.HasIssues)
}

func TestIndex_SetReplacesPerKind(t *testing.T) {
	idx := setupIndex(t)

	require.NoError(t, idx.Set("n1", domain.AnnotationNote, "first"))
	require.NoError(t, idx.Set("n1", domain.AnnotationNote, "second"))

	annotations, err := idx.Annotations("n1")
	require.NoError(t, err)
	require.Len(t, annotations, 1)
	assert.Equal(t, "second", annotations[0].Body)
}

func TestIndex_EmptyBodyDeletes(t *testing.T) {
	idx := setupIndex(t)

	require.NoError(t, idx.Set("n1", domain.AnnotationNote, "temp"))
	require.NoError(t, idx.Set("n1", domain.AnnotationNote, ""))

	flags, err := idx.Flags("n1")
	require.NoError(t, err)
	assert.False(t, flags.HasNotes)
}

func TestIndex_DeleteForManyNodes(t *testing.T) {
	idx := setupIndex(t)

	require.NoError(t, idx.Set("a", domain.AnnotationNote, "x"))
	require.NoError(t, idx.Set("b", domain.AnnotationIssue, "y"))
	require.NoError(t, idx.Set("keep", domain.AnnotationNote, "z"))

	require.NoError(t, idx.DeleteFor("a", "b"))

	for _, id := range []string{"a", "b"} {
		flags, err := idx.Flags(id)
		require.NoError(t, err)
		assert.Equal(t, ports.AnnotationFlags{}, flags)
	}
	flags, err := idx.Flags("keep")
	require.NoError(t, err)
	assert.True(t, flags.HasNotes)
}
