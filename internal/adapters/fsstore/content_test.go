package fsstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentStore_ReadAbsentIsEmpty(t *testing.T) {
	cs := NewContentStore(filepath.Join(t.TempDir(), "content"))

	assert.Equal(t, "", cs.Read("nope"))
}

func TestContentStore_WriteThenRead(t *testing.T) {
	cs := NewContentStore(filepath.Join(t.TempDir(), "content"))

	require.NoError(t, cs.Write("n1", "## Requirement\nbody text"))
	assert.Equal(t, "## Requirement\nbody text", cs.Read("n1"))
}

func TestContentStore_FingerprintDeterminism(t *testing.T) {
	cs := NewContentStore(filepath.Join(t.TempDir(), "content"))

	require.NoError(t, cs.Write("n1", "same body"))
	first, err := cs.Fingerprint("n1")
	require.NoError(t, err)
	require.NotNil(t, first)

	require.NoError(t, cs.Write("n1", "same body"))
	second, err := cs.Fingerprint("n1")
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, *first, *second)
	assert.Len(t, *first, 40, "hex sha1")
}

func TestContentStore_FingerprintNilWhenAbsent(t *testing.T) {
	cs := NewContentStore(filepath.Join(t.TempDir(), "content"))

	fp, err := cs.Fingerprint("ghost")
	require.NoError(t, err)
	assert.Nil(t, fp)
}

func TestContentStore_EmptyWriteDeletesBody(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "content")
	cs := NewContentStore(dir)

	require.NoError(t, cs.Write("n1", "something"))
	require.FileExists(t, filepath.Join(dir, "n1.md"))

	require.NoError(t, cs.Write("n1", "   \n\t"))
	assert.NoFileExists(t, filepath.Join(dir, "n1.md"))

	fp, err := cs.Fingerprint("n1")
	require.NoError(t, err)
	assert.Nil(t, fp)

	// Deleting an already-absent body stays a no-op.
	require.NoError(t, cs.Write("n1", ""))
}

func TestContentStore_DirectoryCreatedLazily(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "content")
	cs := NewContentStore(dir)

	// Empty writes and reads must not create the directory.
	require.NoError(t, cs.Write("n1", ""))
	cs.Read("n1")
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, cs.Write("n1", "real content"))
	assert.DirExists(t, dir)
}
