// Package fsstore implements the specification object store on the
// filesystem: a versioned JSON index document, one body file per node, and
// the persisted mapping snapshot.
package fsstore

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ContentStore reads and writes the per-node body files. A body file exists
// iff the node's content is non-empty.
type ContentStore struct {
	dir string
}

// NewContentStore creates a content store over the given directory. The
// directory itself is created lazily on the first non-empty write.
func NewContentStore(dir string) *ContentStore {
	return &ContentStore{dir: dir}
}

func (c *ContentStore) path(nodeID string) string {
	return filepath.Join(c.dir, nodeID+".md")
}

// Read returns the node's body text, or the empty string when no body
// exists. It never fails: unreadable storage degrades to "no content".
func (c *ContentStore) Read(nodeID string) string {
	data, err := os.ReadFile(c.path(nodeID))
	if err != nil {
		return ""
	}
	return string(data)
}

// Write persists the body verbatim. Text that trims to empty deletes the
// underlying file instead (idempotently), so emptiness and absence stay
// the same thing.
func (c *ContentStore) Write(nodeID, text string) error {
	if strings.TrimSpace(text) == "" {
		if err := os.Remove(c.path(nodeID)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to delete content for %s: %w", nodeID, err)
		}
		return nil
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}
	if err := os.WriteFile(c.path(nodeID), []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write content for %s: %w", nodeID, err)
	}
	return nil
}

// Fingerprint returns the hex SHA-1 of the node's raw body bytes, or nil
// when no body exists. The hash is a change-detection token only, not an
// integrity mechanism.
func (c *ContentStore) Fingerprint(nodeID string) (*string, error) {
	data, err := os.ReadFile(c.path(nodeID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read content for %s: %w", nodeID, err)
	}

	sum := sha1.Sum(data)
	fp := hex.EncodeToString(sum[:])
	return &fp, nil
}
