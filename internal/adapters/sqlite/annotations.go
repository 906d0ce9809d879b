// Package sqlite implements the side-annotation index over SQLite.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"specmap/internal/domain"
	"specmap/internal/ports"
)

// Index implements ports.AnnotationIndex using SQLite.
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements AnnotationIndex
var _ ports.AnnotationIndex = (*Index)(nil)

// NewIndex creates a new SQLite annotation index.
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index at the given database path.
func (idx *Index) Open(dbPath string) error {
	idx.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create annotation directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open annotation database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS annotations (
			node_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			body TEXT NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (node_id, kind)
		);
		CREATE INDEX IF NOT EXISTS idx_annotations_node ON annotations(node_id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup annotation database: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Flags returns the annotation-presence flags for a node.
func (idx *Index) Flags(nodeID string) (ports.AnnotationFlags, error) {
	rows, err := idx.db.Query(`SELECT DISTINCT kind FROM annotations WHERE node_id = ?`, nodeID)
	if err != nil {
		return ports.AnnotationFlags{}, fmt.Errorf("failed to query annotation flags: %w", err)
	}
	defer rows.Close()

	var flags ports.AnnotationFlags
	for rows.Next() {
		var kind string
		if err := rows.Scan(&kind); err != nil {
			return ports.AnnotationFlags{}, err
		}
		switch domain.AnnotationKind(kind) {
		case domain.AnnotationNote:
			flags.HasNotes = true
		case domain.AnnotationIssue:
			flags.HasIssues = true
		}
	}
	return flags, rows.Err()
}

// Annotations returns all annotations attached to a node.
func (idx *Index) Annotations(nodeID string) ([]domain.Annotation, error) {
	rows, err := idx.db.Query(`
		SELECT node_id, kind, body, updated_at
		FROM annotations
		WHERE node_id = ?
		ORDER BY kind
	`, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query annotations: %w", err)
	}
	defer rows.Close()

	var out []domain.Annotation
	for rows.Next() {
		var a domain.Annotation
		var kind string
		if err := rows.Scan(&a.NodeID, &kind, &a.Body, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.Kind = domain.AnnotationKind(kind)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Set upserts one annotation body for a node. An empty body deletes the
// annotation, mirroring the content store's emptiness rule.
func (idx *Index) Set(nodeID string, kind domain.AnnotationKind, body string) error {
	if body == "" {
		_, err := idx.db.Exec(`DELETE FROM annotations WHERE node_id = ? AND kind = ?`, nodeID, string(kind))
		return err
	}

	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO annotations (node_id, kind, body, updated_at)
		VALUES (?, ?, ?, ?)
	`, nodeID, string(kind), body, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set annotation: %w", err)
	}
	return nil
}

// DeleteFor removes every annotation for the given node ids in one
// transaction, so a cascade delete cleans up all or nothing.
func (idx *Index) DeleteFor(nodeIDs ...string) error {
	if len(nodeIDs) == 0 {
		return nil
	}

	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin annotation cleanup: %w", err)
	}
	for _, id := range nodeIDs {
		if _, err := tx.Exec(`DELETE FROM annotations WHERE node_id = ?`, id); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to delete annotations for %s: %w", id, err)
		}
	}
	return tx.Commit()
}
