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
)

// IndexVersion tags the persisted index document.
const IndexVersion = "1"

// indexDocument is the single persisted metadata document for a workspace.
type indexDocument struct {
	Version string        `json:"version"`
	Nodes   []domain.Node `json:"nodes"`
}

// IndexStore reads and writes the flat node metadata list as one versioned
// JSON document.
type IndexStore struct {
	path   string
	logger *zap.Logger
}

// NewIndexStore creates an index store over the given document path.
func NewIndexStore(path string, logger *zap.Logger) *IndexStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IndexStore{path: path, logger: logger}
}

// ReadAll returns the node sequence in document order. A missing or
// unparsable document degrades to the empty default rather than failing;
// corruption is logged so it stays distinguishable from first run.
func (s *IndexStore) ReadAll() []domain.Node {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("index unreadable, treating as empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return nil
	}

	var doc indexDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("index corrupt, treating as empty",
			zap.String("path", s.path), zap.Error(err))
		return nil
	}
	return doc.Nodes
}

// WriteAll overwrites the whole index document, creating the parent
// directory on demand.
func (s *IndexStore) WriteAll(nodes []domain.Node) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	doc := indexDocument{Version: IndexVersion, Nodes: nodes}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}
