package domain

// Status is the implementation status the analysis service reports for one
// specification object.
type Status string

const (
	StatusImplemented Status = "implemented"
	StatusPartial     Status = "partial"
	StatusNotFound    Status = "not_found"
	StatusUnknown     Status = "unknown"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusImplemented, StatusPartial, StatusNotFound, StatusUnknown:
		return true
	}
	return false
}

// FileRef points at one source file the analysis associated with an object.
type FileRef struct {
	Path        string `json:"filePath"`
	Description string `json:"description,omitempty"`
	Lines       string `json:"lines,omitempty"`
}

// AnalysisResult is the per-node outcome of one analysis run. ObjectTitle
// is echoed by the external service and used only for id resolution when
// the echoed id cannot be trusted.
type AnalysisResult struct {
	ObjectID    string    `json:"objectId"`
	ObjectTitle string    `json:"objectTitle"`
	Status      Status    `json:"status"`
	Summary     string    `json:"summary"`
	ImplFiles   []FileRef `json:"implFiles,omitempty"`
	TestFiles   []FileRef `json:"testFiles,omitempty"`
}

// Files returns implementation and test files pooled together.
func (r AnalysisResult) Files() []FileRef {
	files := make([]FileRef, 0, len(r.ImplFiles)+len(r.TestFiles))
	files = append(files, r.ImplFiles...)
	files = append(files, r.TestFiles...)
	return files
}
