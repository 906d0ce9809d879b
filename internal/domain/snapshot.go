package domain

import "time"

// SnapshotVersion tags persisted mapping documents for forward compatibility.
const SnapshotVersion = "1"

// TokenUsage accounts for the cost of one analysis run.
type TokenUsage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

// MappingSnapshot is the full persisted result of one analysis-and-
// reconciliation cycle. It is replaced wholesale on every successful scan;
// the prior snapshot is read once for diffing and then overwritten.
type MappingSnapshot struct {
	Version       string           `json:"version"`
	ScannedAt     time.Time        `json:"scannedAt"`
	DirectoryTree string           `json:"directoryTree"`
	TokenUsage    TokenUsage       `json:"tokenUsage"`
	Entries       []AnalysisResult `json:"entries"`
	Changelog     []MappingChange  `json:"changelog"`
}

// ChangeType classifies one object's delta between two snapshots.
type ChangeType string

const (
	ChangeAdded     ChangeType = "added"
	ChangeChanged   ChangeType = "changed"
	ChangeRemoved   ChangeType = "removed"
	ChangeUnchanged ChangeType = "unchanged"
)

// MappingChange is one changelog entry, produced for every object that
// appears in either the new or the previous snapshot. PreviousStatus and
// CurrentStatus are nil when the object is new or removed respectively.
type MappingChange struct {
	ObjectID       string     `json:"objectId"`
	ObjectTitle    string     `json:"objectTitle"`
	ChangeType     ChangeType `json:"changeType"`
	PreviousStatus *Status    `json:"previousStatus,omitempty"`
	CurrentStatus  *Status    `json:"currentStatus,omitempty"`
	ChangeSummary  string     `json:"changeSummary,omitempty"`
	AddedFiles     []FileRef  `json:"addedFiles,omitempty"`
	RemovedFiles   []FileRef  `json:"removedFiles,omitempty"`
}
