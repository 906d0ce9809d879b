package domain

import "time"

// Node is one entry in the specification tree (a feature/requirement item).
// Its body text lives in the content store, not here; ContentFingerprint is
// nil exactly when no body exists.
type Node struct {
	ID                 string    `json:"id"`
	ParentID           *string   `json:"parentId"`
	Title              string    `json:"title"`
	Completed          bool      `json:"completed"`
	IsState            bool      `json:"isState"`
	ContentFingerprint *string   `json:"contentFingerprint"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// IsRoot reports whether the node has no parent.
func (n Node) IsRoot() bool {
	return n.ParentID == nil
}

// TreeNode decorates a Node with its children and derived presence flags.
// Children is omitted from JSON entirely for leaves, so consumers can tell
// "leaf" apart from "has no children currently".
type TreeNode struct {
	Node
	HasContent bool        `json:"hasContent"`
	HasNotes   bool        `json:"hasNotes"`
	HasIssues  bool        `json:"hasIssues"`
	Children   []*TreeNode `json:"children,omitempty"`
}

// NodeDetail joins a node's metadata with its body text and the
// annotation-presence flags derived from the side-annotation index.
type NodeDetail struct {
	Node
	Content   string `json:"content"`
	HasNotes  bool   `json:"hasNotes"`
	HasIssues bool   `json:"hasIssues"`
}

// AnnotationKind distinguishes the side-annotation stores attached to a node.
type AnnotationKind string

const (
	AnnotationNote  AnnotationKind = "note"
	AnnotationIssue AnnotationKind = "issue"
)

// Annotation is one side-annotation body attached to a node.
type Annotation struct {
	NodeID    string         `json:"nodeId"`
	Kind      AnnotationKind `json:"kind"`
	Body      string         `json:"body"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
