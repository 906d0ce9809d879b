package commands

import (
	"context"
	"fmt"

	"specmap/internal/application"
	"specmap/internal/domain"
	"specmap/internal/ports"
)

// AnnotateResult contains the result of setting an annotation
type AnnotateResult struct {
	Message string
}

// AnnotateCommand attaches a note or issue annotation to an existing node.
// An empty body clears the annotation.
type AnnotateCommand struct {
	repo        ports.SpecRepository
	annotations ports.AnnotationIndex
	NodeID      string
	Kind        domain.AnnotationKind
	Body        string
}

// NewAnnotateCommand creates a new AnnotateCommand
func NewAnnotateCommand(repo ports.SpecRepository, annotations ports.AnnotationIndex, nodeID string, kind domain.AnnotationKind, body string) *AnnotateCommand {
	return &AnnotateCommand{repo: repo, annotations: annotations, NodeID: nodeID, Kind: kind, Body: body}
}

// Validate checks the command parameters
func (c *AnnotateCommand) Validate() error {
	if c.NodeID == "" {
		return &application.ValidationError{Field: "nodeId", Message: "node id is required"}
	}
	if c.Kind != domain.AnnotationNote && c.Kind != domain.AnnotationIssue {
		return &application.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown annotation kind: %s", c.Kind)}
	}
	return nil
}

// Execute sets the annotation
func (c *AnnotateCommand) Execute(ctx context.Context) (*AnnotateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	detail, err := c.repo.ReadDetail(ctx, c.NodeID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, &application.NotFoundError{ID: c.NodeID}
	}

	if err := c.annotations.Set(c.NodeID, c.Kind, c.Body); err != nil {
		return nil, err
	}

	verb := "Set"
	if c.Body == "" {
		verb = "Cleared"
	}
	return &AnnotateResult{Message: fmt.Sprintf("%s %s on %s", verb, c.Kind, c.NodeID)}, nil
}
