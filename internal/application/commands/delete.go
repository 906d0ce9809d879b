package commands

import (
	"context"
	"fmt"

	"specmap/internal/application"
	"specmap/internal/ports"
)

// DeleteNodeResult contains the result of deleting a subtree
type DeleteNodeResult struct {
	Message string
}

// DeleteNodeCommand removes a node together with all of its descendants
type DeleteNodeCommand struct {
	repo ports.SpecRepository
	ID   string
}

// NewDeleteNodeCommand creates a new DeleteNodeCommand
func NewDeleteNodeCommand(repo ports.SpecRepository, id string) *DeleteNodeCommand {
	return &DeleteNodeCommand{repo: repo, ID: id}
}

// Validate checks the command parameters
func (c *DeleteNodeCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{Field: "id", Message: "id is required"}
	}
	return nil
}

// Execute deletes the subtree
func (c *DeleteNodeCommand) Execute(ctx context.Context) (*DeleteNodeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.DeleteNode(ctx, c.ID); err != nil {
		return nil, err
	}
	return &DeleteNodeResult{Message: fmt.Sprintf("Deleted %s and its descendants", c.ID)}, nil
}
