package commands

import (
	"context"
	"fmt"

	"specmap/internal/application"
	"specmap/internal/ports"
)

// MoveNodeResult contains the result of moving a node
type MoveNodeResult struct {
	Message string
}

// MoveNodeCommand re-parents a node. A nil NewParentID moves it to the root.
type MoveNodeCommand struct {
	repo        ports.SpecRepository
	ID          string
	NewParentID *string
}

// NewMoveNodeCommand creates a new MoveNodeCommand
func NewMoveNodeCommand(repo ports.SpecRepository, id string, newParentID *string) *MoveNodeCommand {
	return &MoveNodeCommand{repo: repo, ID: id, NewParentID: newParentID}
}

// Validate checks the command parameters
func (c *MoveNodeCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{Field: "id", Message: "id is required"}
	}
	return nil
}

// Execute moves the node
func (c *MoveNodeCommand) Execute(ctx context.Context) (*MoveNodeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.MoveNode(ctx, c.ID, c.NewParentID); err != nil {
		return nil, err
	}

	target := "root"
	if c.NewParentID != nil {
		target = *c.NewParentID
	}
	return &MoveNodeResult{Message: fmt.Sprintf("Moved %s under %s", c.ID, target)}, nil
}
