package commands

import (
	"context"
	"fmt"

	"specmap/internal/application"
	"specmap/internal/domain"
	"specmap/internal/ports"
)

// AddNodeResult contains the result of adding a node
type AddNodeResult struct {
	Node    domain.Node
	Message string
}

// AddNodeCommand adds a new node to the tree. The id is caller-supplied;
// the store never generates ids.
type AddNodeCommand struct {
	repo     ports.SpecRepository
	ID       string
	ParentID *string
	Title    string
	IsState  bool
	Content  string
}

// NewAddNodeCommand creates a new AddNodeCommand
func NewAddNodeCommand(repo ports.SpecRepository, id string, parentID *string, title string) *AddNodeCommand {
	return &AddNodeCommand{repo: repo, ID: id, ParentID: parentID, Title: title}
}

// Validate checks the command parameters
func (c *AddNodeCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{Field: "id", Message: "id is required"}
	}
	if c.Title == "" {
		return &application.ValidationError{Field: "title", Message: "title is required"}
	}
	return nil
}

// Execute adds the node
func (c *AddNodeCommand) Execute(ctx context.Context) (*AddNodeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	detail := &domain.NodeDetail{
		Node: domain.Node{
			ID:       c.ID,
			ParentID: c.ParentID,
			Title:    c.Title,
			IsState:  c.IsState,
		},
		Content: c.Content,
	}
	if err := c.repo.AddNode(ctx, detail); err != nil {
		return nil, err
	}

	return &AddNodeResult{
		Node:    detail.Node,
		Message: fmt.Sprintf("Added %q (id: %s)", c.Title, c.ID),
	}, nil
}
