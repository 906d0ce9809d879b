package commands

import (
	"context"
	"fmt"

	"specmap/internal/application"
	"specmap/internal/domain"
	"specmap/internal/ports"
)

// UpdateNodeResult contains the result of updating a node
type UpdateNodeResult struct {
	Detail  *domain.NodeDetail
	Message string
}

// UpdateNodeCommand applies a partial patch to an existing node. The
// repository itself has full-replace semantics, so the command reads the
// current detail, merges the set fields, and writes the merge back. A nil
// field leaves the current value alone.
type UpdateNodeCommand struct {
	repo      ports.SpecRepository
	ID        string
	Title     *string
	Completed *bool
	IsState   *bool
	Content   *string
}

// NewUpdateNodeCommand creates a new UpdateNodeCommand
func NewUpdateNodeCommand(repo ports.SpecRepository, id string) *UpdateNodeCommand {
	return &UpdateNodeCommand{repo: repo, ID: id}
}

// Validate checks the command parameters
func (c *UpdateNodeCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{Field: "id", Message: "id is required"}
	}
	if c.Title != nil && *c.Title == "" {
		return &application.ValidationError{Field: "title", Message: "title cannot be empty"}
	}
	return nil
}

// Execute merges the patch and persists the node
func (c *UpdateNodeCommand) Execute(ctx context.Context) (*UpdateNodeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	detail, err := c.repo.ReadDetail(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, &application.NotFoundError{ID: c.ID}
	}

	if c.Title != nil {
		detail.Title = *c.Title
	}
	if c.Completed != nil {
		detail.Completed = *c.Completed
	}
	if c.IsState != nil {
		detail.IsState = *c.IsState
	}
	if c.Content != nil {
		detail.Content = *c.Content
	}

	if err := c.repo.UpdateNode(ctx, detail); err != nil {
		return nil, err
	}

	return &UpdateNodeResult{
		Detail:  detail,
		Message: fmt.Sprintf("Updated %q (id: %s)", detail.Title, c.ID),
	}, nil
}
