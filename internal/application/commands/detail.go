package commands

import (
	"context"

	"specmap/internal/application"
	"specmap/internal/domain"
	"specmap/internal/ports"
)

// ReadDetailCommand reads one node's assembled detail
type ReadDetailCommand struct {
	repo ports.SpecRepository
	ID   string
}

// NewReadDetailCommand creates a new ReadDetailCommand
func NewReadDetailCommand(repo ports.SpecRepository, id string) *ReadDetailCommand {
	return &ReadDetailCommand{repo: repo, ID: id}
}

// Execute reads the detail, raising not-found for an absent id
func (c *ReadDetailCommand) Execute(ctx context.Context) (*domain.NodeDetail, error) {
	if c.ID == "" {
		return nil, &application.ValidationError{Field: "id", Message: "id is required"}
	}

	detail, err := c.repo.ReadDetail(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, &application.NotFoundError{ID: c.ID}
	}
	return detail, nil
}
