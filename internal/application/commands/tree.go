package commands

import (
	"context"

	"specmap/internal/domain"
	"specmap/internal/ports"
)

// LoadTreeCommand loads the assembled specification tree
type LoadTreeCommand struct {
	repo ports.SpecRepository
}

// NewLoadTreeCommand creates a new LoadTreeCommand
func NewLoadTreeCommand(repo ports.SpecRepository) *LoadTreeCommand {
	return &LoadTreeCommand{repo: repo}
}

// Execute loads the tree
func (c *LoadTreeCommand) Execute(ctx context.Context) ([]*domain.TreeNode, error) {
	return c.repo.LoadTree(ctx)
}
