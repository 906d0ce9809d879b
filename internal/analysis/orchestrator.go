package analysis

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"specmap/internal/domain"
	"specmap/internal/ports"
	"specmap/internal/prompt"
)

// phase names one step of a scan, for logging.
type phase string

const (
	phaseRequesting phase = "requesting"
	phaseParsing    phase = "parsing"
	phaseResolving  phase = "resolving"
)

// ScanResult is the output of one analysis cycle, handed to the
// reconciliation step. Entries are owned by the orchestrator until then.
type ScanResult struct {
	Entries       []domain.AnalysisResult
	DirectoryTree string
	Usage         domain.TokenUsage
}

// Orchestrator runs one analysis cycle: load tree, build prompts, invoke
// the external service, parse the response, resolve ids. It reads from the
// object store and never writes to it.
type Orchestrator struct {
	repo      ports.SpecRepository
	service   ports.AnalysisService
	model     string
	maxTokens int
	logger    *zap.Logger
}

// NewOrchestrator wires an orchestrator. model and maxTokens are passed
// through to the service verbatim.
func NewOrchestrator(repo ports.SpecRepository, service ports.AnalysisService, model string, maxTokens int, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		repo:      repo,
		service:   service,
		model:     model,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Scan performs one full cycle and blocks until the service responds or
// ctx expires. A service failure propagates to the caller; a malformed
// response does not (it degrades inside parsing).
func (o *Orchestrator) Scan(ctx context.Context, projectTree string) (*ScanResult, error) {
	roots, err := o.repo.LoadTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tree for scan: %w", err)
	}

	if dups := DuplicateTitles(roots); len(dups) > 0 {
		o.logger.Warn("duplicate titles in tree, title resolution may misattribute",
			zap.Strings("titles", dups))
	}

	req := prompt.BuildRequest(roots, projectTree)

	o.logger.Debug("scan phase", zap.String("phase", string(phaseRequesting)), zap.String("model", o.model))
	res, err := o.service.Complete(ctx, ports.CompletionRequest{
		SystemPrompt: req.SystemPrompt,
		UserPrompt:   req.UserPrompt,
		Model:        o.model,
		MaxTokens:    o.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("analysis service failed: %w", err)
	}

	o.logger.Debug("scan phase", zap.String("phase", string(phaseParsing)), zap.Int("response_chars", len(res.RawText)))
	entries := ParseResponse(res.RawText)

	o.logger.Debug("scan phase", zap.String("phase", string(phaseResolving)), zap.Int("entries", len(entries)))
	entries, unresolvedTitles := ResolveIDs(entries, roots)
	if len(unresolvedTitles) > 0 {
		o.logger.Warn("analysis entries did not resolve to any node",
			zap.Strings("titles", unresolvedTitles))
	}

	return &ScanResult{
		Entries:       entries,
		DirectoryTree: projectTree,
		Usage: domain.TokenUsage{
			InputTokens:  res.InputTokens,
			OutputTokens: res.OutputTokens,
		},
	}, nil
}
