package engine

import (
	"context"
	"fmt"

	"github.com/domainforge/domainforge/internal/core"
	"github.com/domainforge/domainforge/internal/generate"
)

var defaultExtensions = []string{"com", "net", "org", "io", "co"}

// Service turns a free-text idea into a ranked availability report:
// generated stems are expanded over extensions and resolved as one batch.
type Service struct {
	Generator  *generate.Service
	Aggregator *Aggregator
	Extensions []string
}

// Suggest generates count stems for the prompt and resolves every
// stem x extension candidate. Generation failure is a hard failure;
// everything past it degrades per candidate.
func (s *Service) Suggest(ctx context.Context, prompt string, count int) (*core.BatchResult, error) {
	if s == nil || s.Generator == nil || s.Aggregator == nil {
		return nil, fmt.Errorf("suggest service is not configured")
	}

	stems, err := s.Generator.Stems(ctx, prompt, count)
	if err != nil {
		return nil, err
	}

	candidates := core.ExpandCandidates(stems, s.extensions())
	return s.Aggregator.ResolveBatch(ctx, candidates, prompt), nil
}

// Check resolves caller-supplied candidates without generation.
func (s *Service) Check(ctx context.Context, candidates []string, prompt string) (*core.BatchResult, error) {
	if s == nil || s.Aggregator == nil {
		return nil, fmt.Errorf("suggest service is not configured")
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("at least one candidate is required")
	}
	return s.Aggregator.ResolveBatch(ctx, candidates, prompt), nil
}

func (s *Service) extensions() []string {
	if s != nil && len(s.Extensions) > 0 {
		return s.Extensions
	}
	return defaultExtensions
}
