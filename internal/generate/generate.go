// Package generate produces candidate name stems from a free-text prompt
// via an external generative service.
package generate

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/domainforge/domainforge/internal/core/cache"
)

// stemPattern constrains accepted stems: alphanumeric with interior
// hyphens, 2-63 characters. Non-conforming upstream output is dropped.
var stemPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,61}[a-zA-Z0-9]$`)

// Client is the generative name-stem collaborator.
type Client interface {
	// Generate proposes up to count stems for the prompt.
	Generate(ctx context.Context, prompt string, count int) ([]string, error)

	// Model identifies the upstream model for cache keying.
	Model() string
}

// Service wraps a Client with stem filtering and generation caching.
type Service struct {
	Client Client
	Cache  *cache.Client
	Logger *zap.Logger
}

// Stems returns validated stems for a prompt. Upstream failure is a hard
// failure for the request; the core never substitutes candidates on its
// own.
func (s *Service) Stems(ctx context.Context, prompt string, count int) ([]string, error) {
	if s == nil || s.Client == nil {
		return nil, fmt.Errorf("generation client is not configured")
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	if count <= 0 {
		count = 10
	}

	id := fmt.Sprintf("%s:%d:%s", prompt, count, s.Client.Model())
	if stems, ok := s.Cache.GetGeneration(ctx, id); ok {
		return stems, nil
	}

	raw, err := s.Client.Generate(ctx, prompt, count)
	if err != nil {
		return nil, fmt.Errorf("generate stems: %w", err)
	}

	stems := Filter(raw, count)
	if len(stems) == 0 {
		return nil, fmt.Errorf("generation returned no usable stems")
	}

	if s.Logger != nil {
		s.Logger.Debug("generated stems",
			zap.Int("requested", count),
			zap.Int("kept", len(stems)))
	}

	s.Cache.SetGeneration(ctx, id, stems)
	return stems, nil
}

// Filter normalizes, validates, deduplicates, and caps raw stems.
func Filter(raw []string, count int) []string {
	stems := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, stem := range raw {
		stem = strings.ToLower(strings.TrimSpace(stem))
		if stem == "" || !stemPattern.MatchString(stem) {
			continue
		}
		if _, ok := seen[stem]; ok {
			continue
		}
		seen[stem] = struct{}{}
		stems = append(stems, stem)
		if len(stems) == count {
			break
		}
	}

	return stems
}
