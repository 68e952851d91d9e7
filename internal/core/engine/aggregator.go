// Package engine fans availability resolutions out over candidate batches
// and assembles ranked results.
package engine

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/domainforge/domainforge/internal/core"
	"github.com/domainforge/domainforge/internal/core/resolver"
	"github.com/domainforge/domainforge/internal/core/score"
	"github.com/domainforge/domainforge/internal/metrics"
)

const defaultWorkers = 8

// Aggregator dispatches one resolver call per candidate, tolerating
// individual failures, then partitions results by availability and sorts
// each partition best-first.
type Aggregator struct {
	Resolver *resolver.Resolver
	Workers  int
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Clock    func() time.Time
}

// ResolveBatch resolves every candidate concurrently. A member that panics
// is recorded as a method "error" entry; nothing aborts the batch.
func (a *Aggregator) ResolveBatch(ctx context.Context, candidates []string, prompt string) *core.BatchResult {
	if ctx == nil {
		ctx = context.Background()
	}

	a.Metrics.RecordBatch(len(candidates))

	results := make([]*core.AvailabilityResult, len(candidates))

	var g errgroup.Group
	g.SetLimit(a.workers())
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			results[i] = a.resolveOne(ctx, candidate, prompt)
			return nil
		})
	}
	_ = g.Wait()

	batch := &core.BatchResult{
		Available:   make([]*core.AvailabilityResult, 0, len(results)),
		Taken:       make([]*core.AvailabilityResult, 0, len(results)),
		Prompt:      prompt,
		CompletedAt: a.now(),
	}
	for _, result := range results {
		if result == nil {
			continue
		}
		if result.Available {
			batch.Available = append(batch.Available, result)
		} else {
			batch.Taken = append(batch.Taken, result)
		}
	}

	SortByQuality(batch.Available)
	SortByQuality(batch.Taken)

	return batch
}

// resolveOne shields the batch from a panicking member.
func (a *Aggregator) resolveOne(ctx context.Context, candidate, prompt string) (result *core.AvailabilityResult) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if a.Logger != nil {
				a.Logger.Error("candidate resolution panicked",
					zap.String("domain", candidate),
					zap.Any("panic", recovered))
			}
			result = &core.AvailabilityResult{
				Domain:    candidate,
				Available: false,
				Method:    core.MethodError,
				Quality:   score.Score(candidate, prompt),
				CheckID:   uuid.New().String(),
				CheckedAt: a.now(),
			}
		}
	}()

	return a.Resolver.Resolve(ctx, candidate, prompt)
}

// SortByQuality sorts results by overall quality, best first. The sort is
// stable so equal scores keep their completion order.
func SortByQuality(results []*core.AvailabilityResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return overall(results[i]) > overall(results[j])
	})
}

func overall(result *core.AvailabilityResult) int {
	if result == nil || result.Quality == nil {
		return 0
	}
	return result.Quality.Overall
}

func (a *Aggregator) workers() int {
	if a != nil && a.Workers > 0 {
		return a.Workers
	}
	return defaultWorkers
}

func (a *Aggregator) now() time.Time {
	if a != nil && a.Clock != nil {
		return a.Clock()
	}
	return time.Now().UTC()
}
