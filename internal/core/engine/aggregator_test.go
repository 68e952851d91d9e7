package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/domainforge/domainforge/internal/core"
	"github.com/domainforge/domainforge/internal/core/cache"
	"github.com/domainforge/domainforge/internal/core/probe"
	"github.com/domainforge/domainforge/internal/core/resolver"
)

type dnsFunc func(ctx context.Context, domain string) probe.DNSOutcome

func (f dnsFunc) Resolve(ctx context.Context, domain string) probe.DNSOutcome {
	return f(ctx, domain)
}

type registryFunc func(ctx context.Context, domain string) probe.RegistryVerdict

func (f registryFunc) Check(ctx context.Context, domain string) probe.RegistryVerdict {
	return f(ctx, domain)
}

// newTestAggregator treats every name in taken as resolving and everything
// else as unregistered.
func newTestAggregator(taken map[string]bool, panicOn string) *Aggregator {
	res := &resolver.Resolver{
		Cache: cache.New(cache.Config{}, zap.NewNop(), nil),
		DNS: dnsFunc(func(ctx context.Context, domain string) probe.DNSOutcome {
			if domain == panicOn {
				panic("probe exploded")
			}
			if taken[domain] {
				return probe.DNSResolved
			}
			return probe.DNSNotFound
		}),
		Registry: registryFunc(func(ctx context.Context, domain string) probe.RegistryVerdict {
			return probe.RegistryVerdict{Available: true, Method: core.MethodRegistry}
		}),
	}
	return &Aggregator{
		Resolver: res,
		Workers:  4,
		Logger:   zap.NewNop(),
		Clock: func() time.Time {
			return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestResolveBatchPartitions(t *testing.T) {
	agg := newTestAggregator(map[string]bool{"example.com": true}, "")

	batch := agg.ResolveBatch(context.Background(),
		[]string{"example.com", "zephyra.com", "nimbus.io"}, "idea")

	require.Len(t, batch.Available, 2)
	require.Len(t, batch.Taken, 1)
	require.Equal(t, "example.com", batch.Taken[0].Domain)
	require.Equal(t, "idea", batch.Prompt)
	require.False(t, batch.CompletedAt.IsZero())
}

func TestResolveBatchSortsBestFirst(t *testing.T) {
	agg := newTestAggregator(nil, "")

	// A short .com stem outscores a long unknown-extension stem.
	batch := agg.ResolveBatch(context.Background(),
		[]string{"extraordinarily-long-name.info", "zephyr.com"}, "")

	require.Len(t, batch.Available, 2)
	require.Equal(t, "zephyr.com", batch.Available[0].Domain)
	for i := 1; i < len(batch.Available); i++ {
		require.GreaterOrEqual(t,
			batch.Available[i-1].Quality.Overall,
			batch.Available[i].Quality.Overall)
	}
}

func TestResolveBatchSurvivesPanickingMember(t *testing.T) {
	agg := newTestAggregator(nil, "boom.com")

	candidates := []string{
		"alpha.com", "bravo.com", "charlie.com", "delta.com", "boom.com",
		"echo.com", "foxtrot.com", "golf.com", "hotel.com", "india.com",
	}
	batch := agg.ResolveBatch(context.Background(), candidates, "idea")

	require.Len(t, batch.Available, 9)
	require.Len(t, batch.Taken, 1)

	failed := batch.Taken[0]
	require.Equal(t, "boom.com", failed.Domain)
	require.Equal(t, core.MethodError, failed.Method)
	require.False(t, failed.Available)
	require.NotNil(t, failed.Quality)
	require.NotEmpty(t, failed.CheckID)
}

func TestResolveBatchEmpty(t *testing.T) {
	agg := newTestAggregator(nil, "")

	batch := agg.ResolveBatch(context.Background(), nil, "idea")
	require.Empty(t, batch.Available)
	require.Empty(t, batch.Taken)
}

func TestSortByQualityStable(t *testing.T) {
	a := &core.AvailabilityResult{Domain: "a.com", Quality: &core.QualityScore{Overall: 80}}
	b := &core.AvailabilityResult{Domain: "b.com", Quality: &core.QualityScore{Overall: 80}}
	c := &core.AvailabilityResult{Domain: "c.com", Quality: &core.QualityScore{Overall: 90}}
	noScore := &core.AvailabilityResult{Domain: "d.com"}

	results := []*core.AvailabilityResult{a, b, noScore, c}
	SortByQuality(results)

	require.Equal(t, []*core.AvailabilityResult{c, a, b, noScore}, results)
}
