package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/domainforge/domainforge/internal/core"
	"github.com/domainforge/domainforge/internal/core/cache"
	"github.com/domainforge/domainforge/internal/core/probe"
)

type dnsFunc func(ctx context.Context, domain string) probe.DNSOutcome

func (f dnsFunc) Resolve(ctx context.Context, domain string) probe.DNSOutcome {
	return f(ctx, domain)
}

type registryFunc func(ctx context.Context, domain string) probe.RegistryVerdict

func (f registryFunc) Check(ctx context.Context, domain string) probe.RegistryVerdict {
	return f(ctx, domain)
}

// memStore is an in-memory Store for exercising the cached tiers.
type memStore struct {
	availability map[string]cache.AvailabilityEntry
	dns          map[string]cache.DNSEntry
	quality      map[string]*core.QualityScore

	availabilityWrites int
}

func newMemStore() *memStore {
	return &memStore{
		availability: make(map[string]cache.AvailabilityEntry),
		dns:          make(map[string]cache.DNSEntry),
		quality:      make(map[string]*core.QualityScore),
	}
}

func (s *memStore) GetAvailability(ctx context.Context, domain string) (cache.AvailabilityEntry, bool) {
	entry, ok := s.availability[domain]
	return entry, ok
}

func (s *memStore) SetAvailability(ctx context.Context, domain string, entry cache.AvailabilityEntry) bool {
	entry.Domain = domain
	s.availability[domain] = entry
	s.availabilityWrites++
	return true
}

func (s *memStore) GetDNS(ctx context.Context, domain string) (cache.DNSEntry, bool) {
	entry, ok := s.dns[domain]
	return entry, ok
}

func (s *memStore) SetDNS(ctx context.Context, domain string, resolved bool) bool {
	s.dns[domain] = cache.DNSEntry{Domain: domain, Resolved: resolved}
	return true
}

func (s *memStore) GetQuality(ctx context.Context, id string) (*core.QualityScore, bool) {
	score, ok := s.quality[id]
	return score, ok
}

func (s *memStore) SetQuality(ctx context.Context, id string, score *core.QualityScore) bool {
	s.quality[id] = score
	return true
}

var testClock = func() time.Time {
	return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestResolver(outcome probe.DNSOutcome, verdict probe.RegistryVerdict) (*Resolver, *memStore) {
	store := newMemStore()
	return &Resolver{
		Cache: store,
		DNS: dnsFunc(func(ctx context.Context, domain string) probe.DNSOutcome {
			return outcome
		}),
		Registry: registryFunc(func(ctx context.Context, domain string) probe.RegistryVerdict {
			return verdict
		}),
		Logger: zap.NewNop(),
		Clock:  testClock,
	}, store
}

func TestResolveBlockedCandidate(t *testing.T) {
	r, store := newTestResolver(probe.DNSNotFound, probe.RegistryVerdict{Available: true, Method: core.MethodRegistry})

	for _, domain := range []string{"localhost.com", "metadata.google.internal", "not_a_domain", "127.0.0.1"} {
		result := r.Resolve(context.Background(), domain, "idea")
		require.False(t, result.Available, domain)
		require.Equal(t, core.MethodBlocked, result.Method, domain)
		require.NotNil(t, result.Quality, domain)
	}
	require.Zero(t, store.availabilityWrites)
}

func TestResolveTakenWhenDNSResolves(t *testing.T) {
	r, store := newTestResolver(probe.DNSResolved, probe.RegistryVerdict{})

	result := r.Resolve(context.Background(), "example.com", "idea")
	require.False(t, result.Available)
	require.Equal(t, core.MethodDNS, result.Method)
	require.True(t, store.dns["example.com"].Resolved)
}

func TestResolveConservativeOnDNSTimeout(t *testing.T) {
	r, _ := newTestResolver(probe.DNSTimeout, probe.RegistryVerdict{})

	result := r.Resolve(context.Background(), "example.com", "idea")
	require.False(t, result.Available)
	require.Equal(t, core.MethodDNSTimeout, result.Method)
}

func TestResolveTakenOnDNSError(t *testing.T) {
	r, _ := newTestResolver(probe.DNSError, probe.RegistryVerdict{})

	result := r.Resolve(context.Background(), "example.com", "idea")
	require.False(t, result.Available)
	require.Equal(t, core.MethodError, result.Method)
}

func TestResolveEscalatesToRegistry(t *testing.T) {
	r, _ := newTestResolver(probe.DNSNotFound, probe.RegistryVerdict{Available: true, Method: core.MethodRegistry})

	result := r.Resolve(context.Background(), "zephyra.com", "idea")
	require.True(t, result.Available)
	require.Equal(t, core.MethodRegistry, result.Method)
}

func TestResolveOptimisticOnRegistryTimeout(t *testing.T) {
	r, _ := newTestResolver(probe.DNSNotFound, probe.RegistryVerdict{Available: true, Method: core.MethodRegistryTimeout})

	result := r.Resolve(context.Background(), "zephyra.com", "idea")
	require.True(t, result.Available)
	require.Equal(t, core.MethodRegistryTimeout, result.Method)
}

func TestResolveAvailabilityCacheHit(t *testing.T) {
	r, store := newTestResolver(probe.DNSError, probe.RegistryVerdict{})
	dnsCalled := false
	r.DNS = dnsFunc(func(ctx context.Context, domain string) probe.DNSOutcome {
		dnsCalled = true
		return probe.DNSError
	})
	store.availability["zephyra.com"] = cache.AvailabilityEntry{
		Domain:    "zephyra.com",
		Available: true,
		Method:    core.MethodRegistry,
	}

	result := r.Resolve(context.Background(), "zephyra.com", "idea")
	require.True(t, result.Available)
	require.Equal(t, core.MethodCache, result.Method)
	require.NotNil(t, result.Quality)
	require.False(t, dnsCalled)

	// A hit is read-only: the stored verdict keeps its original method and
	// the entry is not rewritten, so its TTL still runs out on schedule.
	require.Zero(t, store.availabilityWrites)
	require.Equal(t, core.MethodRegistry, store.availability["zephyra.com"].Method)
}

func TestResolveDNSCacheHitTaken(t *testing.T) {
	r, store := newTestResolver(probe.DNSNotFound, probe.RegistryVerdict{})
	dnsCalled := false
	r.DNS = dnsFunc(func(ctx context.Context, domain string) probe.DNSOutcome {
		dnsCalled = true
		return probe.DNSNotFound
	})
	store.dns["example.com"] = cache.DNSEntry{Domain: "example.com", Resolved: true}

	result := r.Resolve(context.Background(), "example.com", "idea")
	require.False(t, result.Available)
	require.Equal(t, core.MethodDNSCached, result.Method)
	require.False(t, dnsCalled)
	require.Equal(t, core.MethodDNSCached, store.availability["example.com"].Method)
}

func TestResolveDNSCacheNegativeSkipsToRegistry(t *testing.T) {
	r, store := newTestResolver(probe.DNSResolved, probe.RegistryVerdict{Available: true, Method: core.MethodRegistry})
	dnsCalled := false
	r.DNS = dnsFunc(func(ctx context.Context, domain string) probe.DNSOutcome {
		dnsCalled = true
		return probe.DNSResolved
	})
	store.dns["zephyra.com"] = cache.DNSEntry{Domain: "zephyra.com", Resolved: false}

	result := r.Resolve(context.Background(), "zephyra.com", "idea")
	require.True(t, result.Available)
	require.Equal(t, core.MethodRegistry, result.Method)
	require.False(t, dnsCalled)
}

func TestResolveRegistryCachedVerdictPassesThrough(t *testing.T) {
	r, _ := newTestResolver(probe.DNSNotFound, probe.RegistryVerdict{Available: true, Method: core.MethodRegistryCached})

	result := r.Resolve(context.Background(), "zephyra.com", "idea")
	require.True(t, result.Available)
	require.Equal(t, core.MethodRegistryCached, result.Method)
}

func TestResolveFreshVerdictCached(t *testing.T) {
	r, store := newTestResolver(probe.DNSNotFound, probe.RegistryVerdict{Available: true, Method: core.MethodRegistry})

	first := r.Resolve(context.Background(), "zephyra.com", "idea")
	require.Equal(t, core.MethodRegistry, first.Method)

	entry := store.availability["zephyra.com"]
	require.True(t, entry.Available)
	require.Equal(t, core.MethodRegistry, entry.Method)

	second := r.Resolve(context.Background(), "zephyra.com", "idea")
	require.True(t, second.Available)
	require.Equal(t, core.MethodCache, second.Method)
	require.Equal(t, 1, store.availabilityWrites)
}

func TestResolveSkipsRegistryWhenDNSAnswers(t *testing.T) {
	called := false
	r, _ := newTestResolver(probe.DNSResolved, probe.RegistryVerdict{})
	r.Registry = registryFunc(func(ctx context.Context, domain string) probe.RegistryVerdict {
		called = true
		return probe.RegistryVerdict{}
	})

	r.Resolve(context.Background(), "example.com", "idea")
	require.False(t, called)
}

func TestResolveNormalizesInput(t *testing.T) {
	r, _ := newTestResolver(probe.DNSResolved, probe.RegistryVerdict{})

	result := r.Resolve(context.Background(), "  EXAMPLE.COM  ", "idea")
	require.Equal(t, "example.com", result.Domain)
}

func TestResolveResultMetadata(t *testing.T) {
	r, store := newTestResolver(probe.DNSResolved, probe.RegistryVerdict{})

	first := r.Resolve(context.Background(), "example.com", "idea")
	second := r.Resolve(context.Background(), "example.com", "idea")

	require.NotEmpty(t, first.CheckID)
	require.NotEqual(t, first.CheckID, second.CheckID)
	require.Equal(t, testClock(), first.CheckedAt)
	require.NotNil(t, first.Quality)
	require.Equal(t, first.Quality, second.Quality)
	require.Contains(t, store.quality, "example.com|idea")
}
