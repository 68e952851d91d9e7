// Package resolver orchestrates the tiered availability lookup:
// cache, name-resolution probe, registry-record probe, optimistic default.
package resolver

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/domainforge/domainforge/internal/core"
	"github.com/domainforge/domainforge/internal/core/cache"
	"github.com/domainforge/domainforge/internal/core/probe"
	"github.com/domainforge/domainforge/internal/core/score"
	"github.com/domainforge/domainforge/internal/core/validate"
	"github.com/domainforge/domainforge/internal/metrics"
)

// Store is the slice of the cache layer the resolver consumes.
// *cache.Client implements it.
type Store interface {
	GetAvailability(ctx context.Context, domain string) (cache.AvailabilityEntry, bool)
	SetAvailability(ctx context.Context, domain string, entry cache.AvailabilityEntry) bool
	GetDNS(ctx context.Context, domain string) (cache.DNSEntry, bool)
	SetDNS(ctx context.Context, domain string, resolved bool) bool
	GetQuality(ctx context.Context, id string) (*core.QualityScore, bool)
	SetQuality(ctx context.Context, id string, score *core.QualityScore) bool
}

// DNSProbe classifies whether a domain resolves. *probe.DNS implements it.
type DNSProbe interface {
	Resolve(ctx context.Context, domain string) probe.DNSOutcome
}

// RegistryProbe produces a registry-record verdict. *probe.RegistryChecker
// implements it.
type RegistryProbe interface {
	Check(ctx context.Context, domain string) probe.RegistryVerdict
}

// Resolver classifies one candidate at a time. It is stateless across
// calls; every invocation is independent and safe to run concurrently.
// Cache, DNS, and Registry are required.
type Resolver struct {
	Cache    Store
	DNS      DNSProbe
	Registry RegistryProbe
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Clock    func() time.Time
}

// Resolve runs the tiered lookup for a single candidate and attaches a
// quality score computed against the prompt.
//
// DNS failures are conservative (timeout and error classify as taken)
// while registry failures are optimistic (classify as available). The
// asymmetry is deliberate and preserved from the original policy.
func (r *Resolver) Resolve(ctx context.Context, domain, prompt string) *core.AvailabilityResult {
	if ctx == nil {
		ctx = context.Background()
	}
	domain = strings.ToLower(strings.TrimSpace(domain))

	// Malformed or denylisted candidates are never probed and never cached.
	if !validate.IsCandidate(domain) {
		return r.blocked(ctx, domain, prompt)
	}

	// Tier 1: combined availability cache. Quality is recomputed fresh
	// because it depends on the prompt, which may differ per call. The
	// stored entry is returned as-is, never rewritten: only fresh verdicts
	// touch the availability namespace, so a hot entry still expires on
	// schedule.
	if entry, ok := r.Cache.GetAvailability(ctx, domain); ok {
		return r.result(ctx, domain, prompt, entry.Available, core.MethodCache)
	}

	// Tier 2: name-resolution cache.
	if entry, ok := r.Cache.GetDNS(ctx, domain); ok {
		if entry.Resolved {
			return r.finalize(ctx, domain, prompt, false, core.MethodDNSCached)
		}
		return r.registry(ctx, domain, prompt)
	}

	// Tier 3: fresh resolution probe.
	switch r.DNS.Resolve(ctx, domain) {
	case probe.DNSResolved:
		r.Cache.SetDNS(ctx, domain, true)
		return r.finalize(ctx, domain, prompt, false, core.MethodDNS)
	case probe.DNSTimeout:
		// Conservative: an unanswered probe blocks the name rather than
		// surfacing it as available.
		return r.finalize(ctx, domain, prompt, false, core.MethodDNSTimeout)
	case probe.DNSNotFound:
		r.Cache.SetDNS(ctx, domain, false)
		return r.registry(ctx, domain, prompt)
	default:
		return r.finalize(ctx, domain, prompt, false, core.MethodError)
	}
}

// registry runs tier 4, the cache-aware registry-record check.
func (r *Resolver) registry(ctx context.Context, domain, prompt string) *core.AvailabilityResult {
	verdict := r.Registry.Check(ctx, domain)
	return r.finalize(ctx, domain, prompt, verdict.Available, verdict.Method)
}

// finalize re-validates the candidate, caches the verdict, and attaches the
// quality score. Blocked overrides skip caching so denylisted names never
// pollute the availability namespace.
func (r *Resolver) finalize(ctx context.Context, domain, prompt string, available bool, method core.Method) *core.AvailabilityResult {
	if !validate.IsCandidate(domain) {
		return r.blocked(ctx, domain, prompt)
	}

	r.Cache.SetAvailability(ctx, domain, cache.AvailabilityEntry{
		Available: available,
		Method:    method,
	})

	return r.result(ctx, domain, prompt, available, method)
}

func (r *Resolver) blocked(ctx context.Context, domain, prompt string) *core.AvailabilityResult {
	if r != nil && r.Logger != nil {
		r.Logger.Debug("candidate blocked", zap.String("domain", domain))
	}
	return r.result(ctx, domain, prompt, false, core.MethodBlocked)
}

func (r *Resolver) result(ctx context.Context, domain, prompt string, available bool, method core.Method) *core.AvailabilityResult {
	if r != nil {
		r.Metrics.RecordCheck(string(method))
	}
	return &core.AvailabilityResult{
		Domain:    domain,
		Available: available,
		Method:    method,
		Quality:   r.quality(ctx, domain, prompt),
		CheckID:   uuid.New().String(),
		CheckedAt: r.now(),
	}
}

// quality returns the quality score for domain+prompt, read through the
// quality cache namespace. The score is a pure function, so a cached value
// is always identical to a fresh one.
func (r *Resolver) quality(ctx context.Context, domain, prompt string) *core.QualityScore {
	id := domain + "|" + prompt

	if r != nil {
		if cached, ok := r.Cache.GetQuality(ctx, id); ok {
			return cached
		}
	}

	computed := score.Score(domain, prompt)
	if r != nil {
		r.Cache.SetQuality(ctx, id, computed)
	}
	return computed
}

func (r *Resolver) now() time.Time {
	if r != nil && r.Clock != nil {
		return r.Clock()
	}
	return time.Now().UTC()
}
