package probe

import (
	"context"
	"errors"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/domainforge/domainforge/internal/core"
	"github.com/domainforge/domainforge/internal/core/cache"
	"github.com/domainforge/domainforge/internal/metrics"
)

// RegistryClient fetches registry record data for a domain and reports
// whether it appears unregistered. WhoisClient and RDAPClient implement it.
type RegistryClient interface {
	Lookup(ctx context.Context, domain string) (available bool, err error)
}

// RegistryVerdict is the outcome of a registry-record check.
type RegistryVerdict struct {
	Available bool
	Method    core.Method
}

// RegistryCache is the slice of the cache layer the checker consumes.
// *cache.Client implements it. A nil cache disables registry caching.
type RegistryCache interface {
	GetRegistry(ctx context.Context, domain string) (cache.RegistryEntry, bool)
	SetRegistry(ctx context.Context, domain string, entry cache.RegistryEntry) bool
}

// RegistryChecker runs cache-aware registry-record checks.
//
// Failures are optimistic: a fetch error or timeout reports the domain as
// available, tagged registry-error or registry-timeout. Favoring a possibly
// available domain over hiding one is a deliberate policy and a documented
// source of false positives.
type RegistryChecker struct {
	Client  RegistryClient
	Cache   RegistryCache
	Timeout time.Duration
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// Check returns the registry verdict for a domain, consulting the registry
// cache namespace first. Only conclusive verdicts are cached.
func (r *RegistryChecker) Check(ctx context.Context, domain string) RegistryVerdict {
	if ctx == nil {
		ctx = context.Background()
	}
	if r == nil || r.Client == nil {
		return RegistryVerdict{Available: true, Method: core.MethodRegistryError}
	}

	if r.Cache != nil {
		if entry, ok := r.Cache.GetRegistry(ctx, domain); ok {
			return RegistryVerdict{Available: entry.Available, Method: core.MethodRegistryCached}
		}
	}

	timeout := defaultProbeTimeout
	if r.Timeout > 0 {
		timeout = r.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	available, err := r.Client.Lookup(ctx, domain)
	if err != nil {
		verdict := RegistryVerdict{Available: true, Method: core.MethodRegistryError}
		if isTimeout(err) {
			verdict.Method = core.MethodRegistryTimeout
		}
		r.Metrics.RecordProbe("registry", string(verdict.Method))
		if r.Logger != nil {
			r.Logger.Debug("registry probe failed, optimistic fallback",
				zap.String("domain", domain),
				zap.String("method", string(verdict.Method)),
				zap.Error(err))
		}
		return verdict
	}

	r.Metrics.RecordProbe("registry", string(core.MethodRegistry))
	if r.Cache != nil {
		r.Cache.SetRegistry(ctx, domain, cache.RegistryEntry{
			Available: available,
			Method:    core.MethodRegistry,
		})
	}

	return RegistryVerdict{Available: available, Method: core.MethodRegistry}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
