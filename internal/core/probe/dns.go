// Package probe implements the network probes behind the availability
// resolver: a name-resolution probe and registry-record probes.
package probe

import (
	"context"
	"errors"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/domainforge/domainforge/internal/metrics"
)

// DNSOutcome classifies a single resolution attempt.
type DNSOutcome int

const (
	// DNSResolved means the domain answers in the global name system.
	DNSResolved DNSOutcome = iota
	// DNSNotFound means resolution explicitly reported no such host.
	DNSNotFound
	// DNSTimeout means the attempt exceeded its deadline. Reported
	// distinctly from DNSNotFound so the resolver can classify it
	// conservatively instead of escalating.
	DNSTimeout
	// DNSError covers every other failure; the resolver treats it as
	// inconclusive.
	DNSError
)

func (o DNSOutcome) String() string {
	switch o {
	case DNSResolved:
		return "resolved"
	case DNSNotFound:
		return "not-found"
	case DNSTimeout:
		return "timeout"
	default:
		return "error"
	}
}

const defaultProbeTimeout = 5 * time.Second

// DNS probes whether a domain resolves in the global name system.
type DNS struct {
	Resolver *net.Resolver
	Timeout  time.Duration
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
}

// Resolve performs a single resolution attempt under the probe timeout.
func (d *DNS) Resolve(ctx context.Context, domain string) DNSOutcome {
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := defaultProbeTimeout
	if d != nil && d.Timeout > 0 {
		timeout = d.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resolver := net.DefaultResolver
	if d != nil && d.Resolver != nil {
		resolver = d.Resolver
	}

	addrs, err := resolver.LookupHost(ctx, domain)
	outcome := classifyLookup(addrs, err)

	if d != nil {
		d.Metrics.RecordProbe("dns", outcome.String())
		if d.Logger != nil {
			d.Logger.Debug("dns probe",
				zap.String("domain", domain),
				zap.String("outcome", outcome.String()))
		}
	}
	return outcome
}

func classifyLookup(addrs []string, err error) DNSOutcome {
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			if dnsErr.IsNotFound {
				return DNSNotFound
			}
			if dnsErr.IsTimeout {
				return DNSTimeout
			}
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return DNSTimeout
		}
		return DNSError
	}
	if len(addrs) == 0 {
		return DNSNotFound
	}
	return DNSResolved
}
