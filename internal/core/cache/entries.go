package cache

import (
	"context"
	"encoding/json"

	"github.com/domainforge/domainforge/internal/core"
)

// DNSEntry records the outcome of a name-resolution probe.
type DNSEntry struct {
	Domain   string `json:"domain"`
	Resolved bool   `json:"resolved"`
}

// RegistryEntry records the outcome of a registry-record probe.
type RegistryEntry struct {
	Domain    string      `json:"domain"`
	Available bool        `json:"available"`
	Method    core.Method `json:"method"`
}

// AvailabilityEntry records a combined availability verdict.
type AvailabilityEntry struct {
	Domain    string      `json:"domain"`
	Available bool        `json:"available"`
	Method    core.Method `json:"method"`
}

func (c *Client) getJSON(ctx context.Context, ns Namespace, id string, out any) bool {
	if c == nil {
		return false
	}
	raw, ok := c.Get(ctx, Key(ns, id))
	if !ok {
		c.metrics.RecordCacheMiss(string(ns))
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// A corrupt entry counts as a miss; it will be overwritten.
		c.metrics.RecordCacheMiss(string(ns))
		return false
	}
	c.metrics.RecordCacheHit(string(ns))
	return true
}

func (c *Client) setJSON(ctx context.Context, ns Namespace, id string, value any) bool {
	if c == nil {
		return false
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return false
	}
	return c.Set(ctx, Key(ns, id), string(raw), TTLFor(ns))
}

// GetDNS returns a cached name-resolution outcome for a domain.
func (c *Client) GetDNS(ctx context.Context, domain string) (DNSEntry, bool) {
	var entry DNSEntry
	ok := c.getJSON(ctx, NamespaceDNS, domain, &entry)
	return entry, ok
}

// SetDNS caches a name-resolution outcome for a domain.
func (c *Client) SetDNS(ctx context.Context, domain string, resolved bool) bool {
	return c.setJSON(ctx, NamespaceDNS, domain, DNSEntry{Domain: domain, Resolved: resolved})
}

// GetRegistry returns a cached registry-record verdict for a domain.
func (c *Client) GetRegistry(ctx context.Context, domain string) (RegistryEntry, bool) {
	var entry RegistryEntry
	ok := c.getJSON(ctx, NamespaceRegistry, domain, &entry)
	return entry, ok
}

// SetRegistry caches a registry-record verdict for a domain.
func (c *Client) SetRegistry(ctx context.Context, domain string, entry RegistryEntry) bool {
	entry.Domain = domain
	return c.setJSON(ctx, NamespaceRegistry, domain, entry)
}

// GetAvailability returns a cached combined availability verdict.
func (c *Client) GetAvailability(ctx context.Context, domain string) (AvailabilityEntry, bool) {
	var entry AvailabilityEntry
	ok := c.getJSON(ctx, NamespaceAvailability, domain, &entry)
	return entry, ok
}

// SetAvailability caches a combined availability verdict.
func (c *Client) SetAvailability(ctx context.Context, domain string, entry AvailabilityEntry) bool {
	entry.Domain = domain
	return c.setJSON(ctx, NamespaceAvailability, domain, entry)
}

// GetGeneration returns cached generated stems for a prompt identifier.
func (c *Client) GetGeneration(ctx context.Context, id string) ([]string, bool) {
	var stems []string
	ok := c.getJSON(ctx, NamespaceGeneration, id, &stems)
	return stems, ok
}

// SetGeneration caches generated stems under a prompt identifier.
func (c *Client) SetGeneration(ctx context.Context, id string, stems []string) bool {
	return c.setJSON(ctx, NamespaceGeneration, id, stems)
}

// GetQuality returns a cached quality score for a domain+prompt identifier.
func (c *Client) GetQuality(ctx context.Context, id string) (*core.QualityScore, bool) {
	var score core.QualityScore
	if !c.getJSON(ctx, NamespaceQuality, id, &score) {
		return nil, false
	}
	return &score, true
}

// SetQuality caches a quality score under a domain+prompt identifier.
func (c *Client) SetQuality(ctx context.Context, id string, score *core.QualityScore) bool {
	if score == nil {
		return false
	}
	return c.setJSON(ctx, NamespaceQuality, id, score)
}
