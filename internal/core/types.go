package core

import "time"

// Method identifies how an availability verdict was reached.
type Method string

const (
	MethodCache           Method = "cache"
	MethodDNS             Method = "dns"
	MethodDNSCached       Method = "dns-cached"
	MethodDNSTimeout      Method = "dns-timeout"
	MethodRegistry        Method = "registry"
	MethodRegistryCached  Method = "registry-cached"
	MethodRegistryTimeout Method = "registry-timeout"
	MethodRegistryError   Method = "registry-error"
	MethodBlocked         Method = "blocked"
	MethodError           Method = "error"
)

// FromCache reports whether the verdict was served from a cached entry.
func (m Method) FromCache() bool {
	switch m {
	case MethodCache, MethodDNSCached, MethodRegistryCached:
		return true
	default:
		return false
	}
}

// AvailabilityResult reports the availability verdict for one candidate.
// Results are created once per resolution call and never mutated after;
// a repeated check produces a new result, possibly cache-derived.
type AvailabilityResult struct {
	Domain    string        `json:"domain"`
	Available bool          `json:"available"`
	Method    Method        `json:"method"`
	Quality   *QualityScore `json:"quality,omitempty"`
	CheckID   string        `json:"check_id"`
	CheckedAt time.Time     `json:"checked_at"`
}

// QualityBreakdown holds the five independent 0-100 sub-scores.
type QualityBreakdown struct {
	Length       int `json:"length"`
	Memorability int `json:"memorability"`
	Brandability int `json:"brandability"`
	Extension    int `json:"extension"`
	Relevance    int `json:"relevance"`
}

// QualityScore is a deterministic weighted heuristic for a candidate.
// It is a pure function of (domain, prompt) and safe to cache indefinitely.
type QualityScore struct {
	Overall   int              `json:"overall"`
	Breakdown QualityBreakdown `json:"breakdown"`
	Grade     string           `json:"grade"`
	Label     string           `json:"label"`
}

// BatchResult partitions a batch of resolutions into available and taken,
// each sorted best-first by overall quality.
type BatchResult struct {
	Available   []*AvailabilityResult `json:"available"`
	Taken       []*AvailabilityResult `json:"taken"`
	Prompt      string                `json:"prompt,omitempty"`
	CompletedAt time.Time             `json:"completed_at"`
}
