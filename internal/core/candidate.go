package core

import (
	"errors"
	"strings"

	"github.com/domainforge/domainforge/internal/core/validate"
)

// SplitDomain splits a candidate into its stem and extension. The stem is
// everything before the final dot, lowercased.
func SplitDomain(domain string) (string, string, error) {
	value := strings.TrimSpace(domain)
	if value == "" {
		return "", "", errors.New("domain is required")
	}

	parts := strings.Split(value, ".")
	if len(parts) < 2 {
		return "", "", errors.New("domain must include an extension")
	}

	stem := strings.ToLower(strings.Join(parts[:len(parts)-1], "."))
	ext := strings.ToLower(parts[len(parts)-1])

	return stem, ext, nil
}

// ExpandCandidates expands stem and extension lists into full candidate
// domains. Candidates are lowercased, deduplicated, and filtered to
// syntactically valid, non-denylisted names.
func ExpandCandidates(stems, extensions []string) []string {
	seen := make(map[string]struct{})
	candidates := make([]string, 0, len(stems)*len(extensions))

	for _, stem := range stems {
		stem = strings.ToLower(strings.TrimSpace(stem))
		if stem == "" {
			continue
		}
		for _, ext := range extensions {
			ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
			if ext == "" {
				continue
			}
			domain := stem + "." + ext
			if _, ok := seen[domain]; ok {
				continue
			}
			seen[domain] = struct{}{}
			if !validate.IsCandidate(domain) {
				continue
			}
			candidates = append(candidates, domain)
		}
	}

	return candidates
}
