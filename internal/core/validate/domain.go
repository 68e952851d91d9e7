// Package validate provides candidate domain validation helpers.
package validate

import (
	"net"
	"regexp"
	"strings"
)

const maxDomainLength = 253

// domainRegexp validates RFC-compliant hostnames: dotted labels of 1-63
// alphanumeric/hyphen characters with no edge hyphens and a TLD of at
// least two letters.
var domainRegexp = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// blockedHosts are exact hostnames that must never be treated as real
// registrable candidates.
var blockedHosts = map[string]struct{}{
	"localhost":                {},
	"metadata.google.internal": {},
	"broadcasthost":            {},
}

// blockedSuffixes cover reserved internal naming zones.
var blockedSuffixes = []string{
	".internal",
	".local",
	".localhost",
	".localdomain",
}

// IsDomain reports whether s is a syntactically valid domain name.
func IsDomain(s string) bool {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	if s == "" || len(s) > maxDomainLength {
		return false
	}
	return domainRegexp.MatchString(s)
}

// IsBlocked reports whether s matches the denylist of loopback, internal,
// and metadata hostnames, or is a loopback/private/link-local IP literal.
func IsBlocked(s string) bool {
	host := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), "."))
	if host == "" {
		return true
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
	}

	if _, ok := blockedHosts[host]; ok {
		return true
	}

	for _, suffix := range blockedSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}

	// A "localhost" label anywhere marks spoofed candidates such as
	// localhost.com.
	for _, label := range strings.Split(host, ".") {
		if label == "localhost" {
			return true
		}
	}

	return false
}

// IsCandidate reports whether s is a well-formed, non-denylisted candidate.
func IsCandidate(s string) bool {
	return IsDomain(s) && !IsBlocked(s)
}
