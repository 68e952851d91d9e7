package probe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

const (
	whoisIanaServer = "whois.iana.org"
	whoisPort       = "43"
	whoisMaxBytes   = 128 * 1024
)

// notFoundPhrases mark a WHOIS response for an unregistered domain. The
// match is case-insensitive against the raw record text.
var notFoundPhrases = []string{
	"no match",
	"not found",
	"no data found",
	"no entries found",
	"status: free",
	"available for registration",
	"has not been registered",
}

// WhoisClient fetches registry record text over TCP port 43, resolving the
// responsible server per TLD through IANA referral when no override is set.
type WhoisClient struct {
	// Servers maps TLDs to WHOIS servers, bypassing IANA referral.
	Servers map[string]string
	Timeout time.Duration
}

// Lookup reports whether the domain appears unregistered in its registry
// records. The verdict is heuristic: a "not found" phrase in the record
// text means available, any other record text means taken, and an empty
// record is ambiguous and reported as available.
func (c *WhoisClient) Lookup(ctx context.Context, domain string) (bool, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return false, errors.New("whois domain is required")
	}

	idx := strings.LastIndex(domain, ".")
	if idx < 0 {
		return false, errors.New("whois domain must include a tld")
	}
	tld := strings.ToLower(domain[idx+1:])

	server, err := c.resolveServer(ctx, tld)
	if err != nil {
		return false, err
	}

	body, err := queryWhois(ctx, server, domain, c.timeout())
	if err != nil {
		return false, err
	}

	return interpretWhois(body), nil
}

func (c *WhoisClient) timeout() time.Duration {
	if c != nil && c.Timeout > 0 {
		return c.Timeout
	}
	return defaultProbeTimeout
}

// resolveServer finds the WHOIS server for a TLD, preferring configured
// overrides over an IANA referral query.
func (c *WhoisClient) resolveServer(ctx context.Context, tld string) (string, error) {
	if c != nil && len(c.Servers) > 0 {
		if server := strings.TrimSpace(c.Servers[tld]); server != "" {
			return server, nil
		}
	}

	response, err := queryWhois(ctx, whoisIanaServer, tld, c.timeout())
	if err != nil {
		return "", fmt.Errorf("whois iana query failed: %w", err)
	}

	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if strings.HasPrefix(lower, "refer:") || strings.HasPrefix(lower, "whois:") {
			parts := strings.SplitN(trimmed, ":", 2)
			if len(parts) == 2 {
				return strings.TrimSpace(parts[1]), nil
			}
		}
	}

	return "", fmt.Errorf("no whois server for tld %s", tld)
}

func queryWhois(ctx context.Context, server, query string, timeout time.Duration) (string, error) {
	server = strings.TrimSpace(server)
	if server == "" {
		return "", errors.New("whois server is required")
	}

	dialer := &net.Dialer{}
	if timeout > 0 {
		dialer.Timeout = timeout
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(server, whoisPort))
	if err != nil {
		return "", fmt.Errorf("whois dial failed: %w", err)
	}
	defer conn.Close() // nolint:errcheck // best-effort cleanup on network connection

	if timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(timeout))
	}

	if _, err := fmt.Fprintf(conn, "%s\r\n", query); err != nil {
		return "", fmt.Errorf("whois query failed: %w", err)
	}

	reader := bufio.NewReader(conn)
	limited := &io.LimitedReader{R: reader, N: whoisMaxBytes}
	body, err := io.ReadAll(limited)
	if err != nil {
		return "", fmt.Errorf("whois read failed: %w", err)
	}

	return string(body), nil
}

// interpretWhois reports availability from registry record text. An empty
// record carries no registration evidence and is treated as available.
func interpretWhois(body string) bool {
	if strings.TrimSpace(body) == "" {
		return true
	}
	lower := strings.ToLower(body)
	for _, phrase := range notFoundPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
