package probe

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/openrdap/rdap"
)

// RDAPClient queries RDAP registries as an alternative registry-record
// driver. A 404 or an ObjectDoesNotExist error means the domain has no
// registration record.
type RDAPClient struct {
	Client  *rdap.Client
	Timeout time.Duration

	// Servers routes specific TLDs to known-good RDAP base URLs instead of
	// IANA bootstrap discovery. Keys are TLDs without a leading dot.
	Servers map[string]string
}

// Lookup reports whether the domain appears unregistered per RDAP.
func (c *RDAPClient) Lookup(ctx context.Context, domain string) (bool, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return false, errors.New("rdap domain is required")
	}

	client := c.client()
	req := rdap.NewDomainRequest(domain)

	if server := c.serverFor(domain); server != "" {
		serverURL, err := url.Parse(server)
		if err != nil {
			return false, fmt.Errorf("invalid rdap server url: %w", err)
		}
		req = req.WithServer(serverURL)
	}

	if c != nil && c.Timeout > 0 {
		req.Timeout = c.Timeout
	}
	req = req.WithContext(ctx)

	resp, err := client.Do(req)
	if err != nil {
		var clientErr *rdap.ClientError
		if errors.As(err, &clientErr) && clientErr.Type == rdap.ObjectDoesNotExist {
			return true, nil
		}
		return false, err
	}

	if _, ok := resp.Object.(*rdap.Domain); ok {
		return false, nil
	}

	return false, errors.New("unexpected rdap response")
}

func (c *RDAPClient) client() *rdap.Client {
	if c != nil && c.Client != nil {
		return c.Client
	}
	return &rdap.Client{}
}

func (c *RDAPClient) serverFor(domain string) string {
	if c == nil || len(c.Servers) == 0 {
		return ""
	}
	idx := strings.LastIndex(domain, ".")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(c.Servers[strings.ToLower(domain[idx+1:])])
}
