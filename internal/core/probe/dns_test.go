package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyLookup(t *testing.T) {
	cases := []struct {
		name  string
		addrs []string
		err   error
		want  DNSOutcome
	}{
		{"resolved", []string{"93.184.216.34"}, nil, DNSResolved},
		{"empty answer", nil, nil, DNSNotFound},
		{"nxdomain", nil, &net.DNSError{IsNotFound: true}, DNSNotFound},
		{"dns timeout", nil, &net.DNSError{IsTimeout: true}, DNSTimeout},
		{"deadline exceeded", nil, context.DeadlineExceeded, DNSTimeout},
		{"wrapped nxdomain", nil, fmt.Errorf("lookup: %w", &net.DNSError{IsNotFound: true}), DNSNotFound},
		{"other failure", nil, errors.New("connection refused"), DNSError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, classifyLookup(tc.addrs, tc.err))
		})
	}
}

func TestDNSOutcomeString(t *testing.T) {
	require.Equal(t, "resolved", DNSResolved.String())
	require.Equal(t, "not-found", DNSNotFound.String())
	require.Equal(t, "timeout", DNSTimeout.String())
	require.Equal(t, "error", DNSError.String())
}
