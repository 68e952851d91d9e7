package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	require.Equal(t, "redis://localhost:6379/0", cfg.Cache.URL)
	require.Equal(t, 2*time.Second, cfg.Cache.DialTimeout)

	require.Equal(t, 5*time.Second, cfg.Probe.DNSTimeout)
	require.Equal(t, 5*time.Second, cfg.Probe.RegistryTimeout)
	require.Equal(t, "whois", cfg.Probe.RegistryDriver)

	require.Equal(t, "gpt-4o-mini", cfg.Generation.Model)
	require.Equal(t, "info", cfg.Logging.Level)
	require.True(t, cfg.Metrics.Enabled)

	require.Equal(t, []string{"com", "net", "org", "io", "co"}, cfg.Extensions)
	require.Equal(t, 8, cfg.Workers)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DOMAINFORGE_SERVER_PORT", "9090")
	t.Setenv("DOMAINFORGE_WORKERS", "3")
	t.Setenv("DOMAINFORGE_PROBE_REGISTRY_DRIVER", "rdap")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, "rdap", cfg.Probe.RegistryDriver)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domainforge.yaml")
	content := []byte("server:\n  port: 1234\ncache:\n  url: redis://cache.internal:6379/1\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1234, cfg.Server.Port)
	require.Equal(t, "redis://cache.internal:6379/1", cfg.Cache.URL)

	// Keys absent from the file keep their defaults.
	require.Equal(t, 8, cfg.Workers)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
