// Package config provides application configuration via viper.
package config

import (
	"time"

	"github.com/domainforge/domainforge/internal/core/cache"
)

// Config is the complete application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Cache      cache.Config     `mapstructure:"cache"`
	Probe      ProbeConfig      `mapstructure:"probe"`
	Generation GenerationConfig `mapstructure:"generation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`

	// Extensions are the default extensions a batch expands stems over.
	Extensions []string `mapstructure:"extensions"`

	// Workers bounds concurrent candidate resolutions per batch.
	Workers int `mapstructure:"workers"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ProbeConfig contains probe timeouts and registry driver selection.
type ProbeConfig struct {
	DNSTimeout      time.Duration `mapstructure:"dns_timeout"`
	RegistryTimeout time.Duration `mapstructure:"registry_timeout"`

	// RegistryDriver selects the registry-record backend: "whois" (default)
	// or "rdap".
	RegistryDriver string `mapstructure:"registry_driver"`

	// WhoisServers maps TLDs to WHOIS servers, bypassing IANA referral.
	WhoisServers map[string]string `mapstructure:"whois_servers"`

	// RDAPServers routes TLDs to known-good RDAP base URLs.
	RDAPServers map[string]string `mapstructure:"rdap_servers"`
}

// GenerationConfig contains the generative stem service settings.
type GenerationConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
