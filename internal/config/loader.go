package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the given file path (optional) plus
// DOMAINFORGE_* environment variables, with defaults applied. A missing
// config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DOMAINFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("domainforge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/domainforge")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("cache.url", "redis://localhost:6379/0")
	v.SetDefault("cache.dial_timeout", "2s")

	v.SetDefault("probe.dns_timeout", "5s")
	v.SetDefault("probe.registry_timeout", "5s")
	v.SetDefault("probe.registry_driver", "whois")

	v.SetDefault("generation.model", "gpt-4o-mini")
	v.SetDefault("generation.timeout", "60s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("metrics.enabled", true)

	v.SetDefault("extensions", []string{"com", "net", "org", "io", "co"})
	v.SetDefault("workers", 8)
}
