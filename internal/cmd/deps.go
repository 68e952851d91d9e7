package cmd

import (
	"go.uber.org/zap"

	"github.com/domainforge/domainforge/internal/config"
	"github.com/domainforge/domainforge/internal/core/cache"
	"github.com/domainforge/domainforge/internal/core/engine"
	"github.com/domainforge/domainforge/internal/core/probe"
	"github.com/domainforge/domainforge/internal/core/resolver"
	"github.com/domainforge/domainforge/internal/generate"
	"github.com/domainforge/domainforge/internal/metrics"
)

// deps holds everything a command needs, wired from config. One shared
// cache client is constructed at startup and passed down explicitly.
type deps struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
	cache   *cache.Client
	service *engine.Service
}

// buildDeps wires the engine from the loaded config.
func buildDeps(cfg *config.Config, logger *zap.Logger, withMetrics bool) *deps {
	var m *metrics.Metrics
	if withMetrics && cfg.Metrics.Enabled {
		m = metrics.New()
	}

	cacheClient := cache.New(cfg.Cache, logger, m)

	dns := &probe.DNS{
		Timeout: cfg.Probe.DNSTimeout,
		Logger:  logger,
		Metrics: m,
	}

	registry := &probe.RegistryChecker{
		Client:  registryClient(cfg),
		Cache:   cacheClient,
		Timeout: cfg.Probe.RegistryTimeout,
		Logger:  logger,
		Metrics: m,
	}

	res := &resolver.Resolver{
		Cache:    cacheClient,
		DNS:      dns,
		Registry: registry,
		Logger:   logger,
		Metrics:  m,
	}

	aggregator := &engine.Aggregator{
		Resolver: res,
		Workers:  cfg.Workers,
		Logger:   logger,
		Metrics:  m,
	}

	generator := &generate.Service{
		Client: generationClient(cfg),
		Cache:  cacheClient,
		Logger: logger,
	}

	return &deps{
		logger:  logger,
		metrics: m,
		cache:   cacheClient,
		service: &engine.Service{
			Generator:  generator,
			Aggregator: aggregator,
			Extensions: cfg.Extensions,
		},
	}
}

func registryClient(cfg *config.Config) probe.RegistryClient {
	if cfg.Probe.RegistryDriver == "rdap" {
		return &probe.RDAPClient{
			Timeout: cfg.Probe.RegistryTimeout,
			Servers: cfg.Probe.RDAPServers,
		}
	}
	return &probe.WhoisClient{
		Servers: cfg.Probe.WhoisServers,
		Timeout: cfg.Probe.RegistryTimeout,
	}
}

func generationClient(cfg *config.Config) generate.Client {
	client := generate.NewOpenAIClient(cfg.Generation.BaseURL, cfg.Generation.APIKey, cfg.Generation.Model)
	client.Timeout = cfg.Generation.Timeout
	return client
}
