// Package server exposes the engine over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/domainforge/domainforge/internal/config"
	"github.com/domainforge/domainforge/internal/core/cache"
	"github.com/domainforge/domainforge/internal/core/engine"
)

// Server is the HTTP surface over the suggest service.
type Server struct {
	router *chi.Mux
	server *http.Server
	logger *zap.Logger
	cfg    config.ServerConfig

	service *engine.Service
	cache   *cache.Client
}

// New creates the HTTP server and registers all routes.
func New(cfg config.ServerConfig, logger *zap.Logger, service *engine.Service, cacheClient *cache.Client, metricsEnabled bool) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	s := &Server{
		router:  r,
		logger:  logger,
		cfg:     cfg,
		service: service,
		cache:   cacheClient,
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/suggest", s.handleSuggest)
		r.Post("/check", s.handleCheck)
		r.Post("/score", s.handleScore)
		r.Get("/cache/stats", s.handleCacheStats)
		r.Delete("/cache", s.handleCacheClear)
	})
	r.Get("/health", s.handleHealth)
	if metricsEnabled {
		r.Get("/metrics", promhttp.Handler().ServeHTTP)
	}

	return s
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
