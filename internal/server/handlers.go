package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/domainforge/domainforge/internal/core/cache"
	"github.com/domainforge/domainforge/internal/core/score"
)

type suggestRequest struct {
	Prompt string `json:"prompt"`
	Count  int    `json:"count"`
}

type checkRequest struct {
	Domains []string `json:"domains"`
	Prompt  string   `json:"prompt"`
}

type scoreRequest struct {
	Domain string `json:"domain"`
	Prompt string `json:"prompt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		s.writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	result, err := s.service.Suggest(r.Context(), req.Prompt, req.Count)
	if err != nil {
		// Upstream generation failure is the only hard failure; candidates
		// degrade individually.
		s.logger.Error("suggest failed", zap.Error(err))
		s.writeError(w, http.StatusBadGateway, "name generation failed")
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Domains) == 0 {
		s.writeError(w, http.StatusBadRequest, "at least one domain is required")
		return
	}

	result, err := s.service.Check(r.Context(), req.Domains, req.Prompt)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Domain) == "" {
		s.writeError(w, http.StatusBadRequest, "domain is required")
		return
	}

	s.writeJSON(w, http.StatusOK, score.Score(req.Domain, req.Prompt))
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.cache.Stats(r.Context()))
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	ns := strings.TrimSpace(r.URL.Query().Get("namespace"))
	if ns == "" {
		if err := s.cache.ClearAll(r.Context()); err != nil {
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]string{"cleared": "all"})
		return
	}

	removed, err := s.cache.ClearNamespace(r.Context(), cache.Namespace(ns))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"cleared": ns, "keys": removed})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"cache":  s.cache.Stats(r.Context()),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Debug("encode response failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
