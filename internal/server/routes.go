package server

import (
	"net/http"

	"github.com/bobmcallan/folio/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)

	// Portfolio views
	mux.HandleFunc("/api/portfolio/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/portfolio/health", s.handlePortfolioHealth)

	// Holdings write path
	mux.HandleFunc("/api/holdings/import", s.handleHoldingsImport)
	mux.HandleFunc("/api/holdings/", s.handleHoldingDelete)
	mux.HandleFunc("/api/holdings", s.handleHoldingUpsert)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	cfg := s.app.Config
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":        cfg.Environment,
		"storage_address":    cfg.Storage.Address,
		"storage_namespace":  cfg.Storage.Namespace,
		"storage_database":   cfg.Storage.Database,
		"logging_level":      cfg.Logging.Level,
		"source_timeout":     cfg.Sources.GetAttemptTimeout().String(),
		"primary_configured": cfg.Sources.Primary.APIKey != "",
		"legacy_configured":  cfg.Sources.Legacy.APIKey != "",
	})
}
