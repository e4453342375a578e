package server

import (
	"fmt"
	"net/http"

	"github.com/bobmcallan/folio/internal/common"
)

// --- Portfolio handlers ---

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	userID := common.ResolveUserID(r.Context())

	dashboard, err := s.app.PortfolioService.GetDashboard(r.Context(), userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error building dashboard: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, dashboard)
}

func (s *Server) handlePortfolioHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	userID := common.ResolveUserID(r.Context())

	health, source, err := s.app.PortfolioService.GetHealth(r.Context(), userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error scoring portfolio: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"health": health,
		"source": source,
	})
}
