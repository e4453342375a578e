package server

import (
	"fmt"
	"net/http"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
)

// --- Holdings handlers ---

// handleHoldingUpsert handles POST /api/holdings. The body is a raw holding
// record; any of the historical field-name variants are accepted.
func (s *Server) handleHoldingUpsert(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var raw models.RawHoldingRecord
	if !DecodeJSON(w, r, &raw) {
		return
	}

	userID := common.ResolveUserID(r.Context())

	if err := s.app.HoldingsService.UpsertHolding(r.Context(), userID, raw); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Error saving holding: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleHoldingDelete handles DELETE /api/holdings/{ticker}.
func (s *Server) handleHoldingDelete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	ticker := PathParam(r, "/api/holdings/", "")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required in path")
		return
	}

	userID := common.ResolveUserID(r.Context())

	if err := s.app.HoldingsService.DeleteHolding(r.Context(), userID, ticker); err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error deleting holding: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "ticker": ticker})
}

// handleHoldingsImport handles POST /api/holdings/import. The body is CSV
// with a header row; rows that fail to parse are skipped, not fatal.
func (s *Server) handleHoldingsImport(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if r.Body == nil {
		WriteError(w, http.StatusBadRequest, "Request body is required")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 8<<20) // 8MB limit

	userID := common.ResolveUserID(r.Context())

	imported, skipped, err := s.app.HoldingsService.ImportCSV(r.Context(), userID, r.Body)
	if err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Import failed: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, interfaces.ImportResult{Imported: imported, Skipped: skipped})
}
