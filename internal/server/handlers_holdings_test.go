package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
)

func TestHandleHoldingUpsert(t *testing.T) {
	hs := &fakeHoldingsService{}
	srv := newTestServer(&fakePortfolioService{}, hs)

	body := `{"symbol":"AAPL","shares":100,"total_value":17500}`
	req := httptest.NewRequest(http.MethodPost, "/api/holdings", strings.NewReader(body))
	req.Header.Set("X-Folio-User-ID", "alice")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, hs.upserts, 1)
	assert.Equal(t, "AAPL", hs.upserts[0]["symbol"])
	assert.Equal(t, "alice", hs.lastUser)
}

func TestHandleHoldingUpsertInvalidJSON(t *testing.T) {
	hs := &fakeHoldingsService{}
	srv := newTestServer(&fakePortfolioService{}, hs)

	req := httptest.NewRequest(http.MethodPost, "/api/holdings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, hs.upserts)
}

func TestHandleHoldingUpsertServiceError(t *testing.T) {
	hs := &fakeHoldingsService{err: fmt.Errorf("holding record has no usable ticker")}
	srv := newTestServer(&fakePortfolioService{}, hs)

	req := httptest.NewRequest(http.MethodPost, "/api/holdings", strings.NewReader(`{"shares":10}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no usable ticker")
}

func TestHandleHoldingDelete(t *testing.T) {
	hs := &fakeHoldingsService{}
	srv := newTestServer(&fakePortfolioService{}, hs)

	req := httptest.NewRequest(http.MethodDelete, "/api/holdings/AAPL", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"AAPL"}, hs.deletes)
	assert.Equal(t, common.DefaultUserID, hs.lastUser)
}

func TestHandleHoldingDeleteMissingTicker(t *testing.T) {
	hs := &fakeHoldingsService{}
	srv := newTestServer(&fakePortfolioService{}, hs)

	req := httptest.NewRequest(http.MethodDelete, "/api/holdings/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, hs.deletes)
}

func TestHandleHoldingsImport(t *testing.T) {
	hs := &fakeHoldingsService{imported: 3, skipped: 1}
	srv := newTestServer(&fakePortfolioService{}, hs)

	csvBody := "symbol,shares,total_value\nAAPL,100,17500\n"
	req := httptest.NewRequest(http.MethodPost, "/api/holdings/import", strings.NewReader(csvBody))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result interfaces.ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.Skipped)
}

func TestHandleHoldingsImportError(t *testing.T) {
	hs := &fakeHoldingsService{err: fmt.Errorf("failed to read CSV header: EOF")}
	srv := newTestServer(&fakePortfolioService{}, hs)

	req := httptest.NewRequest(http.MethodPost, "/api/holdings/import", strings.NewReader(""))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHoldingsImportMethodNotAllowed(t *testing.T) {
	srv := newTestServer(&fakePortfolioService{}, &fakeHoldingsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/holdings/import", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
