package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathParam(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prefix string
		suffix string
		want   string
	}{
		{"simple", "/api/holdings/AAPL", "/api/holdings/", "", "AAPL"},
		{"with suffix", "/api/holdings/AAPL/history", "/api/holdings/", "/history", "AAPL"},
		{"no match", "/other/path", "/api/holdings/", "", ""},
		{"empty param", "/api/holdings/", "/api/holdings/", "", ""},
		{"trailing segment ignored", "/api/holdings/AAPL/extra", "/api/holdings/", "", "AAPL"},
		{"dotted ticker", "/api/holdings/BTC-USD", "/api/holdings/", "", "BTC-USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.want, PathParam(r, tt.prefix, tt.suffix))
		})
	}
}

func TestRequireMethod(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/holdings", nil)
	rec := httptest.NewRecorder()

	assert.True(t, RequireMethod(rec, r, http.MethodPost))

	rec = httptest.NewRecorder()
	assert.False(t, RequireMethod(rec, r, http.MethodGet, http.MethodHead))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, "not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestDecodeJSONBodyLimit(t *testing.T) {
	var v map[string]interface{}

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Body = nil
	rec := httptest.NewRecorder()
	assert.False(t, DecodeJSON(rec, r, &v))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
