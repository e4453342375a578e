package interfaces

import (
	"context"
	"io"

	"github.com/bobmcallan/folio/internal/models"
)

// PortfolioService produces dashboard and health views for a user.
type PortfolioService interface {
	// GetDashboard fetches, normalizes, aggregates and scores the user's
	// portfolio. Never fails outright: when all real sources are down the
	// result carries synthetic data with source "synthetic".
	GetDashboard(ctx context.Context, userID string) (*models.Dashboard, error)

	// GetHealth returns the health metrics for the user's portfolio.
	GetHealth(ctx context.Context, userID string) (*models.HealthMetrics, models.Provenance, error)
}

// HoldingsService owns the write path for raw holding records.
type HoldingsService interface {
	// UpsertHolding stores one raw holding record for a user.
	UpsertHolding(ctx context.Context, userID string, raw models.RawHoldingRecord) error

	// DeleteHolding removes a holding by ticker.
	DeleteHolding(ctx context.Context, userID, ticker string) error

	// ImportCSV parses CSV rows into raw holding records and stores them.
	// Malformed rows are skipped. Returns (imported, skipped).
	ImportCSV(ctx context.Context, userID string, r io.Reader) (int, int, error)
}

// ImportResult summarizes a CSV import run.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
