// Package interfaces defines service contracts for Folio
package interfaces

import (
	"context"

	"github.com/bobmcallan/folio/internal/models"
)

// HoldingsSource fetches raw holding records for a user from one upstream.
// Implementations must honor ctx cancellation; the source selector bounds
// each call with a per-attempt timeout.
type HoldingsSource interface {
	// Name identifies the source in logs and provenance tags.
	Name() string

	// FetchHoldings returns the raw holding records for a user. An empty
	// slice with a nil error is a valid result (empty portfolio).
	FetchHoldings(ctx context.Context, userID string) ([]models.RawHoldingRecord, error)
}
