package sources

import (
	"context"

	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
)

// StoreSource adapts the document store's holding store as the tertiary
// source: a direct read of the raw documents, bypassing both APIs.
type StoreSource struct {
	store interfaces.HoldingStore
}

// NewStoreSource creates a source backed by the document store.
func NewStoreSource(store interfaces.HoldingStore) *StoreSource {
	return &StoreSource{store: store}
}

// Name identifies this source in logs and provenance.
func (s *StoreSource) Name() string { return "docstore" }

// FetchHoldings reads the user's raw holding records directly from the
// document store. The store flattens both document shapes.
func (s *StoreSource) FetchHoldings(ctx context.Context, userID string) ([]models.RawHoldingRecord, error) {
	return s.store.GetHoldings(ctx, userID)
}

// Compile-time check
var _ interfaces.HoldingsSource = (*StoreSource)(nil)
