package interfaces

import (
	"context"

	"github.com/bobmcallan/folio/internal/models"
)

// StorageManager provides access to all storage areas.
type StorageManager interface {
	HoldingStore() HoldingStore
	InternalStore() InternalStore
	Close() error
}

// HoldingStore reads and writes raw holding documents. Users may be stored
// either as one document per holding or as a single per-user document with
// an embedded holdings list; GetHoldings flattens both shapes into the same
// record sequence.
type HoldingStore interface {
	// GetHoldings returns all raw holding records for a user, from both
	// document shapes.
	GetHoldings(ctx context.Context, userID string) ([]models.RawHoldingRecord, error)

	// PutHolding upserts one per-holding document.
	PutHolding(ctx context.Context, doc *models.HoldingDocument) error

	// DeleteHolding removes one per-holding document by ticker.
	DeleteHolding(ctx context.Context, userID, ticker string) error

	// SaveUserDocument writes the legacy per-user embedded document,
	// including its precomputed totalPortfolioValue. Write path only; the
	// read path never trusts the stored total.
	SaveUserDocument(ctx context.Context, doc *models.UserPortfolioDocument) error

	// GetUserDocument reads the legacy per-user document, or nil when the
	// user has none.
	GetUserDocument(ctx context.Context, userID string) (*models.UserPortfolioDocument, error)
}

// InternalStore persists system key-value records (schema version and the
// like).
type InternalStore interface {
	GetKeyValue(ctx context.Context, key string) (*models.InternalKeyValue, error)
	SetKeyValue(ctx context.Context, key, value string) error
}
