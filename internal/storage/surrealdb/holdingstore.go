package surrealdb

import (
	"context"
	"fmt"
	"time"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// HoldingStore persists raw holding documents. Two shapes coexist from
// different migration eras: one "holding" record per position, and one
// "user_portfolio" record per user embedding the full holdings list.
// GetHoldings flattens both into a single record sequence.
type HoldingStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

func NewHoldingStore(db *surrealdb.DB, logger *common.Logger) *HoldingStore {
	return &HoldingStore{
		db:     db,
		logger: logger,
	}
}

func holdingID(userID, ticker string) string {
	return userID + "_" + ticker
}

func (s *HoldingStore) GetHoldings(ctx context.Context, userID string) ([]models.RawHoldingRecord, error) {
	var records []models.RawHoldingRecord

	// Per-holding documents first, in stored order.
	sql := "SELECT * FROM holding WHERE user_id = $user_id ORDER BY updated_at ASC"
	vars := map[string]any{"user_id": userID}

	results, err := surrealdb.Query[[]models.HoldingDocument](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	if results != nil && len(*results) > 0 {
		for _, doc := range (*results)[0].Result {
			if doc.Raw != nil {
				records = append(records, doc.Raw)
			}
		}
	}

	// Then the legacy embedded-list document, flattened into the same
	// sequence. Its precomputed total is ignored.
	userDoc, err := s.GetUserDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	if userDoc != nil {
		records = append(records, userDoc.Holdings...)
	}

	return records, nil
}

func (s *HoldingStore) PutHolding(ctx context.Context, doc *models.HoldingDocument) error {
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now().UTC()
	}

	id := holdingID(doc.UserID, doc.Ticker)
	sql := "UPSERT $rid CONTENT $record"
	vars := map[string]any{"rid": surrealmodels.NewRecordID("holding", id), "record": doc}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[[]models.HoldingDocument](ctx, s.db, sql, vars)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("failed to put holding after retries: %w", lastErr)
}

func (s *HoldingStore) DeleteHolding(ctx context.Context, userID, ticker string) error {
	_, err := surrealdb.Delete[models.HoldingDocument](ctx, s.db, surrealmodels.NewRecordID("holding", holdingID(userID, ticker)))
	if err != nil && !isNotFoundError(err) {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	return nil
}

func (s *HoldingStore) SaveUserDocument(ctx context.Context, doc *models.UserPortfolioDocument) error {
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now().UTC()
	}

	sql := "UPSERT $rid CONTENT $record"
	vars := map[string]any{"rid": surrealmodels.NewRecordID("user_portfolio", doc.UserID), "record": doc}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[[]models.UserPortfolioDocument](ctx, s.db, sql, vars)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("failed to save user portfolio document after retries: %w", lastErr)
}

func (s *HoldingStore) GetUserDocument(ctx context.Context, userID string) (*models.UserPortfolioDocument, error) {
	doc, err := surrealdb.Select[models.UserPortfolioDocument](ctx, s.db, surrealmodels.NewRecordID("user_portfolio", userID))
	if err != nil {
		if isNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select user portfolio document: %w", err)
	}
	if doc == nil || doc.UserID == "" {
		return nil, nil
	}
	return doc, nil
}

// Compile-time check
var _ interfaces.HoldingStore = (*HoldingStore)(nil)
