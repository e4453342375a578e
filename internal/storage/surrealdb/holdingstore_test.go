package surrealdb

import (
	"context"
	"testing"

	"github.com/bobmcallan/folio/internal/models"
)

func TestHoldingStorePutGetDelete(t *testing.T) {
	m := testManager(t)
	store := m.holdingStore
	ctx := context.Background()

	doc := &models.HoldingDocument{
		UserID: "u1",
		Ticker: "AAPL",
		Raw: models.RawHoldingRecord{
			"symbol":      "AAPL",
			"shares":      float64(100),
			"total_value": float64(17500),
		},
	}

	if err := store.PutHolding(ctx, doc); err != nil {
		t.Fatalf("PutHolding: %v", err)
	}

	records, err := store.GetHoldings(ctx, "u1")
	if err != nil {
		t.Fatalf("GetHoldings: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0]["symbol"] != "AAPL" {
		t.Errorf("symbol = %v, want AAPL", records[0]["symbol"])
	}

	if err := store.DeleteHolding(ctx, "u1", "AAPL"); err != nil {
		t.Fatalf("DeleteHolding: %v", err)
	}

	records, err = store.GetHoldings(ctx, "u1")
	if err != nil {
		t.Fatalf("GetHoldings after delete: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d after delete, want 0", len(records))
	}
}

func TestHoldingStoreUpsertReplaces(t *testing.T) {
	m := testManager(t)
	store := m.holdingStore
	ctx := context.Background()

	put := func(shares float64) {
		t.Helper()
		err := store.PutHolding(ctx, &models.HoldingDocument{
			UserID: "u1",
			Ticker: "VOO",
			Raw:    models.RawHoldingRecord{"symbol": "VOO", "shares": shares},
		})
		if err != nil {
			t.Fatalf("PutHolding: %v", err)
		}
	}

	put(10)
	put(25)

	records, err := store.GetHoldings(ctx, "u1")
	if err != nil {
		t.Fatalf("GetHoldings: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1 (upsert must replace)", len(records))
	}
	if shares, _ := records[0]["shares"].(float64); shares != 25 {
		t.Errorf("shares = %v, want 25", records[0]["shares"])
	}
}

func TestHoldingStoreScopesByUser(t *testing.T) {
	m := testManager(t)
	store := m.holdingStore
	ctx := context.Background()

	for _, userID := range []string{"alice", "bob"} {
		err := store.PutHolding(ctx, &models.HoldingDocument{
			UserID: userID,
			Ticker: "AAPL",
			Raw:    models.RawHoldingRecord{"symbol": "AAPL", "owner": userID},
		})
		if err != nil {
			t.Fatalf("PutHolding(%s): %v", userID, err)
		}
	}

	records, err := store.GetHoldings(ctx, "alice")
	if err != nil {
		t.Fatalf("GetHoldings: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0]["owner"] != "alice" {
		t.Errorf("owner = %v, want alice", records[0]["owner"])
	}
}

func TestHoldingStoreFlattensUserDocument(t *testing.T) {
	m := testManager(t)
	store := m.holdingStore
	ctx := context.Background()

	// Per-holding document plus a legacy embedded-list document for the
	// same user: GetHoldings must return both, flattened.
	err := store.PutHolding(ctx, &models.HoldingDocument{
		UserID: "u1",
		Ticker: "AAPL",
		Raw:    models.RawHoldingRecord{"symbol": "AAPL", "shares": float64(10)},
	})
	if err != nil {
		t.Fatalf("PutHolding: %v", err)
	}

	err = store.SaveUserDocument(ctx, &models.UserPortfolioDocument{
		UserID: "u1",
		Holdings: []models.RawHoldingRecord{
			{"Ticker": "VOO", "Qty": float64(5)},
			{"ticker": "BTC", "qty": float64(1)},
		},
		TotalPortfolioValue: 12345,
	})
	if err != nil {
		t.Fatalf("SaveUserDocument: %v", err)
	}

	records, err := store.GetHoldings(ctx, "u1")
	if err != nil {
		t.Fatalf("GetHoldings: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3 (both shapes flattened)", len(records))
	}
}

func TestHoldingStoreGetUserDocumentAbsent(t *testing.T) {
	m := testManager(t)
	store := m.holdingStore

	doc, err := store.GetUserDocument(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetUserDocument: %v", err)
	}
	if doc != nil {
		t.Errorf("doc = %+v, want nil for absent user", doc)
	}
}

func TestHoldingStoreEmptyUser(t *testing.T) {
	m := testManager(t)
	store := m.holdingStore

	records, err := store.GetHoldings(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetHoldings: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}
