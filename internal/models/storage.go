package models

import "time"

// HoldingDocument is the per-holding document shape: one record per holding,
// keyed by user and ticker. Raw preserves whatever field names the writer
// used — normalization happens on read.
type HoldingDocument struct {
	UserID    string           `json:"user_id"`
	Ticker    string           `json:"ticker"`
	Raw       RawHoldingRecord `json:"raw"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// UserPortfolioDocument is the legacy per-user document shape: a single
// document embedding the full holdings list. TotalPortfolioValue is a
// precomputed total written by the management UI — it can be stale and the
// read path never trusts it over its own aggregation.
type UserPortfolioDocument struct {
	UserID              string             `json:"user_id"`
	Holdings            []RawHoldingRecord `json:"holdings"`
	TotalPortfolioValue float64            `json:"totalPortfolioValue,omitempty"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// InternalKeyValue is a system configuration key-value pair.
type InternalKeyValue struct {
	Key      string    `json:"key"`
	Value    string    `json:"value"`
	DateTime time.Time `json:"datetime"`
}
