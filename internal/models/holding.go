// Package models defines data structures for Folio
package models

import "time"

// Category is the coarse asset classification used for diversification scoring.
type Category string

const (
	CategoryStock  Category = "Stock"
	CategoryETF    Category = "ETF"
	CategoryBond   Category = "Bond"
	CategoryCrypto Category = "Crypto"
	CategoryCash   Category = "Cash"
	CategoryOther  Category = "Other"
)

// ParseCategory maps a free-text category value to a canonical Category.
// Unrecognized non-empty values map to CategoryOther; empty maps to "".
func ParseCategory(s string) Category {
	switch s {
	case "":
		return ""
	case "Stock", "stock", "STOCK", "equity", "Equity", "stocks":
		return CategoryStock
	case "ETF", "etf", "Etf", "fund", "Fund":
		return CategoryETF
	case "Bond", "bond", "BOND", "bonds", "fixed_income", "Fixed Income":
		return CategoryBond
	case "Crypto", "crypto", "CRYPTO", "cryptocurrency", "Cryptocurrency":
		return CategoryCrypto
	case "Cash", "cash", "CASH":
		return CategoryCash
	default:
		return CategoryOther
	}
}

// TotalPortfolioTicker is a legacy sentinel row some stored documents carry
// in place of real positions. It holds a precomputed portfolio total from
// the write path. The aggregator always drops it and recomputes totals from
// the actual holdings.
const TotalPortfolioTicker = "Total Portfolio"

// RawHoldingRecord is an untyped holding document as stored. Field names vary
// by data source and migration era (e.g. share count may appear as "shares",
// "quantity", "Qty", or "qty"). This is the untrusted input boundary.
type RawHoldingRecord map[string]any

// Holding is a normalized portfolio position. Immutable once constructed;
// all monetary fields are non-negative and internally consistent
// (GainLoss == TotalValue - CostBasis, always recomputed).
type Holding struct {
	Ticker          string    `json:"ticker"`
	Quantity        float64   `json:"quantity"`
	CurrentPrice    float64   `json:"current_price"`
	TotalValue      float64   `json:"total_value"`
	CostBasis       float64   `json:"cost_basis"`
	GainLoss        float64   `json:"gain_loss"`
	GainLossPercent float64   `json:"gain_loss_percent"`
	Category        Category  `json:"category"`
	Brokerage       string    `json:"brokerage"`
	LastUpdated     time.Time `json:"last_updated"`

	// Clamped is set when a raw value would have been negative and was
	// clamped to zero during normalization.
	Clamped bool `json:"clamped,omitempty"`
}

// AsRaw converts a normalized holding back to the canonical raw document
// shape used by the write path. Normalizing the result yields the same
// holding (normalization is idempotent over canonical records).
func (h Holding) AsRaw() RawHoldingRecord {
	return RawHoldingRecord{
		"symbol":        h.Ticker,
		"shares":        h.Quantity,
		"current_price": h.CurrentPrice,
		"total_value":   h.TotalValue,
		"total_cost":    h.CostBasis,
		"asset_type":    string(h.Category),
		"brokerage":     h.Brokerage,
	}
}
