// Package normalize maps raw holding documents onto the canonical Holding
// model. Stored holdings carry several historical field-name schemas; each
// canonical attribute resolves through an ordered key list so the mapping
// stays declarative and testable in isolation.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bobmcallan/folio/internal/models"
)

// Ordered field-resolution lists, one per canonical attribute. Earlier keys
// win. These cover every schema era observed in stored documents.
var (
	tickerKeys     = []string{"symbol", "ticker", "Ticker"}
	quantityKeys   = []string{"shares", "quantity", "Qty", "qty"}
	totalValueKeys = []string{"total_value", "Total_Value", "position_value"}
	priceKeys      = []string{"purchase_price", "current_price", "Current_Price", "price"}
	costBasisKeys  = []string{"total_cost", "cost_basis", "Cost_Basis"}
	categoryKeys   = []string{"asset_type", "category", "Category"}
	brokerageKeys  = []string{"brokerage", "Brokerage"}
	updatedKeys    = []string{"last_updated", "lastUpdated", "Last_Updated"}
)

// Normalize converts a raw holding record to a canonical Holding. Returns
// ok=false when the record has no usable ticker; such records are excluded
// from the snapshot rather than treated as errors. asOf is used for
// LastUpdated when the record carries no usable timestamp.
//
// Numeric fields that fail to parse are treated as absent so a holding never
// carries NaN into the aggregator. Negative inputs are clamped to zero and
// the holding is flagged.
func Normalize(raw models.RawHoldingRecord, asOf time.Time) (models.Holding, bool) {
	ticker := firstString(raw, tickerKeys)
	if ticker == "" {
		return models.Holding{}, false
	}

	var clamped bool
	clamp := func(v float64) float64 {
		if v < 0 {
			clamped = true
			return 0
		}
		return v
	}

	quantity := clamp(firstNumberDefault(raw, quantityKeys, 0))

	totalValue, haveTotal := firstNumber(raw, totalValueKeys)
	if haveTotal {
		totalValue = clamp(totalValue)
	}

	// A known total divided by units beats any stored price field: stored
	// prices are often stale purchase prices, not current market prices.
	var currentPrice float64
	if haveTotal && quantity > 0 {
		currentPrice = totalValue / quantity
	} else {
		currentPrice = clamp(firstNumberDefault(raw, priceKeys, 0))
	}

	if !haveTotal {
		totalValue = quantity * currentPrice
	}

	// Unknown cost basis defaults to the position's value, i.e. an explicit
	// zero-gain assumption rather than a spurious 100% gain.
	costBasis, haveCost := firstNumber(raw, costBasisKeys)
	if haveCost {
		costBasis = clamp(costBasis)
	} else {
		costBasis = totalValue
	}

	// Always recomputed, never trusted from the record.
	gainLoss := totalValue - costBasis
	gainLossPercent := 0.0
	if costBasis > 0 {
		gainLossPercent = gainLoss / costBasis * 100
	}

	category := models.ParseCategory(firstString(raw, categoryKeys))
	if category == "" {
		category = ClassifyTicker(ticker)
	}

	brokerage := firstString(raw, brokerageKeys)
	if brokerage == "" {
		brokerage = "Unknown"
	}

	lastUpdated := firstTime(raw, updatedKeys)
	if lastUpdated.IsZero() {
		lastUpdated = asOf
	}

	return models.Holding{
		Ticker:          ticker,
		Quantity:        quantity,
		CurrentPrice:    currentPrice,
		TotalValue:      totalValue,
		CostBasis:       costBasis,
		GainLoss:        gainLoss,
		GainLossPercent: gainLossPercent,
		Category:        category,
		Brokerage:       brokerage,
		LastUpdated:     lastUpdated,
		Clamped:         clamped,
	}, true
}

// All normalizes a record sequence, silently excluding records without a
// usable ticker. Input order is preserved.
func All(records []models.RawHoldingRecord, asOf time.Time) []models.Holding {
	holdings := make([]models.Holding, 0, len(records))
	for _, raw := range records {
		if h, ok := Normalize(raw, asOf); ok {
			holdings = append(holdings, h)
		}
	}
	return holdings
}

// firstString resolves the first non-empty string value among keys.
func firstString(raw models.RawHoldingRecord, keys []string) string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// firstNumber resolves the first parseable numeric value among keys.
func firstNumber(raw models.RawHoldingRecord, keys []string) (float64, bool) {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if f, ok := coerceNumber(v); ok {
			return f, true
		}
	}
	return 0, false
}

// firstNumberDefault resolves the first parseable numeric value among keys,
// falling back to def.
func firstNumberDefault(raw models.RawHoldingRecord, keys []string, def float64) float64 {
	if f, ok := firstNumber(raw, keys); ok {
		return f
	}
	return def
}

// firstTime resolves the first usable timestamp among keys. Accepts
// time.Time values and RFC3339 / date-only strings.
func firstTime(raw models.RawHoldingRecord, keys []string) time.Time {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case time.Time:
			if !t.IsZero() {
				return t
			}
		case string:
			if parsed, err := time.Parse(time.RFC3339, t); err == nil {
				return parsed
			}
			if parsed, err := time.Parse("2006-01-02", t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// coerceNumber converts document values to float64. Stored documents mix
// native numbers, integer types, json.Number and numeric strings. Values
// that parse to NaN or Inf are treated as absent.
func coerceNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
