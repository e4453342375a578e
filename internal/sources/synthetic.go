package sources

import (
	"time"

	"github.com/bobmcallan/folio/internal/models"
)

// SyntheticHoldings manufactures the deterministic fallback holding set
// served when every real source is unreachable. The set is complete and
// internally consistent: it normalizes cleanly, spans five categories and
// satisfies the same invariants as real data, so downstream aggregation and
// scoring behave identically. Values are fixed so repeated failures render
// a stable demo view rather than flickering numbers.
func SyntheticHoldings(userID string, asOf time.Time) []models.RawHoldingRecord {
	updated := asOf.UTC().Format(time.RFC3339)

	return []models.RawHoldingRecord{
		{
			"symbol":       "AAPL",
			"shares":       25.0,
			"total_value":  4375.0,
			"total_cost":   4000.0,
			"asset_type":   "Stock",
			"brokerage":    "Demo",
			"last_updated": updated,
		},
		{
			"symbol":       "VOO",
			"shares":       12.0,
			"total_value":  5040.0,
			"total_cost":   4800.0,
			"asset_type":   "ETF",
			"brokerage":    "Demo",
			"last_updated": updated,
		},
		{
			"symbol":       "BND",
			"shares":       40.0,
			"total_value":  2880.0,
			"total_cost":   3000.0,
			"asset_type":   "Bond",
			"brokerage":    "Demo",
			"last_updated": updated,
		},
		{
			"symbol":       "BTC-USD",
			"shares":       0.05,
			"total_value":  3100.0,
			"total_cost":   2500.0,
			"asset_type":   "Crypto",
			"brokerage":    "Demo",
			"last_updated": updated,
		},
		{
			"symbol":       "CASH_USD",
			"shares":       1500.0,
			"total_value":  1500.0,
			"total_cost":   1500.0,
			"asset_type":   "Cash",
			"brokerage":    "Demo",
			"last_updated": updated,
		},
	}
}
