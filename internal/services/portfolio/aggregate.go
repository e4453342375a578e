// Package portfolio provides the portfolio aggregation and health-scoring
// engine. Every call site (dashboard, health endpoint, synthetic fallback)
// goes through these shared functions so the same portfolio always produces
// the same score.
package portfolio

import "github.com/bobmcallan/folio/internal/models"

// Aggregate folds a sequence of normalized holdings into portfolio totals
// and a category breakdown. Pure function; input order is preserved in the
// snapshot and an empty input yields a zero-valued snapshot, not an error.
//
// Legacy "Total Portfolio" sentinel rows are dropped: totals are always
// recomputed from the real holdings, never taken from a stored precomputed
// row that may have drifted from the positions it claims to summarize.
func Aggregate(holdings []models.Holding) models.PortfolioSnapshot {
	kept := make([]models.Holding, 0, len(holdings))
	for _, h := range holdings {
		if h.Ticker == models.TotalPortfolioTicker {
			continue
		}
		kept = append(kept, h)
	}

	var totalValue, totalCost float64
	categoryValues := make(map[models.Category]float64)

	for _, h := range kept {
		totalValue += h.TotalValue
		totalCost += h.CostBasis
		categoryValues[h.Category] += h.TotalValue
	}

	// Recomputed at the portfolio level rather than summing per-holding
	// gains, so the totals stay mutually consistent.
	totalGainLoss := totalValue - totalCost
	totalGainLossPercent := 0.0
	if totalCost > 0 {
		totalGainLossPercent = totalGainLoss / totalCost * 100
	}

	breakdown := make(map[models.Category]models.CategorySlice, len(categoryValues))
	for category, value := range categoryValues {
		percent := 0.0
		if totalValue > 0 {
			percent = value / totalValue * 100
		}
		breakdown[category] = models.CategorySlice{
			AbsoluteValue:  value,
			PercentOfTotal: percent,
		}
	}

	return models.PortfolioSnapshot{
		Holdings:             kept,
		TotalValue:           totalValue,
		TotalCostBasis:       totalCost,
		TotalGainLoss:        totalGainLoss,
		TotalGainLossPercent: totalGainLossPercent,
		CategoryBreakdown:    breakdown,
		DistinctCategories:   len(categoryValues),
	}
}
