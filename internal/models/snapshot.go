package models

import "time"

// CategorySlice summarizes one category's share of the portfolio.
type CategorySlice struct {
	AbsoluteValue  float64 `json:"absolute_value"`
	PercentOfTotal float64 `json:"percent_of_total"`
}

// PortfolioSnapshot is the aggregate view over one user's normalized
// holdings. Recomputed on every request — never persisted.
type PortfolioSnapshot struct {
	Holdings             []Holding                  `json:"holdings"`
	TotalValue           float64                    `json:"total_value"`
	TotalCostBasis       float64                    `json:"total_cost_basis"`
	TotalGainLoss        float64                    `json:"total_gain_loss"`
	TotalGainLossPercent float64                    `json:"total_gain_loss_percent"`
	CategoryBreakdown    map[Category]CategorySlice `json:"category_breakdown"`
	DistinctCategories   int                        `json:"categories_count"`
}

// HealthMetrics holds the diversification/risk/health scores derived from a
// snapshot. All scores are in [0,100]. The health score is a coarse weighted
// heuristic, not a financial model.
type HealthMetrics struct {
	DiversificationScore float64  `json:"diversification_score"`
	RiskScore            float64  `json:"risk_score"`
	HealthScore          int      `json:"health_score"`
	Badges               []string `json:"badges"`
}

// Provenance identifies which data source produced a snapshot.
type Provenance string

const (
	SourcePrimary   Provenance = "primary"
	SourceSecondary Provenance = "secondary"
	SourceTertiary  Provenance = "tertiary"
	SourceSynthetic Provenance = "synthetic"
)

// Synthetic reports whether the data was manufactured by the fallback path.
func (p Provenance) Synthetic() bool { return p == SourceSynthetic }

// Dashboard is the JSON payload consumed by the web UI. Field names are a
// public contract — existing UI code keys off this exact casing.
type Dashboard struct {
	TotalValue           float64                    `json:"total_value"`
	TotalCostBasis       float64                    `json:"total_cost_basis"`
	TotalGainLoss        float64                    `json:"total_gain_loss"`
	TotalGainLossPercent float64                    `json:"total_gain_loss_percent"`
	Holdings             []Holding                  `json:"holdings"`
	CategoryBreakdown    map[Category]CategorySlice `json:"category_breakdown"`
	CategoriesCount      int                        `json:"categories_count"`
	DiversificationScore float64                    `json:"diversification_score"`
	RiskScore            float64                    `json:"risk_score"`
	HealthScore          int                        `json:"health_score"`
	Badges               []string                   `json:"badges"`
	Source               Provenance                 `json:"source"`
	AsOf                 time.Time                  `json:"as_of"`
}
