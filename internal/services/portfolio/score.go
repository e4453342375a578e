package portfolio

import (
	"math"

	"github.com/bobmcallan/folio/internal/models"
)

// Badge labels. Rules are evaluated independently; zero or many may apply.
const (
	BadgeWellDiversified   = "Well Diversified"
	BadgeStrongPerformance = "Strong Performance"
	BadgeBalancedRisk      = "Balanced Risk"
	BadgeGettingStarted    = "Getting Started"
)

// Score derives the health metrics for a snapshot. Pure function over
// well-formed input; it raises no errors.
//
// The scores are deliberately coarse heuristics, preserved as shipped:
// diversification counts distinct categories (5+ saturates at 100), risk is
// modeled purely as its inverse, and the composite blends diversification,
// return and inverse risk 40/30/30. Each term is clamped before weighting so
// one extreme input (say a catastrophic loss) cannot drag the others
// negative.
func Score(snapshot models.PortfolioSnapshot) models.HealthMetrics {
	diversification := math.Min(float64(snapshot.DistinctCategories)*20, 100)
	risk := math.Max(0, 100-diversification)

	composite := diversification*0.4 +
		math.Max(0, 100+snapshot.TotalGainLossPercent)*0.3 +
		math.Max(0, 100-risk)*0.3

	health := int(math.Round(math.Min(math.Max(composite, 0), 100)))

	badges := []string{}
	if diversification > 80 {
		badges = append(badges, BadgeWellDiversified)
	}
	if snapshot.TotalGainLossPercent > 5 {
		badges = append(badges, BadgeStrongPerformance)
	}
	if risk <= 40 {
		badges = append(badges, BadgeBalancedRisk)
	}
	if n := len(snapshot.Holdings); n >= 1 && n <= 2 {
		badges = append(badges, BadgeGettingStarted)
	}

	return models.HealthMetrics{
		DiversificationScore: diversification,
		RiskScore:            risk,
		HealthScore:          health,
		Badges:               badges,
	}
}
