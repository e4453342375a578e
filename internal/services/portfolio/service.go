package portfolio

import (
	"context"
	"time"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
	"github.com/bobmcallan/folio/internal/normalize"
	"github.com/bobmcallan/folio/internal/sources"
)

// Service implements interfaces.PortfolioService. It is the single read
// path: fetch raw records through the source selector, normalize, aggregate
// and score.
type Service struct {
	selector *sources.Selector
	logger   *common.Logger
	now      func() time.Time
}

// NewService creates a new portfolio service
func NewService(selector *sources.Selector, logger *common.Logger) *Service {
	return &Service{
		selector: selector,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetDashboard fetches, normalizes, aggregates and scores the user's
// portfolio. The selector guarantees a usable record set (synthetic in the
// worst case), so this never returns a hard failure for source outages.
func (s *Service) GetDashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	result := s.selector.Fetch(ctx, userID)

	asOf := s.now()
	holdings := normalize.All(result.Records, asOf)
	snapshot := Aggregate(holdings)
	metrics := Score(snapshot)

	if result.Source.Synthetic() {
		s.logger.Warn().
			Str("user", userID).
			Msg("All portfolio sources unavailable, serving synthetic data")
	} else {
		s.logger.Debug().
			Str("user", userID).
			Str("source", string(result.Source)).
			Int("holdings", len(snapshot.Holdings)).
			Msg("Dashboard computed")
	}

	return &models.Dashboard{
		TotalValue:           snapshot.TotalValue,
		TotalCostBasis:       snapshot.TotalCostBasis,
		TotalGainLoss:        snapshot.TotalGainLoss,
		TotalGainLossPercent: snapshot.TotalGainLossPercent,
		Holdings:             snapshot.Holdings,
		CategoryBreakdown:    snapshot.CategoryBreakdown,
		CategoriesCount:      snapshot.DistinctCategories,
		DiversificationScore: metrics.DiversificationScore,
		RiskScore:            metrics.RiskScore,
		HealthScore:          metrics.HealthScore,
		Badges:               metrics.Badges,
		Source:               result.Source,
		AsOf:                 asOf,
	}, nil
}

// GetHealth returns the health metrics for the user's portfolio along with
// the provenance of the data they were computed from.
func (s *Service) GetHealth(ctx context.Context, userID string) (*models.HealthMetrics, models.Provenance, error) {
	result := s.selector.Fetch(ctx, userID)

	holdings := normalize.All(result.Records, s.now())
	metrics := Score(Aggregate(holdings))

	return &metrics, result.Source, nil
}

// Compile-time check
var _ interfaces.PortfolioService = (*Service)(nil)
