package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
	"github.com/bobmcallan/folio/internal/sources"
)

type fakeSource struct {
	name    string
	records []models.RawHoldingRecord
	err     error
}

func (f fakeSource) Name() string { return f.name }
func (f fakeSource) FetchHoldings(ctx context.Context, userID string) ([]models.RawHoldingRecord, error) {
	return f.records, f.err
}

func newTestService(srcs ...interfaces.HoldingsSource) *Service {
	logger := common.NewSilentLogger()
	sel := sources.NewSelector(logger, srcs)
	svc := NewService(sel, logger)
	svc.WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	})
	return svc
}

func TestGetDashboard(t *testing.T) {
	svc := newTestService(fakeSource{
		name: "primary-api",
		records: []models.RawHoldingRecord{
			{"symbol": "AAPL", "shares": 100.0, "total_value": 17500.0, "total_cost": 16625.0},
			{"symbol": "BND", "shares": 10.0, "total_value": 720.0, "total_cost": 750.0},
			{"shares": 3.0}, // malformed, silently excluded
		},
	})

	dash, err := svc.GetDashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, models.SourcePrimary, dash.Source)
	assert.Len(t, dash.Holdings, 2)
	assert.Equal(t, 18220.0, dash.TotalValue)
	assert.Equal(t, 2, dash.CategoriesCount)
	assert.Equal(t, 40.0, dash.DiversificationScore)
	assert.Equal(t, 60.0, dash.RiskScore)
	assert.True(t, dash.HealthScore >= 0 && dash.HealthScore <= 100)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), dash.AsOf)
}

func TestGetDashboardSyntheticFallback(t *testing.T) {
	down := errors.New("unreachable")
	svc := newTestService(
		fakeSource{name: "primary-api", err: down},
		fakeSource{name: "legacy-api", err: down},
		fakeSource{name: "docstore", err: down},
	)

	dash, err := svc.GetDashboard(context.Background(), "u1")
	require.NoError(t, err, "total source failure must degrade, not error")

	assert.Equal(t, models.SourceSynthetic, dash.Source)
	assert.NotEmpty(t, dash.Holdings)
	assert.Greater(t, dash.TotalValue, 0.0)
	assert.Equal(t, 5, dash.CategoriesCount)
	assert.True(t, dash.HealthScore >= 0 && dash.HealthScore <= 100)
}

func TestGetHealthMatchesDashboard(t *testing.T) {
	// Same portfolio, same score: both read paths share one scoring
	// implementation and must agree.
	src := fakeSource{
		name: "primary-api",
		records: []models.RawHoldingRecord{
			{"symbol": "AAPL", "shares": 100.0, "total_value": 17500.0, "total_cost": 16625.0},
			{"symbol": "BTC", "shares": 0.5, "total_value": 30000.0, "total_cost": 20000.0},
		},
	}

	svc := newTestService(src)

	dash, err := svc.GetDashboard(context.Background(), "u1")
	require.NoError(t, err)

	health, provenance, err := svc.GetHealth(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, dash.HealthScore, health.HealthScore)
	assert.Equal(t, dash.DiversificationScore, health.DiversificationScore)
	assert.Equal(t, dash.RiskScore, health.RiskScore)
	assert.Equal(t, dash.Badges, health.Badges)
	assert.Equal(t, dash.Source, provenance)
}

func TestGetDashboardEmptyPortfolio(t *testing.T) {
	svc := newTestService(fakeSource{name: "primary-api", records: []models.RawHoldingRecord{}})

	dash, err := svc.GetDashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, models.SourcePrimary, dash.Source)
	assert.Empty(t, dash.Holdings)
	assert.Zero(t, dash.TotalValue)
	assert.Zero(t, dash.CategoriesCount)
}
