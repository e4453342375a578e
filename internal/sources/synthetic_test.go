package sources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/folio/internal/normalize"
)

func TestSyntheticHoldingsDeterministic(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := SyntheticHoldings("u1", asOf)
	b := SyntheticHoldings("u1", asOf)

	assert.Equal(t, a, b, "synthetic data must be deterministic")
	assert.NotEmpty(t, a)
}

func TestSyntheticHoldingsAreInternallyConsistent(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records := SyntheticHoldings("u1", asOf)

	holdings := normalize.All(records, asOf)
	require.Len(t, holdings, len(records), "every synthetic record must normalize cleanly")

	categories := make(map[string]bool)
	for _, h := range holdings {
		assert.GreaterOrEqual(t, h.TotalValue, 0.0)
		assert.GreaterOrEqual(t, h.CostBasis, 0.0)
		assert.Equal(t, h.TotalValue-h.CostBasis, h.GainLoss)
		assert.False(t, h.Clamped, "synthetic data must not need clamping")
		categories[string(h.Category)] = true
	}

	assert.Len(t, categories, 5, "synthetic set should span five categories")
}
