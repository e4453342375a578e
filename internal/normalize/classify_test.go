package normalize

import (
	"testing"

	"github.com/bobmcallan/folio/internal/models"
)

func TestClassifyTicker(t *testing.T) {
	tests := []struct {
		ticker string
		want   models.Category
	}{
		{"CASH_USD", models.CategoryCash},
		{"Cash Account", models.CategoryCash},
		{"BOND_CASH_RESERVE", models.CategoryBond},
		{"BND", models.CategoryBond},
		{"agg", models.CategoryBond},
		{"TLT", models.CategoryBond},
		{"BTC", models.CategoryCrypto},
		{"eth", models.CategoryCrypto},
		{"BTC-USD", models.CategoryCrypto},
		{"SOLUSD", models.CategoryCrypto},
		{"AAPL", models.CategoryStock},
		{"VOO", models.CategoryStock},  // not in the closed bond list
		{"SPY", models.CategoryStock},  // closed-list heuristic, equity ETFs fall through
		{"ZZZZ", models.CategoryStock}, // unlisted always falls through
	}

	for _, tt := range tests {
		if got := ClassifyTicker(tt.ticker); got != tt.want {
			t.Errorf("ClassifyTicker(%q) = %q, want %q", tt.ticker, got, tt.want)
		}
	}
}
