package normalize

import (
	"strings"

	"github.com/bobmcallan/folio/internal/models"
)

// Closed ticker lists for the fallback classifier. Deliberately not a
// general classifier: unlisted tickers always fall through to Stock.
var bondETFTickers = map[string]struct{}{
	"BND":  {},
	"AGG":  {},
	"TLT":  {},
	"IEF":  {},
	"SHY":  {},
	"LQD":  {},
	"HYG":  {},
	"TIP":  {},
	"MUB":  {},
	"VTEB": {},
	"BNDX": {},
	"SCHZ": {},
	"GOVT": {},
}

var cryptoTickers = map[string]struct{}{
	"BTC":   {},
	"ETH":   {},
	"SOL":   {},
	"ADA":   {},
	"DOGE":  {},
	"DOT":   {},
	"AVAX":  {},
	"MATIC": {},
	"LINK":  {},
	"XRP":   {},
	"LTC":   {},
	"BCH":   {},
	"UNI":   {},
	"ATOM":  {},
	"XLM":   {},
}

// ClassifyTicker derives a category from the ticker alone. Used only when a
// record carries no explicit category field.
func ClassifyTicker(ticker string) models.Category {
	if strings.HasPrefix(ticker, "BOND_CASH") {
		return models.CategoryBond
	}
	if strings.HasPrefix(ticker, "CASH") || strings.HasPrefix(ticker, "Cash") {
		return models.CategoryCash
	}

	upper := strings.ToUpper(ticker)
	if _, ok := bondETFTickers[upper]; ok {
		return models.CategoryBond
	}
	if _, ok := cryptoTickers[upper]; ok {
		return models.CategoryCrypto
	}
	if strings.HasSuffix(upper, "-USD") || strings.HasSuffix(upper, "USD") {
		return models.CategoryCrypto
	}

	return models.CategoryStock
}
