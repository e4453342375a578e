// Package holdings implements the write path for raw holding records:
// form-driven upserts, deletes and CSV import. It is the only owner of the
// per-user record set; the read/scoring path never mutates storage.
//
// The write path maintains the per-user portfolio document (holdings list
// plus a precomputed totalPortfolioValue for legacy consumers). The read
// path tolerates that total being stale and never trusts it over its own
// aggregation.
package holdings

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
	"github.com/bobmcallan/folio/internal/normalize"
	"github.com/bobmcallan/folio/internal/services/portfolio"
)

// Service implements interfaces.HoldingsService.
type Service struct {
	store  interfaces.HoldingStore
	logger *common.Logger
	now    func() time.Time
}

// NewService creates a new holdings service
func NewService(store interfaces.HoldingStore, logger *common.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// UpsertHolding validates one raw holding record and merges it into the
// user's portfolio document, replacing any existing record with the same
// ticker. Any migration-era per-holding document for the ticker is removed
// so reads do not see the position twice.
func (s *Service) UpsertHolding(ctx context.Context, userID string, raw models.RawHoldingRecord) error {
	h, ok := normalize.Normalize(raw, s.now())
	if !ok {
		return fmt.Errorf("holding record has no usable ticker")
	}

	if err := s.store.DeleteHolding(ctx, userID, h.Ticker); err != nil {
		return err
	}

	doc, err := s.loadDocument(ctx, userID)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range doc.Holdings {
		if tickerOf(existing, s.now()) == h.Ticker {
			doc.Holdings[i] = raw
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Holdings = append(doc.Holdings, raw)
	}

	if err := s.saveDocument(ctx, doc); err != nil {
		return err
	}

	s.logger.Info().
		Str("user", userID).
		Str("ticker", h.Ticker).
		Bool("replaced", replaced).
		Msg("Holding upserted")

	return nil
}

// DeleteHolding removes a holding by ticker from the user's portfolio
// document, along with any migration-era per-holding record for the same
// ticker.
func (s *Service) DeleteHolding(ctx context.Context, userID, ticker string) error {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return fmt.Errorf("ticker is required")
	}

	doc, err := s.loadDocument(ctx, userID)
	if err != nil {
		return err
	}

	kept := doc.Holdings[:0]
	removed := false
	for _, existing := range doc.Holdings {
		if tickerOf(existing, s.now()) == ticker {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	doc.Holdings = kept

	if err := s.store.DeleteHolding(ctx, userID, ticker); err != nil {
		return err
	}

	if removed {
		if err := s.saveDocument(ctx, doc); err != nil {
			return err
		}
	}

	s.logger.Info().
		Str("user", userID).
		Str("ticker", ticker).
		Bool("removed", removed).
		Msg("Holding deleted")

	return nil
}

// ImportCSV parses CSV rows into raw holding records and merges them into
// the user's portfolio document. The first row is a header; its column
// names become record keys, so any of the historical field-name variants
// work. Rows that fail to parse or normalize are skipped, not fatal.
// Returns (imported, skipped).
func (s *Service) ImportCSV(ctx context.Context, userID string, r io.Reader) (int, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, skip them below
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	doc, err := s.loadDocument(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	byTicker := make(map[string]int, len(doc.Holdings))
	for i, existing := range doc.Holdings {
		if tk := tickerOf(existing, s.now()); tk != "" {
			byTicker[tk] = i
		}
	}

	imported, skipped := 0, 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(row) != len(header) {
			skipped++
			continue
		}

		raw := make(models.RawHoldingRecord, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			raw[col] = strings.TrimSpace(row[i])
		}

		h, ok := normalize.Normalize(raw, s.now())
		if !ok {
			skipped++
			continue
		}

		if i, exists := byTicker[h.Ticker]; exists {
			doc.Holdings[i] = raw
		} else {
			byTicker[h.Ticker] = len(doc.Holdings)
			doc.Holdings = append(doc.Holdings, raw)
		}
		imported++
	}

	if imported > 0 {
		if err := s.saveDocument(ctx, doc); err != nil {
			return 0, skipped, err
		}
	}

	s.logger.Info().
		Str("user", userID).
		Int("imported", imported).
		Int("skipped", skipped).
		Msg("CSV import complete")

	return imported, skipped, nil
}

// loadDocument reads the user's portfolio document, or starts a fresh one.
func (s *Service) loadDocument(ctx context.Context, userID string) (*models.UserPortfolioDocument, error) {
	doc, err := s.store.GetUserDocument(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio document: %w", err)
	}
	if doc == nil {
		doc = &models.UserPortfolioDocument{UserID: userID}
	}
	return doc, nil
}

// saveDocument recomputes the precomputed total and persists the document.
func (s *Service) saveDocument(ctx context.Context, doc *models.UserPortfolioDocument) error {
	snapshot := portfolio.Aggregate(normalize.All(doc.Holdings, s.now()))
	doc.TotalPortfolioValue = snapshot.TotalValue
	doc.UpdatedAt = s.now().UTC()

	if err := s.store.SaveUserDocument(ctx, doc); err != nil {
		return fmt.Errorf("failed to save portfolio document: %w", err)
	}
	return nil
}

// tickerOf resolves the canonical ticker of a raw record, or "".
func tickerOf(raw models.RawHoldingRecord, asOf time.Time) string {
	if h, ok := normalize.Normalize(raw, asOf); ok {
		return h.Ticker
	}
	return ""
}

// Compile-time check
var _ interfaces.HoldingsService = (*Service)(nil)
