// Package sources implements the resilient multi-source fetch strategy for
// portfolio data: try each configured source in priority order under a
// bounded per-attempt timeout, and degrade to deterministic synthetic data
// when every real source fails. The presentation layer is never shown a
// fully broken view.
package sources

import (
	"context"
	"time"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
)

// DefaultAttemptTimeout bounds each source attempt.
const DefaultAttemptTimeout = 2 * time.Second

// Result is the terminal state of a fetch: the selected records plus the
// provenance tag the presentation layer uses to decide whether to show a
// "demo data" notice.
type Result struct {
	Records []models.RawHoldingRecord
	Source  models.Provenance
}

// Selector tries sources in priority order and falls back to synthetic
// data. Attempts are sequential and stateless, with no retry within an
// attempt; the first successful result in priority order wins.
type Selector struct {
	sources []interfaces.HoldingsSource
	timeout time.Duration
	logger  *common.Logger
	now     func() time.Time
}

// SelectorOption configures the selector
type SelectorOption func(*Selector)

// WithAttemptTimeout sets the per-attempt timeout budget.
func WithAttemptTimeout(timeout time.Duration) SelectorOption {
	return func(s *Selector) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithClock overrides the clock used for synthetic data timestamps.
func WithClock(now func() time.Time) SelectorOption {
	return func(s *Selector) {
		s.now = now
	}
}

// NewSelector creates a selector over sources in priority order: the first
// is "primary", the second "secondary", the third "tertiary".
func NewSelector(logger *common.Logger, srcs []interfaces.HoldingsSource, opts ...SelectorOption) *Selector {
	s := &Selector{
		sources: srcs,
		timeout: DefaultAttemptTimeout,
		logger:  logger,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

var provenanceByPriority = []models.Provenance{
	models.SourcePrimary,
	models.SourceSecondary,
	models.SourceTertiary,
}

// Fetch walks the sources in priority order and returns the first usable
// result. The synthetic fallback is always reachable and always succeeds,
// so Fetch never fails.
func (s *Selector) Fetch(ctx context.Context, userID string) *Result {
	for i, src := range s.sources {
		records, err := s.attempt(ctx, src, userID)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("source", src.Name()).
				Str("user", userID).
				Msg("Portfolio source failed, advancing to next")
			continue
		}

		provenance := models.SourceTertiary
		if i < len(provenanceByPriority) {
			provenance = provenanceByPriority[i]
		}
		return &Result{Records: records, Source: provenance}
	}

	return &Result{
		Records: SyntheticHoldings(userID, s.now()),
		Source:  models.SourceSynthetic,
	}
}

// attempt runs a single bounded fetch against one source. The fetch runs in
// its own goroutine writing to a buffered channel so a result that arrives
// after the timeout is discarded rather than leaking the goroutine's send.
func (s *Selector) attempt(ctx context.Context, src interfaces.HoldingsSource, userID string) ([]models.RawHoldingRecord, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type outcome struct {
		records []models.RawHoldingRecord
		err     error
	}

	done := make(chan outcome, 1)
	go func() {
		records, err := src.FetchHoldings(attemptCtx, userID)
		done <- outcome{records: records, err: err}
	}()

	select {
	case out := <-done:
		return out.records, out.err
	case <-attemptCtx.Done():
		return nil, attemptCtx.Err()
	}
}
