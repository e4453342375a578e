// Package legacyapi provides a client for the pre-migration holdings API,
// kept as the secondary portfolio data source. It serves one document per
// user with an embedded holdings list in the old field-name schema; the
// client flattens that document into the same record sequence the primary
// source produces.
package legacyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client implements interfaces.HoldingsSource against the legacy API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Test hook.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new legacy holdings API client
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name identifies this source in logs and provenance.
func (c *Client) Name() string { return "legacy-api" }

// legacyDocument is the per-user document the legacy API serves. The
// precomputed totalPortfolioValue is decoded but deliberately discarded:
// it is written by the management UI and can be stale.
type legacyDocument struct {
	UserID              string                    `json:"user_id"`
	Holdings            []models.RawHoldingRecord `json:"holdings"`
	TotalPortfolioValue float64                   `json:"totalPortfolioValue"`
}

// FetchHoldings returns the user's raw holding records flattened out of the
// legacy per-user document.
func (c *Client) FetchHoldings(ctx context.Context, userID string) ([]models.RawHoldingRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("user", userID)
	reqURL := fmt.Sprintf("%s/portfolio?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("legacy API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("legacy API error: status %d: %s", resp.StatusCode, string(body))
	}

	var doc legacyDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode legacy portfolio document: %w", err)
	}

	c.logger.Debug().
		Str("user", userID).
		Int("records", len(doc.Holdings)).
		Msg("Fetched holdings from legacy API")

	return doc.Holdings, nil
}

// Compile-time check
var _ interfaces.HoldingsSource = (*Client)(nil)
