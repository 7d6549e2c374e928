// Package yahoo implements the FX spot-rate provider on top of the Yahoo
// Finance chart API.
package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/rfalmeida/b3rank/pkg/config"
	"github.com/rfalmeida/b3rank/pkg/httputil"
	"github.com/rfalmeida/b3rank/pkg/logger"
)

// Client fetches the latest spot rate for one currency pair and caches
// it for a bounded duration. A stale rate is never served: after expiry
// the next caller re-fetches.
// SSOT: FX rate calls happen only in this package.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
	pair       string
	cacheTTL   time.Duration

	rateMu     sync.RWMutex
	rate       float64
	rateExpiry time.Time
}

// NewClient creates a new FX rate client
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    cfg.FX.BaseURL,
		pair:       cfg.FX.Pair,
		cacheTTL:   cfg.FX.CacheTTL,
	}
}

// chartResponse mirrors the slice of the Yahoo chart payload we consume
type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// SpotRate returns the latest close for the configured pair, refreshing
// the cache when expired.
func (c *Client) SpotRate(ctx context.Context) (float64, error) {
	c.rateMu.RLock()
	if c.rate > 0 && time.Now().Before(c.rateExpiry) {
		rate := c.rate
		c.rateMu.RUnlock()
		return rate, nil
	}
	c.rateMu.RUnlock()

	c.rateMu.Lock()
	defer c.rateMu.Unlock()

	// Another caller may have refreshed while we waited for the lock
	if c.rate > 0 && time.Now().Before(c.rateExpiry) {
		return c.rate, nil
	}

	rate, err := c.fetchRate(ctx)
	if err != nil {
		return 0, err
	}

	c.rate = rate
	c.rateExpiry = time.Now().Add(c.cacheTTL)

	c.logger.WithFields(map[string]interface{}{
		"pair": c.pair,
		"rate": rate,
	}).Info("FX rate refreshed")

	return rate, nil
}

// fetchRate pulls the latest daily close from the chart API
func (c *Client) fetchRate(ctx context.Context) (float64, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d",
		c.baseURL, url.PathEscape(c.pair))

	var payload chartResponse
	if err := c.httpClient.GetJSON(ctx, endpoint, &payload); err != nil {
		return 0, fmt.Errorf("fx rate request failed: %w", err)
	}

	if payload.Chart.Error != nil {
		return 0, fmt.Errorf("fx rate provider error: %s (%s)",
			payload.Chart.Error.Description, payload.Chart.Error.Code)
	}

	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return 0, fmt.Errorf("fx rate response has no quotes for %s", c.pair)
	}

	// Last non-null close of the session
	closes := payload.Chart.Result[0].Indicators.Quote[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] != nil && *closes[i] > 0 {
			return *closes[i], nil
		}
	}

	return 0, fmt.Errorf("fx rate response has no usable close for %s", c.pair)
}
