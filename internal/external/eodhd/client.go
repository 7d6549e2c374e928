// Package eodhd implements the EODHD fundamentals and end-of-day price
// provider used by the ranking pipeline.
package eodhd

import (
	"github.com/rfalmeida/b3rank/pkg/config"
	"github.com/rfalmeida/b3rank/pkg/httputil"
	"github.com/rfalmeida/b3rank/pkg/logger"
)

// Client handles communication with the EODHD API
// SSOT: EODHD calls happen only in this package.
type Client struct {
	httpClient      *httputil.Client
	logger          *logger.Logger
	baseURL         string
	apiToken        string
	minObservations int
}

// NewClient creates a new EODHD client
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient:      httpClient,
		logger:          log,
		baseURL:         cfg.EODHD.BaseURL,
		apiToken:        cfg.EODHD.APIToken,
		minObservations: cfg.Pipeline.MinPriceObservations,
	}
}
