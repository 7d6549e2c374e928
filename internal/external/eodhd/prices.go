package eodhd

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/rfalmeida/b3rank/internal/contracts"
)

// FetchDailyCloses fetches the daily close series for a ticker over the
// inclusive date range, sorted ascending by date.
//
// A response with fewer observations than the configured minimum is
// treated as entirely absent: the series is nil and no error is returned,
// so the caller computes no momentum for the ticker.
func (c *Client) FetchDailyCloses(ctx context.Context, ticker string, from, to time.Time) (contracts.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/api/eod/%s?api_token=%s&from=%s&to=%s&fmt=json",
		c.baseURL, url.PathEscape(ticker), url.QueryEscape(c.apiToken),
		from.Format("2006-01-02"), to.Format("2006-01-02"))

	var entries []eodEntry
	if err := c.httpClient.GetJSON(ctx, endpoint, &entries); err != nil {
		return nil, fmt.Errorf("eod request failed: %w", err)
	}

	if len(entries) < c.minObservations {
		c.logger.WithFields(map[string]interface{}{
			"ticker": ticker,
			"count":  len(entries),
			"min":    c.minObservations,
		}).Debug("Price series too short, treating as absent")
		return nil, nil
	}

	series := make(contracts.PriceSeries, 0, len(entries))
	for _, e := range entries {
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		series = append(series, contracts.PricePoint{Date: date, Close: e.Close})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"count":  len(series),
	}).Debug("Fetched prices")

	return series, nil
}
