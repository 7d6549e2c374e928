package contracts

import (
	"context"
	"time"
)

// FundamentalsProvider fetches quarterly fundamentals for one ticker
type FundamentalsProvider interface {
	FetchFundamentals(ctx context.Context, ticker string) (*FundamentalsBatch, error)
}

// PriceProvider fetches a trailing daily close series for one ticker.
// Implementations return a nil series (no error) when the provider
// answered but the series is too short to be usable.
type PriceProvider interface {
	FetchDailyCloses(ctx context.Context, ticker string, from, to time.Time) (PriceSeries, error)
}

// RateProvider returns the current spot rate for the configured currency
// pair. Unavailability is a fatal precondition for a pipeline run.
type RateProvider interface {
	SpotRate(ctx context.Context) (float64, error)
}
