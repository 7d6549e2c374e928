// Package pipeline runs the fetch-score-rank pipeline over the ticker
// universe: fundamentals and prices per ticker, magic-formula value
// metrics blended with momentum, then a ranked, deduplicated table.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/rfalmeida/b3rank/internal/contracts"
	"github.com/rfalmeida/b3rank/internal/signals"
	"github.com/rfalmeida/b3rank/pkg/logger"
)

// Params holds the orchestration knobs for a Runner
type Params struct {
	Universe          []string
	WindowStart       time.Time
	RequestDelay      time.Duration // fixed pause between ticker turns
	PriceLookbackDays int
	Weights           WeightConfig
}

// Runner orchestrates one full pipeline run. Tickers are processed
// strictly in list order with no parallelism; the only cross-iteration
// state is the growing draft collection, so no locking is needed.
type Runner struct {
	fundamentals contracts.FundamentalsProvider
	prices       contracts.PriceProvider
	fx           contracts.RateProvider
	ranker       *Ranker
	limiter      *rate.Limiter
	params       Params
	logger       *logger.Logger

	now func() time.Time
}

// New creates a pipeline runner
func New(
	fundamentals contracts.FundamentalsProvider,
	prices contracts.PriceProvider,
	fx contracts.RateProvider,
	params Params,
	log *logger.Logger,
) *Runner {
	var limiter *rate.Limiter
	if params.RequestDelay > 0 {
		// One token per delay interval paces the ticker loop; the first
		// ticker passes immediately.
		limiter = rate.NewLimiter(rate.Every(params.RequestDelay), 1)
	}

	return &Runner{
		fundamentals: fundamentals,
		prices:       prices,
		fx:           fx,
		ranker:       NewRanker(params.Weights, log),
		limiter:      limiter,
		params:       params,
		logger:       log,
		now:          time.Now,
	}
}

// Run executes one full pipeline run and returns the ranked table, the
// run summary and the accumulated diagnostics.
//
// The exchange rate is a hard precondition: if it cannot be obtained the
// run aborts before any ticker is processed and no partial result is
// produced. Per-ticker failures never abort the run.
func (r *Runner) Run(ctx context.Context) (*contracts.RunResult, error) {
	spot, err := r.fx.SpotRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("exchange rate unavailable: %w", err)
	}
	if spot <= 0 {
		return nil, fmt.Errorf("exchange rate unavailable: non-positive rate %v", spot)
	}

	today := r.now()
	window := Window{Start: r.params.WindowStart, End: today}
	priceFrom := today.AddDate(0, 0, -r.params.PriceLookbackDays)

	var (
		drafts      []contracts.ScoredRow
		diagnostics []contracts.Diagnostic
		summary     contracts.RunSummary
	)

	r.logger.WithFields(map[string]interface{}{
		"tickers": len(r.params.Universe),
		"rate":    spot,
	}).Info("Pipeline run started")

	for i, ticker := range r.params.Universe {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("request pacing interrupted: %w", err)
			}
		}

		r.logger.Infof("Fetching %s (%d/%d)", ticker, i+1, len(r.params.Universe))

		batch, fundErr := r.fundamentals.FetchFundamentals(ctx, ticker)

		// Price metrics are always attempted: a price failure must never
		// abort fundamentals processing and vice versa.
		series, priceErr := r.prices.FetchDailyCloses(ctx, ticker, priceFrom, today)
		if priceErr != nil {
			diagnostics = append(diagnostics, contracts.Diagnostic{
				Ticker:  ticker,
				Message: fmt.Sprintf("price fetch failed: %v", priceErr),
			})
			series = nil
		}
		m6 := signals.SixMonthMomentum(series)
		m1 := signals.OneMonthMomentum(series)
		breakout := signals.Breakout(series)

		if fundErr != nil {
			summary.Add(contracts.StatusFailed)
			diagnostics = append(diagnostics, contracts.Diagnostic{
				Ticker:  ticker,
				Message: fmt.Sprintf("fundamentals fetch failed: %v", fundErr),
			})
			continue
		}

		for _, msg := range batch.Dropped {
			diagnostics = append(diagnostics, contracts.Diagnostic{Ticker: ticker, Message: msg})
		}

		if len(batch.Records) == 0 {
			summary.Add(contracts.StatusFailed)
			if len(batch.Dropped) == 0 {
				diagnostics = append(diagnostics, contracts.Diagnostic{
					Ticker:  ticker,
					Message: "no usable quarterly data",
				})
			}
			continue
		}

		emitted := 0
		positive := false
		for _, rec := range batch.Records {
			if !window.Contains(rec.ReportDate) {
				continue
			}

			vm := signals.DeriveValueMetrics(rec, spot)
			drafts = append(drafts, contracts.ScoredRow{
				Ticker:          ticker,
				ReportDate:      rec.ReportDate,
				EarningsYield:   vm.EarningsYield,
				ReturnOnCapital: vm.ReturnOnCapital,
				Momentum6M:      m6,
				Momentum1M:      m1,
				Breakout:        breakout,
				WeightedScore:   vm.WeightedScore,
			})
			emitted++
			if vm.IsPositive() {
				positive = true
			}
		}

		switch {
		case emitted == 0:
			summary.Add(contracts.StatusFailed)
			diagnostics = append(diagnostics, contracts.Diagnostic{
				Ticker:  ticker,
				Message: "no quarterly records within the report window",
			})
		case positive:
			summary.Add(contracts.StatusOK)
		default:
			summary.Add(contracts.StatusNegativeOrZero)
		}
	}

	rows := r.ranker.Rank(drafts, window)

	r.logger.WithFields(map[string]interface{}{
		"rows":   len(rows),
		"ok":     summary.OK,
		"neg":    summary.NegativeOrZero,
		"failed": summary.Failed,
	}).Info("Pipeline run completed")

	return &contracts.RunResult{
		Rows:        rows,
		Summary:     summary,
		Diagnostics: diagnostics,
		GeneratedAt: today,
	}, nil
}
