package pipeline

import (
	"sort"

	"github.com/rfalmeida/b3rank/internal/contracts"
	"github.com/rfalmeida/b3rank/pkg/logger"
)

// Ranker turns scored drafts into the final ranked, deduplicated table
// SSOT: composite scoring and ranking happen here and nowhere else.
type Ranker struct {
	weights WeightConfig
	logger  *logger.Logger
}

// WeightConfig defines the momentum/breakout weights blended on top of
// the magic-formula weighted score.
type WeightConfig struct {
	Momentum6M float64
	Momentum1M float64
	Breakout   float64
}

// DefaultWeightConfig returns the standard composite weights
func DefaultWeightConfig() WeightConfig {
	return WeightConfig{
		Momentum6M: 0.5,
		Momentum1M: 0.2,
		Breakout:   2.0,
	}
}

// NewRanker creates a new ranker
func NewRanker(weights WeightConfig, log *logger.Logger) *Ranker {
	return &Ranker{
		weights: weights,
		logger:  log,
	}
}

// Rank computes composite scores, sorts, assigns 1-based ranks and
// deduplicates to one row per ticker.
//
// The sort must be stable: rows tied on composite score keep their
// emission order, and the dedup below relies on "first occurrence wins".
// The window filter is re-applied here; it is a no-op when the
// orchestrator already filtered, kept as a guard against rows slipping in
// from a misconfigured caller.
func (r *Ranker) Rank(rows []contracts.ScoredRow, window Window) []contracts.ScoredRow {
	ranked := make([]contracts.ScoredRow, len(rows))
	copy(ranked, rows)

	for i := range ranked {
		ranked[i].CompositeScore = r.compositeScore(ranked[i])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompositeScore > ranked[j].CompositeScore
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	// Walk in ascending rank order: the first row seen for a ticker is its
	// best-ranked one.
	seen := make(map[string]bool, len(ranked))
	final := make([]contracts.ScoredRow, 0, len(ranked))
	for _, row := range ranked {
		if !window.Contains(row.ReportDate) {
			continue
		}
		if seen[row.Ticker] {
			continue
		}
		seen[row.Ticker] = true
		final = append(final, row)
	}

	if len(final) > 0 {
		r.logger.WithFields(map[string]interface{}{
			"rows":       len(final),
			"top_ticker": final[0].Ticker,
			"top_score":  final[0].CompositeScore,
		}).Info("Ranking completed")
	}

	return final
}

// compositeScore blends value, momentum and breakout signals.
// Nil momentum contributes zero to the sum only; the row fields stay nil.
func (r *Ranker) compositeScore(row contracts.ScoredRow) float64 {
	return row.WeightedScore +
		r.weights.Momentum6M*orZero(row.Momentum6M) +
		r.weights.Momentum1M*orZero(row.Momentum1M) +
		r.weights.Breakout*float64(row.Breakout)
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
