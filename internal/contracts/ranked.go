package contracts

import "time"

// ScoredRow is one ranked (ticker, report date) result.
// Momentum fields stay nil when the price series was too short; the
// composite score treats them as zero without overwriting the fields.
type ScoredRow struct {
	Ticker          string    `json:"ticker"`
	ReportDate      time.Time `json:"report_date"`
	EarningsYield   float64   `json:"earnings_yield"`    // percent
	ReturnOnCapital float64   `json:"return_on_capital"` // percent
	Momentum6M      *float64  `json:"momentum_6m"`       // percent, nullable
	Momentum1M      *float64  `json:"momentum_1m"`       // percent, nullable
	Breakout        int       `json:"breakout"`          // 0 or 1
	WeightedScore   float64   `json:"weighted_score"`
	CompositeScore  float64   `json:"composite_score"`
	Rank            int       `json:"rank"` // 1-based, assigned after the global sort
}

// TickerStatus classifies a ticker's outcome for the run summary
type TickerStatus int

const (
	// StatusOK means at least one row had positive earnings yield and
	// positive return on capital.
	StatusOK TickerStatus = iota
	// StatusNegativeOrZero means rows were emitted but none were positive
	// on both value metrics.
	StatusNegativeOrZero
	// StatusFailed means no usable fundamentals record produced a row.
	StatusFailed
)

// RunSummary counts ticker outcomes for one pipeline run
type RunSummary struct {
	OK             int `json:"ok"`
	NegativeOrZero int `json:"negative_or_zero"`
	Failed         int `json:"failed"`
}

// Add records one ticker's classification
func (s *RunSummary) Add(status TickerStatus) {
	switch status {
	case StatusOK:
		s.OK++
	case StatusNegativeOrZero:
		s.NegativeOrZero++
	case StatusFailed:
		s.Failed++
	}
}

// Diagnostic is a per-ticker informational message accumulated during a
// run. Diagnostics are observability data, never errors.
type Diagnostic struct {
	Ticker  string `json:"ticker"`
	Message string `json:"message"`
}

// RunResult is everything one pipeline run produces. It is created fresh
// on every run and never persisted; the caller owns it across interactions.
type RunResult struct {
	Rows        []ScoredRow  `json:"rows"` // ascending by Rank
	Summary     RunSummary   `json:"summary"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// HasRows reports whether the run produced any ranked output
func (r *RunResult) HasRows() bool {
	return r != nil && len(r.Rows) > 0
}
