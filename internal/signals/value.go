// Package signals holds the pure metric calculators behind the ranking
// pipeline: magic-formula value metrics, trailing price momentum and the
// six-month breakout indicator. Every function here is side-effect free.
package signals

import "github.com/rfalmeida/b3rank/internal/contracts"

// Weight of return on capital relative to earnings yield in the magic
// formula weighted score.
const returnOnCapitalWeight = 0.33

// ValueMetrics are the derived magic-formula value metrics for one
// quarterly record. Yields are percentages.
type ValueMetrics struct {
	EarningsYield   float64
	ReturnOnCapital float64
	WeightedScore   float64
}

// DeriveValueMetrics converts EBIT into the enterprise-value currency with
// the given spot rate and derives earnings yield, return on capital and
// the weighted magic-formula score.
//
// Zero denominators resolve to a defined zero rather than an error. A zero
// yield is therefore indistinguishable from a true zero; callers must check
// upstream record presence before reading "no data" into it. rate must be
// positive.
func DeriveValueMetrics(rec contracts.FundamentalsRecord, rate float64) ValueMetrics {
	ebitConverted := rec.EBIT * rate

	earningsYield := 0.0
	if rec.EnterpriseValue != 0 {
		earningsYield = ebitConverted / rec.EnterpriseValue * 100
	}

	// Capital employed is in the local currency; convert back to the EBIT
	// currency before taking the ratio.
	capitalEmployed := rec.TotalDebt + rec.TotalEquity
	capitalEmployedConverted := capitalEmployed / rate

	returnOnCapital := 0.0
	if capitalEmployedConverted != 0 {
		returnOnCapital = rec.EBIT / capitalEmployedConverted * 100
	}

	return ValueMetrics{
		EarningsYield:   earningsYield,
		ReturnOnCapital: returnOnCapital,
		WeightedScore:   earningsYield + returnOnCapital*returnOnCapitalWeight,
	}
}

// IsPositive reports whether both value metrics are strictly positive,
// the condition for classifying a ticker as "ok" in the run summary.
func (m ValueMetrics) IsPositive() bool {
	return m.EarningsYield > 0 && m.ReturnOnCapital > 0
}
