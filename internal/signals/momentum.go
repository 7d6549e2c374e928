package signals

import "github.com/rfalmeida/b3rank/internal/contracts"

// tradingDaysPerMonth approximates one calendar month of trading days.
const tradingDaysPerMonth = 21

// SixMonthMomentum returns the 6-month price return ending one month ago,
// as a percentage. The most recent month is skipped on purpose to avoid
// short-term reversal contamination (the standard momentum-factor
// convention).
//
// Requires at least 8 months (168 points) of history; returns nil otherwise.
func SixMonthMomentum(series contracts.PriceSeries) *float64 {
	if len(series) < 8*tradingDaysPerMonth {
		return nil
	}

	close7MAgo := series[len(series)-7*tradingDaysPerMonth].Close
	close1MAgo := series[len(series)-1*tradingDaysPerMonth].Close

	m := (close1MAgo - close7MAgo) / close7MAgo * 100
	return &m
}

// OneMonthMomentum returns the trailing 1-month price return as a
// percentage. Requires at least 2 months (42 points) of history; returns
// nil otherwise.
func OneMonthMomentum(series contracts.PriceSeries) *float64 {
	if len(series) < 2*tradingDaysPerMonth {
		return nil
	}

	closeNow := series[len(series)-1].Close
	close1MAgo := series[len(series)-1*tradingDaysPerMonth].Close

	m := (closeNow - close1MAgo) / close1MAgo * 100
	return &m
}
