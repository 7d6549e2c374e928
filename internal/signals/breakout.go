package signals

import "github.com/rfalmeida/b3rank/internal/contracts"

// breakoutLookback is the six-month window (in trading days) scanned for
// a prior high, final day included.
const breakoutLookback = 126

// Breakout returns 1 when the final close strictly exceeds every close of
// the preceding six months, else 0. Unlike the momentum calculators a
// short series is a defined 0, not missing data.
func Breakout(series contracts.PriceSeries) int {
	if len(series) < breakoutLookback+1 {
		return 0
	}

	// Prior high over the window, excluding the final day.
	window := series[len(series)-breakoutLookback : len(series)-1]
	high := window[0].Close
	for _, p := range window[1:] {
		if p.Close > high {
			high = p.Close
		}
	}

	if series[len(series)-1].Close > high {
		return 1
	}
	return 0
}
