package signals

import (
	"testing"
	"time"

	"github.com/rfalmeida/b3rank/internal/contracts"
)

// flatSeries builds n consecutive daily points all closing at the same price
func flatSeries(n int, close float64) contracts.PriceSeries {
	series := make(contracts.PriceSeries, n)
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range series {
		series[i] = contracts.PricePoint{Date: start.AddDate(0, 0, i), Close: close}
	}
	return series
}

func TestSixMonthMomentum(t *testing.T) {
	t.Run("nil series", func(t *testing.T) {
		if got := SixMonthMomentum(nil); got != nil {
			t.Errorf("SixMonthMomentum(nil) = %v, want nil", *got)
		}
	})

	t.Run("too short", func(t *testing.T) {
		if got := SixMonthMomentum(flatSeries(167, 100)); got != nil {
			t.Errorf("SixMonthMomentum(167 pts) = %v, want nil", *got)
		}
	})

	t.Run("flat series is zero", func(t *testing.T) {
		got := SixMonthMomentum(flatSeries(200, 100))
		if got == nil || *got != 0 {
			t.Errorf("SixMonthMomentum(flat 200) = %v, want 0", got)
		}
	})

	t.Run("documented formula", func(t *testing.T) {
		series := flatSeries(168, 100)
		// 147 days before the end vs 21 days before the end.
		series[len(series)-147].Close = 80
		series[len(series)-21].Close = 100

		got := SixMonthMomentum(series)
		if got == nil {
			t.Fatal("SixMonthMomentum = nil, want value")
		}
		if *got != 25 {
			t.Errorf("SixMonthMomentum = %v, want 25", *got)
		}
	})
}

func TestOneMonthMomentum(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		if got := OneMonthMomentum(flatSeries(41, 100)); got != nil {
			t.Errorf("OneMonthMomentum(41 pts) = %v, want nil", *got)
		}
	})

	t.Run("flat series is zero", func(t *testing.T) {
		got := OneMonthMomentum(flatSeries(200, 100))
		if got == nil || *got != 0 {
			t.Errorf("OneMonthMomentum(flat 200) = %v, want 0", got)
		}
	})

	t.Run("documented formula", func(t *testing.T) {
		series := flatSeries(42, 100)
		series[len(series)-21].Close = 100
		series[len(series)-1].Close = 110

		got := OneMonthMomentum(series)
		if got == nil {
			t.Fatal("OneMonthMomentum = nil, want value")
		}
		if *got != 10 {
			t.Errorf("OneMonthMomentum = %v, want 10", *got)
		}
	})
}
