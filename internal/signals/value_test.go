package signals

import (
	"testing"

	"github.com/rfalmeida/b3rank/internal/contracts"
)

func TestDeriveValueMetrics(t *testing.T) {
	tests := []struct {
		name     string
		rec      contracts.FundamentalsRecord
		rate     float64
		wantEY   float64
		wantROC  float64
		positive bool
	}{
		{
			name: "typical record",
			rec: contracts.FundamentalsRecord{
				EBIT:            100,
				EnterpriseValue: 1000,
				TotalDebt:       0,
				TotalEquity:     500,
			},
			rate:     5.0,
			wantEY:   50.0,
			wantROC:  100.0,
			positive: true,
		},
		{
			name: "zero enterprise value yields defined zero",
			rec: contracts.FundamentalsRecord{
				EBIT:            100,
				EnterpriseValue: 0,
				TotalDebt:       100,
				TotalEquity:     100,
			},
			rate:     2.0,
			wantEY:   0,
			wantROC:  100,
			positive: false,
		},
		{
			name: "zero capital employed yields defined zero",
			rec: contracts.FundamentalsRecord{
				EBIT:            100,
				EnterpriseValue: 1000,
				TotalDebt:       0,
				TotalEquity:     0,
			},
			rate:     2.0,
			wantEY:   20,
			wantROC:  0,
			positive: false,
		},
		{
			name: "negative ebit",
			rec: contracts.FundamentalsRecord{
				EBIT:            -50,
				EnterpriseValue: 1000,
				TotalDebt:       200,
				TotalEquity:     300,
			},
			rate:     1.0,
			wantEY:   -5,
			wantROC:  -10,
			positive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveValueMetrics(tt.rec, tt.rate)

			if got.EarningsYield != tt.wantEY {
				t.Errorf("EarningsYield = %v, want %v", got.EarningsYield, tt.wantEY)
			}
			if got.ReturnOnCapital != tt.wantROC {
				t.Errorf("ReturnOnCapital = %v, want %v", got.ReturnOnCapital, tt.wantROC)
			}

			// The weighted score is defined bit-for-bit from the two inputs.
			wantWeighted := got.EarningsYield + got.ReturnOnCapital*0.33
			if got.WeightedScore != wantWeighted {
				t.Errorf("WeightedScore = %v, want %v", got.WeightedScore, wantWeighted)
			}

			if got.IsPositive() != tt.positive {
				t.Errorf("IsPositive() = %v, want %v", got.IsPositive(), tt.positive)
			}
		})
	}
}

func TestDeriveValueMetricsWeightedScoreExample(t *testing.T) {
	rec := contracts.FundamentalsRecord{
		EBIT:            100,
		EnterpriseValue: 1000,
		TotalDebt:       0,
		TotalEquity:     500,
	}

	got := DeriveValueMetrics(rec, 5.0)
	if got.WeightedScore != 83.0 {
		t.Errorf("WeightedScore = %v, want 83.0", got.WeightedScore)
	}
}
