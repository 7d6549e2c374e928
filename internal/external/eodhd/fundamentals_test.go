package eodhd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfalmeida/b3rank/pkg/config"
	"github.com/rfalmeida/b3rank/pkg/httputil"
	"github.com/rfalmeida/b3rank/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		EODHD: config.EODHDConfig{
			APIToken: "test-token",
			BaseURL:  srv.URL,
		},
		Pipeline: config.PipelineConfig{
			HTTPTimeout:          5 * time.Second,
			MinPriceObservations: 150,
		},
	}

	log := logger.NewNop()
	return NewClient(cfg, httputil.NewWithTimeout(log, 5*time.Second), log)
}

const fundamentalsPayload = `{
	"Financials": {
		"Income_Statement": {
			"quarterly": {
				"2026-03-31": {"ebit": "150.5"},
				"2025-12-31": {"ebit": 120},
				"2025-09-30": {"ebit": null},
				"2025-06-30": {"ebit": 90}
			}
		},
		"Balance_Sheet": {
			"quarterly": {
				"2026-03-31": {"shortLongTermDebtTotal": 1000, "totalStockholderEquity": "2000"},
				"2025-12-31": {"shortLongTermDebtTotal": null, "totalStockholderEquity": 1800},
				"2025-09-30": {"shortLongTermDebtTotal": 900, "totalStockholderEquity": 1700},
				"2025-03-31": {"shortLongTermDebtTotal": 800, "totalStockholderEquity": 1600}
			}
		}
	},
	"Valuation": {"EnterpriseValue": 50000}
}`

func TestFetchFundamentals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/api/fundamentals/PETR4.SA")
		assert.Equal(t, "test-token", r.URL.Query().Get("api_token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fundamentalsPayload))
	})

	batch, err := client.FetchFundamentals(context.Background(), "PETR4.SA")
	require.NoError(t, err)

	// 2025-06-30 is income-only, 2025-03-31 balance-only: not usable.
	// 2025-09-30 has a null ebit: dropped with a diagnostic.
	require.Len(t, batch.Records, 2)
	require.Len(t, batch.Dropped, 1)
	assert.Contains(t, batch.Dropped[0], "2025-09-30")
	assert.Contains(t, batch.Dropped[0], "ebit")

	// Descending report-date order, with string amounts coerced.
	first := batch.Records[0]
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), first.ReportDate)
	assert.Equal(t, 150.5, first.EBIT)
	assert.Equal(t, 50000.0, first.EnterpriseValue)
	assert.Equal(t, 1000.0, first.TotalDebt)
	assert.Equal(t, 2000.0, first.TotalEquity)

	// Null debt defaults to zero when equity is present.
	second := batch.Records[1]
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), second.ReportDate)
	assert.Equal(t, 0.0, second.TotalDebt)
	assert.Equal(t, 1800.0, second.TotalEquity)
}

func TestFetchFundamentalsMissingDebtAndEquity(t *testing.T) {
	payload := `{
		"Financials": {
			"Income_Statement": {"quarterly": {"2026-03-31": {"ebit": 100}}},
			"Balance_Sheet": {"quarterly": {"2026-03-31": {"shortLongTermDebtTotal": null, "totalStockholderEquity": null}}}
		},
		"Valuation": {"EnterpriseValue": 50000}
	}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	batch, err := client.FetchFundamentals(context.Background(), "VALE3.SA")
	require.NoError(t, err)

	assert.Empty(t, batch.Records)
	require.Len(t, batch.Dropped, 1)
	assert.Contains(t, batch.Dropped[0], "debt+equity")
}

func TestFetchFundamentalsAbsentValuationDefaultsToZero(t *testing.T) {
	payload := `{
		"Financials": {
			"Income_Statement": {"quarterly": {"2026-03-31": {"ebit": 100}}},
			"Balance_Sheet": {"quarterly": {"2026-03-31": {"totalStockholderEquity": 500}}}
		}
	}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	batch, err := client.FetchFundamentals(context.Background(), "VALE3.SA")
	require.NoError(t, err)

	// No valuation block at all: enterprise value 0, record kept. The
	// value calculators turn the zero denominator into a zero yield.
	require.Len(t, batch.Records, 1)
	assert.Equal(t, 0.0, batch.Records[0].EnterpriseValue)
}

func TestFetchFundamentalsNullValuationDropsRecords(t *testing.T) {
	payload := `{
		"Financials": {
			"Income_Statement": {"quarterly": {"2026-03-31": {"ebit": 100}}},
			"Balance_Sheet": {"quarterly": {"2026-03-31": {"totalStockholderEquity": 500}}}
		},
		"Valuation": {"EnterpriseValue": null}
	}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	batch, err := client.FetchFundamentals(context.Background(), "VALE3.SA")
	require.NoError(t, err)

	assert.Empty(t, batch.Records)
	require.Len(t, batch.Dropped, 1)
	assert.Contains(t, batch.Dropped[0], "enterprise_value")
}

func TestFetchFundamentalsNoQuarterlyData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Financials": {}, "Valuation": {}}`))
	})

	batch, err := client.FetchFundamentals(context.Background(), "XXXX.SA")
	require.NoError(t, err)

	assert.Empty(t, batch.Records)
	require.Len(t, batch.Dropped, 1)
	assert.Contains(t, batch.Dropped[0], "no quarterly data")
}

func TestFetchFundamentalsServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.FetchFundamentals(context.Background(), "PETR4.SA")
	require.Error(t, err)
}
