package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfalmeida/b3rank/pkg/config"
	"github.com/rfalmeida/b3rank/pkg/httputil"
	"github.com/rfalmeida/b3rank/pkg/logger"
)

const chartPayload = `{
	"chart": {
		"result": [{
			"indicators": {
				"quote": [{"close": [5.41, null, 5.43]}]
			}
		}],
		"error": null
	}
}`

func newTestFXClient(t *testing.T, ttl time.Duration, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		FX: config.FXConfig{
			BaseURL:  srv.URL,
			Pair:     "USDBRL=X",
			CacheTTL: ttl,
		},
	}

	log := logger.NewNop()
	return NewClient(cfg, httputil.NewWithTimeout(log, 5*time.Second), log)
}

func TestSpotRate(t *testing.T) {
	client := newTestFXClient(t, time.Hour, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v8/finance/chart/USDBRL=X")
		_, _ = w.Write([]byte(chartPayload))
	})

	rate, err := client.SpotRate(context.Background())
	require.NoError(t, err)

	// Last non-null close wins
	assert.Equal(t, 5.43, rate)
}

func TestSpotRateCachesWithinTTL(t *testing.T) {
	var calls int32
	client := newTestFXClient(t, time.Hour, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(chartPayload))
	})

	for i := 0; i < 3; i++ {
		_, err := client.SpotRate(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "rate should be served from cache")
}

func TestSpotRateRefetchesAfterExpiry(t *testing.T) {
	var calls int32
	client := newTestFXClient(t, time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(chartPayload))
	})

	_, err := client.SpotRate(context.Background())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = client.SpotRate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "expired cache must never be served")
}

func TestSpotRateProviderError(t *testing.T) {
	client := newTestFXClient(t, time.Hour, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart": {"result": [], "error": {"code": "Not Found", "description": "No data found"}}}`)
	})

	_, err := client.SpotRate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No data found")
}

func TestSpotRateNoUsableClose(t *testing.T) {
	client := newTestFXClient(t, time.Hour, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart": {"result": [{"indicators": {"quote": [{"close": [null, null]}]}}], "error": null}}`)
	})

	_, err := client.SpotRate(context.Background())
	require.Error(t, err)
}
