package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/novatechnologies/chartview/domain"
)

func TestClient_Candles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/candles", r.URL.Path)
		assert.Equal(t, "BTC-USDT", r.URL.Query().Get("market"))
		assert.Equal(t, "60", r.URL.Query().Get("resolution"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"o": ["58345.1", "58245.5"],
			"h": ["58615.0", "58499.9"],
			"l": ["58205.2", "58105.0"],
			"c": ["58245.5", "58410.1"],
			"t": [1700000000, 1700003600]
		}`))
	}))
	defer srv.Close()

	cli, err := New(Config{ServerURL: srv.URL, Token: "secret", RetryCount: pointer.ToInt(0)})
	require.NoError(t, err)

	candles, err := cli.Candles(context.Background(), "BTC-USDT", domain.Candle1HResolution)
	require.NoError(t, err)

	require.Len(t, candles, 2)
	assert.Equal(t, int64(1700000000), candles[0].Timestamp)
	assert.Equal(t, 58345.1, candles[0].Open)
	assert.Equal(t, 58615.0, candles[0].High)
	assert.Equal(t, 58205.2, candles[0].Low)
	assert.Equal(t, 58245.5, candles[0].Close)
	assert.Equal(t, 58410.1, candles[1].Close)
}

func TestClient_Candles_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	cli, err := New(Config{ServerURL: srv.URL, RetryCount: pointer.ToInt(0)})
	require.NoError(t, err)

	_, err = cli.Candles(context.Background(), "BTC-USDT", domain.Candle1HResolution)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestDecodeChart_ColumnMismatch(t *testing.T) {
	_, err := decodeChart(chartPayload{
		O: []string{"1"},
		H: []string{"1"},
		L: []string{"1"},
		C: []string{"1", "2"},
		T: []int64{1700000000},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "column lengths differ")
}

func TestDecodeChart_BadPrice(t *testing.T) {
	_, err := decodeChart(chartPayload{
		O: []string{"not-a-number"},
		H: []string{"1"},
		L: []string{"1"},
		C: []string{"1"},
		T: []int64{1700000000},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't parse open at 0")
}

func TestDecodeChart_Empty(t *testing.T) {
	candles, err := decodeChart(chartPayload{})
	require.NoError(t, err)
	assert.Empty(t, candles)
}
