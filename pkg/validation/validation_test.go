package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures-bot/pkg/types"
)

func TestMarketOrderQuantityPrecision(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		wantField string
	}{
		{"three decimal places ok", 0.001, ""},
		{"integer ok", 5, ""},
		{"four decimal places rejected", 0.0011, "quantity"},
		{"zero rejected", 0, "quantity"},
		{"negative rejected", -0.5, "quantity"},
		{"eight significant digits ok", 12345.678, ""},
		{"nine significant digits rejected", 123456.789, "quantity"},
		{"eight whole digits ok", 12345678, ""},
		{"nine whole digits with trailing zero rejected", 123456780, "quantity"},
		{"nan rejected", math.NaN(), "quantity"},
		{"positive infinity rejected", math.Inf(1), "quantity"},
		{"negative infinity rejected", math.Inf(-1), "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := MarketOrder("BTCUSDT", "BUY", tt.quantity)
			if tt.wantField != "" {
				requireFieldError(t, err, tt.wantField)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, types.SymbolBTCUSDT, req.Symbol)
			assert.Equal(t, types.OrderSideBuy, req.Side)
			assert.Equal(t, types.OrderTypeMarket, req.Type)
			assert.True(t, req.Quantity.Equal(decimal.NewFromFloat(tt.quantity)))
		})
	}
}

func TestMarketOrderRejectsUnknownSymbolAndSide(t *testing.T) {
	_, err := MarketOrder("XRPUSDT", "BUY", 0.001)
	requireFieldError(t, err, "symbol")

	// matching is exact; lowercase is the caller's problem
	_, err = MarketOrder("btcusdt", "BUY", 0.001)
	requireFieldError(t, err, "symbol")

	_, err = MarketOrder("BTCUSDT", "HOLD", 0.001)
	requireFieldError(t, err, "side")
}

func TestLimitOrder(t *testing.T) {
	req, err := LimitOrder("ETHUSDT", "SELL", 0.5, 3500.25, "IOC")
	require.NoError(t, err)
	assert.Equal(t, types.OrderTypeLimit, req.Type)
	assert.Equal(t, types.OrderTIFIOC, req.TimeInForce)
	assert.Equal(t, "3500.25", req.Price.String())
}

func TestLimitOrderPrice(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		wantField string
	}{
		{"two decimal places ok", 35000.25, ""},
		{"three decimal places rejected", 35000.255, "price"},
		{"zero rejected", 0, "price"},
		{"negative rejected", -1, "price"},
		{"ten significant digits ok", 12345678.91, ""},
		{"eleven significant digits rejected", 123456789.12, "price"},
		{"ten whole digits ok", 1234567890, ""},
		{"eleven whole digits with trailing zeros rejected", 12345678900, "price"},
		{"nan rejected", math.NaN(), "price"},
		{"infinity rejected", math.Inf(1), "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LimitOrder("BTCUSDT", "BUY", 0.001, tt.price, "GTC")
			if tt.wantField != "" {
				requireFieldError(t, err, tt.wantField)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLimitOrderTimeInForce(t *testing.T) {
	for _, tif := range []string{"GTC", "IOC", "FOK"} {
		req, err := LimitOrder("BTCUSDT", "BUY", 0.001, 35000, tif)
		require.NoError(t, err)
		assert.Equal(t, types.OrderTIF(tif), req.TimeInForce)
	}

	// empty defaults to GTC
	req, err := LimitOrder("BTCUSDT", "BUY", 0.001, 35000, "")
	require.NoError(t, err)
	assert.Equal(t, types.OrderTIFGTC, req.TimeInForce)

	_, err = LimitOrder("BTCUSDT", "BUY", 0.001, 35000, "GTX")
	requireFieldError(t, err, "time_in_force")
}

func TestCancelOrder(t *testing.T) {
	req, err := CancelOrder("BTCUSDT", 12345678)
	require.NoError(t, err)
	assert.Equal(t, int64(12345678), req.OrderID)

	_, err = CancelOrder("BTCUSDT", 0)
	requireFieldError(t, err, "order_id")

	_, err = CancelOrder("BTCUSDT", -1)
	requireFieldError(t, err, "order_id")

	_, err = CancelOrder("NOPEUSDT", 1)
	requireFieldError(t, err, "symbol")
}

func TestLeverageBounds(t *testing.T) {
	tests := []struct {
		leverage int
		ok       bool
	}{
		{1, true},
		{125, true},
		{0, false},
		{126, false},
		{-5, false},
		{20, true},
	}

	for _, tt := range tests {
		req, err := Leverage("SOLUSDT", tt.leverage)
		if tt.ok {
			require.NoError(t, err, "leverage %d", tt.leverage)
			assert.Equal(t, tt.leverage, req.Leverage)
		} else {
			requireFieldError(t, err, "leverage")
		}
	}
}

func TestCredentials(t *testing.T) {
	validKey := strings.Repeat("a1B2", 16) // 64 alphanumeric chars

	tests := []struct {
		name      string
		apiKey    string
		secretKey string
		baseURL   string
		wantField string
	}{
		{"valid", validKey, validKey, "https://testnet.binancefuture.com", ""},
		{"plain http ok", validKey, validKey, "http://localhost:8080", ""},
		{"short url host ok", validKey, validKey, "https://x", ""},
		{"63 char api key", validKey[:63], validKey, "https://x", "api_key"},
		{"65 char api key", validKey + "a", validKey, "https://x", "api_key"},
		{"non-alphanumeric api key", validKey[:63] + "-", validKey, "https://x", "api_key"},
		{"short secret key", validKey, validKey[:10], "https://x", "secret_key"},
		{"ftp scheme", validKey, validKey, "ftp://x", "base_url"},
		{"no scheme", validKey, validKey, "testnet.binancefuture.com", "base_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := Credentials(tt.apiKey, tt.secretKey, tt.baseURL)
			if tt.wantField != "" {
				requireFieldError(t, err, tt.wantField)
				assert.Nil(t, creds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.apiKey, creds.APIKey)
			assert.Equal(t, tt.baseURL, creds.BaseURL)
		})
	}
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, field, vErr.Field)
	assert.NotEmpty(t, vErr.Message)
}
