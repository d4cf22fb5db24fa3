// Package validation gates every trading parameter set before any network
// call. Each constructor takes raw primitives and returns either a fully
// validated request value or an *Error naming the field that failed. No I/O.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"futures-bot/pkg/types"
)

// Quantity and price limits enforced by the exchange. Checks run on the exact
// decimal representation, never on the raw float input.
const (
	quantityMaxDigits = 8
	quantityMaxPlaces = 3
	priceMaxDigits    = 10
	priceMaxPlaces    = 2

	minLeverage = 1
	maxLeverage = 125

	apiKeyLength = 64
)

// Error reports a single failed field. It is always raised before any network
// access, so it never reflects exchange state.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation error in '%s': %s", e.Field, e.Message)
}

func errf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

type MarketOrderRequest struct {
	Symbol   types.Symbol
	Side     types.OrderSide
	Type     types.OrderType // always MARKET
	Quantity decimal.Decimal
}

type LimitOrderRequest struct {
	Symbol      types.Symbol
	Side        types.OrderSide
	Type        types.OrderType // always LIMIT
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	TimeInForce types.OrderTIF
}

type CancelOrderRequest struct {
	Symbol  types.Symbol
	OrderID int64
}

type LeverageRequest struct {
	Symbol   types.Symbol
	Leverage int
}

type APICredentials struct {
	APIKey    string
	SecretKey string
	BaseURL   string
}

// MarketOrder validates market order parameters.
func MarketOrder(symbol, side string, quantity float64) (*MarketOrderRequest, error) {
	sym, err := checkSymbol(symbol)
	if err != nil {
		return nil, err
	}
	s, err := checkSide(side)
	if err != nil {
		return nil, err
	}
	qty, err := checkQuantity(quantity)
	if err != nil {
		return nil, err
	}
	return &MarketOrderRequest{
		Symbol:   sym,
		Side:     s,
		Type:     types.OrderTypeMarket,
		Quantity: qty,
	}, nil
}

// LimitOrder validates limit order parameters. An empty tif defaults to GTC.
func LimitOrder(symbol, side string, quantity, price float64, tif string) (*LimitOrderRequest, error) {
	sym, err := checkSymbol(symbol)
	if err != nil {
		return nil, err
	}
	s, err := checkSide(side)
	if err != nil {
		return nil, err
	}
	qty, err := checkQuantity(quantity)
	if err != nil {
		return nil, err
	}
	if !isFinite(price) {
		return nil, errf("price", "must be a finite number")
	}
	p := decimal.NewFromFloat(price)
	if !p.IsPositive() {
		return nil, errf("price", "must be greater than zero, got %s", p)
	}
	if err := checkPrecision("price", p, priceMaxDigits, priceMaxPlaces); err != nil {
		return nil, err
	}
	if tif == "" {
		tif = string(types.OrderTIFGTC)
	}
	t := types.OrderTIF(tif)
	if !t.Valid() {
		return nil, errf("time_in_force", "unsupported time in force: %s", tif)
	}
	return &LimitOrderRequest{
		Symbol:      sym,
		Side:        s,
		Type:        types.OrderTypeLimit,
		Quantity:    qty,
		Price:       p,
		TimeInForce: t,
	}, nil
}

// CancelOrder validates order cancellation parameters.
func CancelOrder(symbol string, orderID int64) (*CancelOrderRequest, error) {
	sym, err := checkSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if orderID <= 0 {
		return nil, errf("order_id", "must be a positive integer, got %d", orderID)
	}
	return &CancelOrderRequest{Symbol: sym, OrderID: orderID}, nil
}

// Leverage validates a leverage adjustment.
func Leverage(symbol string, leverage int) (*LeverageRequest, error) {
	sym, err := checkSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if leverage < minLeverage || leverage > maxLeverage {
		return nil, errf("leverage", "must be between %d and %d, got %d", minLeverage, maxLeverage, leverage)
	}
	return &LeverageRequest{Symbol: sym, Leverage: leverage}, nil
}

// Credentials validates API credentials.
func Credentials(apiKey, secretKey, baseURL string) (*APICredentials, error) {
	if err := checkKey("api_key", apiKey); err != nil {
		return nil, err
	}
	if err := checkKey("secret_key", secretKey); err != nil {
		return nil, err
	}
	if !hasHTTPScheme(baseURL) {
		return nil, errf("base_url", "must start with http:// or https://")
	}
	return &APICredentials{APIKey: apiKey, SecretKey: secretKey, BaseURL: baseURL}, nil
}

func checkSymbol(symbol string) (types.Symbol, error) {
	sym := types.Symbol(symbol)
	if !sym.Valid() {
		return "", errf("symbol", "unsupported symbol: %s", symbol)
	}
	return sym, nil
}

func checkSide(side string) (types.OrderSide, error) {
	s := types.OrderSide(side)
	if !s.Valid() {
		return "", errf("side", "must be BUY or SELL, got %s", side)
	}
	return s, nil
}

func checkQuantity(quantity float64) (decimal.Decimal, error) {
	if !isFinite(quantity) {
		return decimal.Decimal{}, errf("quantity", "must be a finite number")
	}
	q := decimal.NewFromFloat(quantity)
	if !q.IsPositive() {
		return decimal.Decimal{}, errf("quantity", "must be greater than zero, got %s", q)
	}
	if err := checkPrecision("quantity", q, quantityMaxDigits, quantityMaxPlaces); err != nil {
		return decimal.Decimal{}, err
	}
	return q, nil
}

func checkPrecision(field string, d decimal.Decimal, maxDigits, maxPlaces int) error {
	if !d.Equal(d.Truncate(int32(maxPlaces))) {
		return errf(field, "%s exceeds %d decimal places", d, maxPlaces)
	}
	// trailing zeros absorbed into a positive exponent still count as digits
	digits := d.NumDigits()
	if e := int(d.Exponent()); e > 0 {
		digits += e
	}
	if digits > maxDigits {
		return errf(field, "%s exceeds %d significant digits", d, maxDigits)
	}
	return nil
}

// isFinite rejects NaN and ±Inf, which ParseFloat happily produces from
// operator input and which decimal conversion cannot represent.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func checkKey(field, key string) error {
	if len(key) != apiKeyLength {
		return errf(field, "must be exactly %d characters, got %d", apiKeyLength, len(key))
	}
	for _, c := range key {
		if !isAlnum(c) {
			return errf(field, "must contain only alphanumeric characters")
		}
	}
	return nil
}

func isAlnum(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func hasHTTPScheme(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
