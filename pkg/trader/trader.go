// Package trader is the trading facade: the one component holding the
// authenticated exchange client. Every operation validates its raw inputs
// first, issues a single network call, and maps remote failures into
// *ExchangeError. Validation failures propagate unchanged so callers can tell
// bad input apart from exchange rejection.
package trader

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"futures-bot/pkg/exchange"
	"futures-bot/pkg/exchange/bnf"
	"futures-bot/pkg/types"
	"futures-bot/pkg/validation"
)

type Trader struct {
	client exchange.Client
	log    *log.Entry
}

// New validates the credentials and connects the futures client. A credential
// validation failure propagates as *validation.Error and leaves no usable
// trader behind.
func New(apiKey, secretKey, baseURL string, logger *log.Logger) (*Trader, error) {
	entry := logger.WithField("component", "trader")
	entry.Info("initializing futures trader")

	creds, err := validation.Credentials(apiKey, secretKey, baseURL)
	if err != nil {
		entry.Errorf("credential validation failed: %v", err)
		return nil, err
	}

	client, err := bnf.New(creds)
	if err != nil {
		entry.Errorf("client initialization failed: %v", err)
		return nil, exchangeErr("failed to initialize client", err)
	}

	entry.Info("trader initialized")
	return &Trader{client: client, log: entry}, nil
}

// NewWithClient wires an already constructed exchange client, bypassing
// credential handling. Used by tests and custom transports.
func NewWithClient(client exchange.Client, logger *log.Logger) *Trader {
	return &Trader{client: client, log: logger.WithField("component", "trader")}
}

func (t *Trader) AccountInfo(ctx context.Context) (*exchange.AccountInfo, error) {
	t.log.Info("fetching account information")
	account, err := t.client.Account(ctx)
	if err != nil {
		t.log.Errorf("fail to get account info: %v", err)
		return nil, exchangeErr("failed to get account info", err)
	}
	return account, nil
}

// Balance returns the available balance of one asset, looked up by exact
// asset name. An asset absent from the account is a zero balance, not an
// error.
func (t *Trader) Balance(ctx context.Context, asset string) (decimal.Decimal, error) {
	t.log.Infof("fetching %s balance", asset)
	account, err := t.client.Account(ctx)
	if err != nil {
		t.log.Errorf("fail to get balance: %v", err)
		return decimal.Decimal{}, exchangeErr("failed to get balance", err)
	}

	for _, assetInfo := range account.Assets {
		if assetInfo.Asset != asset {
			continue
		}
		balance, err := decimal.NewFromString(assetInfo.AvailableBalance)
		if err != nil {
			t.log.Errorf("fail to parse %s balance: %v", asset, err)
			return decimal.Decimal{}, exchangeErr("failed to get balance", err)
		}
		t.log.Infof("%s balance: %s", asset, balance)
		return balance, nil
	}

	t.log.Warnf("asset %s not found in account", asset)
	return decimal.Zero, nil
}

func (t *Trader) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	t.log.Infof("fetching current price for %s", symbol)
	raw, err := t.client.TickerPrice(ctx, symbol)
	if err != nil {
		t.log.Errorf("fail to get price for %s: %v", symbol, err)
		return decimal.Decimal{}, exchangeErr("failed to get price", err)
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		t.log.Errorf("fail to parse price for %s: %v", symbol, err)
		return decimal.Decimal{}, exchangeErr("failed to get price", err)
	}
	t.log.Infof("%s current price: %s", symbol, price)
	return price, nil
}

func (t *Trader) PlaceMarketOrder(ctx context.Context, symbol, side string, quantity float64) (*exchange.OrderAck, error) {
	validated, err := validation.MarketOrder(symbol, side, quantity)
	if err != nil {
		t.log.Errorf("market order validation failed: %v", err)
		return nil, err
	}
	t.log.Infof("placing market %s order: %s %s", validated.Side, validated.Quantity, validated.Symbol)

	order, err := t.client.NewOrder(ctx, exchange.OrderParams{
		Symbol:   validated.Symbol,
		Side:     validated.Side,
		Type:     validated.Type,
		Quantity: validated.Quantity.String(),
	})
	if err != nil {
		t.log.Errorf("market order execution failed: %v", err)
		return nil, exchangeErr("order execution failed", err)
	}

	t.log.Infof("market order executed: order id %d, status %s", order.OrderID, order.Status)
	return order, nil
}

func (t *Trader) PlaceLimitOrder(ctx context.Context, symbol, side string, quantity, price float64, tif string) (*exchange.OrderAck, error) {
	validated, err := validation.LimitOrder(symbol, side, quantity, price, tif)
	if err != nil {
		t.log.Errorf("limit order validation failed: %v", err)
		return nil, err
	}
	t.log.Infof("placing limit %s order: %s %s @ %s, tif: %s",
		validated.Side, validated.Quantity, validated.Symbol, validated.Price, validated.TimeInForce)

	order, err := t.client.NewOrder(ctx, exchange.OrderParams{
		Symbol:      validated.Symbol,
		Side:        validated.Side,
		Type:        validated.Type,
		Quantity:    validated.Quantity.String(),
		Price:       validated.Price.String(),
		TimeInForce: validated.TimeInForce,
	})
	if err != nil {
		t.log.Errorf("limit order execution failed: %v", err)
		return nil, exchangeErr("order execution failed", err)
	}

	t.log.Infof("limit order placed: order id %d, status %s", order.OrderID, order.Status)
	return order, nil
}

func (t *Trader) CancelOrder(ctx context.Context, symbol string, orderID int64) (*exchange.OrderAck, error) {
	validated, err := validation.CancelOrder(symbol, orderID)
	if err != nil {
		t.log.Errorf("cancel order validation failed: %v", err)
		return nil, err
	}
	t.log.Infof("cancelling order %d for %s", validated.OrderID, validated.Symbol)

	ack, err := t.client.CancelOrder(ctx, string(validated.Symbol), validated.OrderID)
	if err != nil {
		t.log.Errorf("order cancellation failed: %v", err)
		return nil, exchangeErr("order cancellation failed", err)
	}

	t.log.Infof("order cancelled: order id %d", ack.OrderID)
	return ack, nil
}

func (t *Trader) CancelAllOrders(ctx context.Context, symbol string) error {
	t.log.Infof("cancelling all orders for %s", symbol)
	if err := t.client.CancelAllOrders(ctx, symbol); err != nil {
		t.log.Errorf("fail to cancel all orders: %v", err)
		return exchangeErr("failed to cancel all orders", err)
	}
	t.log.Infof("all orders cancelled for %s", symbol)
	return nil
}

func (t *Trader) OpenOrders(ctx context.Context, symbol string) ([]exchange.OrderAck, error) {
	t.log.Infof("fetching open orders for %s", symbol)
	orders, err := t.client.OpenOrders(ctx, symbol)
	if err != nil {
		t.log.Errorf("fail to get open orders: %v", err)
		return nil, exchangeErr("failed to get open orders", err)
	}
	t.log.Infof("found %d open orders for %s", len(orders), symbol)
	return orders, nil
}

// Position returns the first non-zero position row for the symbol, or nil
// when there is no exposure. Hedge-mode accounts may hold several non-zero
// rows per symbol; only the first one is reported.
func (t *Trader) Position(ctx context.Context, symbol string) (*types.Position, error) {
	t.log.Infof("fetching position for %s", symbol)
	positions, err := t.client.PositionRisk(ctx, symbol)
	if err != nil {
		t.log.Errorf("fail to get position: %v", err)
		return nil, exchangeErr("failed to get position", err)
	}

	for _, pos := range positions {
		position, err := parsePosition(pos)
		if err != nil {
			t.log.Errorf("fail to parse position row: %v", err)
			return nil, exchangeErr("failed to get position", err)
		}
		if position == nil {
			continue
		}
		t.log.Infof("position found: %s @ %s, pnl: %s",
			position.Amount, position.EntryPrice, position.UnrealizedPnL)
		return position, nil
	}

	t.log.Infof("no open position for %s", symbol)
	return nil, nil
}

func (t *Trader) SetLeverage(ctx context.Context, symbol string, leverage int) (*exchange.LeverageAck, error) {
	validated, err := validation.Leverage(symbol, leverage)
	if err != nil {
		t.log.Errorf("leverage validation failed: %v", err)
		return nil, err
	}
	t.log.Infof("setting leverage to %dx for %s", validated.Leverage, validated.Symbol)

	ack, err := t.client.ChangeLeverage(ctx, string(validated.Symbol), validated.Leverage)
	if err != nil {
		t.log.Errorf("leverage change failed: %v", err)
		return nil, exchangeErr("leverage change failed", err)
	}

	t.log.Infof("leverage set to %dx", ack.Leverage)
	return ack, nil
}

// ClosePosition flattens the current position with a market order on the
// opposite side for the absolute held amount. No position returns (nil, nil).
// The closing order runs through the same validated market order path, so a
// held amount that violates the quantity precision rules fails validation.
// The two calls are not transactional: if the order fails the position is
// unchanged.
func (t *Trader) ClosePosition(ctx context.Context, symbol string) (*exchange.OrderAck, error) {
	position, err := t.Position(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if position == nil {
		t.log.Infof("no position to close for %s", symbol)
		return nil, nil
	}

	side := position.Side().Opposite()
	quantity := position.Amount.Abs().InexactFloat64()
	t.log.Infof("closing position: %s %v %s", side, quantity, symbol)

	order, err := t.PlaceMarketOrder(ctx, symbol, string(side), quantity)
	if err != nil {
		return nil, err
	}

	t.log.Infof("position closed: order id %d", order.OrderID)
	return order, nil
}

// parsePosition converts one position risk row, mapping zero exposure to nil.
func parsePosition(pos exchange.PositionRisk) (*types.Position, error) {
	amount, err := decimal.NewFromString(pos.PositionAmt)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, nil
	}
	entryPrice, err := decimal.NewFromString(pos.EntryPrice)
	if err != nil {
		return nil, err
	}
	markPrice, err := decimal.NewFromString(pos.MarkPrice)
	if err != nil {
		return nil, err
	}
	pnl, err := decimal.NewFromString(pos.UnRealizedProfit)
	if err != nil {
		return nil, err
	}
	leverage, err := strconv.Atoi(pos.Leverage)
	if err != nil {
		return nil, err
	}
	return &types.Position{
		Symbol:        pos.Symbol,
		Amount:        amount,
		EntryPrice:    entryPrice,
		MarkPrice:     markPrice,
		UnrealizedPnL: pnl,
		Leverage:      leverage,
	}, nil
}
