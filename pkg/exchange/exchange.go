// Package exchange declares the REST surface the trading facade depends on.
// Numeric fields coming back from the exchange stay as strings: parsing into
// exact decimals is the facade's job, everything else is opaque pass-through.
package exchange

import (
	"context"

	"futures-bot/pkg/types"
)

// OrderParams carries a validated, normalized order. Quantity and Price are
// pre-formatted decimal strings; Price and TimeInForce are empty for market
// orders.
type OrderParams struct {
	Symbol      types.Symbol
	Side        types.OrderSide
	Type        types.OrderType
	Quantity    string
	Price       string
	TimeInForce types.OrderTIF
}

type AssetBalance struct {
	Asset            string
	WalletBalance    string
	AvailableBalance string
}

type AccountInfo struct {
	CanTrade           bool
	TotalWalletBalance string
	Assets             []AssetBalance
}

// OrderAck is the exchange's acknowledgement of an order action.
type OrderAck struct {
	OrderID          int64
	Symbol           string
	Status           string
	Type             string
	Side             string
	Price            string
	OrigQuantity     string
	ExecutedQuantity string
	TimeInForce      string
}

// PositionRisk is one row of the position risk endpoint, one per symbol even
// with zero exposure (or several in hedge mode).
type PositionRisk struct {
	Symbol           string
	PositionAmt      string
	EntryPrice       string
	MarkPrice        string
	UnRealizedProfit string
	Leverage         string
}

type LeverageAck struct {
	Symbol           string
	Leverage         int
	MaxNotionalValue string
}

// Client is the authenticated futures REST client the facade drives. Every
// call is a single blocking round-trip; timeouts belong to the transport.
type Client interface {
	Account(ctx context.Context) (*AccountInfo, error)
	TickerPrice(ctx context.Context, symbol string) (string, error)
	NewOrder(ctx context.Context, params OrderParams) (*OrderAck, error)
	CancelOrder(ctx context.Context, symbol string, orderID int64) (*OrderAck, error)
	CancelAllOrders(ctx context.Context, symbol string) error
	OpenOrders(ctx context.Context, symbol string) ([]OrderAck, error)
	PositionRisk(ctx context.Context, symbol string) ([]PositionRisk, error)
	ChangeLeverage(ctx context.Context, symbol string, leverage int) (*LeverageAck, error)
}
