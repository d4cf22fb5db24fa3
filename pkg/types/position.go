package types

import "github.com/shopspring/decimal"

// Position is the net signed exposure to a symbol: positive amount is long,
// negative is short. "No position" is a nil *Position, never a zero value.
type Position struct {
	Symbol        string          `json:"symbol"`
	Amount        decimal.Decimal `json:"amount"`
	EntryPrice    decimal.Decimal `json:"entry_price"`
	MarkPrice     decimal.Decimal `json:"mark_price"`
	UnrealizedPnL decimal.Decimal `json:"unrealized_pnl"`
	Leverage      int             `json:"leverage"`
}

func (p *Position) Side() OrderSide {
	if p.Amount.IsNegative() {
		return OrderSideSell
	}
	return OrderSideBuy
}
