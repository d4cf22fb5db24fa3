package types

type OrderSide string

const (
	OrderSideBuy  = OrderSide("BUY")
	OrderSideSell = OrderSide("SELL")
)

func (s OrderSide) Valid() bool {
	return s == OrderSideBuy || s == OrderSideSell
}

// Opposite returns the side that closes a position opened with s.
func (s OrderSide) Opposite() OrderSide {
	if s == OrderSideBuy {
		return OrderSideSell
	}
	return OrderSideBuy
}

type OrderType string

const (
	OrderTypeMarket = OrderType("MARKET")
	OrderTypeLimit  = OrderType("LIMIT")
)

func (t OrderType) Valid() bool {
	return t == OrderTypeMarket || t == OrderTypeLimit
}

type OrderTIF string // TimeInForce

const (
	OrderTIFGTC = OrderTIF("GTC") // Good 'Til Canceled
	OrderTIFIOC = OrderTIF("IOC") // Immediate or Cancel
	OrderTIFFOK = OrderTIF("FOK") // Fill or Kill
)

func (t OrderTIF) Valid() bool {
	switch t {
	case OrderTIFGTC, OrderTIFIOC, OrderTIFFOK:
		return true
	}
	return false
}
