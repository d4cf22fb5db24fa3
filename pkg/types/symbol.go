package types

// Symbol is a supported USDT-M futures trading pair. The set is closed:
// anything outside it is rejected before a request ever reaches the exchange.
type Symbol string

const (
	SymbolBTCUSDT  = Symbol("BTCUSDT")
	SymbolETHUSDT  = Symbol("ETHUSDT")
	SymbolBNBUSDT  = Symbol("BNBUSDT")
	SymbolADAUSDT  = Symbol("ADAUSDT")
	SymbolDOGEUSDT = Symbol("DOGEUSDT")
	SymbolSOLUSDT  = Symbol("SOLUSDT")
)

var supportedSymbols = []Symbol{
	SymbolBTCUSDT,
	SymbolETHUSDT,
	SymbolBNBUSDT,
	SymbolADAUSDT,
	SymbolDOGEUSDT,
	SymbolSOLUSDT,
}

// Symbols matched exactly; case normalization is the caller's job.
func (s Symbol) Valid() bool {
	for _, sym := range supportedSymbols {
		if s == sym {
			return true
		}
	}
	return false
}

// Symbols returns the supported pairs, for prompts and help text.
func Symbols() []Symbol {
	out := make([]Symbol, len(supportedSymbols))
	copy(out, supportedSymbols)
	return out
}
