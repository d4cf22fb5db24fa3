package trader

import "fmt"

// ExchangeError wraps any failure raised after a network attempt: transport
// errors and exchange-side rejections alike collapse into one kind carrying
// the original message. Validation errors are never wrapped into it.
type ExchangeError struct {
	Op      string
	Message string
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// exchangeErr keeps only the message of the underlying error so the transport
// type never leaks to callers.
func exchangeErr(op string, err error) error {
	return &ExchangeError{Op: op, Message: err.Error()}
}
