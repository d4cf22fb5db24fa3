package core

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"futures-bot/config"
	"futures-bot/pkg/exchange"
	"futures-bot/pkg/trader"
)

// stubClient satisfies exchange.Client with canned responses so menu flows can
// run without a network.
type stubClient struct {
	priceCalls int
}

func (s *stubClient) Account(ctx context.Context) (*exchange.AccountInfo, error) {
	return &exchange.AccountInfo{CanTrade: true}, nil
}

func (s *stubClient) TickerPrice(ctx context.Context, symbol string) (string, error) {
	s.priceCalls++
	return "65000.00", nil
}

func (s *stubClient) NewOrder(ctx context.Context, params exchange.OrderParams) (*exchange.OrderAck, error) {
	return &exchange.OrderAck{OrderID: 1, Status: "NEW"}, nil
}

func (s *stubClient) CancelOrder(ctx context.Context, symbol string, orderID int64) (*exchange.OrderAck, error) {
	return &exchange.OrderAck{OrderID: orderID, Status: "CANCELED"}, nil
}

func (s *stubClient) CancelAllOrders(ctx context.Context, symbol string) error {
	return nil
}

func (s *stubClient) OpenOrders(ctx context.Context, symbol string) ([]exchange.OrderAck, error) {
	return nil, nil
}

func (s *stubClient) PositionRisk(ctx context.Context, symbol string) ([]exchange.PositionRisk, error) {
	return nil, nil
}

func (s *stubClient) ChangeLeverage(ctx context.Context, symbol string, leverage int) (*exchange.LeverageAck, error) {
	return &exchange.LeverageAck{Symbol: symbol, Leverage: leverage}, nil
}

func newMenuTrader(client exchange.Client) *trader.Trader {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return trader.NewWithClient(client, logger)
}

func runMenu(t *testing.T, input string, client exchange.Client) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		menuLoop(context.Background(), newMenuTrader(client), &config.Config{}, bufio.NewReader(strings.NewReader(input)))
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("menu loop did not terminate")
	}
}

func TestMenuExitsOnZero(t *testing.T) {
	runMenu(t, "0\n", &stubClient{})
}

// Exhausted input must end the loop like an explicit exit, not respin the
// prompt on empty reads.
func TestMenuExitsWhenInputEnds(t *testing.T) {
	runMenu(t, "", &stubClient{})
}

func TestMenuExitsWhenInputEndsMidFlow(t *testing.T) {
	// option chosen, then stdin closes before the symbol prompt
	runMenu(t, "4\n", &stubClient{})

	// invalid option, then stdin closes at the continue prompt
	runMenu(t, "99\n", &stubClient{})
}

func TestMenuRunsOperationThenExits(t *testing.T) {
	client := &stubClient{}
	runMenu(t, "4\nBTCUSDT\n\n0\n", client)
	assert.Equal(t, 1, client.priceCalls)
}
