// Package core is the operator-facing front end: subcommand dispatch and the
// interactive menu. It owns no trading decisions; it normalizes input case,
// calls the trader, and renders results and the two error kinds.
package core

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"futures-bot/config"
	"futures-bot/pkg/exchange"
	"futures-bot/pkg/trader"
	"futures-bot/pkg/types"
	"futures-bot/pkg/validation"
)

// Run dispatches one subcommand. Returned errors are already user-facing.
func Run(ctx context.Context, tr *trader.Trader, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return errors.New("no command given")
	}

	var err error
	switch args[0] {
	case "order":
		err = runOrder(ctx, tr, args[1:])
	case "balance":
		err = runBalance(ctx, tr, cfg, args[1:])
	case "price":
		err = runPrice(ctx, tr, args[1:])
	case "position":
		err = runPosition(ctx, tr, args[1:])
	case "close":
		err = runClose(ctx, tr, args[1:])
	case "orders":
		err = runOpenOrders(ctx, tr, args[1:])
	case "cancel":
		err = runCancel(ctx, tr, args[1:])
	case "leverage":
		err = runLeverage(ctx, tr, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		printUsage()
		err = fmt.Errorf("unknown command: %s", args[0])
	}
	return describeError(err)
}

func runOrder(ctx context.Context, tr *trader.Trader, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: order market|limit [flags]")
	}
	switch args[0] {
	case "market":
		fs := flag.NewFlagSet("order market", flag.ContinueOnError)
		symbol := fs.String("symbol", "", "trading symbol")
		side := fs.String("side", "", "order side (BUY/SELL)")
		quantity := fs.Float64("quantity", 0, "order quantity")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		order, err := tr.PlaceMarketOrder(ctx, normalize(*symbol), normalize(*side), *quantity)
		if err != nil {
			return err
		}
		fmt.Println("\nMarket order placed successfully")
		printOrderAck(order)
		return nil
	case "limit":
		fs := flag.NewFlagSet("order limit", flag.ContinueOnError)
		symbol := fs.String("symbol", "", "trading symbol")
		side := fs.String("side", "", "order side (BUY/SELL)")
		quantity := fs.Float64("quantity", 0, "order quantity")
		price := fs.Float64("price", 0, "limit price")
		tif := fs.String("tif", "GTC", "time in force (GTC/IOC/FOK)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		order, err := tr.PlaceLimitOrder(ctx, normalize(*symbol), normalize(*side), *quantity, *price, normalize(*tif))
		if err != nil {
			return err
		}
		fmt.Println("\nLimit order placed successfully")
		printOrderAck(order)
		return nil
	default:
		return fmt.Errorf("unknown order type: %s", args[0])
	}
}

func runBalance(ctx context.Context, tr *trader.Trader, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("balance", flag.ContinueOnError)
	asset := fs.String("asset", cfg.Trading.DefaultAsset, "asset to check")
	if err := fs.Parse(args); err != nil {
		return err
	}
	balance, err := tr.Balance(ctx, normalize(*asset))
	if err != nil {
		return err
	}
	fmt.Printf("\n%s Balance: %s\n", normalize(*asset), balance)
	return nil
}

func runPrice(ctx context.Context, tr *trader.Trader, args []string) error {
	fs := flag.NewFlagSet("price", flag.ContinueOnError)
	symbol := fs.String("symbol", "", "trading symbol")
	if err := fs.Parse(args); err != nil {
		return err
	}
	price, err := tr.Price(ctx, normalize(*symbol))
	if err != nil {
		return err
	}
	fmt.Printf("\n%s Current Price: %s\n", normalize(*symbol), price)
	return nil
}

func runPosition(ctx context.Context, tr *trader.Trader, args []string) error {
	fs := flag.NewFlagSet("position", flag.ContinueOnError)
	symbol := fs.String("symbol", "", "trading symbol")
	if err := fs.Parse(args); err != nil {
		return err
	}
	position, err := tr.Position(ctx, normalize(*symbol))
	if err != nil {
		return err
	}
	printPosition(normalize(*symbol), position)
	return nil
}

func runClose(ctx context.Context, tr *trader.Trader, args []string) error {
	fs := flag.NewFlagSet("close", flag.ContinueOnError)
	symbol := fs.String("symbol", "", "trading symbol")
	if err := fs.Parse(args); err != nil {
		return err
	}
	order, err := tr.ClosePosition(ctx, normalize(*symbol))
	if err != nil {
		return err
	}
	if order == nil {
		fmt.Printf("\nNo position to close for %s\n", normalize(*symbol))
		return nil
	}
	fmt.Println("\nPosition closed successfully")
	printOrderAck(order)
	return nil
}

func runOpenOrders(ctx context.Context, tr *trader.Trader, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	symbol := fs.String("symbol", "", "trading symbol")
	if err := fs.Parse(args); err != nil {
		return err
	}
	orders, err := tr.OpenOrders(ctx, normalize(*symbol))
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Printf("\nNo open orders for %s\n", normalize(*symbol))
		return nil
	}
	fmt.Printf("\nOpen Orders for %s:\n", normalize(*symbol))
	for _, order := range orders {
		fmt.Printf("\nOrder ID: %d\n", order.OrderID)
		fmt.Printf("Type: %s | Side: %s\n", order.Type, order.Side)
		fmt.Printf("Quantity: %s | Price: %s\n", order.OrigQuantity, order.Price)
		fmt.Printf("Status: %s\n", order.Status)
	}
	return nil
}

func runCancel(ctx context.Context, tr *trader.Trader, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: cancel one|all [flags]")
	}
	switch args[0] {
	case "one":
		fs := flag.NewFlagSet("cancel one", flag.ContinueOnError)
		symbol := fs.String("symbol", "", "trading symbol")
		orderID := fs.Int64("order-id", 0, "order id to cancel")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		ack, err := tr.CancelOrder(ctx, normalize(*symbol), *orderID)
		if err != nil {
			return err
		}
		fmt.Println("\nOrder cancelled successfully")
		fmt.Printf("Order ID: %d\n", ack.OrderID)
		return nil
	case "all":
		fs := flag.NewFlagSet("cancel all", flag.ContinueOnError)
		symbol := fs.String("symbol", "", "trading symbol")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if err := tr.CancelAllOrders(ctx, normalize(*symbol)); err != nil {
			return err
		}
		fmt.Printf("\nAll orders cancelled for %s\n", normalize(*symbol))
		return nil
	default:
		return fmt.Errorf("unknown cancel type: %s", args[0])
	}
}

func runLeverage(ctx context.Context, tr *trader.Trader, args []string) error {
	fs := flag.NewFlagSet("leverage", flag.ContinueOnError)
	symbol := fs.String("symbol", "", "trading symbol")
	leverage := fs.Int("leverage", 0, "leverage value (1-125)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ack, err := tr.SetLeverage(ctx, normalize(*symbol), *leverage)
	if err != nil {
		return err
	}
	fmt.Println("\nLeverage set successfully")
	fmt.Printf("Symbol: %s\n", ack.Symbol)
	fmt.Printf("Leverage: %dx\n", ack.Leverage)
	return nil
}

// normalize uppercases operator input before it reaches the validators, which
// match symbols and sides exactly.
func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func printOrderAck(order *exchange.OrderAck) {
	fmt.Printf("Order ID: %d\n", order.OrderID)
	fmt.Printf("Status: %s\n", order.Status)
	if order.Price != "" {
		fmt.Printf("Price: %s\n", order.Price)
	}
	if order.ExecutedQuantity != "" {
		fmt.Printf("Executed Quantity: %s\n", order.ExecutedQuantity)
	}
	if order.TimeInForce != "" {
		fmt.Printf("Time in Force: %s\n", order.TimeInForce)
	}
}

func printPosition(symbol string, position *types.Position) {
	if position == nil {
		fmt.Printf("\nNo open position for %s\n", symbol)
		return
	}
	fmt.Printf("\nCurrent Position for %s:\n", symbol)
	fmt.Printf("Amount: %s\n", position.Amount)
	fmt.Printf("Entry Price: %s\n", position.EntryPrice)
	fmt.Printf("Mark Price: %s\n", position.MarkPrice)
	fmt.Printf("Unrealized PnL: %s\n", position.UnrealizedPnL)
	fmt.Printf("Leverage: %dx\n", position.Leverage)
}

// describeError prefixes the two error kinds so an operator can tell bad
// input from an exchange failure at a glance.
func describeError(err error) error {
	if err == nil {
		return nil
	}
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return fmt.Errorf("validation error: %s", vErr.Message)
	}
	var exErr *trader.ExchangeError
	if errors.As(err, &exErr) {
		return fmt.Errorf("runtime error: %s", exErr.Error())
	}
	return err
}

func printUsage() {
	symbols := make([]string, 0, len(types.Symbols()))
	for _, s := range types.Symbols() {
		symbols = append(symbols, string(s))
	}
	fmt.Printf(`Binance Futures Trading Bot

Usage:
  futures-bot                                    interactive menu
  futures-bot order market -symbol BTCUSDT -side BUY -quantity 0.001
  futures-bot order limit -symbol BTCUSDT -side SELL -quantity 0.001 -price 35000 -tif GTC
  futures-bot balance [-asset USDT]
  futures-bot price -symbol BTCUSDT
  futures-bot position -symbol BTCUSDT
  futures-bot close -symbol BTCUSDT
  futures-bot orders -symbol BTCUSDT
  futures-bot cancel one -symbol BTCUSDT -order-id 12345678
  futures-bot cancel all -symbol BTCUSDT
  futures-bot leverage -symbol BTCUSDT -leverage 10

Symbols: %s
`, strings.Join(symbols, ", "))
}
