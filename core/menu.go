package core

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"futures-bot/config"
	"futures-bot/pkg/trader"
	"futures-bot/pkg/types"
)

// Menu runs the interactive loop until the operator exits, input ends, or the
// context is cancelled. Per-operation errors are printed and the loop
// continues.
func Menu(ctx context.Context, tr *trader.Trader, cfg *config.Config) {
	menuLoop(ctx, tr, cfg, bufio.NewReader(os.Stdin))
}

func menuLoop(ctx context.Context, tr *trader.Trader, cfg *config.Config, reader *bufio.Reader) {
	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nExiting...")
			return
		default:
		}

		printMenu()
		choice, err := readLine(reader, "Select option: ")
		if err != nil || choice == "0" {
			fmt.Println("\nExiting...")
			return
		}

		if err := handleChoice(ctx, tr, cfg, reader, choice); err != nil {
			fmt.Printf("\n%v\n", describeError(err))
		}

		fmt.Print("\nPress Enter to continue...")
		if _, err := reader.ReadString('\n'); err != nil {
			fmt.Println("\nExiting...")
			return
		}
	}
}

func handleChoice(ctx context.Context, tr *trader.Trader, cfg *config.Config, reader *bufio.Reader, choice string) error {
	switch choice {
	case "1":
		fmt.Println("\n--- Place Market Order ---")
		symbol, err := readSymbol(reader)
		if err != nil {
			return err
		}
		side, err := readLine(reader, "Side (BUY, SELL): ")
		if err != nil {
			return err
		}
		quantity, err := readFloat(reader, "Quantity: ")
		if err != nil {
			return err
		}
		order, err := tr.PlaceMarketOrder(ctx, normalize(symbol), normalize(side), quantity)
		if err != nil {
			return err
		}
		fmt.Printf("\nOrder placed! Order ID: %d\n", order.OrderID)

	case "2":
		fmt.Println("\n--- Place Limit Order ---")
		symbol, err := readSymbol(reader)
		if err != nil {
			return err
		}
		side, err := readLine(reader, "Side (BUY, SELL): ")
		if err != nil {
			return err
		}
		quantity, err := readFloat(reader, "Quantity: ")
		if err != nil {
			return err
		}
		price, err := readFloat(reader, "Price: ")
		if err != nil {
			return err
		}
		tif, err := readLine(reader, "Time in Force (GTC/IOC/FOK, default GTC): ")
		if err != nil {
			return err
		}
		order, err := tr.PlaceLimitOrder(ctx, normalize(symbol), normalize(side), quantity, price, normalize(tif))
		if err != nil {
			return err
		}
		fmt.Printf("\nOrder placed! Order ID: %d\n", order.OrderID)

	case "3":
		asset, err := readLine(reader, fmt.Sprintf("Asset (default %s): ", cfg.Trading.DefaultAsset))
		if err != nil {
			return err
		}
		if asset == "" {
			asset = cfg.Trading.DefaultAsset
		}
		balance, err := tr.Balance(ctx, normalize(asset))
		if err != nil {
			return err
		}
		fmt.Printf("\n%s Balance: %s\n", normalize(asset), balance)

	case "4":
		symbol, err := readSymbol(reader)
		if err != nil {
			return err
		}
		price, err := tr.Price(ctx, normalize(symbol))
		if err != nil {
			return err
		}
		fmt.Printf("\n%s Price: %s\n", normalize(symbol), price)

	case "5":
		symbol, err := readSymbol(reader)
		if err != nil {
			return err
		}
		position, err := tr.Position(ctx, normalize(symbol))
		if err != nil {
			return err
		}
		printPosition(normalize(symbol), position)

	case "6":
		symbol, err := readSymbol(reader)
		if err != nil {
			return err
		}
		ok, err := confirm(reader, fmt.Sprintf("Confirm close position for %s? (yes/no): ", normalize(symbol)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("\nCancelled")
			return nil
		}
		order, err := tr.ClosePosition(ctx, normalize(symbol))
		if err != nil {
			return err
		}
		if order == nil {
			fmt.Println("\nNo position to close")
			return nil
		}
		fmt.Printf("\nPosition closed! Order ID: %d\n", order.OrderID)

	case "7":
		symbol, err := readSymbol(reader)
		if err != nil {
			return err
		}
		orders, err := tr.OpenOrders(ctx, normalize(symbol))
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("\nNo open orders")
			return nil
		}
		fmt.Println("\nOpen Orders:")
		for _, order := range orders {
			fmt.Printf("\nOrder ID: %d\n", order.OrderID)
			fmt.Printf("Type: %s | Side: %s\n", order.Type, order.Side)
			fmt.Printf("Quantity: %s | Price: %s\n", order.OrigQuantity, order.Price)
		}

	case "8":
		symbol, err := readSymbol(reader)
		if err != nil {
			return err
		}
		orderID, err := readInt(reader, "Order ID: ")
		if err != nil {
			return err
		}
		if _, err := tr.CancelOrder(ctx, normalize(symbol), orderID); err != nil {
			return err
		}
		fmt.Printf("\nOrder %d cancelled\n", orderID)

	case "9":
		symbol, err := readSymbol(reader)
		if err != nil {
			return err
		}
		ok, err := confirm(reader, fmt.Sprintf("Confirm cancel all orders for %s? (yes/no): ", normalize(symbol)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("\nCancelled")
			return nil
		}
		if err := tr.CancelAllOrders(ctx, normalize(symbol)); err != nil {
			return err
		}
		fmt.Printf("\nAll orders cancelled for %s\n", normalize(symbol))

	case "10":
		symbol, err := readSymbol(reader)
		if err != nil {
			return err
		}
		leverage, err := readInt(reader, "Leverage (1-125): ")
		if err != nil {
			return err
		}
		if _, err := tr.SetLeverage(ctx, normalize(symbol), int(leverage)); err != nil {
			return err
		}
		fmt.Printf("\nLeverage set to %dx for %s\n", leverage, normalize(symbol))

	default:
		fmt.Println("\nInvalid option")
	}
	return nil
}

func printMenu() {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("Binance Futures Trading Bot")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("\n[1] Place Market Order")
	fmt.Println("[2] Place Limit Order")
	fmt.Println("[3] Check Balance")
	fmt.Println("[4] Get Current Price")
	fmt.Println("[5] View Position")
	fmt.Println("[6] Close Position")
	fmt.Println("[7] View Open Orders")
	fmt.Println("[8] Cancel Order")
	fmt.Println("[9] Cancel All Orders")
	fmt.Println("[10] Set Leverage")
	fmt.Println("[0] Exit")
	fmt.Println()
}

// readLine reads one line of operator input. An exhausted stdin (Ctrl-D,
// piped input) surfaces as io.EOF so callers can stop prompting instead of
// spinning on empty reads.
func readLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", io.EOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readSymbol(reader *bufio.Reader) (string, error) {
	symbols := make([]string, 0, len(types.Symbols()))
	for _, s := range types.Symbols() {
		symbols = append(symbols, string(s))
	}
	return readLine(reader, fmt.Sprintf("Symbol (%s): ", strings.Join(symbols, ", ")))
}

func readFloat(reader *bufio.Reader, prompt string) (float64, error) {
	raw, err := readLine(reader, prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", raw)
	}
	return value, nil
}

func readInt(reader *bufio.Reader, prompt string) (int64, error) {
	raw, err := readLine(reader, prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %s", raw)
	}
	return value, nil
}

func confirm(reader *bufio.Reader, prompt string) (bool, error) {
	answer, err := readLine(reader, prompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "yes", nil
}
