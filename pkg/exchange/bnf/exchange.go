// Package bnf adapts the go-binance USDT-M futures client to the exchange
// surface the trading facade needs.
package bnf

import (
	"context"
	"fmt"

	"github.com/adshao/go-binance/v2/futures"

	"futures-bot/pkg/exchange"
	"futures-bot/pkg/types"
	"futures-bot/pkg/validation"
)

type BnfExchange struct {
	fClient *futures.Client
}

// New builds a client from validated credentials. The base URL override keeps
// testnet and production selectable through configuration alone.
func New(creds *validation.APICredentials) (*BnfExchange, error) {
	if creds == nil {
		return nil, fmt.Errorf("credentials are not set")
	}
	fClient := futures.NewClient(creds.APIKey, creds.SecretKey)
	fClient.BaseURL = creds.BaseURL
	return &BnfExchange{fClient: fClient}, nil
}

func (e *BnfExchange) Account(ctx context.Context) (*exchange.AccountInfo, error) {
	res, err := e.fClient.NewGetAccountService().Do(ctx)
	if err != nil {
		return nil, err
	}
	info := &exchange.AccountInfo{
		CanTrade:           res.CanTrade,
		TotalWalletBalance: res.TotalWalletBalance,
		Assets:             make([]exchange.AssetBalance, 0, len(res.Assets)),
	}
	for _, asset := range res.Assets {
		info.Assets = append(info.Assets, exchange.AssetBalance{
			Asset:            asset.Asset,
			WalletBalance:    asset.WalletBalance,
			AvailableBalance: asset.AvailableBalance,
		})
	}
	return info, nil
}

func (e *BnfExchange) TickerPrice(ctx context.Context, symbol string) (string, error) {
	res, err := e.fClient.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		return "", err
	}
	for _, price := range res {
		if price.Symbol == symbol {
			return price.Price, nil
		}
	}
	return "", fmt.Errorf("no ticker price for symbol: %s", symbol)
}

func (e *BnfExchange) NewOrder(ctx context.Context, params exchange.OrderParams) (*exchange.OrderAck, error) {
	side, err := convertOrderSide(params.Side)
	if err != nil {
		return nil, err
	}
	orderType, err := convertOrderType(params.Type)
	if err != nil {
		return nil, err
	}
	svc := e.fClient.NewCreateOrderService().
		Symbol(string(params.Symbol)).
		Side(side).
		Type(orderType).
		Quantity(params.Quantity)
	if params.Type == types.OrderTypeLimit {
		tif, err := convertOrderTIF(params.TimeInForce)
		if err != nil {
			return nil, err
		}
		svc = svc.Price(params.Price).TimeInForce(tif)
	}
	res, err := svc.Do(ctx)
	if err != nil {
		return nil, err
	}
	return &exchange.OrderAck{
		OrderID:          res.OrderID,
		Symbol:           res.Symbol,
		Status:           string(res.Status),
		Type:             string(res.Type),
		Side:             string(res.Side),
		Price:            res.Price,
		OrigQuantity:     res.OrigQuantity,
		ExecutedQuantity: res.ExecutedQuantity,
		TimeInForce:      string(res.TimeInForce),
	}, nil
}

func (e *BnfExchange) CancelOrder(ctx context.Context, symbol string, orderID int64) (*exchange.OrderAck, error) {
	res, err := e.fClient.NewCancelOrderService().
		Symbol(symbol).
		OrderID(orderID).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	return &exchange.OrderAck{
		OrderID:          res.OrderID,
		Symbol:           res.Symbol,
		Status:           string(res.Status),
		Type:             string(res.Type),
		Side:             string(res.Side),
		Price:            res.Price,
		OrigQuantity:     res.OrigQuantity,
		ExecutedQuantity: res.ExecutedQuantity,
		TimeInForce:      string(res.TimeInForce),
	}, nil
}

func (e *BnfExchange) CancelAllOrders(ctx context.Context, symbol string) error {
	return e.fClient.NewCancelAllOpenOrdersService().Symbol(symbol).Do(ctx)
}

func (e *BnfExchange) OpenOrders(ctx context.Context, symbol string) ([]exchange.OrderAck, error) {
	res, err := e.fClient.NewListOpenOrdersService().Symbol(symbol).Do(ctx)
	if err != nil {
		return nil, err
	}
	orders := make([]exchange.OrderAck, 0, len(res))
	for _, o := range res {
		orders = append(orders, exchange.OrderAck{
			OrderID:          o.OrderID,
			Symbol:           o.Symbol,
			Status:           string(o.Status),
			Type:             string(o.Type),
			Side:             string(o.Side),
			Price:            o.Price,
			OrigQuantity:     o.OrigQuantity,
			ExecutedQuantity: o.ExecutedQuantity,
			TimeInForce:      string(o.TimeInForce),
		})
	}
	return orders, nil
}

func (e *BnfExchange) PositionRisk(ctx context.Context, symbol string) ([]exchange.PositionRisk, error) {
	res, err := e.fClient.NewGetPositionRiskService().Symbol(symbol).Do(ctx)
	if err != nil {
		return nil, err
	}
	positions := make([]exchange.PositionRisk, 0, len(res))
	for _, pos := range res {
		positions = append(positions, exchange.PositionRisk{
			Symbol:           pos.Symbol,
			PositionAmt:      pos.PositionAmt,
			EntryPrice:       pos.EntryPrice,
			MarkPrice:        pos.MarkPrice,
			UnRealizedProfit: pos.UnRealizedProfit,
			Leverage:         pos.Leverage,
		})
	}
	return positions, nil
}

func (e *BnfExchange) ChangeLeverage(ctx context.Context, symbol string, leverage int) (*exchange.LeverageAck, error) {
	res, err := e.fClient.NewChangeLeverageService().
		Symbol(symbol).
		Leverage(leverage).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	return &exchange.LeverageAck{
		Symbol:           res.Symbol,
		Leverage:         res.Leverage,
		MaxNotionalValue: res.MaxNotionalValue,
	}, nil
}
