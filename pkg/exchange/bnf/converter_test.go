package bnf

import (
	"testing"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures-bot/pkg/types"
)

func TestConvertOrderSide(t *testing.T) {
	side, err := convertOrderSide(types.OrderSideBuy)
	require.NoError(t, err)
	assert.Equal(t, futures.SideTypeBuy, side)

	side, err = convertOrderSide(types.OrderSideSell)
	require.NoError(t, err)
	assert.Equal(t, futures.SideTypeSell, side)

	_, err = convertOrderSide(types.OrderSide("HOLD"))
	assert.Error(t, err)
}

func TestConvertOrderType(t *testing.T) {
	ot, err := convertOrderType(types.OrderTypeMarket)
	require.NoError(t, err)
	assert.Equal(t, futures.OrderTypeMarket, ot)

	ot, err = convertOrderType(types.OrderTypeLimit)
	require.NoError(t, err)
	assert.Equal(t, futures.OrderTypeLimit, ot)

	_, err = convertOrderType(types.OrderType("STOP_MARKET"))
	assert.Error(t, err)
}

func TestConvertOrderTIF(t *testing.T) {
	tests := []struct {
		tif  types.OrderTIF
		want futures.TimeInForceType
	}{
		{types.OrderTIFGTC, futures.TimeInForceTypeGTC},
		{types.OrderTIFIOC, futures.TimeInForceTypeIOC},
		{types.OrderTIFFOK, futures.TimeInForceTypeFOK},
	}
	for _, tt := range tests {
		got, err := convertOrderTIF(tt.tif)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := convertOrderTIF(types.OrderTIF("GTX"))
	assert.Error(t, err)
}
