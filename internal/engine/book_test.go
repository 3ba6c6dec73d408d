package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skoll/internal/common"
	"skoll/internal/engine"
)

func bookOrder(ref common.Ref, side common.Side, price common.Price, quantity common.Quantity) *common.Order {
	return &common.Order{
		Ref:           ref,
		Side:          side,
		OrderType:     common.LimitOrder,
		LimitPrice:    price,
		Quantity:      quantity,
		TotalQuantity: quantity,
	}
}

func TestHalfBook_CallSideSortsDescending(t *testing.T) {
	hb := engine.NewHalfBook(common.Call)
	hb.Insert(bookOrder(0, common.Call, 1010, 5))
	hb.Insert(bookOrder(1, common.Call, 1000, 5))
	hb.Insert(bookOrder(2, common.Call, 1020, 5))

	var prices []common.Price
	for _, level := range hb.Items() {
		prices = append(prices, level.Price)
	}
	assert.Equal(t, []common.Price{1020, 1010, 1000}, prices)

	best, ok := hb.BestPrice()
	require.True(t, ok)
	assert.Equal(t, common.Price(1020), best)
}

func TestHalfBook_PutSideSortsAscending(t *testing.T) {
	hb := engine.NewHalfBook(common.Put)
	hb.Insert(bookOrder(0, common.Put, 1050, 5))
	hb.Insert(bookOrder(1, common.Put, 1060, 5))
	hb.Insert(bookOrder(2, common.Put, 1040, 5))

	var prices []common.Price
	for _, level := range hb.Items() {
		prices = append(prices, level.Price)
	}
	assert.Equal(t, []common.Price{1040, 1050, 1060}, prices)

	best, ok := hb.BestPrice()
	require.True(t, ok)
	assert.Equal(t, common.Price(1040), best)
}

func TestHalfBook_InsertMergesIntoExistingLevel(t *testing.T) {
	hb := engine.NewHalfBook(common.Call)
	first := bookOrder(0, common.Call, 1000, 3)
	second := bookOrder(1, common.Call, 1000, 7)
	hb.Insert(first)
	hb.Insert(second)

	require.Equal(t, 1, hb.Len())
	level, ok := hb.Best()
	require.True(t, ok)
	// FIFO: the earlier arrival stays at the head.
	assert.Equal(t, []*common.Order{first, second}, level.Orders)
}

func TestHalfBook_RemoveDropsLevel(t *testing.T) {
	hb := engine.NewHalfBook(common.Put)
	hb.Insert(bookOrder(0, common.Put, 1040, 5))
	hb.Insert(bookOrder(1, common.Put, 1050, 5))

	level, ok := hb.Best()
	require.True(t, ok)
	hb.Remove(level)

	assert.Equal(t, 1, hb.Len())
	best, ok := hb.BestPrice()
	require.True(t, ok)
	assert.Equal(t, common.Price(1050), best)
}

func TestHalfBook_EmptyBest(t *testing.T) {
	hb := engine.NewHalfBook(common.Call)
	_, ok := hb.Best()
	assert.False(t, ok)
	_, ok = hb.BestPrice()
	assert.False(t, ok)
	assert.Zero(t, hb.Len())
}
