package engine

import (
	"github.com/tidwall/btree"

	"skoll/internal/common"
)

// PriceLevel holds the resting orders at a single price, FIFO by arrival:
// new orders append at the tail, matching consumes from the head. All orders
// at a level share its price and side.
type PriceLevel struct {
	Price  common.Price
	Orders []*common.Order
}

type priceLevels = btree.BTreeG[*PriceLevel]

// HalfBook is one side of an instrument book: price levels keyed by price,
// sorted so the most aggressive price comes first. Bids sort descending,
// asks ascending. Empty levels are never retained.
type HalfBook struct {
	side   common.Side
	levels *priceLevels
}

func NewHalfBook(side common.Side) *HalfBook {
	var less func(a, b *PriceLevel) bool
	if side == common.Call {
		// Sorted greatest first.
		less = func(a, b *PriceLevel) bool { return a.Price > b.Price }
	} else {
		// Sorted least first.
		less = func(a, b *PriceLevel) bool { return a.Price < b.Price }
	}
	return &HalfBook{
		side:   side,
		levels: btree.NewBTreeG(less),
	}
}

// Best returns the most aggressive level, if any.
func (hb *HalfBook) Best() (*PriceLevel, bool) {
	return hb.levels.MinMut()
}

// BestPrice returns the most aggressive resting price, if any.
func (hb *HalfBook) BestPrice() (common.Price, bool) {
	level, ok := hb.levels.MinMut()
	if !ok {
		return 0, false
	}
	return level.Price, true
}

// Insert rests order at the tail of its price level, creating the level if
// absent.
func (hb *HalfBook) Insert(order *common.Order) {
	// The comparator only looks at price, so a bare level works as the key.
	level, ok := hb.levels.GetMut(&PriceLevel{Price: order.LimitPrice})
	if ok {
		level.Orders = append(level.Orders, order)
		return
	}
	hb.levels.Set(&PriceLevel{
		Price:  order.LimitPrice,
		Orders: []*common.Order{order},
	})
}

// Remove drops level from the half-book.
func (hb *HalfBook) Remove(level *PriceLevel) {
	hb.levels.Delete(level)
}

// Len reports the number of price levels.
func (hb *HalfBook) Len() int {
	return hb.levels.Len()
}

// Items snapshots all levels in priority order.
func (hb *HalfBook) Items() []*PriceLevel {
	return hb.levels.Items()
}
