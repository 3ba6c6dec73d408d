package engine

import (
	"time"

	"skoll/internal/common"
)

// Instrument is the book for a single symbol: a pair of half-books plus the
// matching logic. Each instrument exclusively owns its resting orders; the
// monitor is shared with the owning engine and borrowed for the duration of
// each submit.
type Instrument struct {
	symbol common.Symbol
	bids   *HalfBook
	asks   *HalfBook
	mon    Monitor
}

func NewInstrument(symbol common.Symbol, mon Monitor) *Instrument {
	return &Instrument{
		symbol: symbol,
		bids:   NewHalfBook(common.Call),
		asks:   NewHalfBook(common.Put),
		mon:    mon,
	}
}

func (ins *Instrument) Symbol() common.Symbol { return ins.symbol }

// Bids is the call-side half-book.
func (ins *Instrument) Bids() *HalfBook { return ins.bids }

// Asks is the put-side half-book.
func (ins *Instrument) Asks() *HalfBook { return ins.asks }

// Submit runs order through the book. The submit event fires before any
// matching work; trades fire in match order; after the match loop a market
// residual is cancelled and a limit residual rests silently. order.Ref must
// already be assigned.
func (ins *Instrument) Submit(order *common.Order) {
	ins.mon.OnSubmit(order.Ref, order.OrderType, order.Side, order.LimitPrice, order.Quantity)

	ins.match(order)

	if order.Filled() {
		return
	}
	if order.OrderType == common.MarketOrder {
		ins.mon.OnCancel(order.Ref, order.Quantity)
		return
	}
	ins.book(order.Side).Insert(order)
}

// match couples order against the opposite half-book while its best level is
// marketable, crossing as many levels as necessary. Levels are consumed best
// price first and orders within a level in arrival order. The resting side
// dictates the trade price.
func (ins *Instrument) match(order *common.Order) {
	opposite := ins.book(order.Side.Opposite())

	for order.Quantity > 0 {
		level, ok := opposite.Best()
		if !ok || !marketable(order, level.Price) {
			return
		}

		resting := level.Orders[0]
		fill := min(order.Quantity, resting.Quantity)
		order.Quantity -= fill
		resting.Quantity -= fill

		ins.mon.OnTrade(ins.report(order, resting, level.Price, fill))

		if resting.Filled() {
			level.Orders = level.Orders[1:]
			if len(level.Orders) == 0 {
				opposite.Remove(level)
			}
		}
	}
}

// marketable reports whether order can trade at the opposite best price. A
// limit priced exactly at the opposite best is marketable.
func marketable(order *common.Order, best common.Price) bool {
	if order.OrderType == common.MarketOrder {
		return true
	}
	if order.Side == common.Call {
		return best <= order.LimitPrice
	}
	return best >= order.LimitPrice
}

func (ins *Instrument) book(side common.Side) *HalfBook {
	if side == common.Call {
		return ins.bids
	}
	return ins.asks
}

func (ins *Instrument) report(taker, maker *common.Order, price common.Price, quantity common.Quantity) common.ExecutionReport {
	report := common.ExecutionReport{
		Symbol:    ins.symbol,
		Price:     price,
		Quantity:  quantity,
		Timestamp: time.Now(),
	}
	if taker.Side == common.Call {
		report.BuyRef, report.SellRef = taker.Ref, maker.Ref
	} else {
		report.BuyRef, report.SellRef = maker.Ref, taker.Ref
	}
	return report
}
