package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"skoll/internal/common"
)

var (
	ErrUnknownSymbol = errors.New("unknown symbol")
	ErrInvalidOrder  = errors.New("invalid order")
)

// Bands used to seed each book with standing limit orders. The gap between
// the call and put price bands keeps every book uncrossed at startup.
const (
	seedCallPriceMin = 1000
	seedCallPriceMax = 1030
	seedPutPriceMin  = 1040
	seedPutPriceMax  = 1060
	seedQuantityMin  = 100
	seedQuantityMax  = 1000
)

// OrderSpec is what a caller submits; the engine fills in identity.
type OrderSpec struct {
	Side      common.Side
	OrderType common.OrderType
	Price     common.Price
	Quantity  common.Quantity
}

func (spec OrderSpec) validate() error {
	if spec.Quantity == 0 {
		return fmt.Errorf("%w: zero quantity", ErrInvalidOrder)
	}
	if spec.Price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidOrder)
	}
	if spec.OrderType == common.LimitOrder && spec.Price == 0 {
		return fmt.Errorf("%w: limit order without a price", ErrInvalidOrder)
	}
	return nil
}

// Engine routes submissions to per-symbol instrument books and owns the ref
// sequence that serializes identity across them. It processes one submission
// to completion, monitor callbacks included, before accepting the next; the
// engine itself never spawns goroutines.
type Engine struct {
	mon         Monitor
	refs        RefSequence
	instruments map[common.Symbol]*Instrument
	submitting  bool
}

// New registers one instrument per symbol and seeds each side of each book
// with prepopulate/2 standing limit orders drawn from rng. Seeding goes
// through the normal submission path, so the monitor sees those submits and
// the seeded refs precede any caller's. rng may be nil when prepopulate is
// zero. Instruments are never auto-created later; submitting to a symbol
// missing here fails with ErrUnknownSymbol.
func New(mon Monitor, symbols []common.Symbol, prepopulate uint, rng *rand.Rand) *Engine {
	engine := &Engine{
		mon:         mon,
		instruments: make(map[common.Symbol]*Instrument, len(symbols)),
	}
	for _, symbol := range symbols {
		instrument := NewInstrument(symbol, mon)
		engine.instruments[symbol] = instrument
		engine.seed(instrument, prepopulate, rng)
	}
	return engine
}

// Submit assigns a fresh ref to spec and hands it to the instrument book for
// symbol. The assigned ref is returned even when the order does not rest.
// Invalid specs are rejected before a ref is consumed or any event emitted.
func (engine *Engine) Submit(symbol common.Symbol, spec OrderSpec) (common.Ref, error) {
	if engine.submitting {
		panic("engine: monitor reentered Submit")
	}
	if err := spec.validate(); err != nil {
		return 0, err
	}
	instrument, ok := engine.instruments[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return engine.place(instrument, spec), nil
}

// Instrument exposes the book for symbol, mainly for inspection.
func (engine *Engine) Instrument(symbol common.Symbol) (*Instrument, bool) {
	instrument, ok := engine.instruments[symbol]
	return instrument, ok
}

// Len reports the number of registered instruments.
func (engine *Engine) Len() int {
	return len(engine.instruments)
}

func (engine *Engine) place(instrument *Instrument, spec OrderSpec) common.Ref {
	engine.submitting = true
	defer func() { engine.submitting = false }()

	price := spec.Price
	if spec.OrderType == common.MarketOrder {
		price = 0
	}
	order := &common.Order{
		Ref:           engine.refs.Next(),
		Side:          spec.Side,
		OrderType:     spec.OrderType,
		LimitPrice:    price,
		Quantity:      spec.Quantity,
		TotalQuantity: spec.Quantity,
	}
	instrument.Submit(order)
	return order.Ref
}

func (engine *Engine) seed(instrument *Instrument, count uint, rng *rand.Rand) {
	for i := uint(0); i < count/2; i++ {
		engine.place(instrument, OrderSpec{
			Side:      common.Call,
			OrderType: common.LimitOrder,
			Price:     randPrice(rng, seedCallPriceMin, seedCallPriceMax),
			Quantity:  randQuantity(rng, seedQuantityMin, seedQuantityMax),
		})
	}
	for i := uint(0); i < count/2; i++ {
		engine.place(instrument, OrderSpec{
			Side:      common.Put,
			OrderType: common.LimitOrder,
			Price:     randPrice(rng, seedPutPriceMin, seedPutPriceMax),
			Quantity:  randQuantity(rng, seedQuantityMin, seedQuantityMax),
		})
	}
}

func randPrice(rng *rand.Rand, lo, hi int64) common.Price {
	return common.Price(lo + rng.Int63n(hi-lo+1))
}

func randQuantity(rng *rand.Rand, lo, hi int64) common.Quantity {
	return common.Quantity(lo + rng.Int63n(hi-lo+1))
}
