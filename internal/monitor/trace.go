package monitor

import (
	"github.com/rs/zerolog"

	"skoll/internal/common"
)

// Trace logs every event through a zerolog logger. Useful for small runs;
// on a benchmark workload it dominates the cost of the engine itself.
type Trace struct {
	log zerolog.Logger
}

func NewTrace(log zerolog.Logger) *Trace {
	return &Trace{log: log}
}

func (m *Trace) OnSubmit(ref common.Ref, orderType common.OrderType, side common.Side, price common.Price, quantity common.Quantity) {
	m.log.Info().
		Uint64("ref", uint64(ref)).
		Stringer("type", orderType).
		Stringer("side", side).
		Stringer("price", price).
		Uint64("quantity", uint64(quantity)).
		Msg("submit")
}

func (m *Trace) OnTrade(report common.ExecutionReport) {
	m.log.Info().
		Str("symbol", string(report.Symbol)).
		Uint64("buy", uint64(report.BuyRef)).
		Uint64("sell", uint64(report.SellRef)).
		Stringer("price", report.Price).
		Uint64("quantity", uint64(report.Quantity)).
		Msg("trade")
}

func (m *Trace) OnCancel(ref common.Ref, quantity common.Quantity) {
	m.log.Info().
		Uint64("ref", uint64(ref)).
		Uint64("quantity", uint64(quantity)).
		Msg("cancel")
}
