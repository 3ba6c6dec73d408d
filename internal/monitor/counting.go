package monitor

import (
	"sync/atomic"

	"skoll/internal/common"
)

// Counting tallies events and nothing else; it backs the run summary.
// Counters are atomic so one instance can be shared across engine shards.
type Counting struct {
	submits atomic.Uint64
	trades  atomic.Uint64
	cancels atomic.Uint64
	volume  atomic.Uint64
}

func (m *Counting) OnSubmit(common.Ref, common.OrderType, common.Side, common.Price, common.Quantity) {
	m.submits.Add(1)
}

func (m *Counting) OnTrade(report common.ExecutionReport) {
	m.trades.Add(1)
	m.volume.Add(uint64(report.Quantity))
}

func (m *Counting) OnCancel(common.Ref, common.Quantity) {
	m.cancels.Add(1)
}

func (m *Counting) Submits() uint64 { return m.submits.Load() }
func (m *Counting) Trades() uint64  { return m.trades.Load() }
func (m *Counting) Cancels() uint64 { return m.cancels.Load() }

// Volume is the total quantity traded.
func (m *Counting) Volume() uint64 { return m.volume.Load() }
