package monitor

import (
	"skoll/internal/common"
	"skoll/internal/engine"
)

// Multi fans every event out to each monitor in order.
type Multi []engine.Monitor

func (m Multi) OnSubmit(ref common.Ref, orderType common.OrderType, side common.Side, price common.Price, quantity common.Quantity) {
	for _, mon := range m {
		mon.OnSubmit(ref, orderType, side, price, quantity)
	}
}

func (m Multi) OnTrade(report common.ExecutionReport) {
	for _, mon := range m {
		mon.OnTrade(report)
	}
}

func (m Multi) OnCancel(ref common.Ref, quantity common.Quantity) {
	for _, mon := range m {
		mon.OnCancel(ref, quantity)
	}
}
