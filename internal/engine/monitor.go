package engine

import "skoll/internal/common"

// Monitor observes the engine. All calls are synchronous and happen inside
// the Submit call that caused them: the submit event first, then any trades
// in match order, then at most one cancel for an unresting residual. A
// monitor must not call back into the engine.
type Monitor interface {
	OnSubmit(ref common.Ref, orderType common.OrderType, side common.Side, price common.Price, quantity common.Quantity)
	OnTrade(report common.ExecutionReport)
	OnCancel(ref common.Ref, quantity common.Quantity)
}
