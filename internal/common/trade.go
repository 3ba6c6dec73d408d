package common

import (
	"fmt"
	"time"
)

// ExecutionReport records a single fill between two counterparties. One is
// created per fill and never mutated afterwards.
type ExecutionReport struct {
	BuyRef    Ref       // The call-side order
	SellRef   Ref       // The put-side order
	Symbol    Symbol    //
	Price     Price     // The resting order's price
	Quantity  Quantity  // Quantity matched in this fill
	Timestamp time.Time // Time of the match
}

func (r ExecutionReport) String() string {
	return fmt.Sprintf("sym=%s buy=%d sell=%d price=%s qty=%d",
		r.Symbol,
		r.BuyRef,
		r.SellRef,
		r.Price,
		r.Quantity,
	)
}
