package common

import "fmt"

// Order is a working order. It is immutable on arrival except for Quantity,
// which counts down as fills are taken out of it. TotalQuantity keeps the
// volume originally requested.
type Order struct {
	Ref           Ref       // Engine-issued identity
	Side          Side      // Order side
	OrderType     OrderType //
	LimitPrice    Price     // Limiting price; zero and ignored for market orders
	Quantity      Quantity  // Remaining quantity
	TotalQuantity Quantity  // Total volume requested
}

// Filled reports whether the order has no remaining quantity.
func (order *Order) Filled() bool {
	return order.Quantity == 0
}

func (order Order) String() string {
	return fmt.Sprintf("ref=%d side=%s type=%s price=%s qty=%d/%d",
		order.Ref,
		order.Side,
		order.OrderType,
		order.LimitPrice,
		order.Quantity,
		order.TotalQuantity,
	)
}
