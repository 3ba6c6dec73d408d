package sim

import (
	"math/rand"

	"skoll/internal/common"
	"skoll/internal/engine"
)

// Price and quantity bands for the synthetic workload. Limit prices span
// both seeded bands and the gap between them, so some orders cross and some
// rest.
const (
	workPriceMin    = 1000
	workPriceMax    = 1060
	workQuantityMax = 1000
)

// Submission pairs a symbol with the order to submit to it.
type Submission struct {
	Symbol common.Symbol
	Spec   engine.OrderSpec
}

// Generate precomputes count random submissions over symbolCount instruments.
// The workload is built up front so RNG cost stays outside the timed section,
// and a fixed rng seed reproduces the run exactly.
func Generate(count, symbolCount uint, rng *rand.Rand) []Submission {
	subs := make([]Submission, count)
	for i := range subs {
		spec := engine.OrderSpec{
			Side:      common.Side(rng.Intn(2)),
			OrderType: common.OrderType(rng.Intn(2)),
			Quantity:  common.Quantity(1 + rng.Int63n(workQuantityMax)),
		}
		if spec.OrderType == common.LimitOrder {
			spec.Price = common.Price(workPriceMin + rng.Int63n(workPriceMax-workPriceMin+1))
		}
		subs[i] = Submission{
			Symbol: SymbolName(uint(rng.Intn(int(symbolCount)))),
			Spec:   spec,
		}
	}
	return subs
}
