package sim_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skoll/internal/common"
	"skoll/internal/engine"
	"skoll/internal/monitor"
	"skoll/internal/sim"
)

func TestSymbolName(t *testing.T) {
	for index, want := range map[uint]common.Symbol{
		0:      "aaaa",
		1:      "aaab",
		25:     "aaaz",
		26:     "aaba",
		676:    "abaa",
		17576:  "baaa",
		456975: "zzzz",
	} {
		assert.Equal(t, want, sim.SymbolName(index), "index %d", index)
	}
}

func TestSymbols_UniqueAndOrdered(t *testing.T) {
	symbols := sim.Symbols(100)
	require.Len(t, symbols, 100)
	seen := make(map[common.Symbol]bool, len(symbols))
	for _, symbol := range symbols {
		assert.Len(t, string(symbol), 4)
		assert.False(t, seen[symbol], "duplicate %q", symbol)
		seen[symbol] = true
	}
	assert.Equal(t, common.Symbol("aaaa"), symbols[0])
	assert.Equal(t, common.Symbol("aadv"), symbols[99])
}

func TestGenerate_SpecsAreValid(t *testing.T) {
	subs := sim.Generate(5000, 50, rand.New(rand.NewSource(3)))
	require.Len(t, subs, 5000)

	symbols := make(map[common.Symbol]bool)
	for _, symbol := range sim.Symbols(50) {
		symbols[symbol] = true
	}

	var markets int
	for _, sub := range subs {
		assert.True(t, symbols[sub.Symbol], "symbol %q out of range", sub.Symbol)
		assert.GreaterOrEqual(t, sub.Spec.Quantity, common.Quantity(1))
		assert.LessOrEqual(t, sub.Spec.Quantity, common.Quantity(1000))
		switch sub.Spec.OrderType {
		case common.MarketOrder:
			markets++
			assert.Zero(t, sub.Spec.Price)
		case common.LimitOrder:
			assert.GreaterOrEqual(t, sub.Spec.Price, common.Price(1000))
			assert.LessOrEqual(t, sub.Spec.Price, common.Price(1060))
		}
	}
	// Both order types show up in a workload of this size.
	assert.Greater(t, markets, 0)
	assert.Less(t, markets, 5000)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := sim.Generate(200, 10, rand.New(rand.NewSource(42)))
	b := sim.Generate(200, 10, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestRun_SubmitsEverything(t *testing.T) {
	counts := &monitor.Counting{}
	symbols := sim.Symbols(4)
	eng := engine.New(counts, symbols, 0, nil)

	subs := sim.Generate(300, 4, rand.New(rand.NewSource(9)))
	result, err := sim.Run(eng, subs)
	require.NoError(t, err)

	assert.Equal(t, uint(300), result.Orders)
	assert.Equal(t, uint64(300), counts.Submits())
	assert.Equal(t, int64(300), result.Latencies.TotalCount())
}

func TestCluster_RunSubmitsEverything(t *testing.T) {
	counts := &monitor.Counting{}
	symbols := sim.Symbols(8)
	cluster := sim.NewCluster(counts, symbols, 4, 3, 1)
	require.Len(t, cluster.Engines(), 3)

	// 8 symbols round-robin over 3 shards, each book seeded 2 per side.
	seeded := counts.Submits()
	assert.Equal(t, uint64(8*4), seeded)

	subs := sim.Generate(500, 8, rand.New(rand.NewSource(11)))
	require.NoError(t, cluster.Route(subs))

	result, err := cluster.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint(500), result.Orders)
	assert.Equal(t, seeded+500, counts.Submits())
	assert.Equal(t, int64(500), result.Latencies.TotalCount())
}

func TestCluster_RouteRejectsUnknownSymbol(t *testing.T) {
	cluster := sim.NewCluster(&monitor.Counting{}, sim.Symbols(2), 0, 1, 1)
	err := cluster.Route([]sim.Submission{{
		Symbol: "zzzz",
		Spec:   engine.OrderSpec{Side: common.Call, OrderType: common.MarketOrder, Quantity: 1},
	}})
	assert.ErrorIs(t, err, engine.ErrUnknownSymbol)
}
