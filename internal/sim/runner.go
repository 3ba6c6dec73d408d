package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	tomb "gopkg.in/tomb.v2"

	"skoll/internal/common"
	"skoll/internal/engine"
)

// Latencies above this are clamped to it before recording; three significant
// figures is plenty for a run summary.
const maxLatencyNs = int64(10 * time.Second)

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(1, maxLatencyNs, 3)
}

// Result summarizes a timed run.
type Result struct {
	Orders    uint
	Elapsed   time.Duration
	Latencies *hdrhistogram.Histogram
}

// PerOrder is the mean wall-clock cost of one submission.
func (r Result) PerOrder() time.Duration {
	if r.Orders == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Orders)
}

// Run drives every submission through eng in order, recording per-submission
// latency. The workload is pre-validated by construction, so any error is a
// bug in the harness and aborts the run.
func Run(eng *engine.Engine, subs []Submission) (Result, error) {
	hist := newHistogram()
	start := time.Now()
	for i := range subs {
		before := time.Now()
		if _, err := eng.Submit(subs[i].Symbol, subs[i].Spec); err != nil {
			return Result{}, fmt.Errorf("submission %d: %w", i, err)
		}
		hist.RecordValue(min(time.Since(before).Nanoseconds(), maxLatencyNs))
	}
	return Result{
		Orders:    uint(len(subs)),
		Elapsed:   time.Since(start),
		Latencies: hist,
	}, nil
}

type shard struct {
	engine *engine.Engine
	subs   []Submission
}

// Cluster partitions instruments round-robin across independent engines, one
// per shard. Cross-instrument matching does not exist, so sharding by symbol
// preserves the engine's semantics; each shard serializes its own submits
// and sees them in generation order. With one shard the whole simulation
// runs single-threaded.
type Cluster struct {
	shards   []*shard
	bySymbol map[common.Symbol]int
}

// NewCluster builds the shard engines, seeding each book through the usual
// pre-population path. Shard i derives its rng from seed+i, so construction
// is deterministic for a given seed and shard count; a different shard count
// seeds the books differently.
func NewCluster(mon engine.Monitor, symbols []common.Symbol, prepopulate uint, shardCount uint, seed int64) *Cluster {
	if shardCount == 0 {
		shardCount = 1
	}
	owned := make([][]common.Symbol, shardCount)
	cluster := &Cluster{bySymbol: make(map[common.Symbol]int, len(symbols))}
	for i, symbol := range symbols {
		cluster.bySymbol[symbol] = i % int(shardCount)
		owned[i%int(shardCount)] = append(owned[i%int(shardCount)], symbol)
	}
	for i := range owned {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		cluster.shards = append(cluster.shards, &shard{
			engine: engine.New(mon, owned[i], prepopulate, rng),
		})
	}
	return cluster
}

// Engines exposes the shard engines, mainly for inspection.
func (c *Cluster) Engines() []*engine.Engine {
	engines := make([]*engine.Engine, len(c.shards))
	for i, sh := range c.shards {
		engines[i] = sh.engine
	}
	return engines
}

// Route hands each submission to the shard owning its symbol, preserving
// relative order within every shard.
func (c *Cluster) Route(subs []Submission) error {
	for _, sub := range subs {
		i, ok := c.bySymbol[sub.Symbol]
		if !ok {
			return fmt.Errorf("%w: %q", engine.ErrUnknownSymbol, sub.Symbol)
		}
		c.shards[i].subs = append(c.shards[i].subs, sub)
	}
	return nil
}

// Run drives all shards under a tomb and merges their results. Elapsed is
// wall clock across the whole cluster; latencies merge exactly.
func (c *Cluster) Run(ctx context.Context) (Result, error) {
	t, _ := tomb.WithContext(ctx)
	results := make([]Result, len(c.shards))
	start := time.Now()
	for i, sh := range c.shards {
		t.Go(func() error {
			res, err := Run(sh.engine, sh.subs)
			results[i] = res
			return err
		})
	}
	if err := t.Wait(); err != nil {
		return Result{}, err
	}

	merged := Result{Latencies: newHistogram()}
	for _, res := range results {
		merged.Orders += res.Orders
		merged.Latencies.Merge(res.Latencies)
	}
	merged.Elapsed = time.Since(start)
	return merged, nil
}
