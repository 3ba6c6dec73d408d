package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"skoll/internal/monitor"
	"skoll/internal/sim"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("skoll", pflag.ContinueOnError)
	flags.SortFlags = false
	orders := flags.UintP("orders", "o", 100000, "the number of orders")
	instruments := flags.UintP("instruments", "i", 10000, "the number of instruments to trade")
	limits := flags.UintP("limits", "l", 10, "the number of limit orders to prepopulate on each side of each book")
	seed := flags.Int64("seed", 1, "seed for the synthetic workload")
	shards := flags.Uint("shards", 1, "number of independent engine shards")
	trace := flags.Bool("trace", false, "log every submit, trade and cancel")
	metricsAddr := flags.String("metrics-addr", "", "serve Prometheus metrics on this address during the run")
	help := flags.BoolP("help", "h", false, "produces help message")

	// Under ContinueOnError pflag only returns the parse error.
	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, flags.FlagUsages())
		return 2
	}
	if *help {
		fmt.Fprint(os.Stderr, flags.FlagUsages())
		return 2
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("run", uuid.New().String()).
		Logger()

	log.Info().
		Uint("orders", *orders).
		Uint("instruments", *instruments).
		Uint("limits", *limits).
		Uint("shards", *shards).
		Int64("seed", *seed).
		Msg("running exchange simulation")

	counts := &monitor.Counting{}
	mon := monitor.Multi{counts}
	if *trace {
		mon = append(mon, monitor.NewTrace(log))
	}
	if *metricsAddr != "" {
		registry := prometheus.NewRegistry()
		mon = append(mon, monitor.NewMetrics(registry))
		go serveMetrics(log, *metricsAddr, registry)
	}

	symbols := sim.Symbols(*instruments)
	cluster := sim.NewCluster(mon, symbols, *limits, *shards, *seed)

	// Precompute the workload so RNG cost stays outside the timed section.
	subs := sim.Generate(*orders, *instruments, rand.New(rand.NewSource(*seed)))
	if err := cluster.Route(subs); err != nil {
		log.Error().Err(err).Msg("unable to route workload")
		return 1
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	result, err := cluster.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("simulation failed")
		return 1
	}

	log.Info().
		Uint64("submits", counts.Submits()).
		Uint64("trades", counts.Trades()).
		Uint64("cancels", counts.Cancels()).
		Uint64("volume", counts.Volume()).
		Dur("elapsed", result.Elapsed).
		Int64("ns_per_order", result.PerOrder().Nanoseconds()).
		Int64("latency_p50_ns", result.Latencies.ValueAtQuantile(50)).
		Int64("latency_p99_ns", result.Latencies.ValueAtQuantile(99)).
		Int64("latency_max_ns", result.Latencies.Max()).
		Msg("summary")
	return 0
}

func serveMetrics(log zerolog.Logger, addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: time.Second,
	}
	log.Info().Str("address", addr).Msg("metrics endpoint running")
	if err := srv.ListenAndServe(); err != nil {
		log.Error().Err(err).Msg("metrics endpoint failed")
	}
}
