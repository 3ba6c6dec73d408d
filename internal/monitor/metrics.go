package monitor

import (
	"github.com/prometheus/client_golang/prometheus"

	"skoll/internal/common"
)

// Metrics exports event counts as Prometheus counters. Counter updates are
// atomic, so one instance can serve several engine shards.
type Metrics struct {
	submits prometheus.Counter
	trades  prometheus.Counter
	cancels prometheus.Counter
	volume  prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "skoll",
			Name:      "submits_total",
			Help:      "Orders accepted by the engine.",
		}),
		trades: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "skoll",
			Name:      "trades_total",
			Help:      "Fills emitted by the matching loop.",
		}),
		cancels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "skoll",
			Name:      "cancels_total",
			Help:      "Residuals cancelled because they could not rest.",
		}),
		volume: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "skoll",
			Name:      "traded_volume_total",
			Help:      "Total quantity traded.",
		}),
	}
	reg.MustRegister(m.submits, m.trades, m.cancels, m.volume)
	return m
}

func (m *Metrics) OnSubmit(common.Ref, common.OrderType, common.Side, common.Price, common.Quantity) {
	m.submits.Inc()
}

func (m *Metrics) OnTrade(report common.ExecutionReport) {
	m.trades.Inc()
	m.volume.Add(float64(report.Quantity))
}

func (m *Metrics) OnCancel(common.Ref, common.Quantity) {
	m.cancels.Inc()
}
