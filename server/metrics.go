package server

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricNamespace = "gridsnake"

// Metrics holds server-level counters and the bridge over per-world telemetry
type Metrics struct {
	Registry *prometheus.Registry

	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	ticks          prometheus.Counter
	framesDropped  prometheus.Counter
	inputs         *prometheus.CounterVec
	rounds         *prometheus.CounterVec
}

func newMetrics(s *Server) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		Registry: reg,
		sessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "sessions_active",
			Help:      "Number of connected game sessions",
		}),
		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "sessions_total",
			Help:      "Total sessions opened",
		}),
		ticks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks across all sessions",
		}),
		framesDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "frames_dropped_total",
			Help:      "Snapshots skipped because a client send buffer was full",
		}),
		inputs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "inputs_total",
			Help:      "Client commands by result",
		}, []string{"result"}),
		rounds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "rounds_finished_total",
			Help:      "Finished rounds by death cause",
		}, []string{"cause"}),
	}
	reg.MustRegister(&worldCollector{source: s.liveStatus})
	return m
}

// worldCollector sums the status registries of live sessions at scrape time
// It is an unchecked collector: metric names follow whatever the systems register
type worldCollector struct {
	source func() []map[string]float64
}

func (c *worldCollector) Describe(chan<- *prometheus.Desc) {}

func (c *worldCollector) Collect(ch chan<- prometheus.Metric) {
	totals := make(map[string]float64)
	for _, snap := range c.source() {
		for k, v := range snap {
			totals[k] += v
		}
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		desc := prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "world", metricName(k)),
			"Sum over live sessions of world telemetry "+k,
			nil, nil,
		)
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, totals[k])
	}
}

// metricName maps a dotted status key to a prometheus-safe name
func metricName(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, key)
}
