package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "herdbook"

// Metrics agrupa los collectors del servicio en un registry propio
// (no usamos el global para que los tests no choquen).
type Metrics struct {
	registry *prometheus.Registry

	mutations *prometheus.CounterVec
	herds     prometheus.Gauge
	animals   prometheus.Gauge
	exports   *prometheus.CounterVec
	requests  *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "mutations_total",
			Help:      "Record store mutations by operation and result.",
		}, []string{"op", "result"}),
		herds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "herds",
			Help:      "Herds in the current snapshot.",
		}),
		animals: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "animals",
			Help:      "Animals in the current snapshot.",
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Rendered exports by format, target and result.",
		}, []string{"format", "target", "result"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.mutations, m.herds, m.animals, m.exports, m.requests,
	)
	return m
}

// Mutation implementa herds.Recorder.
func (m *Metrics) Mutation(op, result string) {
	m.mutations.WithLabelValues(op, result).Inc()
}

// Sizes implementa herds.Recorder.
func (m *Metrics) Sizes(herds, animals int) {
	m.herds.Set(float64(herds))
	m.animals.Set(float64(animals))
}

func (m *Metrics) Export(format, target string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.exports.WithLabelValues(format, target, result).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
