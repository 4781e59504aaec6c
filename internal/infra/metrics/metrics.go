// Package metrics exposes broker counters and HTTP latency through Prometheus.
package metrics

import (
	"time"

	"calbridge/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "calbridge"

// Metrics owns every collector calbridge exports. Collectors are registered on the
// Registerer passed to New, so tests can use a private registry.
type Metrics struct {
	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
	refreshTotal        *prometheus.CounterVec
	storeFailuresTotal  *prometheus.CounterVec
	operationsTotal     *prometheus.CounterVec
}

var _ service.BrokerMetrics = (*Metrics)(nil)

// NewRegistry returns the registry served on /metrics, preloaded with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		refreshTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "token_refresh_total",
				Help:      "Access token refresh attempts by outcome",
			},
			[]string{"outcome"},
		),
		storeFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "session_store_failures_total",
				Help:      "Session store errors that were logged and swallowed",
			},
			[]string{"op"},
		),
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_operations_total",
				Help:      "Calendar operations by action and outcome",
			},
			[]string{"action", "outcome"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.httpRequestDuration,
		m.httpRequestsTotal,
		m.refreshTotal,
		m.storeFailuresTotal,
		m.operationsTotal,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, path, status string, elapsed time.Duration) {
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (m *Metrics) RefreshObserved(outcome string) {
	m.refreshTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) StoreFailed(op string) {
	m.storeFailuresTotal.WithLabelValues(op).Inc()
}

func (m *Metrics) OperationObserved(action, outcome string) {
	m.operationsTotal.WithLabelValues(action, outcome).Inc()
}
