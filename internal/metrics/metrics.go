package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the service's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	probeFailures   *prometheus.CounterVec
	temperature     prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tempmon_http_requests_total",
				Help: "HTTP requests served, by route and status code",
			},
			[]string{"route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "tempmon_http_request_duration_seconds",
				Help: "Time spent serving HTTP requests",
				// probes shell out, so the tail matters more than the median
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"route"},
		),
		probeFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tempmon_probe_failures_total",
				Help: "Metric readings that fell back to N/A",
			},
			[]string{"probe", "source"},
		),
		temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tempmon_cpu_temperature_celsius",
			Help: "Last CPU temperature read by a request",
		}),
	}
	reg.MustRegister(
		m.requests,
		m.requestDuration,
		m.probeFailures,
		m.temperature,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ProbeFailed(probe, source string) {
	m.probeFailures.WithLabelValues(probe, source).Inc()
}

func (m *Metrics) TemperatureRead(celsius float64) {
	m.temperature.Set(celsius)
}

func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
