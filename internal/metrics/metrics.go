package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type MetricsService interface {
	GetRegistry() *prometheus.Registry
	IncNumRequests(endpoint, method string, statusCode int)
	ObserveRequestDuration(endpoint, method string, duration float64)
	AddBytesServed(endpoint string, n int)
	IncPanicsRecovered()
}

// metricsService handles all metrics for the static responder
type metricsService struct {
	registry *prometheus.Registry

	// HTTP Request Metrics
	numRequestsTotal *prometheus.CounterVec
	requestsDuration *prometheus.SummaryVec
	bytesServedTotal *prometheus.CounterVec

	// Middleware Metrics
	panicsRecoveredTotal prometheus.Counter
}

// NewMetricsService creates a new metrics service with all metrics registered
func NewMetricsService() MetricsService {
	m := &metricsService{
		registry: prometheus.NewRegistry(),
	}

	m.numRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"endpoint", "method", "status_code"},
	)
	m.requestsDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "http_request_duration_seconds",
			Help:       "Duration of HTTP requests in seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"endpoint", "method"},
	)
	m.bytesServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_response_bytes_total",
			Help: "Total number of response body bytes written",
		},
		[]string{"endpoint"},
	)
	m.panicsRecoveredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Total number of handler panics recovered by the middleware",
		},
	)

	m.registerMetrics()
	return m
}

func (m *metricsService) registerMetrics() {
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.numRequestsTotal,
		m.requestsDuration,
		m.bytesServedTotal,
		m.panicsRecoveredTotal,
	)
}

func (m *metricsService) GetRegistry() *prometheus.Registry {
	return m.registry
}

// HTTP Request Metrics

func (m *metricsService) IncNumRequests(endpoint, method string, statusCode int) {
	m.numRequestsTotal.WithLabelValues(endpoint, method, strconv.Itoa(statusCode)).Inc()
}

func (m *metricsService) ObserveRequestDuration(endpoint, method string, duration float64) {
	m.requestsDuration.WithLabelValues(endpoint, method).Observe(duration)
}

func (m *metricsService) AddBytesServed(endpoint string, n int) {
	m.bytesServedTotal.WithLabelValues(endpoint).Add(float64(n))
}

func (m *metricsService) IncPanicsRecovered() {
	m.panicsRecoveredTotal.Inc()
}
