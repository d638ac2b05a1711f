package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder reports runtime metrics using Prometheus primitives.
type PrometheusRecorder struct {
	registry  *prometheus.Registry
	calls     *prometheus.CounterVec
	durations *prometheus.HistogramVec
	responses *prometheus.CounterVec
}

func NewPrometheusRecorder(registry *prometheus.Registry) (*PrometheusRecorder, error) {
	if registry == nil {
		return nil, fmt.Errorf("prometheus registry is nil")
	}

	r := &PrometheusRecorder{
		registry: registry,
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "duet_provider_calls_total",
			Help: "Total number of provider calls by outcome",
		}, []string{"provider", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "duet_provider_call_duration_seconds",
			Help:    "Provider call latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "duet_http_responses_total",
			Help: "Total HTTP responses by route and status code",
		}, []string{"route", "code"}),
	}

	for _, collector := range []prometheus.Collector{r.calls, r.durations, r.responses} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

func (r *PrometheusRecorder) ObserveProviderCall(provider string, outcome string, duration time.Duration) {
	r.calls.WithLabelValues(provider, outcome).Inc()
	r.durations.WithLabelValues(provider).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) ObserveResponse(route string, code int) {
	r.responses.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
