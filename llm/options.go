package llm

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/YspCoder/duet/metrics"
)

const tracerName = "github.com/YspCoder/duet/llm"

type options struct {
	httpClient *http.Client
	timeout    time.Duration
	metrics    metrics.Recorder
	tracer     oteltrace.Tracer
}

// Option configures provider clients and the comparer.
type Option func(*options)

// WithHTTPClient sets the HTTP client used for provider calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTimeout sets the per-call timeout. Zero keeps the client's own timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithMetrics sets the recorder for provider call outcomes.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(o *options) {
		o.metrics = recorder
	}
}

// WithTracer sets the tracer for fan-out and provider spans.
func WithTracer(tracer oteltrace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{}
	}
	if o.metrics == nil {
		o.metrics = metrics.NoopRecorder{}
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}
	return o
}
