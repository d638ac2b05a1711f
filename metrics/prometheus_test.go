package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestPrometheusRecorderAndHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPrometheusRecorder(reg)
	if err != nil {
		t.Fatalf("new prometheus recorder: %v", err)
	}

	rec.ObserveProviderCall("openai", "text", 10*time.Millisecond)
	rec.ObserveProviderCall("anthropic", "error", 20*time.Millisecond)
	rec.ObserveResponse("/api/ai", http.StatusOK)

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET metrics endpoint: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read metrics body: %v", err)
	}
	text := string(body)
	for _, want := range []string{
		`duet_provider_calls_total{outcome="text",provider="openai"} 1`,
		`duet_provider_calls_total{outcome="error",provider="anthropic"} 1`,
		`duet_provider_call_duration_seconds_count{provider="openai"} 1`,
		`duet_http_responses_total{code="200",route="/api/ai"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in metrics output:\n%s", want, text)
		}
	}
}

func TestNewPrometheusRecorderRejectsNilRegistry(t *testing.T) {
	if _, err := NewPrometheusRecorder(nil); err == nil {
		t.Fatalf("expected error for nil registry")
	}
}

func TestNewPrometheusRecorderRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPrometheusRecorder(reg); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := NewPrometheusRecorder(reg); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}
