// Package metrics records provider call and HTTP response metrics.
package metrics

import "time"

// Recorder defines the metric hooks used by the fan-out and the HTTP server.
type Recorder interface {
	ObserveProviderCall(provider string, outcome string, duration time.Duration)
	ObserveResponse(route string, code int)
}

// NoopRecorder discards all observations.
type NoopRecorder struct{}

func (NoopRecorder) ObserveProviderCall(string, string, time.Duration) {}
func (NoopRecorder) ObserveResponse(string, int)                      {}
