// Package server exposes the comparer over HTTP and serves the prompt form.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/YspCoder/duet/dto"
	"github.com/YspCoder/duet/metrics"
	"github.com/YspCoder/duet/utils"
)

//go:embed web/*
var embedded embed.FS

var webFS = mustSub(embedded, "web")

// mustSub panics on an invalid directory name, which is a build-time mistake.
func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("server: embedded assets: %v", err))
	}
	return sub
}

const (
	routeCompare = "/api/ai"
	routeSchema  = "/api/ai/schema"

	defaultMaxBodyBytes = 1 << 20
	shutdownTimeout     = 10 * time.Second
)

// Comparer fans a prompt out to the providers.
type Comparer interface {
	Compare(ctx context.Context, prompt string) dto.UnifiedResponse
}

type Server struct {
	comparer       Comparer
	logger         utils.Logger
	metrics        metrics.Recorder
	metricsHandler http.Handler
	maxBodyBytes   int64
	schema         contractSchema
}

// Option configures a Server.
type Option func(*Server)

func WithLogger(logger utils.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records responses to recorder and serves handler on /metrics.
// A nil handler leaves /metrics unregistered.
func WithMetrics(recorder metrics.Recorder, handler http.Handler) Option {
	return func(s *Server) {
		if recorder != nil {
			s.metrics = recorder
		}
		s.metricsHandler = handler
	}
}

func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

func New(comparer Comparer, opts ...Option) *Server {
	s := &Server{
		comparer:     comparer,
		logger:       utils.NewNopLogger(),
		metrics:      metrics.NoopRecorder{},
		maxBodyBytes: defaultMaxBodyBytes,
		schema:       buildContractSchema(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", http.FileServer(http.FS(webFS)))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.handleAPIMethod(mux, routeCompare, http.MethodPost, s.compareAPI)
	s.handleAPIMethod(mux, routeSchema, http.MethodGet, s.schemaAPI)

	if s.metricsHandler != nil {
		mux.Handle("/metrics", s.metricsHandler)
	}
	return mux
}

func (s *Server) handleAPIMethod(mux *http.ServeMux, path, method string, h handler) {
	wrapped := s.wrapMethod(path, method, h)
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
		}
		wrapped(w, r)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = ":3000"
	}
	srv := &http.Server{Addr: addr, Handler: s.Routes(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("Server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
