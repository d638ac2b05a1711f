package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/YspCoder/duet/adapter"
	"github.com/YspCoder/duet/config"
	"github.com/YspCoder/duet/llm"
	"github.com/YspCoder/duet/metrics"
	"github.com/YspCoder/duet/server"
	"github.com/YspCoder/duet/trace"
)

func newServeCommand(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP relay and prompt form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var opts []config.ConfigOption
			if addr != "" {
				opts = append(opts, config.SetAddr(addr))
			}
			cfg, logger, err := a.load(opts...)
			if err != nil {
				return err
			}

			tracing, err := trace.Setup(ctx, serviceName, trace.Options{
				Enabled:  cfg.TraceEnabled,
				Endpoint: cfg.TraceEndpoint,
			})
			if err != nil {
				return err
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tracing.Shutdown(shutdownCtx); err != nil {
					logger.Warn("Trace shutdown failed", "error", err)
				}
			}()

			llmOpts := []llm.Option{llm.WithTracer(tracing.Tracer)}
			serverOpts := []server.Option{
				server.WithLogger(logger),
				server.WithMaxBodyBytes(cfg.MaxBodyBytes),
			}
			if cfg.MetricsEnabled {
				recorder, err := metrics.NewPrometheusRecorder(prometheus.NewRegistry())
				if err != nil {
					return err
				}
				llmOpts = append(llmOpts, llm.WithMetrics(recorder))
				serverOpts = append(serverOpts, server.WithMetrics(recorder, recorder.Handler()))
			}

			comparer, err := llm.NewComparerFromConfig(cfg, logger, adapter.GetDefaultRegistry(), llmOpts...)
			if err != nil {
				return err
			}
			return server.New(comparer, serverOpts...).ListenAndServe(ctx, cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides DUET_ADDR")
	return cmd
}
