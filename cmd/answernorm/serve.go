package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/baditaflorin/go_answer_normalization/internal/adapters/logger"
	"github.com/baditaflorin/go_answer_normalization/internal/config"
	"github.com/baditaflorin/go_answer_normalization/internal/metrics"
	"github.com/baditaflorin/go_answer_normalization/internal/transport/httpapi"
	"github.com/baditaflorin/go_answer_normalization/pkg/answer"
	"github.com/baditaflorin/l"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		lg, err := createLogger(cfg.Log)
		if err != nil {
			return err
		}
		defer lg.Close()
		log := logger.FromExisting(lg)

		policy, err := answer.ParsePolicy(cfg.Grading.Policy)
		if err != nil {
			return err
		}

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		metrics.MustRegister(registry)

		opts := []answer.Option{
			answer.WithLogger(lg),
			answer.WithPolicy(policy),
			answer.WithCacheSize(cfg.Cache.Size),
			answer.WithMiddleware(metrics.Instrument),
		}
		normalizer, err := answer.New(opts...)
		if err != nil {
			return fmt.Errorf("create normalizer: %w", err)
		}
		if cfg.Cache.Size > 0 {
			metrics.MustRegisterCache(registry, normalizer.CacheStats)
		}
		if cfg.Warmup.Enabled {
			warm := answer.DefaultWarmupConfig()
			warm.Concurrency = cfg.Warmup.Concurrency
			warm.Iterations = cfg.Warmup.Iterations
			warm.Duration = cfg.Warmup.Duration
			normalizer.WarmUp(cmd.Context(), warm)
		}

		metricsHandler := fasthttpadaptor.NewFastHTTPHandler(
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		)
		handler := httpapi.NewHandler(log, normalizer, metricsHandler)
		server := httpapi.NewServer(log, handler, httpapi.ServerConfig{
			ReadTimeout:    cfg.HTTP.ReadTimeout,
			WriteTimeout:   cfg.HTTP.WriteTimeout,
			MaxRequestSize: cfg.HTTP.MaxRequestSize,
			Concurrency:    cfg.HTTP.Concurrency,
		})

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe(cfg.HTTP.Addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			log.Info("Signal received", "signal", sig.String())
		case err := <-errCh:
			if err != nil {
				log.Error("Server error", "error", err)
				return err
			}
		}

		if err := server.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		log.Info("Server stopped")
		return nil
	},
}

// createLogger creates and configures the service logger
func createLogger(cfg config.LogConfig) (l.Logger, error) {
	var output io.Writer = os.Stdout
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	lc := logger.DefaultConfig(output)
	lc.JsonFormat = cfg.JSON
	lc.MaxFileSize = 100 * 1024 * 1024 // 100MB

	lg, err := l.NewStandardFactory().CreateLogger(lc)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return lg, nil
}
