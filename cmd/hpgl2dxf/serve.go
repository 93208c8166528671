package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/hpgl2dxf"
	"github.com/aretw0/hpgl2dxf/internal/config"
	"github.com/aretw0/hpgl2dxf/internal/logging"
	httpAdapter "github.com/aretw0/hpgl2dxf/pkg/adapters/http"
	"github.com/aretw0/hpgl2dxf/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/hpgl2dxf/pkg/adapters/redis"
	"github.com/aretw0/hpgl2dxf/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP conversion server",
	Long: `Starts an HTTP server exposing:

  POST /convert   HPGL body in, DXF document out (X-Cache: HIT|MISS when caching)
  POST /segments  HPGL body in, JSON line list out
  GET  /healthz   liveness (503 when the Redis cache is unreachable)
  GET  /metrics   Prometheus metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetString("port")
		}
		if cmd.Flags().Changed("redis") {
			cfg.RedisAddr, _ = cmd.Flags().GetString("redis")
		}
		if cmd.Flags().Changed("cache-ttl") {
			cfg.CacheTTL, _ = cmd.Flags().GetDuration("cache-ttl")
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			cfg.Debug = true
			cfg.LogLevel = "debug"
		}
		memCache, _ := cmd.Flags().GetBool("memory-cache")

		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := observability.NewMetrics(registry)

		conv := hpgl2dxf.New(
			hpgl2dxf.WithLogger(logger),
			hpgl2dxf.WithDocument(cfg.Document()),
			hpgl2dxf.WithLifecycleHooks(metrics.Hooks()),
		)

		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(metrics, registry),
		}
		switch {
		case cfg.RedisAddr != "":
			cache := redisAdapter.New(cfg.RedisAddr, "", 0)
			defer cache.Close()
			opts = append(opts, httpAdapter.WithCache(cache, cfg.CacheTTL))
			logger.Info("Using Redis cache", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
		case memCache:
			opts = append(opts, httpAdapter.WithCache(memory.NewStore(), cfg.CacheTTL))
			logger.Info("Using in-memory cache", "ttl", cfg.CacheTTL)
		}

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           httpAdapter.NewHandler(conv, opts...),
			ReadHeaderTimeout: 10 * time.Second,
		}
		return serve(cmd.Context(), srv, logger)
	},
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("Starting hpgl2dxf server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
			if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		logger.Info("hpgl2dxf server stopped gracefully")
		return nil
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the document cache (e.g. localhost:6379)")
	serveCmd.Flags().Bool("memory-cache", false, "Cache documents in process memory when no Redis address is set")
	serveCmd.Flags().Duration("cache-ttl", time.Hour, "Lifetime of cached documents (0 keeps them forever)")
}
