package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkarlin/orderwatch/internal/api"
	"github.com/mkarlin/orderwatch/internal/config"
	"github.com/mkarlin/orderwatch/internal/database"
	"github.com/mkarlin/orderwatch/internal/metrics"
	"github.com/mkarlin/orderwatch/internal/store"
	"github.com/mkarlin/orderwatch/internal/version"
	"github.com/mkarlin/orderwatch/internal/watcher"
)

func main() {
	configPath := flag.String("config", "configs/collector.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting collector",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"api_url", cfg.API.URL,
		"interval", cfg.Watcher.Interval,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Postgres.Host,
		"port", cfg.Database.Postgres.Port,
		"database", cfg.Database.Postgres.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database.Postgres)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Ensure the orders table exists. A schema failure here is fatal.
	orders := store.New(pool, logger)
	if err := orders.Init(ctx); err != nil {
		logger.Error("failed to initialize orders table", "error", err)
		os.Exit(1)
	}

	m := metrics.New(nil)

	// Create API client
	apiClient := api.NewClient(
		cfg.API.URL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
	)

	// Create the watcher
	watcherCfg := watcher.Config{
		Interval:       cfg.Watcher.Interval,
		Timeout:        cfg.API.Timeout,
		BootstrapLimit: cfg.Watcher.BootstrapLimit,
	}
	w := watcher.New(watcherCfg, apiClient, orders, logger, m)

	// Start health/metrics server
	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: createHealthHandler(pool, w, cfg.Metrics.Path),
	}

	go func() {
		logger.Info("starting health server", "port", cfg.Metrics.Port)
		if err := healthServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("health server error", "error", err)
		}
	}()

	// Start the watcher. A bootstrap failure is fatal.
	if err := w.Start(ctx); err != nil {
		logger.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}

	logger.Info("collector running",
		"instance_id", cfg.Instance.ID,
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Metrics.Port),
	)

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := w.Stop(shutdownCtx); err != nil {
		logger.Warn("watcher stop timed out", "error", err)
	}
	healthServer.Shutdown(shutdownCtx)

	logger.Info("collector stopped")
}

// createHealthHandler creates the HTTP handler for health checks and metrics.
func createHealthHandler(pool *pgxpool.Pool, w *watcher.Watcher, metricsPath string) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(metricsPath, promhttp.Handler())

	mux.HandleFunc("/health", func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string                 `json:"status"`
			Version    string                 `json:"version"`
			Components map[string]interface{} `json:"components"`
		}{
			Status:     "healthy",
			Version:    version.String(),
			Components: make(map[string]interface{}),
		}

		// Check database
		if err := pool.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["postgres"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["postgres"] = "connected"
		}

		// Watch loop counters
		stats := w.Stats()
		health.Components["watcher"] = map[string]int64{
			"cycles":        stats.Cycles,
			"fetch_errors":  stats.FetchErrors,
			"new_orders":    stats.NewOrders,
			"insert_errors": stats.InsertErrors,
		}

		rw.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			rw.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(rw).Encode(health)
	})

	return mux
}
