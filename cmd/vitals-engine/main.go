package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vitalstack/vitals-engine/internal/api"
	"github.com/vitalstack/vitals-engine/internal/cache"
	"github.com/vitalstack/vitals-engine/internal/config"
	"github.com/vitalstack/vitals-engine/internal/engine"
	"github.com/vitalstack/vitals-engine/internal/history"
	"github.com/vitalstack/vitals-engine/internal/metrics"
	"github.com/vitalstack/vitals-engine/internal/models"
	"github.com/vitalstack/vitals-engine/internal/services"
	"github.com/vitalstack/vitals-engine/internal/utils"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", configPath), slog.Any("error", err))
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.JSON)
	logger.Info("starting vitals-engine", slog.String("address", cfg.Server.Address))

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Error("failed to register metrics", slog.Any("error", err))
		os.Exit(1)
	}

	var cacheProvider cache.Provider = cache.NoopProvider{}
	var valkeyCloser cache.Provider
	if cfg.Cache.Enabled && cfg.Cache.Addr != "" {
		provider, err := cache.NewValkeyProvider(cache.ValkeyConfig{
			Addr:         cfg.Cache.Addr,
			Username:     cfg.Cache.Username,
			Password:     cfg.Cache.Password,
			DB:           cfg.Cache.DB,
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
			MaxRetries:   cfg.Cache.MaxRetries,
			TLS:          cfg.Cache.TLS,
		})
		if err != nil {
			logger.Warn("valkey cache unavailable", slog.Any("error", err))
		} else {
			cacheProvider = provider
			valkeyCloser = provider
		}
	}
	if valkeyCloser != nil {
		defer valkeyCloser.Close()
	}

	store := history.NewStore(logger, cacheProvider, cfg.Cache.SnapshotTTL, history.DefaultSnapshotWindow)
	if err := store.Restore(context.Background()); err != nil {
		logger.Warn("history restore skipped", slog.Any("error", err))
	}

	limits, err := engine.NewLimitProvider(cfg.Assessment.LimitsPath, logger)
	if err != nil {
		logger.Error("failed to load limits pack", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.Assessment.WarningTolerancePercent != nil {
		if err := limits.SetDefaultTolerance(*cfg.Assessment.WarningTolerancePercent); err != nil {
			logger.Error("invalid warning tolerance", slog.Any("error", err))
			os.Exit(1)
		}
	}

	assessEngine, err := engine.New(logger, limits, store, models.PatientProfile{}, cfg.Assessment.Language)
	if err != nil {
		logger.Error("failed to create assessment engine", slog.Any("error", err))
		os.Exit(1)
	}

	monitorService := services.NewMonitorService(logger, assessEngine)

	handlers := api.NewHandlers(logger, monitorService, cfg.Assessment.TrendWindow)
	server := api.NewServer(cfg.Server, logger, handlers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.Server.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:         cfg.Server.MetricsAddress,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
		}
		go func() {
			logger.Info("metrics server listening", slog.String("address", cfg.Server.MetricsAddress))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server exited", slog.Any("error", err))
				stop()
			}
		}()
	}

	go func() {
		if serveErr := server.Start(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http server exited", slog.Any("error", serveErr))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server shutdown", slog.Any("error", err))
	}

	if metricsServer != nil {
		metricsCtx, cancelMetrics := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(metricsCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server shutdown", slog.Any("error", err))
		}
		cancelMetrics()
	}

	// Give remaining goroutines time to finish logging
	time.Sleep(100 * time.Millisecond)
	logger.Info("vitals-engine stopped")
}
