package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/disaster-alert-service/internal/adapter/eonet"
	httpadapter "github.com/couchcryptid/disaster-alert-service/internal/adapter/http"
	"github.com/couchcryptid/disaster-alert-service/internal/adapter/usgs"
	"github.com/couchcryptid/disaster-alert-service/internal/aggregator"
	"github.com/couchcryptid/disaster-alert-service/internal/config"
	"github.com/couchcryptid/disaster-alert-service/internal/observability"
)

func main() {
	// A missing .env is fine; environment variables take precedence anyway.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	satellite := eonet.NewClient(cfg.EONETBaseURL, cfg.ProviderTimeout, cfg.LookbackDays, logger)
	seismic := usgs.NewClient(cfg.USGSBaseURL, cfg.ProviderTimeout, cfg.MinMagnitude, cfg.LookbackDays, logger)

	agg := aggregator.New(logger, metrics, satellite, seismic)

	srv := httpadapter.NewServer(cfg.HTTPAddr, agg, agg, cfg.DefaultRadiusKm, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
