package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/ride-comfort-service/internal/adapter/httpapi"
	kafkaadapter "github.com/couchcryptid/ride-comfort-service/internal/adapter/kafka"
	"github.com/couchcryptid/ride-comfort-service/internal/adapter/windapi"
	"github.com/couchcryptid/ride-comfort-service/internal/config"
	"github.com/couchcryptid/ride-comfort-service/internal/domain"
	"github.com/couchcryptid/ride-comfort-service/internal/observability"
	"github.com/couchcryptid/ride-comfort-service/internal/refdata"
	"github.com/couchcryptid/ride-comfort-service/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ref, err := loadRefData(cfg)
	if err != nil {
		logger.Error("failed to load reference tables", "error", err)
		os.Exit(1)
	}
	logger.Info("reference tables loaded",
		"aircraft", len(ref.Aircraft),
		"routes", len(ref.Routes),
		"airports", len(ref.Airports),
	)

	// Realtime wind sampling (feature-flagged via WIND_ENABLED).
	var sampler domain.WindSampler
	if cfg.WindEnabled {
		sampler = windapi.NewClient(cfg.WindAPIURL, cfg.WindTimeout, metrics, logger)
		metrics.WindEnabled.Set(1)
		logger.Info("wind sampling enabled", "url", cfg.WindAPIURL, "hour_utc", cfg.WindHourUTC)
	} else {
		metrics.WindEnabled.Set(0)
		logger.Info("wind sampling disabled")
	}

	// Score publishing (feature-flagged via KAFKA_ENABLED).
	var publisher report.ScorePublisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPublisher
		logger.Info("score publishing enabled", "topic", cfg.KafkaScoresTopic)
	} else {
		logger.Info("score publishing disabled")
	}

	svc := report.New(ref, sampler, publisher, cfg.WindHourUTC, logger, metrics)
	srv := httpapi.NewServer(cfg.HTTPAddr, svc, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
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
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// loadRefData uses the embedded tables unless REF_DATA_DIR points at an
// override directory.
func loadRefData(cfg *config.Config) (*domain.RefData, error) {
	if cfg.RefDataDir != "" {
		return refdata.LoadDir(cfg.RefDataDir)
	}
	return refdata.Default()
}
