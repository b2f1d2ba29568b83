// Sleep Scorer API
//
// REST API that turns raw wearable sleep-stage intervals into nightly sleep scores.
//
//	@title			Sleep Scorer API
//	@version		1.0
//	@description	Segment, cluster and score sleep sessions from raw stage intervals, with chronotype, trends and AI insights.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-scores
//	@tag.description	Nightly sleep scoring endpoints
//
//	@tag.name			insights
//	@tag.description	Chronotype, trends and AI insights
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/healthpilot/sleep-scorer/internal/api"
	"github.com/healthpilot/sleep-scorer/internal/api/handler"
	"github.com/healthpilot/sleep-scorer/internal/config"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/internal/llm"
	"github.com/healthpilot/sleep-scorer/internal/logging"
	"github.com/healthpilot/sleep-scorer/internal/metrics"
	"github.com/healthpilot/sleep-scorer/internal/repository"
	"github.com/healthpilot/sleep-scorer/internal/seed"
	"github.com/healthpilot/sleep-scorer/internal/service"
	"github.com/healthpilot/sleep-scorer/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const serviceName = "sleep-scorer"

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.NightlyScore{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	log.Info("database migration completed")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	scoreRepo := repository.NewNightlyScoreRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	scoringService := service.NewScoringService(userRepo, scoreRepo, m, log, cfg.RegularityHistoryNights)
	chronotypeService := service.NewChronotypeService(scoreRepo, userRepo)
	trendService := service.NewTrendService(scoreRepo, userRepo)

	if cfg.Seed {
		log.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(ctx, db, scoringService, log.Named("seed")); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	// OpenAI client is nil when no API key is configured
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISleepInsightsModel)
	if openaiClient == nil {
		log.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(chronotypeService, trendService, openaiClient, scoreRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	sleepScoreHandler := handler.NewSleepScoreHandler(scoringService)
	insightsHandler := handler.NewInsightsHandler(chronotypeService, trendService, insightsService)

	router := api.NewRouter(userHandler, sleepScoreHandler, insightsHandler, reg, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
