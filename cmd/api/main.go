package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sharemart/internal/api"
	"sharemart/internal/config"
	"sharemart/internal/database"
	"sharemart/internal/domain"
	"sharemart/internal/events"
	"sharemart/internal/export"
	"sharemart/internal/logging"
	"sharemart/internal/metrics"
	"sharemart/internal/repository"
	"sharemart/internal/service"
	"sharemart/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	db, err := database.NewDB(cfg.Database.Path, &logger)
	if err != nil {
		logger.Error().Err(err).Str("db_path", cfg.Database.Path).Msg("init database")
		return err
	}
	defer db.Close()

	redisClient := initRedis(cfg, &logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	rateLimits := initRateLimits(redisClient, &logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := events.NewEventBus()

	if exportWorker := initExports(ctx, cfg, db, redisClient, &logger); exportWorker != nil {
		worker.BindBookingEvents(bus, exportWorker, &logger)
	}
	bus.Subscribe(events.EventCommentAdded, func(e *events.Event) error {
		logger.Info().Str("event", e.Type).RawJSON("payload", e.Payload).Msg("domain event")
		return nil
	})

	users := service.NewUserService(db, &logger)
	items := service.NewItemService(db, bus, &logger)
	bookings := service.NewBookingService(db, bus, &logger)
	requests := service.NewRequestService(db, &logger)

	server := api.NewServer(cfg, users, items, bookings, requests, rateLimits, &logger)

	startMetrics(ctx, cfg, &logger)

	return serve(ctx, server, cfg, &logger)
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With().Str("component", "api-main").Logger()

	return cfg, logger, closer, nil
}

func initRedis(cfg *config.Config, logger *zerolog.Logger) *redis.Client {
	if cfg.Redis.Address == "" {
		return nil
	}

	client := repository.NewRedisClient(cfg.Redis)
	if err := repository.Ping(context.Background(), client); err != nil {
		logger.Warn().Err(err).Msg("redis connection failed, continuing without redis")
		return nil
	}

	logger.Info().Str("addr", cfg.Redis.Address).Msg("redis connected")
	return client
}

// initRateLimits prefers redis-backed counters with an in-memory fallback;
// without redis the memory limiter serves alone.
func initRateLimits(redisClient *redis.Client, logger *zerolog.Logger) domain.RateLimitRepository {
	memory := repository.NewMemoryRateLimiter()
	if redisClient == nil {
		return memory
	}
	return repository.NewFailoverRateLimiter(repository.NewRedisRateLimiter(redisClient), memory, logger)
}

func initExports(ctx context.Context, cfg *config.Config, db *database.DB, redisClient *redis.Client, logger *zerolog.Logger) *worker.ExportWorker {
	if !cfg.Exports.Enabled {
		return nil
	}

	sheets := initGoogleSheets(cfg, logger)
	exporter := export.NewBookingsExporter(db, sheets, cfg.Exports.Path, logger)

	exportWorker := worker.NewExportWorker(db, exporter, redisClient, worker.RetryPolicy{}, logger)
	go exportWorker.Start(ctx)
	return exportWorker
}

func initGoogleSheets(cfg *config.Config, logger *zerolog.Logger) *export.SheetsClient {
	if cfg.Google.CredentialsFile == "" || cfg.Google.ReportSpreadsheetID == "" {
		return nil
	}

	sheets, err := export.NewSheetsClient(cfg.Google.CredentialsFile, cfg.Google.ReportSpreadsheetID, cfg.Google.ReportSheetName)
	if err != nil {
		logger.Warn().Err(err).Msg("google sheets init failed, continuing without sheets")
		return nil
	}

	logger.Info().Msg("google sheets connected")
	return sheets
}

func startMetrics(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Monitoring.PrometheusEnabled {
		return
	}

	metrics.Register()
	go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, logger)
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Int("port", port).Msg("metrics server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server stopped")
	}
}

func serve(ctx context.Context, server *api.Server, cfg *config.Config, logger *zerolog.Logger) error {
	go func() {
		if err := server.Start(); err != nil {
			logger.Error().Err(err).Msg("http server stopped")
		}
	}()

	logger.Info().Int("http_port", cfg.HTTP.Port).Msg("server started")

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info().Msg("server stopped")
	return nil
}
