package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cypherlabdev/parlay-slip-service/internal/cache"
	"github.com/cypherlabdev/parlay-slip-service/internal/config"
	"github.com/cypherlabdev/parlay-slip-service/internal/directory"
	httpHandler "github.com/cypherlabdev/parlay-slip-service/internal/handler/http"
	"github.com/cypherlabdev/parlay-slip-service/internal/ledger"
	"github.com/cypherlabdev/parlay-slip-service/internal/messaging"
	"github.com/cypherlabdev/parlay-slip-service/internal/refresher"
	"github.com/cypherlabdev/parlay-slip-service/internal/service"
	"github.com/cypherlabdev/parlay-slip-service/pkg/parlay"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting parlay-slip-service")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create Redis slip store
	slipStore := cache.NewSlipStore(
		cache.SlipStoreConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		},
		logger,
	)
	defer slipStore.Close()

	// Test Redis connection
	if err := slipStore.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	// Create cycle directory store
	cycleStore := directory.NewStore(logger)
	logger.Info().Msg("cycle directory initialized")

	// Create in-memory ledger
	bettingLedger := ledger.NewMemoryLedger(logger)
	logger.Info().Msg("ledger initialized")

	// Create slip engine pieces
	encoder := parlay.NewSHA256Encoder()
	validator := parlay.NewValidator(logger)

	// Create slip service layer
	slipService := service.NewSlipService(
		validator,
		encoder,
		slipStore,
		cycleStore,
		bettingLedger,
		cfg.Engine.EntryFee,
		logger,
	)
	logger.Info().Msg("slip service initialized")

	// Create Kafka consumer for the cycle feed
	consumer := messaging.NewKafkaConsumer(
		messaging.KafkaConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		},
		cycleStore,
		logger,
	)
	defer consumer.Close()

	// Start Kafka consumer in goroutine
	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.Error().Err(err).Msg("Kafka consumer failed")
		}
	}()

	// Start evaluation refresher in goroutine
	evalRefresher := refresher.NewRefresher(
		slipStore,
		cycleStore,
		encoder,
		cfg.Engine.RefreshInterval,
		logger,
	)
	go evalRefresher.Start(ctx)

	// Initialize HTTP handler
	slipHandler := httpHandler.NewSlipHandler(slipService, logger)
	logger.Info().Msg("HTTP handler initialized")

	// Setup HTTP server routes
	mux := http.NewServeMux()

	// Health and monitoring endpoints
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		readyHandler(w, r, slipStore)
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Register API routes
	slipHandler.RegisterRoutes(mux)
	logger.Info().Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in goroutine
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down gracefully...")

	// Cancel context to stop consumer and refresher
	cancel()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("shutdown complete")
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set format
	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "parlay-slip").Logger()
}

// healthHandler returns 200 if service is running
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns 200 if service is ready to accept traffic
func readyHandler(w http.ResponseWriter, r *http.Request, store *cache.SlipStore) {
	// Check Redis connection
	if err := store.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Redis unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
