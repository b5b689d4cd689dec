package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpapi "rentdash-backend/internal/api/http"
	"rentdash-backend/internal/config"
	"rentdash-backend/internal/logger"
	"rentdash-backend/internal/obs"
	"rentdash-backend/internal/provider"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentdash Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Provider configuration", "type", cfg.Provider.Type, "latency_ms", cfg.Provider.LatencyMS)

	// Register metrics
	obs.Init()

	// Construct the data provider once; every handler shares it
	factory := provider.NewFactory(
		provider.Type(cfg.Provider.Type),
		time.Duration(cfg.Provider.LatencyMS)*time.Millisecond,
	)
	dataProvider, err := factory.Provider()
	if err != nil {
		logger.Error("Failed to construct data provider", "error", err)
		log.Fatalf("Failed to construct data provider: %v", err)
	}

	router := httpapi.NewRouter(dataProvider)

	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
