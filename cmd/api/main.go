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

	"github.com/emicklei/go-restful/v3"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/api"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/setup"
	applog "github.com/povarna/generative-ai-agents/menu-agent/internal/setup/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = applog.New(cfg.LogLevel, cfg.LogFormat)
	logger := log.Logger

	if envErr != nil {
		logger.Warn().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Unable to load dependencies")
	}
	defer deps.Close()

	// API
	handler := api.NewHandler(deps.Processor, &logger, deps.HealthChecks...)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	container.Filter(middleware.ConcurrencyLimit(cfg.MaxConcurrentRequests))
	api.RegisterRoutes(container, handler)

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	// Server
	addr := fmt.Sprintf(":%s", cfg.APIPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           corsHandler.Handler(container),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}()

	logger.Info().
		Str("address", addr).
		Int64("max_concurrent_requests", cfg.MaxConcurrentRequests).
		Msg("Starting Menu Agent API")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("Server failed")
		deps.Close()
		os.Exit(1)
	}

	logger.Info().Msg("Menu Agent API stopped")
}
