package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/cache"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/events"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
	redisconn "github.com/povarna/generative-ai-agents/menu-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/setup"
	applog "github.com/povarna/generative-ai-agents/menu-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = applog.New(cfg.LogLevel, cfg.LogFormat)
	logger := log.Logger

	if envErr != nil {
		logger.Warn().Msg("No .env file found")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := redisconn.Connect(ctx, redisconn.Config{
		Addr:       cfg.RedisAddr,
		Password:   cfg.RedisPassword,
		MaxRetries: cfg.RedisMaxRetries,
	}, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer client.Close()

	menus := cache.NewGateway(cache.NewRedisStore(client), &logger)

	consumerName, _ := os.Hostname()
	consumer := events.NewConsumer(client, cfg.EventsStream, cfg.EventsGroup, consumerName, auditHandler(menus, &logger), &logger)

	if err := consumer.Setup(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	logger.Info().Str("stream", cfg.EventsStream).Str("group", cfg.EventsGroup).Msg("Menu event consumer started")

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("Consumer stopped with error")
	}

	logger.Info().Msg("Menu event consumer stopped")
}

// auditHandler logs each processed menu together with what the cache still holds for it.
func auditHandler(menus *cache.Gateway, logger *zerolog.Logger) events.Handler {
	return events.HandlerFunc(func(ctx context.Context, event models.MenuProcessedEvent) error {
		entry := logger.Info().
			Str("menu_id", event.MenuID).
			Int("dish_count", event.DishCount).
			Int64("timestamp", event.Timestamp)

		menu, err := menus.GetMenu(ctx, event.MenuID)
		switch {
		case err == nil:
			entry = entry.Bool("cached", true).Int64("processing_time_ms", menu.Metadata.ProcessingTimeMs)
		case errors.Is(err, cache.ErrCacheMiss):
			entry = entry.Bool("cached", false)
		default:
			return err
		}

		entry.Msg("Menu processed")
		return nil
	})
}
