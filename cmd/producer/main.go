package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/events"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
	redisconn "github.com/povarna/generative-ai-agents/menu-agent/internal/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// producer appends a hand-made menu event, for exercising the consumer locally.
func main() {
	menuID := flag.String("menu-id", "", "Menu id (default: random)")
	dishes := flag.Int("dishes", 0, "Dish count")
	stream := flag.String("stream", events.DefaultStream, "Stream name")
	flag.Parse()

	if *dishes < 0 {
		fmt.Fprintln(os.Stderr, "Usage: producer [-menu-id id] -dishes n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *menuID == "" {
		*menuID = uuid.NewString()
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client, err := redisconn.Connect(ctx, redisconn.Config{
		Addr:       addr,
		Password:   os.Getenv("REDIS_PASSWORD"),
		MaxRetries: 1,
	}, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer client.Close()

	publisher := events.NewRedisPublisher(client, *stream, &logger)
	id, err := publisher.Publish(ctx, models.MenuProcessedEvent{
		MenuID:    *menuID,
		DishCount: *dishes,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to publish event")
	}

	logger.Info().Str("message_id", id).Str("menu_id", *menuID).Str("stream", *stream).Msg("Event published")
}
