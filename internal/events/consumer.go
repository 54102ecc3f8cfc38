package events

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Handler interface {
	HandleMenuProcessed(ctx context.Context, event models.MenuProcessedEvent) error
}

type HandlerFunc func(ctx context.Context, event models.MenuProcessedEvent) error

func (f HandlerFunc) HandleMenuProcessed(ctx context.Context, event models.MenuProcessedEvent) error {
	return f(ctx, event)
}

// Consumer reads menu processed events through a consumer group.
type Consumer struct {
	client       *redis.Client
	stream       string
	groupID      string
	consumerName string
	block        time.Duration
	handler      Handler
	logger       *zerolog.Logger
}

func NewConsumer(client *redis.Client, stream string, groupID string, consumerName string, handler Handler, logger *zerolog.Logger) *Consumer {
	if stream == "" {
		stream = DefaultStream
	}

	return &Consumer{
		client:       client,
		stream:       stream,
		groupID:      groupID,
		consumerName: consumerName,
		block:        2 * time.Second,
		handler:      handler,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := c.poll(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error().Err(err).Msg("Failed to read from stream")

			// A missing group or refused connection fails fast, so pace the next read.
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.block):
			}
		}
	}
}

func (c *Consumer) poll(ctx context.Context) error {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.groupID,
		Consumer: c.consumerName,
		Streams:  []string{c.stream, ">"},
		Count:    10,
		Block:    c.block,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, s := range streams {
		for _, msg := range s.Messages {
			c.process(ctx, msg)
		}
	}
	return nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	payload, ok := msg.Values[payloadField].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var event models.MenuProcessedEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID)
		return
	}

	// Handler failures leave the entry pending so it can be claimed again.
	if err := c.handler.HandleMenuProcessed(ctx, event); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Str("menu_id", event.MenuID).Msg("Handler failed")
		return
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
