package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	DefaultStream  = "menu-processed"
	payloadField   = "payload"
	publishTimeout = 5 * time.Second
)

// Publisher announces finished menu runs. Implementations never report
// failures to the caller.
type Publisher interface {
	PublishMenuProcessed(ctx context.Context, menuID string, dishCount int)
	Close()
}

type NoopPublisher struct{}

func (NoopPublisher) PublishMenuProcessed(context.Context, string, int) {}

func (NoopPublisher) Close() {}

// RedisPublisher appends events to a Redis stream on a background goroutine.
type RedisPublisher struct {
	client *redis.Client
	stream string
	logger *zerolog.Logger
	wg     sync.WaitGroup
}

func NewRedisPublisher(client *redis.Client, stream string, logger *zerolog.Logger) *RedisPublisher {
	if stream == "" {
		stream = DefaultStream
	}

	return &RedisPublisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *RedisPublisher) PublishMenuProcessed(ctx context.Context, menuID string, dishCount int) {
	event := models.MenuProcessedEvent{
		MenuID:    menuID,
		DishCount: dishCount,
		Timestamp: time.Now().Unix(),
	}

	// The request context may end as soon as the response is written.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()

		id, err := p.Publish(publishCtx, event)
		if err != nil {
			p.logger.Warn().Err(err).Str("menu_id", menuID).Msg("Failed to publish event")
			return
		}

		p.logger.Info().Str("menu_id", menuID).Str("id", id).Msg("Published menu processed event")
	}()
}

// Publish appends a single event synchronously and returns the stream entry id.
func (p *RedisPublisher) Publish(ctx context.Context, event models.MenuProcessedEvent) (string, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to encode event: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{payloadField: string(payload)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to append to stream %s: %w", p.stream, err)
	}

	return id, nil
}

// Close waits for in-flight publishes.
func (p *RedisPublisher) Close() {
	p.wg.Wait()
}
