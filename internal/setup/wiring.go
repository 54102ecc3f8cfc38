package setup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/api"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/cache"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/config"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/events"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/parser"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/pipeline"
	redisconn "github.com/povarna/generative-ai-agents/menu-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/search"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/storage"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/vision"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	ProviderBedrock = "bedrock"
	ProviderOpenAI  = "openai"
	ProviderNone    = "none"
)

var errRedisNotConfigured = errors.New("redis not configured")

type Config struct {
	APIPort               string
	LogLevel              string
	LogFormat             string
	RedisAddr             string
	RedisPassword         string
	RedisMaxRetries       int
	CacheEnabled          bool
	ElasticsearchAddr     string
	SearchIndex           string
	VisionProvider        string
	AWSRegion             string
	ClaudeModelID         string
	OpenAIKey             string
	OpenAIModelID         string
	EventsEnabled         bool
	EventsStream          string
	EventsGroup           string
	S3Enabled             bool
	S3Region              string
	MaxConcurrentRequests int64
	CategoriesConfigPath  string
}

type Dependencies struct {
	Processor    *pipeline.Processor
	Cache        *cache.Gateway
	Redis        *redis.Client
	HealthChecks []api.HealthCheck
	Logger       *zerolog.Logger

	publisher events.Publisher
}

func LoadConfig() *Config {
	return &Config{
		APIPort:               getEnv("API_PORT", "18082"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "console"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		RedisMaxRetries:       getEnvInt("REDIS_MAX_RETRIES", 3),
		CacheEnabled:          getEnvBool("CACHE_ENABLED", true),
		ElasticsearchAddr:     getEnv("ELASTICSEARCH_ADDR", "http://localhost:9200"),
		SearchIndex:           getEnv("SEARCH_INDEX", search.DefaultIndex),
		VisionProvider:        strings.ToLower(getEnv("VISION_PROVIDER", ProviderBedrock)),
		AWSRegion:             getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:         getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:             getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:         getEnv("OPEN_AI_MODEL_ID", ""),
		EventsEnabled:         getEnvBool("EVENTS_ENABLED", false),
		EventsStream:          getEnv("EVENTS_STREAM", events.DefaultStream),
		EventsGroup:           getEnv("EVENTS_GROUP", "menu-group"),
		S3Enabled:             getEnvBool("S3_ENABLED", false),
		S3Region:              getEnv("S3_REGION", getEnv("AWS_REGION", "us-east-1")),
		MaxConcurrentRequests: int64(getEnvInt("MAX_CONCURRENT_REQUESTS", 10)),
		CategoriesConfigPath:  getEnv("CATEGORIES_CONFIG_PATH", ""),
	}
}

// Wire builds the processing pipeline. Only configuration mistakes are fatal:
// collaborators that cannot be reached are replaced by null objects.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	categories, err := loadCategories(cfg.CategoriesConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories config: %w", err)
	}

	deps := &Dependencies{
		Logger:    logger,
		publisher: events.NoopPublisher{},
	}

	if cfg.CacheEnabled || cfg.EventsEnabled {
		client, err := redisconn.Connect(ctx, redisconn.Config{
			Addr:       cfg.RedisAddr,
			Password:   cfg.RedisPassword,
			MaxRetries: cfg.RedisMaxRetries,
		}, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, running without cache and events")
		} else {
			deps.Redis = client
		}
	}

	var store cache.Store = cache.DisabledStore{}
	if cfg.CacheEnabled && deps.Redis != nil {
		store = cache.NewRedisStore(deps.Redis)
	}
	deps.Cache = cache.NewGateway(store, logger)

	if cfg.EventsEnabled && deps.Redis != nil {
		deps.publisher = events.NewRedisPublisher(deps.Redis, cfg.EventsStream, logger)
	}

	engine, err := search.NewElasticEngine(cfg.ElasticsearchAddr)
	if err != nil {
		deps.Close()
		return nil, err
	}
	if err := engine.EnsureIndex(ctx, cfg.SearchIndex); err != nil {
		logger.Warn().Err(err).Str("index", cfg.SearchIndex).Msg("Search index not ready, searches will return empty results")
	}

	provider, err := createVisionProvider(ctx, cfg)
	if err != nil {
		logger.Warn().Err(err).Str("provider", cfg.VisionProvider).Msg("Vision provider unavailable, using fallback text")
		provider = nil
	}

	var opts []pipeline.Option
	if cfg.S3Enabled {
		fetcher, err := storage.NewS3Fetcher(ctx, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("S3 unavailable, image urls will not be fetched")
		} else {
			opts = append(opts, pipeline.WithImageFetcher(fetcher))
		}
	}

	deps.Processor = pipeline.NewProcessor(
		vision.NewExtractor(provider, logger),
		parser.NewParser(parser.NewCategorizer(categories)),
		deps.Cache,
		search.NewGateway(engine, cfg.SearchIndex, logger),
		deps.publisher,
		logger,
		opts...,
	)

	deps.HealthChecks = []api.HealthCheck{
		{Name: "redis", Check: deps.pingRedis},
		{Name: "elasticsearch", Check: engine.Ping},
	}

	logger.Info().
		Bool("cache", cfg.CacheEnabled && deps.Redis != nil).
		Bool("events", cfg.EventsEnabled && deps.Redis != nil).
		Bool("vision", provider != nil).
		Str("index", cfg.SearchIndex).
		Msg("Dependencies wired")

	return deps, nil
}

// Close waits for in-flight events and releases the Redis connection.
func (d *Dependencies) Close() {
	if d.publisher != nil {
		d.publisher.Close()
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
}

func (d *Dependencies) pingRedis(ctx context.Context) error {
	if d.Redis == nil {
		return errRedisNotConfigured
	}
	return d.Redis.Ping(ctx).Err()
}

func loadCategories(path string) (*config.CategoriesConfig, error) {
	if path == "" {
		return config.DefaultCategories(), nil
	}
	return config.LoadCategoriesFile(path)
}

func createVisionProvider(ctx context.Context, cfg *Config) (vision.Provider, error) {
	var client llm.LLMClient
	var err error

	switch cfg.VisionProvider {
	case ProviderNone, "":
		return nil, nil
	case ProviderOpenAI:
		client, err = gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	case ProviderBedrock:
		client, err = bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	default:
		return nil, fmt.Errorf("unknown vision provider %q", cfg.VisionProvider)
	}
	if err != nil {
		return nil, err
	}

	return vision.NewLLMProvider(client), nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
