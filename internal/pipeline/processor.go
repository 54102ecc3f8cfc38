package pipeline

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/search"
	"github.com/rs/zerolog"
)

const (
	Source         = "vision_api"
	successMessage = "Menu processed successfully"
)

var (
	ErrDishNotFound = errors.New("dish not found")
	ErrMenuNotFound = errors.New("menu not found")
)

// Processor runs menu images through extraction, parsing, indexing and caching.
// It holds no per-request state and is safe for concurrent use.
type Processor struct {
	extractor TextExtractor
	parser    DishParser
	cache     MenuCache
	index     DishIndex
	publisher EventPublisher
	fetcher   ImageFetcher
	logger    *zerolog.Logger
	newID     func() string
	now       func() time.Time
}

type Option func(*Processor)

// WithImageFetcher lets the processor resolve object storage URLs when no bytes are sent.
func WithImageFetcher(fetcher ImageFetcher) Option {
	return func(p *Processor) {
		p.fetcher = fetcher
	}
}

func NewProcessor(
	extractor TextExtractor,
	parser DishParser,
	cache MenuCache,
	index DishIndex,
	publisher EventPublisher,
	logger *zerolog.Logger,
	opts ...Option,
) *Processor {
	p := &Processor{
		extractor: extractor,
		parser:    parser,
		cache:     cache,
		index:     index,
		publisher: publisher,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ProcessMenu never reports collaborator outages. It only fails when the
// context ends before the response is built, and then returns a FAILED
// response alongside the error.
func (p *Processor) ProcessMenu(ctx context.Context, imageData []byte, imageURL string, options models.ProcessingOptions) (*models.MenuResponse, error) {
	start := p.now()
	menuID := p.newID()
	logger := p.logger.With().Str("menu_id", menuID).Logger()

	logger.Info().Int("image_bytes", len(imageData)).Str("image_url", imageURL).Msg("Processing menu")

	if options.UseCache {
		cached, err := p.cache.GetMenu(ctx, menuID)
		if err == nil {
			logger.Info().Msg("Cache hit for menu")
			return cached, nil
		}
		logger.Debug().Err(err).Msg("Menu cache miss")
	}

	dishes := p.extract(ctx, imageData, imageURL, options, &logger)

	for _, dish := range dishes {
		p.indexDish(ctx, dish, &logger)
	}

	if err := ctx.Err(); err != nil {
		logger.Warn().Err(err).Msg("Menu processing interrupted")
		return p.failed(menuID, start, err), fmt.Errorf("process menu %s: %w", menuID, err)
	}

	response := &models.MenuResponse{
		MenuID: menuID,
		Dishes: dishes,
		Metadata: models.Metadata{
			ProcessingTimeMs: p.now().Sub(start).Milliseconds(),
			TotalDishes:      len(dishes),
			Source:           Source,
			Timestamp:        p.now().Unix(),
		},
		Status: models.ProcessingStatus{
			Status:  models.StatusCompleted,
			Message: successMessage,
		},
	}

	if options.UseCache {
		if err := p.cache.SetMenu(ctx, response); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache menu")
		}
	}

	p.publisher.PublishMenuProcessed(ctx, menuID, len(dishes))

	logger.Info().
		Int("total_dishes", len(dishes)).
		Int64("processing_time_ms", response.Metadata.ProcessingTimeMs).
		Msg("Menu processed")

	return response, nil
}

// GetMenu serves a previously processed menu from the cache only.
func (p *Processor) GetMenu(ctx context.Context, menuID string) (*models.MenuResponse, error) {
	menu, err := p.cache.GetMenu(ctx, menuID)
	if err != nil {
		p.logger.Debug().Err(err).Str("menu_id", menuID).Msg("Menu lookup missed")
		return nil, fmt.Errorf("%w: %s", ErrMenuNotFound, menuID)
	}

	return menu, nil
}

// GetDish reads through the cache to the search index. An id unknown to both
// yields ErrDishNotFound; a failing index yields a wrapped error.
func (p *Processor) GetDish(ctx context.Context, dishID string, includeSimilar bool) (*models.DishResponse, error) {
	logger := p.logger.With().Str("dish_id", dishID).Logger()

	dish, err := p.cache.GetDish(ctx, dishID)
	if err != nil {
		logger.Debug().Err(err).Msg("Dish cache miss")

		dish, err = p.index.GetDish(ctx, dishID)
		if err != nil {
			if errors.Is(err, search.ErrNotFound) {
				logger.Info().Msg("Dish not found")
				return nil, fmt.Errorf("%w: %s", ErrDishNotFound, dishID)
			}
			logger.Error().Err(err).Msg("Dish lookup failed")
			return nil, err
		}

		if err := p.cache.SetDish(ctx, *dish); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache dish")
		}
	}

	response := &models.DishResponse{Dish: *dish}
	if includeSimilar {
		response.SimilarDishes = p.index.FindSimilar(ctx, dishID, dish.Name)
	}

	return response, nil
}

func (p *Processor) SearchDishes(ctx context.Context, req models.SearchRequest) models.SearchResponse {
	return p.index.Search(ctx, req)
}

// StreamMenuProcessing yields each dish as soon as it is indexed, in parse
// order. Nothing is cached and no event is published. Every call re-runs
// extraction.
func (p *Processor) StreamMenuProcessing(ctx context.Context, imageData []byte, imageURL string, options models.ProcessingOptions) iter.Seq[models.Dish] {
	return func(yield func(models.Dish) bool) {
		logger := p.logger.With().Str("stream_id", p.newID()).Logger()

		dishes := p.extract(ctx, imageData, imageURL, options, &logger)
		for _, dish := range dishes {
			if ctx.Err() != nil {
				logger.Warn().Err(ctx.Err()).Msg("Stream interrupted")
				return
			}

			p.indexDish(ctx, dish, &logger)
			if !yield(dish) {
				return
			}
		}
	}
}

func (p *Processor) extract(ctx context.Context, imageData []byte, imageURL string, options models.ProcessingOptions, logger *zerolog.Logger) []models.Dish {
	image := imageData
	if len(image) == 0 && imageURL != "" && p.fetcher != nil && p.fetcher.Supports(imageURL) {
		data, err := p.fetcher.Fetch(ctx, imageURL)
		if err != nil {
			logger.Warn().Err(err).Str("image_url", imageURL).Msg("Failed to fetch menu image")
		} else {
			image = data
		}
	}

	lines := p.extractor.ExtractText(ctx, image)
	return p.parser.Parse(lines, options)
}

func (p *Processor) indexDish(ctx context.Context, dish models.Dish, logger *zerolog.Logger) {
	if err := p.index.IndexDish(ctx, dish); err != nil {
		logger.Error().Err(err).Str("dish_id", dish.DishID).Msg("Failed to index dish")
	}
}

func (p *Processor) failed(menuID string, start time.Time, err error) *models.MenuResponse {
	return &models.MenuResponse{
		MenuID: menuID,
		Dishes: []models.Dish{},
		Metadata: models.Metadata{
			ProcessingTimeMs: p.now().Sub(start).Milliseconds(),
			Source:           Source,
			Timestamp:        p.now().Unix(),
		},
		Status: models.ProcessingStatus{
			Status:  models.StatusFailed,
			Message: err.Error(),
		},
	}
}
