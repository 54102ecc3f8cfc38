package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
	"github.com/rs/zerolog"
)

const (
	DefaultIndex = "dishes"
	DefaultLimit = 20

	similarLimit         = 5
	similarMinTermFreq   = 1
	similarMaxQueryTerms = 12
)

type Gateway struct {
	engine Engine
	index  string
	logger *zerolog.Logger
}

func NewGateway(engine Engine, index string, logger *zerolog.Logger) *Gateway {
	if index == "" {
		index = DefaultIndex
	}

	return &Gateway{
		engine: engine,
		index:  index,
		logger: logger,
	}
}

// IndexDish upserts the dish keyed by its id.
func (g *Gateway) IndexDish(ctx context.Context, dish models.Dish) error {
	if err := g.engine.Index(ctx, g.index, dish.DishID, DishToDocument(dish)); err != nil {
		return fmt.Errorf("failed to index dish %s: %w", dish.DishID, err)
	}

	g.logger.Info().Str("dish_id", dish.DishID).Msg("Indexed dish")
	return nil
}

// GetDish returns ErrNotFound when the index has no document for the id.
func (g *Gateway) GetDish(ctx context.Context, dishID string) (*models.Dish, error) {
	source, err := g.engine.Get(ctx, g.index, dishID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get dish %s: %w", dishID, err)
	}

	dish, err := DocumentToDish(dishID, source)
	if err != nil {
		return nil, err
	}

	return &dish, nil
}

// Search never fails: engine errors degrade to an empty page.
func (g *Gateway) Search(ctx context.Context, req models.SearchRequest) models.SearchResponse {
	response := models.SearchResponse{
		Dishes: []models.Dish{},
		Page:   Page(req.Limit, req.Offset),
	}

	result, err := g.engine.Search(ctx, g.index, BuildSearchQuery(req))
	if err != nil {
		g.logger.Error().Err(err).Str("query", req.Query).Msg("Search error")
		return response
	}

	response.Dishes = g.toDishes(result.Hits, "")
	response.TotalResults = result.Total
	response.Metadata.SearchTimeMs = result.TookMs

	return response
}

// FindSimilar returns up to five dishes resembling the seed, never the seed itself.
func (g *Gateway) FindSimilar(ctx context.Context, dishID string, name string) []models.Dish {
	result, err := g.engine.Search(ctx, g.index, BuildSimilarQuery(name))
	if err != nil {
		g.logger.Error().Err(err).Str("dish_id", dishID).Msg("Error finding similar dishes")
		return []models.Dish{}
	}

	return g.toDishes(result.Hits, dishID)
}

func (g *Gateway) toDishes(hits []Hit, excludeID string) []models.Dish {
	dishes := make([]models.Dish, 0, len(hits))
	for _, hit := range hits {
		if excludeID != "" && hit.ID == excludeID {
			continue
		}

		dish, err := DocumentToDish(hit.ID, hit.Source)
		if err != nil {
			g.logger.Warn().Err(err).Str("dish_id", hit.ID).Msg("skipping undecodable hit")
			continue
		}
		if excludeID != "" && dish.DishID == excludeID {
			continue
		}

		dishes = append(dishes, dish)
	}

	return dishes
}

// Page is 1-based and derived from the caller's limit, not the defaulted one.
func Page(limit int, offset int) int {
	if limit <= 0 {
		return 1
	}
	if offset < 0 {
		offset = 0
	}

	return offset/limit + 1
}
