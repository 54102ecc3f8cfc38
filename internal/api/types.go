package api

import (
	"context"
	"iter"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
)

// MenuService is what the HTTP layer needs from the processing pipeline.
type MenuService interface {
	ProcessMenu(ctx context.Context, imageData []byte, imageURL string, options models.ProcessingOptions) (*models.MenuResponse, error)
	GetMenu(ctx context.Context, menuID string) (*models.MenuResponse, error)
	GetDish(ctx context.Context, dishID string, includeSimilar bool) (*models.DishResponse, error)
	SearchDishes(ctx context.Context, req models.SearchRequest) models.SearchResponse
	StreamMenuProcessing(ctx context.Context, imageData []byte, imageURL string, options models.ProcessingOptions) iter.Seq[models.Dish]
}

// HealthCheck pings one backing service.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// uploadOptions mirrors ProcessingOptions but tells "absent" from "false".
type uploadOptions struct {
	UseCache            *bool  `json:"use_cache"`
	ExtractPrices       *bool  `json:"extract_prices"`
	ExtractDescriptions *bool  `json:"extract_descriptions"`
	ExtractIngredients  bool   `json:"extract_ingredients"`
	Language            string `json:"language"`
}

func (o uploadOptions) toProcessingOptions() models.ProcessingOptions {
	language := o.Language
	if language == "" {
		language = "en"
	}

	return models.ProcessingOptions{
		UseCache:            o.UseCache == nil || *o.UseCache,
		ExtractPrices:       o.ExtractPrices == nil || *o.ExtractPrices,
		ExtractDescriptions: o.ExtractDescriptions == nil || *o.ExtractDescriptions,
		ExtractIngredients:  o.ExtractIngredients,
		Language:            language,
	}
}
