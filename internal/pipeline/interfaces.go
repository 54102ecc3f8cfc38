package pipeline

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
)

type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) []string
}

type DishParser interface {
	Parse(lines []string, options models.ProcessingOptions) []models.Dish
}

// MenuCache reports any failure, including an unreachable store, as an error.
// The processor treats every error as a miss.
type MenuCache interface {
	GetMenu(ctx context.Context, menuID string) (*models.MenuResponse, error)
	SetMenu(ctx context.Context, menu *models.MenuResponse) error
	GetDish(ctx context.Context, dishID string) (*models.Dish, error)
	SetDish(ctx context.Context, dish models.Dish) error
}

type DishIndex interface {
	IndexDish(ctx context.Context, dish models.Dish) error
	GetDish(ctx context.Context, dishID string) (*models.Dish, error)
	Search(ctx context.Context, req models.SearchRequest) models.SearchResponse
	FindSimilar(ctx context.Context, dishID string, name string) []models.Dish
}

type EventPublisher interface {
	PublishMenuProcessed(ctx context.Context, menuID string, dishCount int)
}

type ImageFetcher interface {
	Supports(imageURL string) bool
	Fetch(ctx context.Context, imageURL string) ([]byte, error)
}
