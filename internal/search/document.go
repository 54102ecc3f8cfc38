package search

import (
	"encoding/json"
	"fmt"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
)

// Document is the stored shape of a dish in the search index.
type Document struct {
	DishID          string         `json:"dish_id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Price           *PriceDocument `json:"price"`
	Ingredients     []string       `json:"ingredients"`
	Category        string         `json:"category"`
	ConfidenceScore float64        `json:"confidence_score"`
	ImageURL        string         `json:"image_url,omitempty"`
}

type PriceDocument struct {
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency,omitempty"`
	OriginalText string  `json:"original_text,omitempty"`
}

func DishToDocument(dish models.Dish) Document {
	doc := Document{
		DishID:          dish.DishID,
		Name:            dish.Name,
		Description:     dish.Description,
		Ingredients:     dish.Ingredients,
		Category:        string(dish.Category),
		ConfidenceScore: dish.ConfidenceScore,
		ImageURL:        dish.ImageURL,
	}
	if doc.Ingredients == nil {
		doc.Ingredients = []string{}
	}
	if dish.Price != nil {
		doc.Price = &PriceDocument{
			Amount:       dish.Price.Amount,
			Currency:     dish.Price.Currency,
			OriginalText: dish.Price.OriginalText,
		}
	}

	return doc
}

// DocumentToDish maps a stored source back to a dish. Missing fields fall back
// to defaults and the engine id stands in for an absent dish_id.
func DocumentToDish(id string, source json.RawMessage) (models.Dish, error) {
	var doc Document
	if err := json.Unmarshal(source, &doc); err != nil {
		return models.Dish{}, fmt.Errorf("failed to decode dish document %s: %w", id, err)
	}

	dish := models.Dish{
		DishID:          doc.DishID,
		Name:            doc.Name,
		Description:     doc.Description,
		Category:        toCategory(doc.Category),
		ConfidenceScore: clamp(doc.ConfidenceScore),
		Ingredients:     doc.Ingredients,
		ImageURL:        doc.ImageURL,
	}
	if dish.DishID == "" {
		dish.DishID = id
	}
	if dish.Ingredients == nil {
		dish.Ingredients = []string{}
	}
	if doc.Price != nil {
		currency := doc.Price.Currency
		if currency == "" {
			currency = models.DefaultCurrency
		}
		dish.Price = &models.Price{
			Amount:       doc.Price.Amount,
			Currency:     currency,
			OriginalText: doc.Price.OriginalText,
		}
	}

	return dish, nil
}

func toCategory(value string) models.Category {
	switch c := models.Category(value); c {
	case models.CategoryMain, models.CategoryAppetizer, models.CategoryDessert:
		return c
	default:
		return models.CategoryOther
	}
}

func clamp(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}
