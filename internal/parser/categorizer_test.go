package parser

import (
	"testing"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/config"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
)

func TestCategorizer_Defaults(t *testing.T) {
	c := NewCategorizer(nil)

	tests := []struct {
		name string
		want models.Category
	}{
		{"Margherita Pizza", models.CategoryMain},
		{"Caesar Salad", models.CategoryAppetizer},
		{"Tiramisu", models.CategoryDessert},
		{"Bread Basket", models.CategoryOther},
		{"CHEESEBURGER", models.CategoryMain},
		{"Vanilla Ice Cream", models.CategoryDessert},
		{"Pizza Soup", models.CategoryMain},
		{"Apple Pie", models.CategoryDessert},
		{"", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Categorize(tt.name); got != tt.want {
				t.Errorf("Categorize(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestCategorizer_CustomRules(t *testing.T) {
	c := NewCategorizer(&config.CategoriesConfig{
		Rules: []config.CategoryRule{
			{Category: models.CategoryDessert, Keywords: []string{"gelato"}},
		},
	})

	if got := c.Categorize("Pistachio Gelato"); got != models.CategoryDessert {
		t.Errorf("expected dessert, got %s", got)
	}
	if got := c.Categorize("Margherita Pizza"); got != models.CategoryOther {
		t.Errorf("expected other without a pizza rule, got %s", got)
	}
}
