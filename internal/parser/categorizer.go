package parser

import (
	"strings"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/config"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
)

// Categorizer classifies a dish by keyword. Matching is a case-insensitive
// substring test and the first matching rule wins.
type Categorizer struct {
	rules []config.CategoryRule
}

func NewCategorizer(cfg *config.CategoriesConfig) *Categorizer {
	if cfg == nil {
		cfg = config.DefaultCategories()
	}

	return &Categorizer{rules: cfg.Rules}
}

func (c *Categorizer) Categorize(name string) models.Category {
	lower := strings.ToLower(name)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Category
			}
		}
	}

	return models.CategoryOther
}
