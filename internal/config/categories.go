package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
	"gopkg.in/yaml.v3"
)

func DefaultCategories() *CategoriesConfig {
	return &CategoriesConfig{
		Rules: []CategoryRule{
			{Category: models.CategoryMain, Keywords: []string{"pizza", "burger", "sandwich", "pasta"}},
			{Category: models.CategoryAppetizer, Keywords: []string{"salad", "soup", "appetizer"}},
			{Category: models.CategoryDessert, Keywords: []string{"cake", "pie", "ice cream", "tiramisu"}},
		},
	}
}

// LoadCategoriesConfig reads the rule table from CATEGORIES_CONFIG_PATH.
// Without the variable the built-in table is returned.
func LoadCategoriesConfig() (*CategoriesConfig, error) {
	path := os.Getenv("CATEGORIES_CONFIG_PATH")
	if path == "" {
		return DefaultCategories(), nil
	}

	return LoadCategoriesFile(path)
}

func LoadCategoriesFile(path string) (*CategoriesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories config %s: %w", path, err)
	}

	var cfg CategoriesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse categories config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *CategoriesConfig) {
	for i := range cfg.Rules {
		for j, kw := range cfg.Rules[i].Keywords {
			cfg.Rules[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
}

func (c *CategoriesConfig) Validate() error {
	if len(c.Rules) == 0 {
		return fmt.Errorf("categories config has no rules")
	}

	for i, rule := range c.Rules {
		switch rule.Category {
		case models.CategoryMain, models.CategoryAppetizer, models.CategoryDessert, models.CategoryOther:
		default:
			return fmt.Errorf("rule %d: unknown category %q", i, rule.Category)
		}

		if len(rule.Keywords) == 0 {
			return fmt.Errorf("rule %d (%s): no keywords", i, rule.Category)
		}
		for _, kw := range rule.Keywords {
			if kw == "" {
				return fmt.Errorf("rule %d (%s): empty keyword", i, rule.Category)
			}
		}
	}

	return nil
}
