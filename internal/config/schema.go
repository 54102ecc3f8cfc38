package config

import "github.com/povarna/generative-ai-agents/menu-agent/internal/models"

// CategoriesConfig is the ordered keyword table used to classify dish names.
// Rules are evaluated top to bottom and the first match wins.
type CategoriesConfig struct {
	Rules []CategoryRule `yaml:"rules"`
}

// CategoryRule maps any of its keywords to a single category
type CategoryRule struct {
	Category models.Category `yaml:"category"`
	Keywords []string        `yaml:"keywords"`
}
