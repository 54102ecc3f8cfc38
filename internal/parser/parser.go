package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
)

const defaultConfidence = 0.85

// Parser turns OCR lines of the form "<name> - <description> - $<price>" into dishes.
type Parser struct {
	categorizer *Categorizer
	newID       func() string
}

// NewParser uses the built-in category rules when categorizer is nil.
func NewParser(categorizer *Categorizer) *Parser {
	if categorizer == nil {
		categorizer = NewCategorizer(nil)
	}

	return &Parser{
		categorizer: categorizer,
		newID:       uuid.NewString,
	}
}

// Parse skips line 0, which providers use for the full-text blob.
func (p *Parser) Parse(lines []string, options models.ProcessingOptions) []models.Dish {
	dishes := []models.Dish{}

	for i := 1; i < len(lines); i++ {
		dish, ok := p.parseLine(lines[i], options)
		if ok {
			dishes = append(dishes, dish)
		}
	}

	return dishes
}

func (p *Parser) parseLine(line string, options models.ProcessingOptions) (models.Dish, bool) {
	if !strings.Contains(line, "-") || !strings.Contains(line, "$") {
		return models.Dish{}, false
	}

	parts := strings.SplitN(line, "-", 2)
	if len(parts) < 2 {
		return models.Dish{}, false
	}

	name := strings.TrimSpace(parts[0])
	description := strings.TrimSpace(parts[1])

	var price *models.Price
	if strings.Contains(description, "$") {
		price, description = splitPrice(description)
	}

	dish := models.Dish{
		DishID:          p.newID(),
		Name:            name,
		Description:     description,
		Category:        p.categorizer.Categorize(name),
		ConfidenceScore: defaultConfidence,
		Ingredients:     []string{},
		ImageURL:        "",
	}
	if options.ExtractPrices && price != nil {
		dish.Price = price
	}

	return dish, true
}

// splitPrice uses the last "$" as the price boundary. Whatever precedes it is
// the description, minus a " -" separator before the price. A hyphen attached
// to the last word stays.
func splitPrice(rest string) (*models.Price, string) {
	segments := strings.Split(rest, "$")
	fragment := strings.TrimSpace(segments[len(segments)-1])

	description := strings.TrimSpace(strings.Join(segments[:len(segments)-1], "$"))
	if description == "-" {
		description = ""
	} else if base, ok := strings.CutSuffix(description, "-"); ok && strings.TrimRight(base, " \t") != base {
		description = strings.TrimSpace(base)
	}

	return &models.Price{
		Amount:       parseAmount(fragment),
		Currency:     models.DefaultCurrency,
		OriginalText: "$" + fragment,
	}, description
}

// parseAmount never fails: unreadable prices become 0.
func parseAmount(fragment string) float64 {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(fragment, ",", ""), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}

	return amount
}
