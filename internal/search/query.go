package search

import "github.com/povarna/generative-ai-agents/menu-agent/internal/models"

// BuildSearchQuery weights name over description over ingredients. Category
// and price constraints are filters and never affect scoring.
func BuildSearchQuery(req models.SearchRequest) map[string]any {
	size := req.Limit
	if size <= 0 {
		size = DefaultLimit
	}
	from := req.Offset
	if from < 0 {
		from = 0
	}

	match := map[string]any{
		"multi_match": map[string]any{
			"query":     req.Query,
			"fields":    []string{"name^3", "description^2", "ingredients"},
			"fuzziness": "AUTO",
		},
	}

	var filters []any
	if len(req.Categories) > 0 {
		categories := make([]string, 0, len(req.Categories))
		for _, c := range req.Categories {
			categories = append(categories, string(c))
		}
		filters = append(filters, map[string]any{
			"terms": map[string]any{"category": categories},
		})
	}
	if req.MinPrice != nil || req.MaxPrice != nil {
		bounds := map[string]any{}
		if req.MinPrice != nil {
			bounds["gte"] = *req.MinPrice
		}
		if req.MaxPrice != nil {
			bounds["lte"] = *req.MaxPrice
		}
		filters = append(filters, map[string]any{
			"range": map[string]any{"price.amount": bounds},
		})
	}

	query := match
	if len(filters) > 0 {
		query = map[string]any{
			"bool": map[string]any{
				"must":   match,
				"filter": filters,
			},
		}
	}

	return map[string]any{
		"query": query,
		"size":  size,
		"from":  from,
	}
}

func BuildSimilarQuery(name string) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"more_like_this": map[string]any{
				"fields":          []string{"name", "description"},
				"like":            name,
				"min_term_freq":   similarMinTermFreq,
				"max_query_terms": similarMaxQueryTerms,
			},
		},
		"size": similarLimit,
	}
}
