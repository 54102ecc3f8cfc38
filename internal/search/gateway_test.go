package search_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/search"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/search/mocks"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestGateway(t *testing.T) (*search.Gateway, *mocks.MockEngine) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)
	logger := zerolog.Nop()
	return search.NewGateway(engine, "", &logger), engine
}

func source(t *testing.T, doc search.Document) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return raw
}

func TestPage(t *testing.T) {
	tests := []struct {
		limit, offset, want int
	}{
		{limit: 10, offset: 20, want: 3},
		{limit: 0, offset: 20, want: 1},
		{limit: 20, offset: 0, want: 1},
		{limit: 20, offset: 19, want: 1},
		{limit: 5, offset: -3, want: 1},
	}

	for _, tt := range tests {
		if got := search.Page(tt.limit, tt.offset); got != tt.want {
			t.Errorf("Page(%d, %d) = %d, want %d", tt.limit, tt.offset, got, tt.want)
		}
	}
}

func TestGateway_IndexDish(t *testing.T) {
	gw, engine := newTestGateway(t)

	dish := models.Dish{
		DishID:          "d1",
		Name:            "Caesar Salad",
		Price:           &models.Price{Amount: 8.99, Currency: "USD", OriginalText: "$8.99"},
		Category:        models.CategoryAppetizer,
		ConfidenceScore: 0.85,
	}

	engine.EXPECT().
		Index(gomock.Any(), "dishes", "d1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, document any) error {
			doc, ok := document.(search.Document)
			if !ok {
				t.Fatalf("expected search.Document, got %T", document)
			}
			if doc.Category != "appetizer" || doc.Price.Amount != 8.99 || doc.Ingredients == nil {
				t.Errorf("unexpected document %+v", doc)
			}
			return nil
		})

	if err := gw.IndexDish(context.Background(), dish); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGateway_IndexDish_Error(t *testing.T) {
	gw, engine := newTestGateway(t)
	engine.EXPECT().Index(gomock.Any(), "dishes", "d1", gomock.Any()).Return(errors.New("connection refused"))

	if err := gw.IndexDish(context.Background(), models.Dish{DishID: "d1"}); err == nil {
		t.Error("expected error")
	}
}

func TestGateway_Search(t *testing.T) {
	gw, engine := newTestGateway(t)

	engine.EXPECT().
		Search(gomock.Any(), "dishes", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query map[string]any) (*search.Result, error) {
			if query["size"] != 10 || query["from"] != 20 {
				t.Errorf("unexpected pagination size=%v from=%v", query["size"], query["from"])
			}
			boolQuery, ok := query["query"].(map[string]any)["bool"].(map[string]any)
			if !ok {
				t.Fatalf("expected bool query when categories are set, got %v", query["query"])
			}
			filters := boolQuery["filter"].([]any)
			terms := filters[0].(map[string]any)["terms"].(map[string]any)
			categories := terms["category"].([]string)
			if len(categories) != 2 || categories[0] != "main" || categories[1] != "dessert" {
				t.Errorf("unexpected category filter %v", categories)
			}

			return &search.Result{
				TookMs: 7,
				Total:  42,
				Hits: []search.Hit{
					{ID: "a", Source: source(t, search.Document{DishID: "a", Name: "Pizza", Category: "main"})},
					{ID: "b", Source: json.RawMessage(`not json`)},
				},
			}, nil
		})

	resp := gw.Search(context.Background(), models.SearchRequest{
		Query:      "pizza",
		Categories: []models.Category{models.CategoryMain, models.CategoryDessert},
		Limit:      10,
		Offset:     20,
	})

	if resp.Page != 3 {
		t.Errorf("expected page 3, got %d", resp.Page)
	}
	if resp.TotalResults != 42 {
		t.Errorf("expected 42 total results, got %d", resp.TotalResults)
	}
	if resp.Metadata.SearchTimeMs != 7 {
		t.Errorf("expected took 7, got %d", resp.Metadata.SearchTimeMs)
	}
	if len(resp.Dishes) != 1 || resp.Dishes[0].DishID != "a" {
		t.Errorf("expected only the decodable hit, got %+v", resp.Dishes)
	}
}

func TestGateway_Search_DefaultsAndNoFilter(t *testing.T) {
	gw, engine := newTestGateway(t)

	engine.EXPECT().
		Search(gomock.Any(), "dishes", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query map[string]any) (*search.Result, error) {
			if query["size"] != search.DefaultLimit {
				t.Errorf("expected default size, got %v", query["size"])
			}
			inner := query["query"].(map[string]any)
			mm, ok := inner["multi_match"].(map[string]any)
			if !ok {
				t.Fatalf("expected bare multi_match, got %v", inner)
			}
			fields := mm["fields"].([]string)
			if fields[0] != "name^3" || fields[1] != "description^2" || fields[2] != "ingredients" {
				t.Errorf("unexpected fields %v", fields)
			}
			return &search.Result{}, nil
		})

	resp := gw.Search(context.Background(), models.SearchRequest{Query: "soup"})
	if resp.Page != 1 {
		t.Errorf("expected page 1, got %d", resp.Page)
	}
	if resp.Dishes == nil {
		t.Error("expected non-nil dishes")
	}
}

func TestGateway_Search_PriceRange(t *testing.T) {
	gw, engine := newTestGateway(t)
	minPrice, maxPrice := 5.0, 15.0

	engine.EXPECT().
		Search(gomock.Any(), "dishes", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query map[string]any) (*search.Result, error) {
			filters := query["query"].(map[string]any)["bool"].(map[string]any)["filter"].([]any)
			if len(filters) != 1 {
				t.Fatalf("expected only the price filter, got %v", filters)
			}
			bounds := filters[0].(map[string]any)["range"].(map[string]any)["price.amount"].(map[string]any)
			if bounds["gte"] != 5.0 || bounds["lte"] != 15.0 {
				t.Errorf("unexpected bounds %v", bounds)
			}
			return &search.Result{}, nil
		})

	gw.Search(context.Background(), models.SearchRequest{Query: "pasta", MinPrice: &minPrice, MaxPrice: &maxPrice})
}

func TestGateway_Search_EngineError(t *testing.T) {
	gw, engine := newTestGateway(t)
	engine.EXPECT().Search(gomock.Any(), "dishes", gomock.Any()).Return(nil, errors.New("cluster red"))

	resp := gw.Search(context.Background(), models.SearchRequest{Query: "pizza", Limit: 10})

	if len(resp.Dishes) != 0 || resp.TotalResults != 0 {
		t.Errorf("expected empty response, got %+v", resp)
	}
}

func TestGateway_GetDish(t *testing.T) {
	gw, engine := newTestGateway(t)

	engine.EXPECT().Get(gomock.Any(), "dishes", "d1").
		Return(json.RawMessage(`{"name":"Tiramisu","category":"dessert","confidence_score":0.85,"price":{"amount":6.99}}`), nil)

	dish, err := gw.GetDish(context.Background(), "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dish.DishID != "d1" {
		t.Errorf("expected engine id fallback d1, got %q", dish.DishID)
	}
	if dish.Price == nil || dish.Price.Currency != "USD" {
		t.Errorf("expected default currency USD, got %+v", dish.Price)
	}
	if dish.Ingredients == nil {
		t.Error("expected empty ingredients slice")
	}
}

func TestGateway_GetDish_NotFound(t *testing.T) {
	gw, engine := newTestGateway(t)
	engine.EXPECT().Get(gomock.Any(), "dishes", "missing").Return(nil, search.ErrNotFound)

	_, err := gw.GetDish(context.Background(), "missing")
	if !errors.Is(err, search.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGateway_GetDish_EngineError(t *testing.T) {
	gw, engine := newTestGateway(t)
	engine.EXPECT().Get(gomock.Any(), "dishes", "d1").Return(nil, errors.New("timeout"))

	_, err := gw.GetDish(context.Background(), "d1")
	if err == nil || errors.Is(err, search.ErrNotFound) {
		t.Errorf("expected wrapped engine error, got %v", err)
	}
}

func TestGateway_FindSimilar_ExcludesSeed(t *testing.T) {
	gw, engine := newTestGateway(t)

	engine.EXPECT().
		Search(gomock.Any(), "dishes", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query map[string]any) (*search.Result, error) {
			if query["size"] != 5 {
				t.Errorf("expected size 5, got %v", query["size"])
			}
			mlt := query["query"].(map[string]any)["more_like_this"].(map[string]any)
			if mlt["like"] != "Margherita Pizza" || mlt["min_term_freq"] != 1 || mlt["max_query_terms"] != 12 {
				t.Errorf("unexpected more_like_this %v", mlt)
			}
			return &search.Result{Hits: []search.Hit{
				{ID: "X", Source: source(t, search.Document{DishID: "X", Name: "Margherita Pizza"})},
				{ID: "Y", Source: source(t, search.Document{DishID: "Y", Name: "Pepperoni Pizza"})},
				{ID: "Z", Source: source(t, search.Document{Name: "Pizza Bianca"})},
			}}, nil
		})

	similar := gw.FindSimilar(context.Background(), "X", "Margherita Pizza")

	if len(similar) != 2 {
		t.Fatalf("expected 2 similar dishes, got %d", len(similar))
	}
	for _, d := range similar {
		if d.DishID == "X" {
			t.Error("seed dish must not be returned")
		}
	}
}

func TestGateway_FindSimilar_Error(t *testing.T) {
	gw, engine := newTestGateway(t)
	engine.EXPECT().Search(gomock.Any(), "dishes", gomock.Any()).Return(nil, errors.New("boom"))

	similar := gw.FindSimilar(context.Background(), "X", "Soup")
	if similar == nil || len(similar) != 0 {
		t.Errorf("expected empty slice, got %v", similar)
	}
}
