package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/cache"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/parser"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/pipeline/mocks"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/search"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/vision"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type testDeps struct {
	cache     *mocks.MockMenuCache
	index     *mocks.MockDishIndex
	publisher *mocks.MockEventPublisher
}

// newOfflineProcessor wires the real extractor without a provider and the real parser.
func newOfflineProcessor(t *testing.T, opts ...Option) (*Processor, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		cache:     mocks.NewMockMenuCache(ctrl),
		index:     mocks.NewMockDishIndex(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
	}

	processor := NewProcessor(
		vision.NewExtractor(nil, newTestLogger()),
		parser.NewParser(parser.NewCategorizer(nil)),
		deps.cache,
		deps.index,
		deps.publisher,
		newTestLogger(),
		opts...,
	)

	return processor, deps
}

func TestProcessor_ProcessMenu_Fallback(t *testing.T) {
	processor, deps := newOfflineProcessor(t)

	deps.index.EXPECT().IndexDish(gomock.Any(), gomock.Any()).Return(nil).Times(4)
	deps.publisher.EXPECT().PublishMenuProcessed(gomock.Any(), gomock.Any(), 4)

	resp, err := processor.ProcessMenu(context.Background(), nil, "", models.ProcessingOptions{ExtractPrices: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		name     string
		category models.Category
		amount   float64
	}{
		{"Margherita Pizza", models.CategoryMain, 12.99},
		{"Pasta Carbonara", models.CategoryMain, 14.99},
		{"Caesar Salad", models.CategoryAppetizer, 8.99},
		{"Tiramisu", models.CategoryDessert, 6.99},
	}

	if len(resp.Dishes) != len(want) {
		t.Fatalf("expected %d dishes, got %d", len(want), len(resp.Dishes))
	}
	for i, w := range want {
		dish := resp.Dishes[i]
		if dish.Name != w.name {
			t.Errorf("dish %d: expected name %q, got %q", i, w.name, dish.Name)
		}
		if dish.Category != w.category {
			t.Errorf("dish %d: expected category %s, got %s", i, w.category, dish.Category)
		}
		if dish.ConfidenceScore != 0.85 {
			t.Errorf("dish %d: expected confidence 0.85, got %.2f", i, dish.ConfidenceScore)
		}
		if dish.Price == nil || dish.Price.Amount != w.amount {
			t.Errorf("dish %d: expected price %.2f, got %+v", i, w.amount, dish.Price)
		}
	}

	if resp.Status.Status != models.StatusCompleted {
		t.Errorf("expected COMPLETED, got %s", resp.Status.Status)
	}
	if resp.Status.Message != "Menu processed successfully" {
		t.Errorf("unexpected status message %q", resp.Status.Message)
	}
	if resp.Metadata.Source != Source || resp.Metadata.TotalDishes != 4 {
		t.Errorf("unexpected metadata %+v", resp.Metadata)
	}
	if resp.MenuID == "" {
		t.Error("expected a menu id")
	}
}

func TestProcessor_ProcessMenu_WithoutPrices(t *testing.T) {
	processor, deps := newOfflineProcessor(t)

	deps.index.EXPECT().IndexDish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.publisher.EXPECT().PublishMenuProcessed(gomock.Any(), gomock.Any(), 4)

	resp, err := processor.ProcessMenu(context.Background(), nil, "", models.ProcessingOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, dish := range resp.Dishes {
		if dish.Price != nil {
			t.Errorf("expected no price for %s, got %+v", dish.Name, dish.Price)
		}
	}
}

func TestProcessor_ProcessMenu_UseCacheDistinctMenuIDs(t *testing.T) {
	processor, deps := newOfflineProcessor(t)

	var stored []string
	deps.cache.EXPECT().GetMenu(gomock.Any(), gomock.Any()).Return(nil, cache.ErrCacheMiss).Times(2)
	deps.cache.EXPECT().SetMenu(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, menu *models.MenuResponse) error {
			stored = append(stored, menu.MenuID)
			return nil
		}).Times(2)
	deps.index.EXPECT().IndexDish(gomock.Any(), gomock.Any()).Return(nil).Times(8)
	deps.publisher.EXPECT().PublishMenuProcessed(gomock.Any(), gomock.Any(), 4).Times(2)

	opts := models.ProcessingOptions{UseCache: true, ExtractPrices: true}
	first, err := processor.ProcessMenu(context.Background(), nil, "", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := processor.ProcessMenu(context.Background(), nil, "", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.MenuID == second.MenuID {
		t.Errorf("expected distinct menu ids, both were %s", first.MenuID)
	}
	if len(stored) != 2 || stored[0] != first.MenuID || stored[1] != second.MenuID {
		t.Errorf("expected menus cached under their own ids, got %v", stored)
	}
}

func TestProcessor_ProcessMenu_CacheHit(t *testing.T) {
	processor, deps := newOfflineProcessor(t)
	processor.newID = func() string { return "menu-1" }

	cached := &models.MenuResponse{MenuID: "menu-1", Status: models.ProcessingStatus{Status: models.StatusCompleted}}
	deps.cache.EXPECT().GetMenu(gomock.Any(), "menu-1").Return(cached, nil)

	resp, err := processor.ProcessMenu(context.Background(), nil, "", models.ProcessingOptions{UseCache: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != cached {
		t.Errorf("expected cached response to be returned as is")
	}
}

func TestProcessor_ProcessMenu_DegradedCollaborators(t *testing.T) {
	processor, deps := newOfflineProcessor(t)

	deps.cache.EXPECT().GetMenu(gomock.Any(), gomock.Any()).Return(nil, cache.ErrCacheUnavailable)
	deps.cache.EXPECT().SetMenu(gomock.Any(), gomock.Any()).Return(cache.ErrCacheUnavailable)
	deps.index.EXPECT().IndexDish(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).Times(4)
	deps.publisher.EXPECT().PublishMenuProcessed(gomock.Any(), gomock.Any(), 4)

	resp, err := processor.ProcessMenu(context.Background(), nil, "", models.ProcessingOptions{UseCache: true})
	if err != nil {
		t.Fatalf("collaborator outages must not fail the run: %v", err)
	}
	if resp.Status.Status != models.StatusCompleted || len(resp.Dishes) != 4 {
		t.Errorf("expected completed run with 4 dishes, got %s with %d", resp.Status.Status, len(resp.Dishes))
	}
}

func TestProcessor_ProcessMenu_ParseFailureCompletesEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockTextExtractor(ctrl)
	index := mocks.NewMockDishIndex(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)

	extractor.EXPECT().ExtractText(gomock.Any(), []byte("img")).Return([]string{"HEADER", "no separators here", "Soup - no price"})
	publisher.EXPECT().PublishMenuProcessed(gomock.Any(), gomock.Any(), 0)

	processor := NewProcessor(extractor, parser.NewParser(nil), mocks.NewMockMenuCache(ctrl), index, publisher, newTestLogger())

	resp, err := processor.ProcessMenu(context.Background(), []byte("img"), "", models.ProcessingOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status.Status != models.StatusCompleted || len(resp.Dishes) != 0 {
		t.Errorf("expected completed run with no dishes, got %s with %d", resp.Status.Status, len(resp.Dishes))
	}
}

func TestProcessor_ProcessMenu_Cancelled(t *testing.T) {
	processor, deps := newOfflineProcessor(t)
	deps.index.EXPECT().IndexDish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := processor.ProcessMenu(ctx, nil, "", models.ProcessingOptions{UseCache: false})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if resp == nil || resp.Status.Status != models.StatusFailed {
		t.Fatalf("expected FAILED response, got %+v", resp)
	}
	if len(resp.Dishes) != 0 {
		t.Errorf("expected no dishes on failure, got %d", len(resp.Dishes))
	}
}

func TestProcessor_ProcessMenu_FetchesObjectStorageImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockTextExtractor(ctrl)
	fetcher := mocks.NewMockImageFetcher(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)

	fetcher.EXPECT().Supports("s3://menus/lunch.jpg").Return(true)
	fetcher.EXPECT().Fetch(gomock.Any(), "s3://menus/lunch.jpg").Return([]byte("jpeg"), nil)
	extractor.EXPECT().ExtractText(gomock.Any(), []byte("jpeg")).Return([]string{"MENU"})
	publisher.EXPECT().PublishMenuProcessed(gomock.Any(), gomock.Any(), 0)

	processor := NewProcessor(extractor, parser.NewParser(nil), mocks.NewMockMenuCache(ctrl), mocks.NewMockDishIndex(ctrl), publisher, newTestLogger(), WithImageFetcher(fetcher))

	if _, err := processor.ProcessMenu(context.Background(), nil, "s3://menus/lunch.jpg", models.ProcessingOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessor_ProcessMenu_FetchFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockImageFetcher(ctrl)
	index := mocks.NewMockDishIndex(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)

	fetcher.EXPECT().Supports(gomock.Any()).Return(true)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied"))
	index.EXPECT().IndexDish(gomock.Any(), gomock.Any()).Return(nil).Times(4)
	publisher.EXPECT().PublishMenuProcessed(gomock.Any(), gomock.Any(), 4)

	processor := NewProcessor(
		vision.NewExtractor(nil, newTestLogger()),
		parser.NewParser(nil),
		mocks.NewMockMenuCache(ctrl),
		index,
		publisher,
		newTestLogger(),
		WithImageFetcher(fetcher),
	)

	resp, err := processor.ProcessMenu(context.Background(), nil, "s3://menus/missing.jpg", models.ProcessingOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Dishes) != 4 {
		t.Errorf("expected fallback dishes, got %d", len(resp.Dishes))
	}
}

func TestProcessor_GetMenu(t *testing.T) {
	processor, deps := newOfflineProcessor(t)

	menu := &models.MenuResponse{MenuID: "m1"}
	deps.cache.EXPECT().GetMenu(gomock.Any(), "m1").Return(menu, nil)
	deps.cache.EXPECT().GetMenu(gomock.Any(), "m2").Return(nil, cache.ErrCacheMiss)

	got, err := processor.GetMenu(context.Background(), "m1")
	if err != nil || got.MenuID != "m1" {
		t.Errorf("expected cached menu, got %+v, %v", got, err)
	}

	_, err = processor.GetMenu(context.Background(), "m2")
	if !errors.Is(err, ErrMenuNotFound) {
		t.Errorf("expected ErrMenuNotFound, got %v", err)
	}
}

func TestProcessor_GetDish(t *testing.T) {
	dish := models.Dish{DishID: "d1", Name: "Margherita Pizza", Category: models.CategoryMain, ConfidenceScore: 0.85}
	similar := []models.Dish{{DishID: "d2", Name: "Pepperoni Pizza"}}

	t.Run("cache hit", func(t *testing.T) {
		processor, deps := newOfflineProcessor(t)
		deps.cache.EXPECT().GetDish(gomock.Any(), "d1").Return(&dish, nil)

		resp, err := processor.GetDish(context.Background(), "d1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Dish.Name != dish.Name {
			t.Errorf("expected %s, got %s", dish.Name, resp.Dish.Name)
		}
		if resp.SimilarDishes != nil {
			t.Errorf("expected no similar dishes, got %v", resp.SimilarDishes)
		}
	})

	t.Run("index fallback caches result", func(t *testing.T) {
		processor, deps := newOfflineProcessor(t)
		deps.cache.EXPECT().GetDish(gomock.Any(), "d1").Return(nil, cache.ErrCacheMiss)
		deps.index.EXPECT().GetDish(gomock.Any(), "d1").Return(&dish, nil)
		deps.cache.EXPECT().SetDish(gomock.Any(), dish).Return(nil)
		deps.index.EXPECT().FindSimilar(gomock.Any(), "d1", "Margherita Pizza").Return(similar)

		resp, err := processor.GetDish(context.Background(), "d1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.SimilarDishes) != 1 || resp.SimilarDishes[0].DishID != "d2" {
			t.Errorf("unexpected similar dishes %v", resp.SimilarDishes)
		}
	})

	t.Run("cache write failure is ignored", func(t *testing.T) {
		processor, deps := newOfflineProcessor(t)
		deps.cache.EXPECT().GetDish(gomock.Any(), "d1").Return(nil, cache.ErrCacheUnavailable)
		deps.index.EXPECT().GetDish(gomock.Any(), "d1").Return(&dish, nil)
		deps.cache.EXPECT().SetDish(gomock.Any(), dish).Return(cache.ErrCacheUnavailable)

		if _, err := processor.GetDish(context.Background(), "d1", false); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		processor, deps := newOfflineProcessor(t)
		deps.cache.EXPECT().GetDish(gomock.Any(), "missing").Return(nil, cache.ErrCacheMiss)
		deps.index.EXPECT().GetDish(gomock.Any(), "missing").Return(nil, search.ErrNotFound)

		resp, err := processor.GetDish(context.Background(), "missing", true)
		if !errors.Is(err, ErrDishNotFound) {
			t.Errorf("expected ErrDishNotFound, got %v", err)
		}
		if resp != nil {
			t.Errorf("expected nil response, got %+v", resp)
		}
	})

	t.Run("index failure", func(t *testing.T) {
		processor, deps := newOfflineProcessor(t)
		deps.cache.EXPECT().GetDish(gomock.Any(), "d1").Return(nil, cache.ErrCacheMiss)
		deps.index.EXPECT().GetDish(gomock.Any(), "d1").Return(nil, errors.New("connection refused"))

		_, err := processor.GetDish(context.Background(), "d1", false)
		if err == nil || errors.Is(err, ErrDishNotFound) {
			t.Errorf("expected infrastructure error, got %v", err)
		}
	})
}

func TestProcessor_SearchDishes(t *testing.T) {
	processor, deps := newOfflineProcessor(t)

	req := models.SearchRequest{Query: "pizza", Limit: 10, Offset: 20}
	want := models.SearchResponse{Dishes: []models.Dish{{DishID: "d1"}}, TotalResults: 21, Page: 3}
	deps.index.EXPECT().Search(gomock.Any(), req).Return(want)

	got := processor.SearchDishes(context.Background(), req)
	if got.Page != 3 || got.TotalResults != 21 || len(got.Dishes) != 1 {
		t.Errorf("unexpected search response %+v", got)
	}
}

func TestProcessor_StreamMenuProcessing(t *testing.T) {
	processor, deps := newOfflineProcessor(t)

	var indexed []string
	deps.index.EXPECT().IndexDish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, dish models.Dish) error {
			indexed = append(indexed, dish.Name)
			return nil
		}).Times(4)

	var names []string
	for dish := range processor.StreamMenuProcessing(context.Background(), nil, "", models.ProcessingOptions{ExtractPrices: true}) {
		if len(indexed) != len(names)+1 {
			t.Errorf("dish %s yielded before being indexed", dish.Name)
		}
		names = append(names, dish.Name)
	}

	want := []string{"Margherita Pizza", "Pasta Carbonara", "Caesar Salad", "Tiramisu"}
	if len(names) != len(want) {
		t.Fatalf("expected %d dishes, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestProcessor_StreamMenuProcessing_EarlyStop(t *testing.T) {
	processor, deps := newOfflineProcessor(t)
	deps.index.EXPECT().IndexDish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	count := 0
	for range processor.StreamMenuProcessing(context.Background(), nil, "", models.ProcessingOptions{}) {
		count++
		if count == 2 {
			break
		}
	}

	if count != 2 {
		t.Errorf("expected 2 dishes before stopping, got %d", count)
	}
}

func TestProcessor_StreamMenuProcessing_Rerunnable(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockTextExtractor(ctrl)
	index := mocks.NewMockDishIndex(ctrl)

	extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any()).Return(vision.FallbackLines).Times(2)
	index.EXPECT().IndexDish(gomock.Any(), gomock.Any()).Return(nil).Times(8)

	processor := NewProcessor(extractor, parser.NewParser(nil), mocks.NewMockMenuCache(ctrl), index, mocks.NewMockEventPublisher(ctrl), newTestLogger())

	seq := processor.StreamMenuProcessing(context.Background(), nil, "", models.ProcessingOptions{})
	for range 2 {
		n := 0
		for range seq {
			n++
		}
		if n != 4 {
			t.Errorf("expected 4 dishes per pass, got %d", n)
		}
	}
}
