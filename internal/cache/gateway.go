package cache

import (
	"context"
	"time"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
	"github.com/rs/zerolog"
)

const (
	TTL = 3600 * time.Second

	menuKeyPrefix = "menu:"
	dishKeyPrefix = "dish:"
)

func MenuKey(menuID string) string { return menuKeyPrefix + menuID }

func DishKey(dishID string) string { return dishKeyPrefix + dishID }

// Gateway stores typed snapshots of menus and dishes with a fixed TTL.
type Gateway struct {
	store  Store
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewGateway(store Store, logger *zerolog.Logger) *Gateway {
	return &Gateway{
		store:  store,
		ttl:    TTL,
		logger: logger,
	}
}

func (g *Gateway) GetMenu(ctx context.Context, menuID string) (*models.MenuResponse, error) {
	var menu models.MenuResponse
	if err := g.load(ctx, MenuKey(menuID), &menu); err != nil {
		return nil, err
	}

	return &menu, nil
}

func (g *Gateway) SetMenu(ctx context.Context, menu *models.MenuResponse) error {
	return g.save(ctx, MenuKey(menu.MenuID), menu)
}

func (g *Gateway) GetDish(ctx context.Context, dishID string) (*models.Dish, error) {
	var dish models.Dish
	if err := g.load(ctx, DishKey(dishID), &dish); err != nil {
		return nil, err
	}

	return &dish, nil
}

func (g *Gateway) SetDish(ctx context.Context, dish models.Dish) error {
	return g.save(ctx, DishKey(dish.DishID), dish)
}

func (g *Gateway) load(ctx context.Context, key string, v any) error {
	data, err := g.store.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := Decode(data, v); err != nil {
		// A corrupt entry behaves like a miss; it is overwritten on the next store.
		g.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return ErrCacheMiss
	}

	g.logger.Debug().Str("key", key).Msg("cache hit")
	return nil
}

func (g *Gateway) save(ctx context.Context, key string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return err
	}

	return g.store.SetEx(ctx, key, data, g.ttl)
}
