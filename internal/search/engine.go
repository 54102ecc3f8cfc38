package search

//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrNotFound = errors.New("document not found")

// Engine is the subset of a full-text search engine the gateway relies on.
type Engine interface {
	Index(ctx context.Context, index string, id string, document any) error
	Get(ctx context.Context, index string, id string) (json.RawMessage, error)
	Search(ctx context.Context, index string, query map[string]any) (*Result, error)
}

type Result struct {
	TookMs int64
	Total  int64
	Hits   []Hit
}

type Hit struct {
	ID     string
	Source json.RawMessage
}
