package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// indexMapping keeps category a keyword so category filters are exact matches.
const indexMapping = `{
  "mappings": {
    "properties": {
      "dish_id":          {"type": "keyword"},
      "name":             {"type": "text"},
      "description":      {"type": "text"},
      "ingredients":      {"type": "text"},
      "category":         {"type": "keyword"},
      "confidence_score": {"type": "float"},
      "image_url":        {"type": "keyword", "index": false},
      "price": {
        "properties": {
          "amount":        {"type": "float"},
          "currency":      {"type": "keyword"},
          "original_text": {"type": "keyword", "index": false}
        }
      }
    }
  }
}`

type ElasticEngine struct {
	client *elasticsearch.Client
}

func NewElasticEngine(addresses ...string) (*ElasticEngine, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:    addresses,
		DisableRetry: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return &ElasticEngine{client: client}, nil
}

func (e *ElasticEngine) Ping(ctx context.Context) error {
	res, err := e.client.Ping(e.client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch ping failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch ping failed: %s", res.Status())
	}
	return nil
}

// EnsureIndex creates the index with its mapping when it does not exist yet.
func (e *ElasticEngine) EnsureIndex(ctx context.Context, index string) error {
	res, err := e.client.Indices.Exists([]string{index}, e.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to check index %s: %w", index, err)
	}
	res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = e.client.Indices.Create(index,
		e.client.Indices.Create.WithContext(ctx),
		e.client.Indices.Create.WithBody(bytes.NewReader([]byte(indexMapping))),
	)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError("create index "+index, res)
	}
	return nil
}

func (e *ElasticEngine) Index(ctx context.Context, index string, id string, document any) error {
	body, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", id, err)
	}

	res, err := e.client.Index(index, bytes.NewReader(body),
		e.client.Index.WithContext(ctx),
		e.client.Index.WithDocumentID(id),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError("index "+id, res)
	}
	return nil
}

type getResponse struct {
	ID     string          `json:"_id"`
	Found  bool            `json:"found"`
	Source json.RawMessage `json:"_source"`
}

func (e *ElasticEngine) Get(ctx context.Context, index string, id string) (json.RawMessage, error) {
	res, err := e.client.Get(index, id, e.client.Get.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if res.IsError() {
		return nil, responseError("get "+id, res)
	}

	var doc getResponse
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode get response: %w", err)
	}
	if !doc.Found {
		return nil, ErrNotFound
	}

	return doc.Source, nil
}

type searchResponse struct {
	Took int64 `json:"took"`
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string          `json:"_id"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (e *ElasticEngine) Search(ctx context.Context, index string, query map[string]any) (*Result, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(index),
		e.client.Search.WithBody(bytes.NewReader(body)),
		e.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, responseError("search", res)
	}

	var decoded searchResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	result := &Result{
		TookMs: decoded.Took,
		Total:  decoded.Hits.Total.Value,
		Hits:   make([]Hit, 0, len(decoded.Hits.Hits)),
	}
	for _, h := range decoded.Hits.Hits {
		result.Hits = append(result.Hits, Hit{ID: h.ID, Source: h.Source})
	}

	return result, nil
}

func responseError(op string, res *esapi.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	return fmt.Errorf("elasticsearch %s failed: %s: %s", op, res.Status(), bytes.TrimSpace(body))
}
