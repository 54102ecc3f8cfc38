package mcpadapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"iter"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
)

// Service is the part of the menu pipeline exposed as MCP tools.
type Service interface {
	ProcessMenu(ctx context.Context, imageData []byte, imageURL string, options models.ProcessingOptions) (*models.MenuResponse, error)
	GetDish(ctx context.Context, dishID string, includeSimilar bool) (*models.DishResponse, error)
	SearchDishes(ctx context.Context, req models.SearchRequest) models.SearchResponse
	StreamMenuProcessing(ctx context.Context, imageData []byte, imageURL string, options models.ProcessingOptions) iter.Seq[models.Dish]
}

// ProcessMenuInput is the MCP tool input schema (matches HTTP API field names).
type ProcessMenuInput struct {
	ImageData     string `json:"image_data,omitempty" jsonschema:"base64 encoded menu image"`
	ImageURL      string `json:"image_url,omitempty" jsonschema:"menu image location, s3://bucket/key is fetched when image_data is empty"`
	UseCache      *bool  `json:"use_cache,omitempty" jsonschema:"cache the processed menu (default: true)"`
	ExtractPrices *bool  `json:"extract_prices,omitempty" jsonschema:"attach parsed prices (default: true)"`
}

type GetDishInput struct {
	DishID         string `json:"dish_id" jsonschema:"dish identifier"`
	IncludeSimilar bool   `json:"include_similar,omitempty" jsonschema:"attach up to five similar dishes"`
}

type SearchDishesInput struct {
	Query      string   `json:"query" jsonschema:"free text matched against name, description and ingredients"`
	Categories []string `json:"categories,omitempty" jsonschema:"restrict to categories: main, appetizer, dessert, other"`
	MinPrice   *float64 `json:"min_price,omitempty" jsonschema:"lower price bound"`
	MaxPrice   *float64 `json:"max_price,omitempty" jsonschema:"upper price bound"`
	Limit      int      `json:"limit,omitempty" jsonschema:"page size (default: 20)"`
	Offset     int      `json:"offset,omitempty" jsonschema:"result offset"`
}

// StreamedDishes collects what the streaming pipeline produced, in order.
type StreamedDishes struct {
	Dishes []models.Dish `json:"dishes"`
}

// Register adds every menu tool to the server.
func Register(server *mcp.Server, service Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "process_menu",
		Description: "Extract dishes with prices and categories from a menu image",
	}, NewProcessMenuHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stream_menu",
		Description: "Extract dishes from a menu image without caching or publishing an event",
	}, NewStreamMenuHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_dish",
		Description: "Look up a dish by id, optionally with similar dishes",
	}, NewGetDishHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_dishes",
		Description: "Full text search over indexed dishes with category and price filters",
	}, NewSearchDishesHandler(service))
}

func NewProcessMenuHandler(service Service) func(context.Context, *mcp.CallToolRequest, ProcessMenuInput) (*mcp.CallToolResult, models.MenuResponse, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProcessMenuInput) (*mcp.CallToolResult, models.MenuResponse, error) {
		image, options, err := input.decode()
		if err != nil {
			return nil, models.MenuResponse{}, err
		}

		menu, err := service.ProcessMenu(ctx, image, input.ImageURL, options)
		if err != nil {
			return nil, models.MenuResponse{}, err
		}

		return nil, *menu, nil
	}
}

func NewStreamMenuHandler(service Service) func(context.Context, *mcp.CallToolRequest, ProcessMenuInput) (*mcp.CallToolResult, StreamedDishes, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProcessMenuInput) (*mcp.CallToolResult, StreamedDishes, error) {
		image, options, err := input.decode()
		if err != nil {
			return nil, StreamedDishes{}, err
		}

		out := StreamedDishes{Dishes: []models.Dish{}}
		for dish := range service.StreamMenuProcessing(ctx, image, input.ImageURL, options) {
			out.Dishes = append(out.Dishes, dish)
		}

		return nil, out, ctx.Err()
	}
}

func NewGetDishHandler(service Service) func(context.Context, *mcp.CallToolRequest, GetDishInput) (*mcp.CallToolResult, models.DishResponse, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetDishInput) (*mcp.CallToolResult, models.DishResponse, error) {
		if input.DishID == "" {
			return nil, models.DishResponse{}, fmt.Errorf("dish_id is required")
		}

		dish, err := service.GetDish(ctx, input.DishID, input.IncludeSimilar)
		if err != nil {
			return nil, models.DishResponse{}, err
		}

		return nil, *dish, nil
	}
}

func NewSearchDishesHandler(service Service) func(context.Context, *mcp.CallToolRequest, SearchDishesInput) (*mcp.CallToolResult, models.SearchResponse, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchDishesInput) (*mcp.CallToolResult, models.SearchResponse, error) {
		if input.Query == "" {
			return nil, models.SearchResponse{}, fmt.Errorf("query is required")
		}

		req := models.SearchRequest{
			Query:    input.Query,
			MinPrice: input.MinPrice,
			MaxPrice: input.MaxPrice,
			Limit:    input.Limit,
			Offset:   input.Offset,
		}
		for _, c := range input.Categories {
			req.Categories = append(req.Categories, models.Category(c))
		}

		return nil, service.SearchDishes(ctx, req), nil
	}
}

func (in ProcessMenuInput) decode() ([]byte, models.ProcessingOptions, error) {
	options := models.ProcessingOptions{
		UseCache:      in.UseCache == nil || *in.UseCache,
		ExtractPrices: in.ExtractPrices == nil || *in.ExtractPrices,
	}

	if in.ImageData == "" {
		return nil, options, nil
	}

	image, err := base64.StdEncoding.DecodeString(in.ImageData)
	if err != nil {
		return nil, options, fmt.Errorf("image_data is not valid base64: %w", err)
	}

	return image, options, nil
}
