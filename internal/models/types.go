package models

type Category string

const (
	CategoryMain      Category = "main"
	CategoryAppetizer Category = "appetizer"
	CategoryDessert   Category = "dessert"
	CategoryOther     Category = "other"
)

type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

const DefaultCurrency = "USD"

type Price struct {
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	OriginalText string  `json:"original_text"`
}

// Dish is a single menu item derived from OCR text. It is immutable once indexed.
type Dish struct {
	DishID          string   `json:"dish_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           *Price   `json:"price,omitempty"`
	Category        Category `json:"category"`
	ConfidenceScore float64  `json:"confidence_score"`
	Ingredients     []string `json:"ingredients"`
	ImageURL        string   `json:"image_url"`
}

// ProcessingOptions are caller supplied toggles. They are never persisted.
type ProcessingOptions struct {
	UseCache            bool   `json:"use_cache"`
	ExtractPrices       bool   `json:"extract_prices"`
	ExtractDescriptions bool   `json:"extract_descriptions,omitempty"`
	ExtractIngredients  bool   `json:"extract_ingredients,omitempty"`
	Language            string `json:"language,omitempty"`
}

type Metadata struct {
	ProcessingTimeMs int64  `json:"processing_time_ms"`
	TotalDishes      int    `json:"total_dishes"`
	Source           string `json:"source"`
	Timestamp        int64  `json:"timestamp"`
}

type ProcessingStatus struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

type MenuResponse struct {
	MenuID   string           `json:"menu_id"`
	Dishes   []Dish           `json:"dishes"`
	Metadata Metadata         `json:"metadata"`
	Status   ProcessingStatus `json:"status"`
}

type DishResponse struct {
	Dish          Dish   `json:"dish"`
	SimilarDishes []Dish `json:"similar_dishes,omitempty"`
}

// Input message

type ProcessMenuRequest struct {
	ImageData []byte            `json:"image_data,omitempty"`
	ImageURL  string            `json:"image_url,omitempty"`
	Options   ProcessingOptions `json:"options"`
}

type SearchRequest struct {
	Query      string     `json:"query"`
	Categories []Category `json:"categories,omitempty"`
	MinPrice   *float64   `json:"min_price,omitempty"`
	MaxPrice   *float64   `json:"max_price,omitempty"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

type SearchMetadata struct {
	SearchTimeMs int64 `json:"search_time_ms"`
}

type SearchResponse struct {
	Dishes       []Dish         `json:"dishes"`
	TotalResults int64          `json:"total_results"`
	Page         int            `json:"page"`
	Metadata     SearchMetadata `json:"metadata"`
}

// MenuProcessedEvent is emitted to the event bus once a menu run completes.
type MenuProcessedEvent struct {
	MenuID    string `json:"menu_id"`
	DishCount int    `json:"dish_count"`
	Timestamp int64  `json:"timestamp"`
}
