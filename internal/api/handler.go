package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/pipeline"
	"github.com/rs/zerolog"
)

const (
	Version = "1.0.0"

	maxUploadBytes = 10 << 20
	mimeNDJSON     = "application/x-ndjson"
)

type Handler struct {
	service MenuService
	checks  []HealthCheck
	logger  *zerolog.Logger
}

func NewHandler(service MenuService, logger *zerolog.Logger, checks ...HealthCheck) *Handler {
	return &Handler{
		service: service,
		checks:  checks,
		logger:  logger,
	}
}

// POST /api/v1/menus
// Body: ProcessMenuRequest
// Returns: MenuResponse
func (h *Handler) ProcessMenu(req *restful.Request, resp *restful.Response) {
	var menuRequest models.ProcessMenuRequest
	if err := req.ReadEntity(&menuRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.processMenu(req, resp, menuRequest)
}

// POST /api/v1/menus/upload
// Multipart: image file plus optional options JSON
func (h *Handler) UploadMenu(req *restful.Request, resp *restful.Response) {
	req.Request.Body = http.MaxBytesReader(resp.ResponseWriter, req.Request.Body, maxUploadBytes+1<<20)

	file, header, err := req.Request.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			middleware.HandleErrorCode(resp, middleware.ErrMissingImage, http.StatusBadRequest, middleware.CodeMissingImage)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to read multipart upload")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		middleware.HandleErrorCode(resp, middleware.ErrInvalidImage, http.StatusBadRequest, middleware.CodeInvalidImage)
		return
	}
	if header.Size > maxUploadBytes {
		middleware.HandleErrorCode(resp, fmt.Errorf("image exceeds %d bytes", maxUploadBytes), http.StatusBadRequest, middleware.CodeInvalidImage)
		return
	}

	imageData, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	var opts uploadOptions
	if raw := req.Request.FormValue("options"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &opts); err != nil {
			middleware.HandleError(resp, fmt.Errorf("invalid options: %w", err), http.StatusBadRequest)
			return
		}
	}

	h.processMenu(req, resp, models.ProcessMenuRequest{
		ImageData: imageData,
		Options:   opts.toProcessingOptions(),
	})
}

func (h *Handler) processMenu(req *restful.Request, resp *restful.Response, menuRequest models.ProcessMenuRequest) {
	h.logger.Info().
		Int("image_bytes", len(menuRequest.ImageData)).
		Str("image_url", menuRequest.ImageURL).
		Bool("use_cache", menuRequest.Options.UseCache).
		Msg("Process menu")

	menu, err := h.service.ProcessMenu(req.Request.Context(), menuRequest.ImageData, menuRequest.ImageURL, menuRequest.Options)
	if err != nil {
		h.logger.Error().Err(err).Msg("Menu processing failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, menu)
}

// GET /api/v1/menus/{menu_id}
func (h *Handler) GetMenu(req *restful.Request, resp *restful.Response) {
	menuID := req.PathParameter("menu_id")

	menu, err := h.service.GetMenu(req.Request.Context(), menuID)
	if err != nil {
		if errors.Is(err, pipeline.ErrMenuNotFound) {
			middleware.HandleError(resp, fmt.Errorf("Menu %s not found", menuID), http.StatusNotFound)
			return
		}
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, menu)
}

// GET /api/v1/dishes/{dish_id}?include_similar=true
func (h *Handler) GetDish(req *restful.Request, resp *restful.Response) {
	dishID := req.PathParameter("dish_id")
	includeSimilar := req.QueryParameter("include_similar") == "true"

	dish, err := h.service.GetDish(req.Request.Context(), dishID, includeSimilar)
	if err != nil {
		if errors.Is(err, pipeline.ErrDishNotFound) {
			middleware.HandleError(resp, fmt.Errorf("Dish %s not found", dishID), http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Str("dish_id", dishID).Msg("Dish lookup failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, dish)
}

// POST /api/v1/dishes/search
func (h *Handler) SearchDishes(req *restful.Request, resp *restful.Response) {
	var searchRequest models.SearchRequest
	if err := req.ReadEntity(&searchRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.search(req, resp, searchRequest)
}

// GET /api/v1/dishes/search?q=pizza&category=main&min_price=5&max_price=20&limit=20&offset=0
func (h *Handler) QueryDishes(req *restful.Request, resp *restful.Response) {
	searchRequest, err := parseSearchQuery(req)
	if err != nil {
		if errors.Is(err, middleware.ErrMissingQuery) {
			middleware.HandleErrorCode(resp, err, http.StatusBadRequest, middleware.CodeMissingQuery)
			return
		}
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.search(req, resp, searchRequest)
}

func (h *Handler) search(req *restful.Request, resp *restful.Response, searchRequest models.SearchRequest) {
	h.logger.Info().
		Str("query", searchRequest.Query).
		Int("limit", searchRequest.Limit).
		Int("offset", searchRequest.Offset).
		Msg("Search dishes")

	result := h.service.SearchDishes(req.Request.Context(), searchRequest)
	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/menus/stream
// Writes one DishResponse per line and flushes after each.
func (h *Handler) StreamMenu(req *restful.Request, resp *restful.Response) {
	var menuRequest models.ProcessMenuRequest
	if err := req.ReadEntity(&menuRequest); err != nil {
		h.logger.Error().Err(err).Msg("Unable to parse stream request")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	writer := resp.ResponseWriter
	flusher, ok := writer.(http.Flusher)
	if !ok {
		middleware.HandleError(resp, fmt.Errorf("streaming not supported"), http.StatusInternalServerError)
		return
	}

	resp.Header().Set("Content-Type", mimeNDJSON)
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("X-Accel-Buffering", "no")
	resp.WriteHeader(http.StatusOK)

	ctx := req.Request.Context()
	encoder := json.NewEncoder(writer)

	count := 0
	for dish := range h.service.StreamMenuProcessing(ctx, menuRequest.ImageData, menuRequest.ImageURL, menuRequest.Options) {
		if err := encoder.Encode(models.DishResponse{Dish: dish}); err != nil {
			h.logger.Warn().Err(err).Int("sent", count).Msg("Stream client went away")
			return
		}
		flusher.Flush()
		count++
	}

	h.logger.Info().Int("dishes", count).Msg("Menu stream complete")
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: Version,
		Checks:  make(map[string]string, len(h.checks)),
	}

	for _, check := range h.checks {
		if err := check.Check(req.Request.Context()); err != nil {
			h.logger.Warn().Err(err).Str("check", check.Name).Msg("Health check failed")
			healthResponse.Checks[check.Name] = "error"
			healthResponse.Status = "degraded"
			continue
		}
		healthResponse.Checks[check.Name] = "ok"
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func parseSearchQuery(req *restful.Request) (models.SearchRequest, error) {
	query := strings.TrimSpace(req.QueryParameter("q"))
	if query == "" {
		return models.SearchRequest{}, middleware.ErrMissingQuery
	}

	searchRequest := models.SearchRequest{
		Query: query,
		Limit: 20,
	}

	for _, category := range req.QueryParameters("category") {
		for _, c := range strings.Split(category, ",") {
			if c = strings.TrimSpace(c); c != "" {
				searchRequest.Categories = append(searchRequest.Categories, models.Category(c))
			}
		}
	}

	var err error
	if searchRequest.MinPrice, err = floatParam(req, "min_price"); err != nil {
		return models.SearchRequest{}, err
	}
	if searchRequest.MaxPrice, err = floatParam(req, "max_price"); err != nil {
		return models.SearchRequest{}, err
	}
	if searchRequest.Limit, err = intParam(req, "limit", searchRequest.Limit); err != nil {
		return models.SearchRequest{}, err
	}
	if searchRequest.Offset, err = intParam(req, "offset", 0); err != nil {
		return models.SearchRequest{}, err
	}

	return searchRequest, nil
}

func floatParam(req *restful.Request, name string) (*float64, error) {
	raw := req.QueryParameter(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}

	return &value, nil
}

func intParam(req *restful.Request, name string, defaultValue int) (int, error) {
	raw := req.QueryParameter(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}

	return value, nil
}
