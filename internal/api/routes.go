package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/models"
)

const mimeMultipart = "multipart/form-data"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/menus").
			To(handler.ProcessMenu).
			Doc("Extract dishes from a menu image").
			Metadata(restfulspec.KeyOpenAPITags, []string{"menus"}).
			Reads(models.ProcessMenuRequest{}).
			Writes(models.MenuResponse{}).
			Returns(200, "OK", models.MenuResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/menus/upload").
			To(handler.UploadMenu).
			Doc("Upload a menu image and extract dishes").
			Metadata(restfulspec.KeyOpenAPITags, []string{"menus"}).
			Consumes(mimeMultipart).
			Param(ws.MultiPartFormParameter("image", "Menu image (image/*, up to 10MB)").DataType("file")).
			Param(ws.MultiPartFormParameter("options", "Processing options as JSON").DataType("string").Required(false)).
			Writes(models.MenuResponse{}).
			Returns(200, "OK", models.MenuResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/menus/stream").
			To(handler.StreamMenu).
			Doc("Stream dishes as they are extracted").
			Metadata(restfulspec.KeyOpenAPITags, []string{"menus"}).
			Produces(mimeNDJSON).
			Reads(models.ProcessMenuRequest{}).
			Writes(models.DishResponse{}).
			Returns(200, "OK", models.DishResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/menus/{menu_id}").
			To(handler.GetMenu).
			Doc("Get a processed menu").
			Metadata(restfulspec.KeyOpenAPITags, []string{"menus"}).
			Param(ws.PathParameter("menu_id", "Menu identifier").DataType("string")).
			Writes(models.MenuResponse{}).
			Returns(200, "OK", models.MenuResponse{}).
			Returns(404, "Menu Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/dishes/search").
			To(handler.SearchDishes).
			Doc("Search dishes").
			Metadata(restfulspec.KeyOpenAPITags, []string{"dishes"}).
			Reads(models.SearchRequest{}).
			Writes(models.SearchResponse{}).
			Returns(200, "OK", models.SearchResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/dishes/search").
			To(handler.QueryDishes).
			Doc("Search dishes by query string").
			Metadata(restfulspec.KeyOpenAPITags, []string{"dishes"}).
			Param(ws.QueryParameter("q", "Search text").DataType("string").Required(true)).
			Param(ws.QueryParameter("category", "Category filter, repeatable").DataType("string").Required(false)).
			Param(ws.QueryParameter("min_price", "Lower price bound").DataType("number").Required(false)).
			Param(ws.QueryParameter("max_price", "Upper price bound").DataType("number").Required(false)).
			Param(ws.QueryParameter("limit", "Page size (default: 20)").DataType("integer").Required(false)).
			Param(ws.QueryParameter("offset", "Result offset").DataType("integer").Required(false)).
			Writes(models.SearchResponse{}).
			Returns(200, "OK", models.SearchResponse{}).
			Returns(400, "Missing Query", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/dishes/{dish_id}").
			To(handler.GetDish).
			Doc("Get a dish").
			Metadata(restfulspec.KeyOpenAPITags, []string{"dishes"}).
			Param(ws.PathParameter("dish_id", "Dish identifier").DataType("string")).
			Param(ws.QueryParameter("include_similar", "Attach up to five similar dishes").DataType("boolean").Required(false)).
			Writes(models.DishResponse{}).
			Returns(200, "OK", models.DishResponse{}).
			Returns(404, "Dish Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
