package router

import (
	"shoeScout/internal/middleware"
	"shoeScout/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommendations")
	reco.POST("", handler.Recommend)
	reco.POST("/debug", handler.DebugRecommend, middleware.AuthMiddleware(), middleware.AdminOnly())
}

func SetCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	catalog := api.Group("/catalog")
	catalog.GET("/summary", handler.GetSummary)
	catalog.GET("/brands", handler.GetBrands)
	catalog.GET("/shoes", handler.GetShoes)
}

func SetShoeRoutes(api *echo.Group, handler *rest.ShoeHandler) {
	api.GET("/shoes/:brand/:model/analysis", handler.GetAnalysis)
}

func SetHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
