package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"shoeScout/domain"
)

type (
	ShoeHandler struct {
		catalogService  CatalogFinder
		analysisService AnalysisService
		timeout         time.Duration
	}

	CatalogFinder interface {
		Find(brand, model string) (domain.ShoeRecord, bool)
	}

	AnalysisService interface {
		TechnicalDeepDive(ctx context.Context, shoe domain.ShoeRecord, focus string) domain.Explanation
	}
)

func NewShoeHandler(catalogService CatalogFinder, analysisService AnalysisService) *ShoeHandler {
	return &ShoeHandler{
		catalogService:  catalogService,
		analysisService: analysisService,
		timeout:         30 * time.Second,
	}
}

// GetAnalysis serves GET /shoes/:brand/:model/analysis. An optional ?focus=
// query narrows the write-up.
func (h *ShoeHandler) GetAnalysis(c echo.Context) error {
	brand := c.Param("brand")
	model := c.Param("model")

	shoe, ok := h.catalogService.Find(brand, model)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "shoe not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	analysis := h.analysisService.TechnicalDeepDive(ctx, shoe, c.QueryParam("focus"))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"brand":    shoe.Brand,
		"model":    shoe.Model,
		"analysis": analysis,
	}))
}
