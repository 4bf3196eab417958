package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"shoeScout/domain"
)

type (
	CatalogHandler struct {
		catalogService CatalogReader
	}

	CatalogReader interface {
		Records() []domain.ShoeRecord
		Brands() []string
		Summary() domain.CatalogSummary
	}
)

func NewCatalogHandler(svc CatalogReader) *CatalogHandler {
	return &CatalogHandler{
		catalogService: svc,
	}
}

func (h *CatalogHandler) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalogService.Summary()))
}

func (h *CatalogHandler) GetBrands(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalogService.Brands()))
}

func (h *CatalogHandler) GetShoes(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalogService.Records()))
}
