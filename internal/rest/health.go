package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	ollamaHost  string
	ollamaModel string
}

func NewHealthHandler(ollamaHost, ollamaModel string) *HealthHandler {
	return &HealthHandler{
		ollamaHost:  ollamaHost,
		ollamaModel: ollamaModel,
	}
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"service":      "shoe-scout",
		"ollama_host":  h.ollamaHost,
		"ollama_model": h.ollamaModel,
	})
}
