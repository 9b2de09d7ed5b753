package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parthk02/zomato-recommender/internal/dataset"
)

// MetaHandler exposes read-only facts about the loaded dataset.
type MetaHandler struct {
	store *dataset.Store
}

// NewMetaHandler wires the handler.
func NewMetaHandler(store *dataset.Store) *MetaHandler {
	return &MetaHandler{store: store}
}

// Health handles GET /healthz.
func (h *MetaHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":             "ok",
		"restaurants_loaded": h.store.Count(),
	})
}

// Cities handles GET /cities and lists the serviceable city names.
func (h *MetaHandler) Cities(c echo.Context) error {
	cities := h.store.Cities()
	if cities == nil {
		cities = []string{}
	}
	return c.JSON(http.StatusOK, map[string]any{"cities": cities})
}

// PriceRange handles GET /price-range with the dataset's price bounds.
func (h *MetaHandler) PriceRange(c echo.Context) error {
	min, max, ok := h.store.PriceBounds()
	if !ok {
		// defaults for an empty dataset, mirroring the frontend's slider bounds
		min, max = 100, 3000
	}
	return c.JSON(http.StatusOK, map[string]any{"min": min, "max": max})
}
