package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parthk02/zomato-recommender/internal/dto"
	"github.com/parthk02/zomato-recommender/internal/llm"
	middlewarepkg "github.com/parthk02/zomato-recommender/internal/middleware"
	"github.com/parthk02/zomato-recommender/internal/service"
)

// RecommendHandler serves the LLM-backed recommendation endpoint.
type RecommendHandler struct {
	service *service.RecommendService
}

// NewRecommendHandler wires the handler.
func NewRecommendHandler(svc *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{service: svc}
}

// Recommend handles POST /recommendations.
//
// Status mapping: validation failures are 400 with field errors, a missing
// LLM credential is 503, and any upstream LLM or parse failure is 502. The
// underlying cause is logged with the request id and never crashes the
// process.
func (h *RecommendHandler) Recommend(c echo.Context) error {
	var req dto.RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return ErrorField(c, http.StatusBadRequest, "body", "invalid payload")
	}

	prep := h.service.Prepare(req)
	if len(prep.Errors) > 0 {
		return Errors(c, http.StatusBadRequest, prep.Errors)
	}

	recommendations, err := h.service.Recommend(c.Request().Context(), prep.Query, prep.Candidates)
	if err != nil {
		status := http.StatusBadGateway
		var cfgErr *llm.ConfigError
		if errors.As(err, &cfgErr) {
			status = http.StatusServiceUnavailable
		}

		log.Printf("request_id=%s recommendation failed: %v", middlewarepkg.RequestIDFromContext(c), err)
		return ErrorField(c, status, "llm", err.Error())
	}

	return c.JSON(http.StatusOK, dto.RecommendationResponse{Recommendations: recommendations})
}
