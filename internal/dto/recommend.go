package dto

import "github.com/parthk02/zomato-recommender/internal/entity"

// RecommendationRequest carries the raw, unvalidated user query.
type RecommendationRequest struct {
	City      string `json:"city"`
	PriceText string `json:"price_text,omitempty"`
}

// RecommendationResponse is the success payload for POST /recommendations.
type RecommendationResponse struct {
	Recommendations []entity.Recommendation `json:"recommendations"`
}

// ErrorResponse is the failure payload carrying field-level errors.
type ErrorResponse struct {
	Errors []entity.FieldError `json:"errors"`
}
