package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/parthk02/zomato-recommender/internal/entity"
)

// MalformedResponseError indicates the LLM completion text does not follow
// the requested JSON-array contract at all. Individually malformed array
// elements never raise it; they are skipped instead.
type MalformedResponseError struct {
	Message string
}

func (e *MalformedResponseError) Error() string {
	return e.Message
}

// ParseRecommendations parses raw completion text into typed records.
//
// The root must be a JSON array. Elements are processed independently and
// defensively: non-objects and objects without a string name are dropped,
// numeric fields are coerced best-effort and fall back to null, and the
// remaining string fields pass through untouched. Output order follows the
// array. Partial success is the norm.
func ParseRecommendations(raw string) ([]entity.Recommendation, error) {
	var root any
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		return nil, &MalformedResponseError{Message: "LLM response was not valid JSON."}
	}

	items, ok := root.([]any)
	if !ok {
		return nil, &MalformedResponseError{Message: "LLM response root must be a JSON array."}
	}

	recommendations := make([]entity.Recommendation, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, ok := obj["name"].(string)
		if !ok {
			continue
		}

		recommendations = append(recommendations, entity.Recommendation{
			Name:        name,
			City:        optionalString(obj["city"]),
			Cuisines:    optionalString(obj["cuisines"]),
			PriceForTwo: coerceFloat(obj["price_for_two"]),
			Rating:      coerceFloat(obj["rating"]),
			Reason:      optionalString(obj["reason"]),
		})
	}

	return recommendations, nil
}

func optionalString(value any) *string {
	if s, ok := value.(string); ok {
		return &s
	}
	return nil
}

// coerceFloat accepts JSON numbers and numeric-looking strings; anything
// else becomes null rather than rejecting the whole element.
func coerceFloat(value any) *float64 {
	switch v := value.(type) {
	case float64:
		return &v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}
