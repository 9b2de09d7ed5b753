package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parthk02/zomato-recommender/internal/dto"
	"github.com/parthk02/zomato-recommender/internal/entity"
)

// Validator checks raw user input for basic correctness. All applicable
// errors are returned, not just the first.
type Validator struct {
	allowedCities map[string]struct{}
}

// NewValidator builds a validator. When allowedCities is empty, any
// non-empty city is accepted; otherwise the trimmed, lowercased city must be
// a member of the set.
func NewValidator(allowedCities []string) *Validator {
	v := &Validator{}
	if len(allowedCities) > 0 {
		v.allowedCities = make(map[string]struct{}, len(allowedCities))
		for _, city := range allowedCities {
			v.allowedCities[strings.ToLower(strings.TrimSpace(city))] = struct{}{}
		}
	}
	return v
}

// Validate evaluates each field independently and returns zero or more
// field errors. An empty result means the input is acceptable.
func (v *Validator) Validate(raw dto.RecommendationRequest) []entity.FieldError {
	var errs []entity.FieldError

	city := strings.TrimSpace(raw.City)
	if city == "" {
		errs = append(errs, entity.FieldError{
			Field:   "city",
			Message: "City is required and cannot be empty.",
		})
	} else if v.allowedCities != nil {
		if _, ok := v.allowedCities[strings.ToLower(city)]; !ok {
			errs = append(errs, entity.FieldError{
				Field:   "city",
				Message: "City is not available in our service area.",
			})
		}
	}

	if priceText := strings.TrimSpace(raw.PriceText); priceText != "" {
		if _, _, err := parsePriceExpression(priceText); err != nil {
			errs = append(errs, entity.FieldError{
				Field:   "price_text",
				Message: "Price must be a number or a range like '500-1000'.",
			})
		}
	}

	return errs
}

// parsePriceExpression interprets trimmed, non-empty price text. It returns
// either a single target value or an explicit range; exactly one of the two
// return shapes is populated.
//
// Accepted forms:
//   - "800"      -> single = 800, bounds nil
//   - "500-1200" -> bounds = (500, 1200), single nil
//
// Thousands separators are stripped before parsing. Negative bounds and
// inverted ranges are rejected.
func parsePriceExpression(text string) (single *float64, bounds *PriceRange, err error) {
	if strings.Contains(text, "-") {
		parts := strings.SplitN(text, "-", 2)
		lower, lowerErr := parseAmount(parts[0])
		upper, upperErr := parseAmount(parts[1])
		if lowerErr != nil || upperErr != nil {
			return nil, nil, fmt.Errorf("price range bounds must be numbers")
		}
		if lower < 0 || upper < 0 || lower > upper {
			return nil, nil, fmt.Errorf("invalid numeric bounds for price range")
		}
		return nil, &PriceRange{Lower: &lower, Upper: &upper}, nil
	}

	value, parseErr := parseAmount(text)
	if parseErr != nil {
		return nil, nil, fmt.Errorf("price must be numeric")
	}
	if value < 0 {
		return nil, nil, fmt.Errorf("price cannot be negative")
	}
	return &value, nil, nil
}

func parseAmount(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	return strconv.ParseFloat(cleaned, 64)
}
