package presenter

import (
	"fmt"
	"strings"

	"github.com/parthk02/zomato-recommender/internal/entity"
)

// DefaultMaxItems caps how many recommendations the CLI prints.
const DefaultMaxItems = 10

// FormatRecommendations renders recommendations as a human-readable
// multiline string suitable for terminal output.
func FormatRecommendations(recommendations []entity.Recommendation, maxItems int) string {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if len(recommendations) > maxItems {
		recommendations = recommendations[:maxItems]
	}
	if len(recommendations) == 0 {
		return "No recommendations available."
	}

	var b strings.Builder
	b.WriteString("Top restaurant recommendations:")

	for i, r := range recommendations {
		header := fmt.Sprintf("%d. %s", i+1, r.Name)
		if r.City != nil && *r.City != "" {
			header += fmt.Sprintf(" (%s)", *r.City)
		}

		var meta []string
		if r.PriceForTwo != nil {
			meta = append(meta, fmt.Sprintf("price_for_two=%d", int(*r.PriceForTwo)))
		}
		if r.Rating != nil {
			meta = append(meta, fmt.Sprintf("rating=%.1f", *r.Rating))
		}
		if len(meta) > 0 {
			header += " [" + strings.Join(meta, ", ") + "]"
		}

		b.WriteString("\n" + header)

		if r.Cuisines != nil && *r.Cuisines != "" {
			b.WriteString("\n   Cuisines: " + *r.Cuisines)
		}
		if r.Reason != nil && *r.Reason != "" {
			b.WriteString("\n   Reason: " + *r.Reason)
		}
	}

	return b.String()
}
