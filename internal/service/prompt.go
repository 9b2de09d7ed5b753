package service

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/parthk02/zomato-recommender/internal/entity"
)

// DefaultMaxPromptCandidates caps how many candidate rows are rendered into
// the prompt when no explicit cap is configured.
const DefaultMaxPromptCandidates = 20

const promptSchemaExample = `[{"name": "...", "city": "...", "cuisines": "...", "price_for_two": 0, "rating": 0, "reason": "..."}]`

// BuildPrompt renders the user's preferences and up to maxCandidates
// candidate rows into a single deterministic prompt. Every prompt ends with
// the literal JSON schema block the response parser relies on.
func BuildPrompt(query NormalizedQuery, candidates []entity.Restaurant, maxCandidates int) string {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxPromptCandidates
	}

	var b strings.Builder
	b.WriteString("You are an AI assistant that recommends restaurants.\n")
	b.WriteString("Given the user's preferences and the list of candidate restaurants, choose the best options and respond ONLY with a JSON array of objects.\n")
	b.WriteString("\n")

	b.WriteString("User preferences:\n")
	b.WriteString("- City: " + query.City + "\n")
	if query.Price != nil {
		b.WriteString("- Price range for two: " + formatBound(query.Price.Lower) + " to " + formatBound(query.Price.Upper) + "\n")
	}
	if query.Bucket != nil {
		b.WriteString("- Price bucket: " + *query.Bucket + "\n")
	}
	b.WriteString("\n")

	b.WriteString("Candidate restaurants (tabular):\n")
	b.WriteString(renderCandidateTable(candidates, maxCandidates))
	b.WriteString("\n")

	b.WriteString("Respond with JSON using this schema:\n")
	b.WriteString(promptSchemaExample)

	return b.String()
}

func renderCandidateTable(candidates []entity.Restaurant, maxCandidates int) string {
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	var table strings.Builder
	w := csv.NewWriter(&table)
	w.Write([]string{"name", "city", "price_for_two", "cuisines", "rating"})
	for _, row := range candidates {
		rating := ""
		if row.Rating != nil {
			rating = formatFloat(*row.Rating)
		}
		w.Write([]string{row.Name, row.City, formatFloat(row.PriceForTwo), row.Cuisines, rating})
	}
	w.Flush()

	return table.String()
}

func formatBound(bound *float64) string {
	if bound == nil {
		return "any"
	}
	return formatFloat(*bound)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
