package entity

// Restaurant is one cleaned row of the dataset. City is stored trimmed and
// lowercased by the loader so later exact-match comparisons are valid.
type Restaurant struct {
	Name        string   `json:"name"`
	City        string   `json:"city"`
	PriceForTwo float64  `json:"price_for_two"`
	Cuisines    string   `json:"cuisines,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// Recommendation is one restaurant suggestion produced from LLM output.
// Name is the only mandatory field; everything else may be null on the wire.
type Recommendation struct {
	Name        string   `json:"name"`
	City        *string  `json:"city"`
	Cuisines    *string  `json:"cuisines"`
	PriceForTwo *float64 `json:"price_for_two"`
	Rating      *float64 `json:"rating"`
	Reason      *string  `json:"reason"`
}

// FieldError reports a single validation failure for a named input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
