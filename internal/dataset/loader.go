package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/parthk02/zomato-recommender/internal/entity"
)

// CSVValidationError indicates that the provided CSV payload is invalid.
type CSVValidationError struct {
	Message string
}

// Error implements the error interface.
func (e CSVValidationError) Error() string {
	return e.Message
}

// Column aliases accepted for the price and rating fields. Header matching is
// case-insensitive and whitespace-tolerant; the Zomato export names the price
// column "approx_cost(for two people)".
var (
	priceAliases  = []string{"approx_cost(for two people)", "price_for_two", "cost_for_two", "approx_cost"}
	ratingAliases = []string{"aggregate_rating", "rating", "rate"}
)

// Load reads restaurant rows from CSV data and returns an immutable store.
//
// Cleaning rules:
//   - exact duplicate rows are dropped
//   - city values are trimmed and lowercased
//   - thousands separators are stripped from the price column
//   - rows whose price does not parse as a number are excluded
func Load(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, CSVValidationError{Message: "csv file is empty"}
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols, valErr := buildHeaderIndex(header)
	if valErr != nil {
		return nil, valErr
	}

	var (
		rows []entity.Restaurant
		seen = make(map[string]struct{})
	)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		name := strings.TrimSpace(row[cols.name])
		city := strings.ToLower(strings.TrimSpace(row[cols.city]))
		if name == "" || city == "" {
			continue
		}

		price, ok := parsePrice(row[cols.price])
		if !ok {
			continue
		}

		restaurant := entity.Restaurant{
			Name:        name,
			City:        city,
			PriceForTwo: price,
		}
		if cols.cuisines >= 0 {
			restaurant.Cuisines = strings.TrimSpace(row[cols.cuisines])
		}
		if cols.rating >= 0 {
			restaurant.Rating = parseOptionalFloat(row[cols.rating])
		}

		rows = append(rows, restaurant)
	}

	return newStore(rows), nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	store, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return store, nil
}

type headerIndex struct {
	name     int
	city     int
	price    int
	cuisines int
	rating   int
}

func buildHeaderIndex(header []string) (headerIndex, error) {
	idx := headerIndex{name: -1, city: -1, price: -1, cuisines: -1, rating: -1}

	lookup := make(map[string]int, len(header))
	for i, col := range header {
		lookup[strings.ToLower(strings.TrimSpace(col))] = i
	}

	if i, ok := lookup["name"]; ok {
		idx.name = i
	}
	if i, ok := lookup["city"]; ok {
		idx.city = i
	}
	if i, ok := lookup["cuisines"]; ok {
		idx.cuisines = i
	}
	idx.price = firstMatch(lookup, priceAliases)
	idx.rating = firstMatch(lookup, ratingAliases)

	if idx.name < 0 || idx.city < 0 || idx.price < 0 {
		return headerIndex{}, CSVValidationError{Message: "csv must contain name, city and price columns"}
	}
	return idx, nil
}

func firstMatch(lookup map[string]int, aliases []string) int {
	for _, alias := range aliases {
		if i, ok := lookup[alias]; ok {
			return i
		}
	}
	return -1
}

func parsePrice(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

func parseOptionalFloat(raw string) *float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &f
}
