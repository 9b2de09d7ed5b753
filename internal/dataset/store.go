package dataset

import "github.com/parthk02/zomato-recommender/internal/entity"

// Store holds the cleaned restaurant dataset in memory.
//
// A Store is written exactly once, at construction, and read-only afterwards.
// It may therefore be shared across concurrent requests without locking;
// accessors that return slices copy them so callers cannot mutate the
// underlying data.
type Store struct {
	rows []entity.Restaurant
}

func newStore(rows []entity.Restaurant) *Store {
	return &Store{rows: rows}
}

// NewStore builds a store directly from rows. Intended for tests and callers
// that assemble the dataset themselves; rows are copied.
func NewStore(rows []entity.Restaurant) *Store {
	copied := make([]entity.Restaurant, len(rows))
	copy(copied, rows)
	return newStore(copied)
}

// Rows returns a copy of all restaurant rows in dataset order.
func (s *Store) Rows() []entity.Restaurant {
	rows := make([]entity.Restaurant, len(s.rows))
	copy(rows, s.rows)
	return rows
}

// Count reports the number of rows.
func (s *Store) Count() int {
	return len(s.rows)
}

// IsEmpty reports whether the store holds no rows.
func (s *Store) IsEmpty() bool {
	return len(s.rows) == 0
}

// Cities returns the unique normalized city names in first-seen order.
func (s *Store) Cities() []string {
	seen := make(map[string]struct{}, len(s.rows))
	var cities []string
	for _, row := range s.rows {
		if _, ok := seen[row.City]; ok {
			continue
		}
		seen[row.City] = struct{}{}
		cities = append(cities, row.City)
	}
	return cities
}

// PriceBounds returns the minimum and maximum price-for-two across the
// dataset. ok is false when the store is empty.
func (s *Store) PriceBounds() (min, max float64, ok bool) {
	if len(s.rows) == 0 {
		return 0, 0, false
	}
	min, max = s.rows[0].PriceForTwo, s.rows[0].PriceForTwo
	for _, row := range s.rows[1:] {
		if row.PriceForTwo < min {
			min = row.PriceForTwo
		}
		if row.PriceForTwo > max {
			max = row.PriceForTwo
		}
	}
	return min, max, true
}
