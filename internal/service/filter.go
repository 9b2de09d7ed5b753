package service

import "github.com/parthk02/zomato-recommender/internal/entity"

// FilterCandidates returns the rows matching the query's city exactly and,
// when a price band is present, falling inside its inclusive bounds.
//
// The function is pure: dataset order is preserved, nothing is deduplicated
// or capped, and an empty result simply means "no matches".
func FilterCandidates(rows []entity.Restaurant, query NormalizedQuery) []entity.Restaurant {
	var candidates []entity.Restaurant
	for _, row := range rows {
		if row.City != query.City {
			continue
		}
		if query.Price != nil {
			if query.Price.Lower != nil && row.PriceForTwo < *query.Price.Lower {
				continue
			}
			if query.Price.Upper != nil && row.PriceForTwo > *query.Price.Upper {
				continue
			}
		}
		candidates = append(candidates, row)
	}
	return candidates
}
