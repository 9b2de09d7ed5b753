package service

import (
	"strings"

	"github.com/parthk02/zomato-recommender/internal/config"
	"github.com/parthk02/zomato-recommender/internal/dto"
)

// Price bucket labels derived from a price band's midpoint.
const (
	BucketLow  = "low"
	BucketMid  = "mid"
	BucketHigh = "high"
)

// PriceRange is an inclusive [Lower, Upper] price-for-two band. Both bounds
// are set for ranges produced by the current input grammar, but each is
// optional so a one-sided band stays representable.
type PriceRange struct {
	Lower *float64
	Upper *float64
}

// NormalizedQuery is cleaned, structured user input ready for filtering and
// prompt building.
type NormalizedQuery struct {
	City   string
	Price  *PriceRange
	Bucket *string
}

// Normalizer turns validated raw input into a NormalizedQuery. The single
// value margin and bucket thresholds come from configuration.
type Normalizer struct {
	margin       float64
	bucketLowMax float64
	bucketMidMax float64
}

// NewNormalizer builds a normalizer from the configured price heuristics.
func NewNormalizer(heuristics config.PriceHeuristics) *Normalizer {
	return &Normalizer{
		margin:       heuristics.SingleValueMargin,
		bucketLowMax: heuristics.BucketLowMax,
		bucketMidMax: heuristics.BucketMidMax,
	}
}

// Normalize converts raw input into its structured form. It must only be
// called after Validate accepted the input; unparseable price text is
// treated as "no preference" here.
func (n *Normalizer) Normalize(raw dto.RecommendationRequest) NormalizedQuery {
	query := NormalizedQuery{
		City: strings.ToLower(strings.TrimSpace(raw.City)),
	}

	priceText := strings.TrimSpace(raw.PriceText)
	if priceText == "" {
		return query
	}

	single, bounds, err := parsePriceExpression(priceText)
	if err != nil {
		return query
	}

	switch {
	case bounds != nil:
		query.Price = bounds
	case single != nil:
		// A single value is a target price; widen it into a band.
		lower := *single * (1 - n.margin)
		upper := *single * (1 + n.margin)
		query.Price = &PriceRange{Lower: &lower, Upper: &upper}
	}

	query.Bucket = n.deriveBucket(query.Price)
	return query
}

// deriveBucket labels a price band by its midpoint. When only one bound is
// present that bound stands in for the midpoint; nil range means nil bucket.
func (n *Normalizer) deriveBucket(price *PriceRange) *string {
	if price == nil {
		return nil
	}

	var midpoint float64
	switch {
	case price.Lower != nil && price.Upper != nil:
		midpoint = (*price.Lower + *price.Upper) / 2
	case price.Lower != nil:
		midpoint = *price.Lower
	case price.Upper != nil:
		midpoint = *price.Upper
	default:
		return nil
	}

	bucket := BucketHigh
	if midpoint < n.bucketLowMax {
		bucket = BucketLow
	} else if midpoint < n.bucketMidMax {
		bucket = BucketMid
	}
	return &bucket
}
