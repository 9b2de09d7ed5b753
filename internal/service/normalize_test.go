package service

import (
	"testing"

	"github.com/parthk02/zomato-recommender/internal/config"
	"github.com/parthk02/zomato-recommender/internal/dto"
)

func defaultNormalizer() *Normalizer {
	return NewNormalizer(config.PriceHeuristics{
		SingleValueMargin: 0.2,
		BucketLowMax:      400,
		BucketMidMax:      1000,
	})
}

func TestNormalizeCity(t *testing.T) {
	n := defaultNormalizer()
	q := n.Normalize(dto.RecommendationRequest{City: "  Bangalore "})
	if q.City != "bangalore" {
		t.Fatalf("expected lowercased trimmed city, got %q", q.City)
	}
	if q.Price != nil || q.Bucket != nil {
		t.Fatalf("expected nil price and bucket for blank price text, got %+v", q)
	}
}

func TestNormalizeSingleValueBand(t *testing.T) {
	n := defaultNormalizer()
	cases := []struct {
		price  string
		lower  float64
		upper  float64
		bucket string
	}{
		{"800", 640, 960, BucketMid},
		{"300", 240, 360, BucketLow},
		{"2,000", 1600, 2400, BucketHigh},
		{"0", 0, 0, BucketLow},
	}

	for _, tc := range cases {
		q := n.Normalize(dto.RecommendationRequest{City: "bangalore", PriceText: tc.price})
		if q.Price == nil || q.Price.Lower == nil || q.Price.Upper == nil {
			t.Fatalf("price %q: expected full band, got %+v", tc.price, q.Price)
		}
		if *q.Price.Lower != tc.lower || *q.Price.Upper != tc.upper {
			t.Fatalf("price %q: expected band [%v,%v], got [%v,%v]",
				tc.price, tc.lower, tc.upper, *q.Price.Lower, *q.Price.Upper)
		}
		if q.Bucket == nil || *q.Bucket != tc.bucket {
			t.Fatalf("price %q: expected bucket %q, got %v", tc.price, tc.bucket, q.Bucket)
		}
	}
}

func TestNormalizeRangeVerbatim(t *testing.T) {
	n := defaultNormalizer()
	q := n.Normalize(dto.RecommendationRequest{City: "bangalore", PriceText: "500-1200"})
	if q.Price == nil || *q.Price.Lower != 500 || *q.Price.Upper != 1200 {
		t.Fatalf("expected verbatim range [500,1200], got %+v", q.Price)
	}
	// midpoint 850 falls in the mid bucket
	if q.Bucket == nil || *q.Bucket != BucketMid {
		t.Fatalf("expected mid bucket, got %v", q.Bucket)
	}
}

func TestBucketBoundaries(t *testing.T) {
	n := defaultNormalizer()
	cases := []struct {
		priceText string
		bucket    string
	}{
		{"100-200", BucketLow},   // midpoint 150
		{"300-500", BucketMid},   // midpoint 400, boundary is exclusive for low
		{"900-1100", BucketHigh}, // midpoint 1000, boundary is exclusive for mid
		{"1500-3000", BucketHigh},
	}
	for _, tc := range cases {
		q := n.Normalize(dto.RecommendationRequest{City: "x", PriceText: tc.priceText})
		if q.Bucket == nil || *q.Bucket != tc.bucket {
			t.Fatalf("range %q: expected bucket %q, got %v", tc.priceText, tc.bucket, q.Bucket)
		}
	}
}

func TestNormalizeCustomHeuristics(t *testing.T) {
	n := NewNormalizer(config.PriceHeuristics{
		SingleValueMargin: 0.1,
		BucketLowMax:      500,
		BucketMidMax:      2000,
	})
	q := n.Normalize(dto.RecommendationRequest{City: "pune", PriceText: "1000"})
	if *q.Price.Lower != 900 || *q.Price.Upper != 1100 {
		t.Fatalf("expected 10%% band [900,1100], got [%v,%v]", *q.Price.Lower, *q.Price.Upper)
	}
	if *q.Bucket != BucketMid {
		t.Fatalf("expected mid bucket under custom thresholds, got %v", *q.Bucket)
	}
}

func TestDeriveBucketOneSided(t *testing.T) {
	n := defaultNormalizer()
	lower := 300.0
	if b := n.deriveBucket(&PriceRange{Lower: &lower}); b == nil || *b != BucketLow {
		t.Fatalf("expected lower bound to stand in for midpoint, got %v", b)
	}
	upper := 1200.0
	if b := n.deriveBucket(&PriceRange{Upper: &upper}); b == nil || *b != BucketHigh {
		t.Fatalf("expected upper bound to stand in for midpoint, got %v", b)
	}
	if b := n.deriveBucket(&PriceRange{}); b != nil {
		t.Fatalf("expected nil bucket for empty range, got %v", b)
	}
	if b := n.deriveBucket(nil); b != nil {
		t.Fatalf("expected nil bucket for nil range, got %v", b)
	}
}
