package service

import (
	"reflect"
	"testing"

	"github.com/parthk02/zomato-recommender/internal/entity"
)

func sampleRows() []entity.Restaurant {
	return []entity.Restaurant{
		{Name: "Truffles", City: "bangalore", PriceForTwo: 900},
		{Name: "Empire", City: "bangalore", PriceForTwo: 650},
		{Name: "Paradise", City: "hyderabad", PriceForTwo: 800},
		{Name: "Meghana", City: "bangalore", PriceForTwo: 1200},
	}
}

func priceRange(lower, upper float64) *PriceRange {
	return &PriceRange{Lower: &lower, Upper: &upper}
}

func TestFilterByCityOnly(t *testing.T) {
	got := FilterCandidates(sampleRows(), NormalizedQuery{City: "bangalore"})
	if len(got) != 3 {
		t.Fatalf("expected 3 bangalore rows, got %d", len(got))
	}
	if got[0].Name != "Truffles" || got[1].Name != "Empire" || got[2].Name != "Meghana" {
		t.Fatalf("expected dataset order preserved, got %+v", got)
	}
}

func TestFilterByCityAndPrice(t *testing.T) {
	query := NormalizedQuery{City: "bangalore", Price: priceRange(640, 960)}
	got := FilterCandidates(sampleRows(), query)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows in band, got %+v", got)
	}
	if got[0].Name != "Truffles" || got[1].Name != "Empire" {
		t.Fatalf("unexpected candidates: %+v", got)
	}
}

func TestFilterBoundsAreInclusive(t *testing.T) {
	query := NormalizedQuery{City: "bangalore", Price: priceRange(650, 900)}
	got := FilterCandidates(sampleRows(), query)
	if len(got) != 2 {
		t.Fatalf("expected inclusive bounds to keep 650 and 900, got %+v", got)
	}
}

func TestFilterOneSidedBounds(t *testing.T) {
	lower := 700.0
	got := FilterCandidates(sampleRows(), NormalizedQuery{City: "bangalore", Price: &PriceRange{Lower: &lower}})
	if len(got) != 2 || got[0].Name != "Truffles" || got[1].Name != "Meghana" {
		t.Fatalf("expected lower-bound-only filtering, got %+v", got)
	}

	upper := 700.0
	got = FilterCandidates(sampleRows(), NormalizedQuery{City: "bangalore", Price: &PriceRange{Upper: &upper}})
	if len(got) != 1 || got[0].Name != "Empire" {
		t.Fatalf("expected upper-bound-only filtering, got %+v", got)
	}
}

func TestFilterNoMatchesIsEmptyNotError(t *testing.T) {
	got := FilterCandidates(sampleRows(), NormalizedQuery{City: "mumbai"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestFilterIsPure(t *testing.T) {
	rows := sampleRows()
	query := NormalizedQuery{City: "bangalore", Price: priceRange(600, 1000)}

	first := FilterCandidates(rows, query)
	second := FilterCandidates(rows, query)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results on repeated filtering")
	}
	if !reflect.DeepEqual(rows, sampleRows()) {
		t.Fatalf("filtering must not mutate its input")
	}
}
