package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/parthk02/zomato-recommender/internal/dataset"
	"github.com/parthk02/zomato-recommender/internal/entity"
)

func doGet(t *testing.T, fn echo.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := fn(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func metaFixture() *MetaHandler {
	return NewMetaHandler(dataset.NewStore([]entity.Restaurant{
		{Name: "Truffles", City: "bangalore", PriceForTwo: 900},
		{Name: "Paradise", City: "hyderabad", PriceForTwo: 600},
	}))
}

func TestHealth(t *testing.T) {
	rec := doGet(t, metaFixture().Health, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" || body["restaurants_loaded"] != float64(2) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCities(t *testing.T) {
	rec := doGet(t, metaFixture().Cities, "/cities")

	var body struct {
		Cities []string `json:"cities"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Cities) != 2 || body.Cities[0] != "bangalore" || body.Cities[1] != "hyderabad" {
		t.Fatalf("unexpected cities: %v", body.Cities)
	}
}

func TestPriceRange(t *testing.T) {
	rec := doGet(t, metaFixture().PriceRange, "/price-range")

	var body struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Min != 600 || body.Max != 900 {
		t.Fatalf("unexpected bounds: %+v", body)
	}
}

func TestPriceRangeEmptyStoreDefaults(t *testing.T) {
	h := NewMetaHandler(dataset.NewStore(nil))
	rec := doGet(t, h.PriceRange, "/price-range")

	var body struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Min != 100 || body.Max != 3000 {
		t.Fatalf("unexpected default bounds: %+v", body)
	}
}
