package geo_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/geo"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	t.Parallel()

	p := domain.Coordinates{Lat: 55.754, Lon: 37.621}
	d, err := geo.DistanceKm(p, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("distance to self: want 0, got %v", d)
	}
}

// Москва (Красная площадь) — Санкт-Петербург (Дворцовая площадь): ~635 км.
func TestDistanceKm_MoscowSPb(t *testing.T) {
	t.Parallel()

	moscow := domain.Coordinates{Lat: 55.754, Lon: 37.621}
	spb := domain.Coordinates{Lat: 59.939, Lon: 30.316}

	d, err := geo.DistanceKm(moscow, spb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d < 600 || d > 670 {
		t.Fatalf("Москва—СПб: want ~635 km, got %v", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	t.Parallel()

	a := domain.Coordinates{Lat: 55.754, Lon: 37.621}
	b := domain.Coordinates{Lat: 55.790, Lon: 37.530}

	d1, err1 := geo.DistanceKm(a, b)
	d2, err2 := geo.DistanceKm(b, a)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceKm_InvalidCoordinate(t *testing.T) {
	t.Parallel()

	ok := domain.Coordinates{Lat: 55.754, Lon: 37.621}
	cases := []domain.Coordinates{
		{Lat: 91, Lon: 0},
		{Lat: -90.5, Lon: 0},
		{Lat: 0, Lon: 181},
		{Lat: 0, Lon: -180.01},
		{Lat: math.NaN(), Lon: 0},
	}

	for _, bad := range cases {
		if _, err := geo.DistanceKm(ok, bad); !errors.Is(err, geo.ErrInvalidCoordinate) {
			t.Fatalf("coords %+v: want ErrInvalidCoordinate, got %v", bad, err)
		}
		if _, err := geo.DistanceKm(bad, ok); !errors.Is(err, geo.ErrInvalidCoordinate) {
			t.Fatalf("coords %+v (first arg): want ErrInvalidCoordinate, got %v", bad, err)
		}
	}
}
