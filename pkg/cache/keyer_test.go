package cache

import (
	"strings"
	"testing"
)

func TestKeyDeterministic(t *testing.T) {
	type weatherQuery struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		StartDate string  `json:"start_date"`
		Days      int     `json:"days"`
	}

	first := Key("weather", weatherQuery{Latitude: 18.7883, Longitude: 98.9853, StartDate: "2025-11-20", Days: 3})
	second := Key("weather", weatherQuery{Latitude: 18.7883, Longitude: 98.9853, StartDate: "2025-11-20", Days: 3})

	if first == "" {
		t.Fatal("expected a non-empty key")
	}
	if first != second {
		t.Errorf("expected identical keys for identical queries, got %q and %q", first, second)
	}
	if !strings.HasPrefix(first, "weather:") {
		t.Errorf("expected capability prefix, got %q", first)
	}
}

func TestKeyMapOrderIndependent(t *testing.T) {
	first := Key("places", map[string]any{"lat": 18.7883, "lon": 98.9853, "radius": 8000})
	second := Key("places", map[string]any{"radius": 8000, "lon": 98.9853, "lat": 18.7883})

	if first != second {
		t.Errorf("expected map key order not to matter, got %q and %q", first, second)
	}
}

func TestKeyDistinguishesQueries(t *testing.T) {
	first := Key("destination", map[string]string{"city": "chiang mai"})
	second := Key("destination", map[string]string{"city": "lisbon"})

	if first == second {
		t.Error("expected different queries to produce different keys")
	}
}
