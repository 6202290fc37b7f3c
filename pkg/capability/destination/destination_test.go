package destination

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/voyago/voyago/pkg/capability"
	"github.com/voyago/voyago/pkg/capability/query"
	"github.com/voyago/voyago/pkg/config"
)

func TestMockKnownCity(t *testing.T) {
	source := Source{}

	info := source.Mock(query.Destination{City: "chiang mai"})

	if info.Name != "Chiang Mai" || info.Country != "Thailand" {
		t.Errorf("unexpected destination %+v", info)
	}
	if info.Latitude != 18.7883 || info.Longitude != 98.9853 {
		t.Errorf("unexpected coordinates %+v", info)
	}
	if info.Note == "" {
		t.Error("expected an advisory note on mock data")
	}
}

func TestMockUnknownCityDeterministic(t *testing.T) {
	source := Source{}

	first := source.Mock(query.Destination{City: "nowhere in particular"})
	second := source.Mock(query.Destination{City: "nowhere in particular"})

	if first.Latitude != second.Latitude || first.Longitude != second.Longitude {
		t.Error("expected deterministic coordinates for unknown cities")
	}
	if first.Name != "Nowhere In Particular" {
		t.Errorf("expected title-cased name, got %q", first.Name)
	}
	if first.Latitude < -90 || first.Latitude > 90 || first.Longitude < -180 || first.Longitude > 180 {
		t.Errorf("coordinates out of range: %+v", first)
	}
}

func TestLiveUnconfigured(t *testing.T) {
	source := Source{}

	_, err := source.Live(context.Background(), query.Destination{City: "lisbon"})
	if err != capability.ErrNotConfigured {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestLiveGeocoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") != "lisbon" {
			t.Errorf("unexpected query name %q", r.URL.Query().Get("name"))
		}

		fmt.Fprint(w, `{"results":[{"name":"Lisbon","country":"Portugal","latitude":38.7223,"longitude":-9.1393}]}`)
	}))
	defer server.Close()

	source := Source{Config: config.DestinationConfig{Endpoint: server.URL}}

	info, err := source.Live(context.Background(), query.Destination{City: "lisbon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.Name != "Lisbon" || info.Country != "Portugal" {
		t.Errorf("unexpected destination %+v", info)
	}
}

func TestLiveEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer server.Close()

	source := Source{Config: config.DestinationConfig{Endpoint: server.URL}}

	if _, err := source.Live(context.Background(), query.Destination{City: "xyzzy"}); err != capability.ErrNoUsableResults {
		t.Errorf("expected ErrNoUsableResults, got %v", err)
	}
}
