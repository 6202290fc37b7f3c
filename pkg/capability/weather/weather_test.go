package weather

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

func TestMockForecastShape(t *testing.T) {
	source := Source{}

	report := source.Mock(query.Weather{
		Latitude:  18.7883,
		Longitude: 98.9853,
		StartDate: "2025-11-20",
		Days:      3,
	})

	if len(report.Daily) != 3 {
		t.Fatalf("expected 3 daily forecasts, got %d", len(report.Daily))
	}

	expectedDates := []string{"2025-11-20", "2025-11-21", "2025-11-22"}
	for index, forecast := range report.Daily {
		if forecast.Date != expectedDates[index] {
			t.Errorf("day %d: expected date %s, got %s", index, expectedDates[index], forecast.Date)
		}
		if forecast.High != forecast.Low+mockHighOffset {
			t.Errorf("day %d: expected high to sit %d above low, got high=%v low=%v", index, mockHighOffset, forecast.High, forecast.Low)
		}
		if forecast.PrecipitationProbability == nil {
			t.Errorf("day %d: expected a precipitation probability", index)
		}
	}
}

func TestMockForecastDeterministic(t *testing.T) {
	source := Source{}
	q := query.Weather{Latitude: 1, Longitude: 2, StartDate: "2025-11-20", Days: 4}

	first := source.Mock(q)
	second := source.Mock(q)

	for index := range first.Daily {
		if first.Daily[index] != second.Daily[index] {
			if *first.Daily[index].PrecipitationProbability != *second.Daily[index].PrecipitationProbability ||
				first.Daily[index].Date != second.Daily[index].Date ||
				first.Daily[index].High != second.Daily[index].High {
				t.Fatalf("expected identical mock forecasts across runs")
			}
		}
	}
}

func TestLiveUnconfigured(t *testing.T) {
	source := Source{}

	_, err := source.Live(context.Background(), query.Weather{StartDate: "2025-11-20", Days: 2})
	if err != capability.ErrNotConfigured {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestLiveForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("start_date") != "2025-11-20" || r.URL.Query().Get("end_date") != "2025-11-21" {
			t.Errorf("unexpected date range %s..%s", r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
		}

		fmt.Fprint(w, `{"daily":{"time":["2025-11-20","2025-11-21"],"temperature_2m_max":[29.1,30.4],"temperature_2m_min":[19.5,20.2],"precipitation_probability_max":[10,35]}}`)
	}))
	defer server.Close()

	source := Source{Config: config.WeatherConfig{Endpoint: server.URL}}

	report, err := source.Live(context.Background(), query.Weather{
		Latitude:  18.7883,
		Longitude: 98.9853,
		StartDate: "2025-11-20",
		Days:      2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Daily) != 2 {
		t.Fatalf("expected 2 forecasts, got %d", len(report.Daily))
	}
	if report.Daily[1].High != 30.4 || report.Daily[1].Low != 20.2 {
		t.Errorf("unexpected second day forecast %+v", report.Daily[1])
	}
	if report.Daily[0].PrecipitationProbability == nil || *report.Daily[0].PrecipitationProbability != 10 {
		t.Errorf("unexpected precipitation probability %+v", report.Daily[0].PrecipitationProbability)
	}
}

func TestLiveUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	source := Source{Config: config.WeatherConfig{Endpoint: server.URL}}

	if _, err := source.Live(context.Background(), query.Weather{StartDate: "2025-11-20", Days: 2}); err == nil {
		t.Error("expected an error on non-success status")
	}
}
