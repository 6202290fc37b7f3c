package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/voyago/voyago/pkg/cache"
	"github.com/voyago/voyago/pkg/config"
	"github.com/voyago/voyago/pkg/planner"
)

func testApp() *fiber.App {
	app := fiber.New()

	PlanRouter(app.Group("/plan"), planner.New(config.Config{}, cache.NewMemoryStore()))

	return app
}

func TestGetPlan(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/plan/?destination=Chiang%20Mai&start_date=2025-11-20&days=4", nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("expected JSON body, got error %v", err)
	}

	itinerary, ok := payload["itinerary"].([]any)
	if !ok || len(itinerary) != 4 {
		t.Errorf("expected 4 itinerary days in response, got %v", payload["itinerary"])
	}

	meta, ok := payload["meta"].(map[string]any)
	if !ok {
		t.Fatalf("expected metadata block, got %v", payload["meta"])
	}
	if meta["cached"] != false {
		t.Errorf("expected cached false on first request, got %v", meta["cached"])
	}
}

func TestGetPlanValidation(t *testing.T) {
	app := testApp()

	tests := []struct {
		name string
		url  string
	}{
		{"missing destination", "/plan/?start_date=2025-11-20"},
		{"bad date", "/plan/?destination=Lisbon&start_date=soon"},
		{"bad days", "/plan/?destination=Lisbon&start_date=2025-11-20&days=99"},
		{"bad origin", "/plan/?destination=Lisbon&start_date=2025-11-20&origin=LIS1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", test.url, nil), -1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}

			body, _ := io.ReadAll(resp.Body)

			var payload map[string]any
			if err := json.Unmarshal(body, &payload); err != nil {
				t.Fatalf("expected JSON error body, got %v", err)
			}
			if payload["error"] == "" {
				t.Error("expected a human readable error message")
			}
		})
	}
}
