package tripdata

import "time"

// TripPlan is the full output of one planning call.
type TripPlan struct {
	Destination DestinationInfo `json:"destination" groups:"basic"`

	StartDate string `json:"start_date" groups:"basic"`
	EndDate   string `json:"end_date" groups:"basic"`
	Days      int    `json:"days" groups:"basic"`

	Weather WeatherReport `json:"weather" groups:"basic"`
	Flights FlightSet     `json:"flights" groups:"basic"`

	// Stays holds the selected lodging options, at most one per tier
	Stays []StayOption `json:"stays" groups:"basic"`

	Places    []PointOfInterest `json:"places" groups:"basic"`
	Itinerary []ItineraryDay    `json:"itinerary" groups:"basic"`

	Cost CostEstimate `json:"cost" groups:"basic"`

	Meta PlanMetadata `json:"meta" groups:"basic"`
}

type PlanMetadata struct {
	GeneratedAt time.Time `json:"generated_at" groups:"basic"`

	// Sources lists the display names of every data source consulted
	Sources []string `json:"sources" groups:"basic"`

	// Cached is true when at least one capability was served from cache
	Cached bool `json:"cached" groups:"basic"`
}
