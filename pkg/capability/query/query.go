// Package query holds the parameter structs for each capability lookup. Cache
// keys are derived from their canonical JSON form, so field tags here are part
// of the cache contract.
package query

type Destination struct {
	// City is the normalised (lowercased, trimmed) free-text query
	City string `json:"city"`
}

type Weather struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	StartDate string  `json:"start_date"`
	Days      int     `json:"days"`
}

type Flights struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	Adults        int    `json:"adults"`
}

type Stays struct {
	City    string `json:"city"`
	CheckIn string `json:"check_in"`
	Nights  int    `json:"nights"`
}

type Places struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMetres int     `json:"radius_metres"`
	Limit        int     `json:"limit"`
}
