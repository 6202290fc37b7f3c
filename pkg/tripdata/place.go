package tripdata

// PointOfInterest is a named, categorised, geolocated feature. Category is a
// free-form display tag that doubles as the interest-matching target.
type PointOfInterest struct {
	ID        string  `json:"id" groups:"basic"`
	Name      string  `json:"name" groups:"basic"`
	Category  string  `json:"category" groups:"basic"`
	Latitude  float64 `json:"latitude" groups:"basic"`
	Longitude float64 `json:"longitude" groups:"basic"`

	MapURL           string `json:"map_url,omitempty" groups:"basic"`
	EstimatedMinutes int    `json:"estimated_minutes,omitempty" groups:"basic"`
}

// PlaceSet is one points-of-interest lookup result.
type PlaceSet struct {
	Places []PointOfInterest `json:"places" groups:"basic"`

	Note string `json:"note,omitempty" groups:"basic"`
}
