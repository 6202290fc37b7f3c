package tripdata

// FlightSet is the result of one flight search. Options is capped at the five
// cheapest offers; an empty Options with a Note is a valid degraded result.
type FlightSet struct {
	Options []FlightOption `json:"options" groups:"basic"`

	Note string `json:"note,omitempty" groups:"basic"`
}

type FlightOption struct {
	Carrier       string  `json:"carrier" groups:"basic"`
	FlightNumber  string  `json:"flight_number" groups:"basic"`
	Origin        string  `json:"origin" groups:"basic"`
	Destination   string  `json:"destination" groups:"basic"`
	DepartureTime string  `json:"departure_time" groups:"basic"`
	DurationMins  int     `json:"duration_mins,omitempty" groups:"basic"`
	Price         float64 `json:"price" groups:"basic"`
	Stops         int     `json:"stops" groups:"basic"`
}
