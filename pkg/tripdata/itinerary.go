package tripdata

// ItineraryDay is one allocated day of the trip. Generated fresh per request
// and immutable once produced.
type ItineraryDay struct {
	DayIndex int    `json:"day_index" groups:"basic"`
	Date     string `json:"date" groups:"basic"`

	Morning   string `json:"morning" groups:"basic"`
	Afternoon string `json:"afternoon" groups:"basic"`
	Evening   string `json:"evening" groups:"basic"`

	MapURL string `json:"map_url,omitempty" groups:"basic"`
}
