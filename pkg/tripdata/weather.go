package tripdata

// WeatherReport is one forecast snapshot covering a trip's date range, one
// DailyForecast per day.
type WeatherReport struct {
	Daily []DailyForecast `json:"daily" groups:"basic"`

	Note string `json:"note,omitempty" groups:"basic"`
}

type DailyForecast struct {
	Date string  `json:"date" groups:"basic"`
	High float64 `json:"high" groups:"basic"`
	Low  float64 `json:"low" groups:"basic"`

	PrecipitationProbability *int `json:"precipitation_probability,omitempty" groups:"basic"`
}
