package tripdata

// DestinationInfo is a resolved place identity. Immutable once resolved and
// cached by the normalised city string that produced it.
type DestinationInfo struct {
	Name      string  `json:"name" groups:"basic"`
	Country   string  `json:"country" groups:"basic"`
	Latitude  float64 `json:"latitude" groups:"basic"`
	Longitude float64 `json:"longitude" groups:"basic"`

	Note string `json:"note,omitempty" groups:"basic"`
}
