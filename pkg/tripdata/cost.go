package tripdata

// CostEstimate is the blended low/mid/high trip cost. Purely derived, in a
// fixed currency unit.
type CostEstimate struct {
	Low  int `json:"low" groups:"basic"`
	Mid  int `json:"mid" groups:"basic"`
	High int `json:"high" groups:"basic"`

	Notes []string `json:"notes,omitempty" groups:"basic"`

	Breakdown CostBreakdown `json:"breakdown" groups:"basic"`
}

// CostBreakdown exposes the per-component bands feeding the totals.
type CostBreakdown struct {
	Flights    CostBand `json:"flights" groups:"basic"`
	Lodging    CostBand `json:"lodging" groups:"basic"`
	Activities CostBand `json:"activities" groups:"basic"`
}

type CostBand struct {
	Low  float64 `json:"low" groups:"basic"`
	Mid  float64 `json:"mid" groups:"basic"`
	High float64 `json:"high" groups:"basic"`
}
