package tripdata

type StayTier string

const (
	StayTierBudget  StayTier = "budget"
	StayTierMid     StayTier = "mid"
	StayTierPremium StayTier = "premium"
)

// StayTiers is the fixed tier ordering, cheapest first. Cost aggregation and
// tier selection both iterate in this order.
var StayTiers = []StayTier{StayTierBudget, StayTierMid, StayTierPremium}

type StayOption struct {
	Name         string   `json:"name" groups:"basic"`
	Tier         StayTier `json:"tier" groups:"basic"`
	NightlyPrice float64  `json:"nightly_price" groups:"basic"`
	TotalPrice   float64  `json:"total_price" groups:"basic"`

	Rating  float64 `json:"rating,omitempty" groups:"basic"`
	Address string  `json:"address,omitempty" groups:"basic"`
	Link    string  `json:"link,omitempty" groups:"basic"`
}

// StaySet is one lodging lookup result, possibly several options per tier.
type StaySet struct {
	Options []StayOption `json:"options" groups:"basic"`

	Note string `json:"note,omitempty" groups:"basic"`
}

// SelectTiers picks at most one option per lodging tier, cheapest first
// within the tier, keyed in fixed tier order.
func (s StaySet) SelectTiers() []StayOption {
	var selected []StayOption

	for _, tier := range StayTiers {
		var best *StayOption

		for index, option := range s.Options {
			if option.Tier != tier {
				continue
			}

			if best == nil || option.TotalPrice < best.TotalPrice {
				best = &s.Options[index]
			}
		}

		if best != nil {
			selected = append(selected, *best)
		}
	}

	return selected
}
