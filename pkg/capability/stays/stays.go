package stays

import (
	"context"
	"fmt"
	"math"

	"github.com/voyago/voyago/pkg/capability"
	"github.com/voyago/voyago/pkg/capability/query"
	"github.com/voyago/voyago/pkg/tripdata"
)

// Source provides lodging options across the three tiers. There is no live
// lodging integration yet, so every lookup lands on the deterministic tier;
// results are still cached and tagged like any other capability.
type Source struct{}

func (s Source) Capability() string {
	return "stays"
}

func (s Source) SourceName() string {
	return "stays-live"
}

func (s Source) Live(_ context.Context, _ query.Stays) (tripdata.StaySet, error) {
	return tripdata.StaySet{}, capability.ErrNotConfigured
}

func (s Source) Mock(q query.Stays) tripdata.StaySet {
	nights := q.Nights
	if nights < 1 {
		nights = 1
	}

	staySet := tripdata.StaySet{
		Note: "Lodging prices are indicative sample rates, not live availability.",
	}

	for _, template := range stayTemplates {
		nightlyPrice := math.Round(tierBaseRates[template.tier]*template.multiplier*100) / 100

		staySet.Options = append(staySet.Options, tripdata.StayOption{
			Name:         template.name,
			Tier:         template.tier,
			NightlyPrice: nightlyPrice,
			TotalPrice:   math.Round(nightlyPrice*float64(nights)*100) / 100,
			Rating:       template.rating,
			Address:      fmt.Sprintf("%s, %s", template.address, q.City),
		})
	}

	return staySet
}

var tierBaseRates = map[tripdata.StayTier]float64{
	tripdata.StayTierBudget:  28,
	tripdata.StayTierMid:     72,
	tripdata.StayTierPremium: 165,
}

type stayTemplate struct {
	name       string
	tier       tripdata.StayTier
	multiplier float64
	rating     float64
	address    string
}

var stayTemplates = []stayTemplate{
	{name: "Old Town Guesthouse", tier: tripdata.StayTierBudget, multiplier: 1.0, rating: 7.9, address: "12 Lantern Lane"},
	{name: "Riverside Hostel", tier: tripdata.StayTierBudget, multiplier: 1.15, rating: 8.1, address: "3 Ferry Steps"},
	{name: "Garden Court Hotel", tier: tripdata.StayTierMid, multiplier: 1.0, rating: 8.4, address: "58 Orchard Road"},
	{name: "City Square Hotel", tier: tripdata.StayTierMid, multiplier: 1.1, rating: 8.2, address: "1 Market Square"},
	{name: "Grand Heritage Resort", tier: tripdata.StayTierPremium, multiplier: 1.0, rating: 9.0, address: "200 Palm Avenue"},
	{name: "The Pavilion Retreat", tier: tripdata.StayTierPremium, multiplier: 1.2, rating: 9.2, address: "7 Hillcrest Drive"},
}
