package stays

import (
	"context"
	"testing"

	"github.com/voyago/voyago/pkg/capability"
	"github.com/voyago/voyago/pkg/capability/query"
	"github.com/voyago/voyago/pkg/tripdata"
)

func TestLiveAlwaysUnconfigured(t *testing.T) {
	source := Source{}

	if _, err := source.Live(context.Background(), query.Stays{City: "Chiang Mai", Nights: 3}); err != capability.ErrNotConfigured {
		t.Errorf("expected ErrNotConfigured from the unimplemented live path, got %v", err)
	}
}

func TestMockSpansAllTiers(t *testing.T) {
	source := Source{}

	staySet := source.Mock(query.Stays{City: "Chiang Mai", CheckIn: "2025-11-20", Nights: 4})

	if staySet.Note == "" {
		t.Error("expected an advisory note")
	}

	tiersSeen := map[tripdata.StayTier]int{}
	for _, option := range staySet.Options {
		tiersSeen[option.Tier]++

		expectedTotal := option.NightlyPrice * 4
		if diff := option.TotalPrice - expectedTotal; diff > 0.01 || diff < -0.01 {
			t.Errorf("%s: expected total %.2f for 4 nights, got %.2f", option.Name, expectedTotal, option.TotalPrice)
		}
	}

	for _, tier := range tripdata.StayTiers {
		if tiersSeen[tier] == 0 {
			t.Errorf("expected at least one %s option", tier)
		}
	}
}

func TestMockTierPricingOrder(t *testing.T) {
	source := Source{}

	selected := source.Mock(query.Stays{City: "Lisbon", Nights: 2}).SelectTiers()

	if len(selected) != 3 {
		t.Fatalf("expected one selection per tier, got %d", len(selected))
	}
	if selected[0].Tier != tripdata.StayTierBudget || selected[2].Tier != tripdata.StayTierPremium {
		t.Errorf("expected tier ordering budget..premium, got %+v", selected)
	}
	if !(selected[0].TotalPrice < selected[1].TotalPrice && selected[1].TotalPrice < selected[2].TotalPrice) {
		t.Errorf("expected tier prices to increase, got %v %v %v", selected[0].TotalPrice, selected[1].TotalPrice, selected[2].TotalPrice)
	}
}

func TestSelectTiersPicksCheapestPerTier(t *testing.T) {
	staySet := tripdata.StaySet{Options: []tripdata.StayOption{
		{Name: "Pricey Hostel", Tier: tripdata.StayTierBudget, TotalPrice: 120},
		{Name: "Cheap Hostel", Tier: tripdata.StayTierBudget, TotalPrice: 90},
	}}

	selected := staySet.SelectTiers()

	if len(selected) != 1 || selected[0].Name != "Cheap Hostel" {
		t.Errorf("expected the cheapest budget option, got %+v", selected)
	}
}
