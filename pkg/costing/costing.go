// Package costing blends flight, lodging and daily-spend bands into the
// low/mid/high trip cost estimate. Everything here is derived; no input is
// mutated.
package costing

import (
	"fmt"
	"math"
	"sort"

	"github.com/voyago/voyago/pkg/tripdata"
)

// Fixed per-day activity spend bands, in the plan currency unit.
const (
	dailySpendLow  = 45
	dailySpendMid  = 75
	dailySpendHigh = 130
)

// Inputs carries everything the aggregator needs for one estimate.
type Inputs struct {
	Days    int
	Flights tripdata.FlightSet

	// Stays holds the selected lodging options, at most one per tier
	Stays []tripdata.StayOption

	// Budget is the traveller's stated budget, nil when not supplied
	Budget *float64

	Notes ProviderNotes
}

// ProviderNotes collects the advisory notes produced upstream, one slot per
// capability. Empty notes are skipped; non-empty ones are appended in this
// fixed order.
type ProviderNotes struct {
	Flights string
	Stays   string
	Places  string
	Weather string
}

// Estimate computes the blended low/mid/high estimate. Each component band is
// non-decreasing by construction, so low <= mid <= high always holds.
func Estimate(inputs Inputs) tripdata.CostEstimate {
	flights := flightBand(inputs.Flights)
	lodging := lodgingBand(inputs.Stays)

	activities := tripdata.CostBand{
		Low:  float64(dailySpendLow * inputs.Days),
		Mid:  float64(dailySpendMid * inputs.Days),
		High: float64(dailySpendHigh * inputs.Days),
	}

	estimate := tripdata.CostEstimate{
		Low:  int(math.Round(flights.Low + lodging.Low + activities.Low)),
		Mid:  int(math.Round(flights.Mid + lodging.Mid + activities.Mid)),
		High: int(math.Round(flights.High + lodging.High + activities.High)),
		Breakdown: tripdata.CostBreakdown{
			Flights:    flights,
			Lodging:    lodging,
			Activities: activities,
		},
	}

	if inputs.Budget != nil {
		if float64(estimate.Mid) <= *inputs.Budget {
			estimate.Notes = append(estimate.Notes, fmt.Sprintf("The mid-range estimate of %d is within your budget of %.0f.", estimate.Mid, *inputs.Budget))
		} else {
			estimate.Notes = append(estimate.Notes, fmt.Sprintf("The mid-range estimate of %d is above your budget of %.0f.", estimate.Mid, *inputs.Budget))
		}
	}

	for _, note := range []string{inputs.Notes.Flights, inputs.Notes.Stays, inputs.Notes.Places, inputs.Notes.Weather} {
		if note != "" {
			estimate.Notes = append(estimate.Notes, note)
		}
	}

	return estimate
}

// flightBand maps the three cheapest flight prices onto the band. A missing
// tier repeats the nearest cheaper tier already computed; no flights at all
// zeroes the band.
func flightBand(flights tripdata.FlightSet) tripdata.CostBand {
	prices := make([]float64, 0, len(flights.Options))
	for _, option := range flights.Options {
		prices = append(prices, option.Price)
	}
	sort.Float64s(prices)

	var band tripdata.CostBand

	if len(prices) > 0 {
		band.Low = prices[0]
	}

	band.Mid = band.Low
	if len(prices) > 1 {
		band.Mid = prices[1]
	}

	band.High = band.Mid
	if len(prices) > 2 {
		band.High = prices[2]
	}

	return band
}

// lodgingBand maps the budget/mid/premium tier totals onto the band using the
// same missing-tier fallback rule as flights.
func lodgingBand(stays []tripdata.StayOption) tripdata.CostBand {
	tierTotals := map[tripdata.StayTier]float64{}
	tierPresent := map[tripdata.StayTier]bool{}

	for _, option := range stays {
		if !tierPresent[option.Tier] {
			tierTotals[option.Tier] = option.TotalPrice
			tierPresent[option.Tier] = true
		}
	}

	var band tripdata.CostBand

	if tierPresent[tripdata.StayTierBudget] {
		band.Low = tierTotals[tripdata.StayTierBudget]
	}

	band.Mid = band.Low
	if tierPresent[tripdata.StayTierMid] {
		band.Mid = tierTotals[tripdata.StayTierMid]
	}

	band.High = band.Mid
	if tierPresent[tripdata.StayTierPremium] {
		band.High = tierTotals[tripdata.StayTierPremium]
	}

	return band
}
