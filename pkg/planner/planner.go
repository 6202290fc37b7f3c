// Package planner orchestrates one planning request: resolve the destination,
// gather the remaining capabilities, synthesise the itinerary and blend the
// cost estimate. A planning call always succeeds once its input has passed
// boundary validation, however many capabilities degraded to sample data.
package planner

import (
	"context"
	"strings"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/voyago/voyago/pkg/cache"
	"github.com/voyago/voyago/pkg/capability"
	"github.com/voyago/voyago/pkg/capability/destination"
	"github.com/voyago/voyago/pkg/capability/flights"
	"github.com/voyago/voyago/pkg/capability/places"
	"github.com/voyago/voyago/pkg/capability/query"
	"github.com/voyago/voyago/pkg/capability/stays"
	"github.com/voyago/voyago/pkg/capability/weather"
	"github.com/voyago/voyago/pkg/config"
	"github.com/voyago/voyago/pkg/costing"
	"github.com/voyago/voyago/pkg/itinerary"
	"github.com/voyago/voyago/pkg/tripdata"
)

// noOriginNote explains the empty flight section when no origin was given.
const noOriginNote = "No origin airport was provided, so flight options were not searched."

// Request is a validated planning request. Construct through ParseRequest so
// the providers never see malformed input.
type Request struct {
	Destination string
	StartDate   time.Time
	Days        int

	// Origin is the departure airport IATA code, empty to skip flights
	Origin string

	Interests []string
	Budget    *float64
}

type Planner struct {
	store cache.Store

	destinationSource destination.Source
	weatherSource     weather.Source
	flightsSource     flights.Source
	staysSource       stays.Source
	placesSource      places.Source
}

func New(cfg config.Config, store cache.Store) *Planner {
	return &Planner{
		store: store,

		destinationSource: destination.Source{Config: cfg.Destination},
		weatherSource:     weather.Source{Config: cfg.Weather},
		flightsSource:     flights.Source{Config: cfg.Flights},
		staysSource:       stays.Source{},
		placesSource:      places.Source{Config: cfg.Places},
	}
}

// CreatePlan runs the full pipeline for one request. Capabilities after
// destination resolution are independent of each other, so they are fetched
// concurrently; each degrades to its own mock tier in isolation.
func (p *Planner) CreatePlan(ctx context.Context, request Request) tripdata.TripPlan {
	requestCtx := capability.NewContext(p.store)

	startDate := request.StartDate.Format("2006-01-02")

	destinationInfo := capability.Resolve(ctx, requestCtx, p.destinationSource, query.Destination{
		City: strings.ToLower(strings.TrimSpace(request.Destination)),
	})

	var weatherReport tripdata.WeatherReport
	var flightSet tripdata.FlightSet
	var staySet tripdata.StaySet
	var placeSet tripdata.PlaceSet

	waitGroup := conc.NewWaitGroup()

	waitGroup.Go(func() {
		weatherReport = capability.Resolve(ctx, requestCtx, p.weatherSource, query.Weather{
			Latitude:  destinationInfo.Latitude,
			Longitude: destinationInfo.Longitude,
			StartDate: startDate,
			Days:      request.Days,
		})
	})

	if request.Origin != "" {
		waitGroup.Go(func() {
			flightSet = capability.Resolve(ctx, requestCtx, p.flightsSource, query.Flights{
				Origin:        request.Origin,
				Destination:   destinationInfo.Name,
				DepartureDate: startDate,
				Adults:        1,
			})
		})
	} else {
		flightSet = tripdata.FlightSet{Note: noOriginNote}
	}

	waitGroup.Go(func() {
		staySet = capability.Resolve(ctx, requestCtx, p.staysSource, query.Stays{
			City:    destinationInfo.Name,
			CheckIn: startDate,
			Nights:  request.Days,
		})
	})

	waitGroup.Go(func() {
		placeSet = capability.Resolve(ctx, requestCtx, p.placesSource, query.Places{
			Latitude:     destinationInfo.Latitude,
			Longitude:    destinationInfo.Longitude,
			RadiusMetres: places.DefaultSearchRadiusMetres,
			Limit:        places.DefaultLimit,
		})
	})

	waitGroup.Wait()

	selectedStays := staySet.SelectTiers()

	itineraryDays := itinerary.Build(placeSet.Places, request.StartDate, request.Days, request.Interests)

	costEstimate := costing.Estimate(costing.Inputs{
		Days:    request.Days,
		Flights: flightSet,
		Stays:   selectedStays,
		Budget:  request.Budget,
		Notes: costing.ProviderNotes{
			Flights: flightSet.Note,
			Stays:   staySet.Note,
			Places:  placeSet.Note,
			Weather: weatherReport.Note,
		},
	})

	sources, cached := requestCtx.Provenance.Reduce()

	return tripdata.TripPlan{
		Destination: destinationInfo,
		StartDate:   startDate,
		EndDate:     request.StartDate.AddDate(0, 0, request.Days-1).Format("2006-01-02"),
		Days:        request.Days,
		Weather:     weatherReport,
		Flights:     flightSet,
		Stays:       selectedStays,
		Places:      placeSet.Places,
		Itinerary:   itineraryDays,
		Cost:        costEstimate,
		Meta: tripdata.PlanMetadata{
			GeneratedAt: time.Now().UTC(),
			Sources:     sources,
			Cached:      cached,
		},
	}
}
