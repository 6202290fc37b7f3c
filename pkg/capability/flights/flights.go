package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	iso8601 "github.com/senseyeio/duration"
	"github.com/voyago/voyago/pkg/capability"
	"github.com/voyago/voyago/pkg/capability/query"
	"github.com/voyago/voyago/pkg/config"
	"github.com/voyago/voyago/pkg/tripdata"
	"github.com/voyago/voyago/pkg/util"
)

// maxFlightOptions caps how many of the cheapest offers are kept.
const maxFlightOptions = 5

// Source searches priced flight offers. The live path obtains a short-lived
// bearer token first; any token failure is treated like any other live
// failure and selects the mock tier.
type Source struct {
	Config config.FlightsConfig
}

func (s Source) Capability() string {
	return "flights"
}

func (s Source) SourceName() string {
	return "amadeus"
}

func (s Source) Live(ctx context.Context, q query.Flights) (tripdata.FlightSet, error) {
	if !s.Config.Configured() {
		return tripdata.FlightSet{}, capability.ErrNotConfigured
	}

	accessToken, err := s.fetchAccessToken(ctx)
	if err != nil {
		return tripdata.FlightSet{}, fmt.Errorf("token exchange failed: %w", err)
	}

	requestURL := fmt.Sprintf(
		"%s?originLocationCode=%s&destinationLocationCode=%s&departureDate=%s&adults=%d&max=20",
		s.Config.Endpoint, q.Origin, q.Destination, q.DepartureDate, q.Adults,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return tripdata.FlightSet{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return tripdata.FlightSet{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return tripdata.FlightSet{}, fmt.Errorf("offer search returned status %d", resp.StatusCode)
	}

	byteValue, _ := io.ReadAll(resp.Body)

	var offersResponse flightOffersResponse
	if err := json.Unmarshal(byteValue, &offersResponse); err != nil {
		return tripdata.FlightSet{}, err
	}

	if len(offersResponse.Data) == 0 {
		return tripdata.FlightSet{}, capability.ErrNoUsableResults
	}

	var options []tripdata.FlightOption
	for _, offer := range offersResponse.Data {
		option, ok := mapOffer(offer)
		if !ok {
			continue
		}

		options = append(options, option)
	}

	if len(options) == 0 {
		return tripdata.FlightSet{}, capability.ErrNoUsableResults
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})

	if len(options) > maxFlightOptions {
		options = options[:maxFlightOptions]
	}

	return tripdata.FlightSet{Options: options}, nil
}

func (s Source) fetchAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.Config.APIKey)
	form.Set("client_secret", s.Config.APISecret)

	req, err := http.NewRequestWithContext(ctx, "POST", s.Config.TokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	byteValue, _ := io.ReadAll(resp.Body)

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(byteValue, &tokenResponse); err != nil {
		return "", err
	}

	if tokenResponse.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	return tokenResponse.AccessToken, nil
}

func mapOffer(offer flightOffer) (tripdata.FlightOption, bool) {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return tripdata.FlightOption{}, false
	}

	price, err := strconv.ParseFloat(offer.Price.GrandTotal, 64)
	if err != nil {
		return tripdata.FlightOption{}, false
	}

	itinerary := offer.Itineraries[0]
	firstSegment := itinerary.Segments[0]
	lastSegment := itinerary.Segments[len(itinerary.Segments)-1]

	option := tripdata.FlightOption{
		Carrier:       firstSegment.CarrierCode,
		FlightNumber:  fmt.Sprintf("%s%s", firstSegment.CarrierCode, firstSegment.Number),
		Origin:        firstSegment.Departure.IATACode,
		Destination:   lastSegment.Arrival.IATACode,
		DepartureTime: firstSegment.Departure.At,
		Price:         price,
		Stops:         len(itinerary.Segments) - 1,
	}

	if parsedDuration, err := iso8601.ParseISO8601(itinerary.Duration); err == nil {
		option.DurationMins = parsedDuration.TH*60 + parsedDuration.TM
	}

	return option, true
}

func (s Source) Mock(q query.Flights) tripdata.FlightSet {
	departureDate, err := time.Parse("2006-01-02", q.DepartureDate)
	if err != nil {
		departureDate = time.Now()
	}

	flightSet := tripdata.FlightSet{
		Note: "Using sample flight data. Set the VOYAGO_FLIGHTS_* credentials to enable live offer search.",
	}

	for index, carrier := range mockCarriers {
		departureTime := util.AddTimeToDate(departureDate, carrier.departure)

		flightSet.Options = append(flightSet.Options, tripdata.FlightOption{
			Carrier:       carrier.name,
			FlightNumber:  fmt.Sprintf("%s%d", carrier.code, 110+index*3),
			Origin:        q.Origin,
			Destination:   q.Destination,
			DepartureTime: departureTime.Format(time.RFC3339),
			DurationMins:  150 + index*25,
			Price:         float64(128 + index*47),
			Stops:         index % 2,
		})
	}

	return flightSet
}

type mockCarrier struct {
	name      string
	code      string
	departure time.Time
}

var mockCarriers = []mockCarrier{
	{name: "Sunway Air", code: "SW", departure: time.Date(0, 1, 1, 8, 10, 0, 0, time.UTC)},
	{name: "Pacific Crest", code: "PC", departure: time.Date(0, 1, 1, 13, 45, 0, 0, time.UTC)},
	{name: "Metro Jet", code: "MJ", departure: time.Date(0, 1, 1, 19, 30, 0, 0, time.UTC)},
}

type flightOffersResponse struct {
	Data []flightOffer `json:"data"`
}

type flightOffer struct {
	Price       offerPrice       `json:"price"`
	Itineraries []offerItinerary `json:"itineraries"`
}

type offerPrice struct {
	GrandTotal string `json:"grandTotal"`
}

type offerItinerary struct {
	Duration string         `json:"duration"`
	Segments []offerSegment `json:"segments"`
}

type offerSegment struct {
	CarrierCode string        `json:"carrierCode"`
	Number      string        `json:"number"`
	Departure   offerEndpoint `json:"departure"`
	Arrival     offerEndpoint `json:"arrival"`
}

type offerEndpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}
