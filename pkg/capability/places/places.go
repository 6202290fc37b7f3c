package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jinzhu/copier"
	"github.com/voyago/voyago/pkg/capability"
	"github.com/voyago/voyago/pkg/capability/query"
	"github.com/voyago/voyago/pkg/config"
	"github.com/voyago/voyago/pkg/tripdata"
)

// DefaultSearchRadiusMetres bounds the circle searched around the resolved
// destination.
const DefaultSearchRadiusMetres = 8000

// DefaultLimit caps how many features are requested from the live source.
const DefaultLimit = 24

// Source finds named points of interest around the destination coordinates
// and classifies them into the display category set.
type Source struct {
	Config config.PlacesConfig
}

func (s Source) Capability() string {
	return "places"
}

func (s Source) SourceName() string {
	return "geoapify-places"
}

func (s Source) Live(ctx context.Context, q query.Places) (tripdata.PlaceSet, error) {
	if !s.Config.Configured() {
		return tripdata.PlaceSet{}, capability.ErrNotConfigured
	}

	requestURL := fmt.Sprintf(
		"%s?categories=tourism.sights,tourism.attraction,entertainment,catering&filter=circle:%f,%f,%d&limit=%d&apiKey=%s",
		s.Config.Endpoint, q.Longitude, q.Latitude, q.RadiusMetres, q.Limit, s.Config.APIKey,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return tripdata.PlaceSet{}, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return tripdata.PlaceSet{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return tripdata.PlaceSet{}, fmt.Errorf("places lookup returned status %d", resp.StatusCode)
	}

	byteValue, _ := io.ReadAll(resp.Body)

	var featuresResponse placesAPIResponse
	if err := json.Unmarshal(byteValue, &featuresResponse); err != nil {
		return tripdata.PlaceSet{}, err
	}

	var placeSet tripdata.PlaceSet
	for _, feature := range featuresResponse.Features {
		properties := feature.Properties

		// Unnamed features are unusable for itinerary display
		if properties.Name == "" {
			continue
		}

		category := classify(properties.Categories)

		placeSet.Places = append(placeSet.Places, tripdata.PointOfInterest{
			ID:               properties.PlaceID,
			Name:             properties.Name,
			Category:         category,
			Latitude:         properties.Latitude,
			Longitude:        properties.Longitude,
			MapURL:           mapLink(properties.Latitude, properties.Longitude),
			EstimatedMinutes: categoryVisitMinutes[category],
		})
	}

	if len(placeSet.Places) == 0 {
		return tripdata.PlaceSet{}, capability.ErrNoUsableResults
	}

	return placeSet, nil
}

func (s Source) Mock(q query.Places) tripdata.PlaceSet {
	// Clone the fixtures so per-request coordinates never leak back into the
	// shared templates
	var places []tripdata.PointOfInterest
	copier.Copy(&places, &mockPlaces)

	for index := range places {
		places[index].ID = fmt.Sprintf("mock-place-%02d", index+1)
		places[index].Latitude = q.Latitude + mockPlaceOffsets[index%len(mockPlaceOffsets)][0]
		places[index].Longitude = q.Longitude + mockPlaceOffsets[index%len(mockPlaceOffsets)][1]
		places[index].MapURL = mapLink(places[index].Latitude, places[index].Longitude)
		places[index].EstimatedMinutes = categoryVisitMinutes[places[index].Category]
	}

	return tripdata.PlaceSet{
		Places: places,
		Note:   "Using sample points of interest. Set VOYAGO_PLACES_ENDPOINT and VOYAGO_PLACES_API_KEY to enable live search.",
	}
}

func mapLink(latitude float64, longitude float64) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.5f&mlon=%.5f#map=17/%.5f/%.5f", latitude, longitude, latitude, longitude)
}

var mockPlaces = []tripdata.PointOfInterest{
	{Name: "Old City Temple", Category: "temple"},
	{Name: "Night Bazaar", Category: "shopping"},
	{Name: "Riverside Market", Category: "food"},
	{Name: "Botanic Gardens", Category: "nature"},
	{Name: "City Museum", Category: "museum"},
	{Name: "Heritage Quarter", Category: "culture"},
	{Name: "Hilltop Shrine", Category: "spiritual"},
	{Name: "Jungle Zipline Park", Category: "adventure"},
	{Name: "Grand Theatre", Category: "entertainment"},
	{Name: "Artisan Coffee District", Category: "food"},
	{Name: "Summit Viewpoint", Category: "nature"},
	{Name: "Central Plaza", Category: "attraction"},
}

var mockPlaceOffsets = [][2]float64{
	{0.004, 0.002}, {-0.003, 0.005}, {0.001, -0.004}, {0.006, 0.001},
	{-0.005, -0.002}, {0.002, 0.006}, {-0.001, 0.003}, {0.012, -0.008},
	{0.003, -0.001}, {-0.002, -0.005}, {0.016, 0.011}, {0.000, 0.001},
}

type placesAPIResponse struct {
	Features []placeFeature `json:"features"`
}

type placeFeature struct {
	Properties placeProperties `json:"properties"`
}

type placeProperties struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Latitude   float64  `json:"lat"`
	Longitude  float64  `json:"lon"`
	Categories []string `json:"categories"`
}
