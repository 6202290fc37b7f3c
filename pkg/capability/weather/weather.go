package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/voyago/voyago/pkg/capability"
	"github.com/voyago/voyago/pkg/capability/query"
	"github.com/voyago/voyago/pkg/config"
	"github.com/voyago/voyago/pkg/tripdata"
)

// mockHighOffset is the fixed gap between the synthesised daily low and high.
const mockHighOffset = 6

// Source fetches one forecast entry per day of the trip from a forecast API,
// falling back to a deterministic synthetic forecast.
type Source struct {
	Config config.WeatherConfig
}

func (s Source) Capability() string {
	return "weather"
}

func (s Source) SourceName() string {
	return "open-meteo"
}

func (s Source) Live(ctx context.Context, q query.Weather) (tripdata.WeatherReport, error) {
	if !s.Config.Configured() {
		return tripdata.WeatherReport{}, capability.ErrNotConfigured
	}

	startDate, err := time.Parse("2006-01-02", q.StartDate)
	if err != nil {
		return tripdata.WeatherReport{}, err
	}
	endDate := startDate.AddDate(0, 0, q.Days-1)

	requestURL := fmt.Sprintf(
		"%s?latitude=%f&longitude=%f&daily=temperature_2m_max,temperature_2m_min,precipitation_probability_max&timezone=auto&start_date=%s&end_date=%s",
		s.Config.Endpoint, q.Latitude, q.Longitude,
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02"),
	)

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return tripdata.WeatherReport{}, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return tripdata.WeatherReport{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return tripdata.WeatherReport{}, fmt.Errorf("forecast lookup returned status %d", resp.StatusCode)
	}

	byteValue, _ := io.ReadAll(resp.Body)

	var forecastResponse forecastAPIResponse
	if err := json.Unmarshal(byteValue, &forecastResponse); err != nil {
		return tripdata.WeatherReport{}, err
	}

	if len(forecastResponse.Daily.Time) == 0 {
		return tripdata.WeatherReport{}, capability.ErrNoUsableResults
	}

	var report tripdata.WeatherReport
	for index, date := range forecastResponse.Daily.Time {
		forecast := tripdata.DailyForecast{Date: date}

		if index < len(forecastResponse.Daily.TemperatureMax) {
			forecast.High = forecastResponse.Daily.TemperatureMax[index]
		}
		if index < len(forecastResponse.Daily.TemperatureMin) {
			forecast.Low = forecastResponse.Daily.TemperatureMin[index]
		}
		if index < len(forecastResponse.Daily.PrecipitationProbabilityMax) {
			probability := forecastResponse.Daily.PrecipitationProbabilityMax[index]
			forecast.PrecipitationProbability = &probability
		}

		report.Daily = append(report.Daily, forecast)
	}

	return report, nil
}

func (s Source) Mock(q query.Weather) tripdata.WeatherReport {
	report := tripdata.WeatherReport{
		Note: "Using sample weather data. Set VOYAGO_WEATHER_ENDPOINT to enable live forecasts.",
	}

	startDate, err := time.Parse("2006-01-02", q.StartDate)
	if err != nil {
		// Queries are validated at the boundary, this guards direct misuse
		return report
	}

	for dayIndex := 0; dayIndex < q.Days; dayIndex++ {
		low := float64(19 + (dayIndex*2)%5)
		probability := 20 + (dayIndex*15)%45

		report.Daily = append(report.Daily, tripdata.DailyForecast{
			Date:                     startDate.AddDate(0, 0, dayIndex).Format("2006-01-02"),
			High:                     low + mockHighOffset,
			Low:                      low,
			PrecipitationProbability: &probability,
		})
	}

	return report
}

type forecastAPIResponse struct {
	Daily forecastDailyBlock `json:"daily"`
}

type forecastDailyBlock struct {
	Time                        []string  `json:"time"`
	TemperatureMax              []float64 `json:"temperature_2m_max"`
	TemperatureMin              []float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
}
