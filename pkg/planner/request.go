package planner

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTripDays = 3
	maxTripDays     = 14
)

// RawRequest is the untyped form of a planning request as it arrives at the
// boundary, before any validation.
type RawRequest struct {
	Destination string
	StartDate   string
	Days        string
	Origin      string
	Interests   string
	Budget      string
}

// ParseRequest validates a raw request and produces the typed Request the
// pipeline runs on. All input errors are raised here; providers downstream
// assume well-formed parameters.
func ParseRequest(raw RawRequest) (Request, error) {
	var request Request

	request.Destination = strings.TrimSpace(raw.Destination)
	if request.Destination == "" {
		return Request{}, fmt.Errorf("a destination is required")
	}

	if raw.StartDate == "" {
		return Request{}, fmt.Errorf("a start date is required")
	}
	startDate, err := time.Parse("2006-01-02", raw.StartDate)
	if err != nil {
		return Request{}, fmt.Errorf("start date should be formatted YYYY-MM-DD")
	}
	request.StartDate = startDate

	request.Days = defaultTripDays
	if raw.Days != "" {
		days, err := strconv.Atoi(raw.Days)
		if err != nil {
			return Request{}, fmt.Errorf("days should be an integer")
		}
		if days < 1 || days > maxTripDays {
			return Request{}, fmt.Errorf("days should be between 1 and %d", maxTripDays)
		}
		request.Days = days
	}

	if raw.Origin != "" {
		origin := strings.ToUpper(strings.TrimSpace(raw.Origin))
		if len(origin) != 3 || strings.IndexFunc(origin, func(r rune) bool { return r < 'A' || r > 'Z' }) != -1 {
			return Request{}, fmt.Errorf("origin should be a 3 letter IATA airport code")
		}
		request.Origin = origin
	}

	for _, interest := range strings.Split(raw.Interests, ",") {
		interest = strings.TrimSpace(interest)
		if interest != "" {
			request.Interests = append(request.Interests, interest)
		}
	}

	if raw.Budget != "" {
		budget, err := strconv.ParseFloat(raw.Budget, 64)
		if err != nil {
			return Request{}, fmt.Errorf("budget should be a number")
		}
		if budget < 0 {
			return Request{}, fmt.Errorf("budget should not be negative")
		}
		request.Budget = &budget
	}

	return request, nil
}
