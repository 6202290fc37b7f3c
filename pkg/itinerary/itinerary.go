// Package itinerary allocates scored points of interest across the day and
// time slots of a trip. Building an itinerary is a pure function of its
// inputs: the same candidates, dates and interests always produce the same
// day sequence.
package itinerary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/voyago/voyago/pkg/tripdata"
)

const (
	interestCategoryScore = 2
	interestNameScore     = 1.5

	morningFiller   = "Leisurely breakfast and a stroll around the neighbourhood"
	afternoonFiller = "Free time to explore at your own pace"
	eveningFiller   = "Dinner at a local restaurant of your choice"

	// themedDaySuffix is appended to the evening slot when the morning and
	// evening places share a category. Cosmetic rule, kept for output parity.
	themedDaySuffix = ", rounding off a themed day"
)

// Build produces exactly one ItineraryDay per consecutive calendar date
// starting at startDate, consuming the highest scoring candidates three per
// day in morning, afternoon, evening order. Exhausted slots fall back to
// fixed filler text.
func Build(places []tripdata.PointOfInterest, startDate time.Time, days int, interests []string) []tripdata.ItineraryDay {
	queue := scoreAndSort(places, interests)

	var itineraryDays []tripdata.ItineraryDay

	for dayIndex := 0; dayIndex < days; dayIndex++ {
		morning := takeSlot(&queue, morningFiller)
		afternoon := takeSlot(&queue, afternoonFiller)
		evening := takeSlot(&queue, eveningFiller)

		if morning.category != "" && morning.category == evening.category {
			evening.description += themedDaySuffix
		}

		day := tripdata.ItineraryDay{
			DayIndex:  dayIndex + 1,
			Date:      startDate.AddDate(0, 0, dayIndex).Format("2006-01-02"),
			Morning:   morning.description,
			Afternoon: afternoon.description,
			Evening:   evening.description,
		}

		// First slot with a map link, in slot order, names the day's map
		for _, slot := range []slotAssignment{morning, afternoon, evening} {
			if slot.mapURL != "" {
				day.MapURL = slot.mapURL
				break
			}
		}

		itineraryDays = append(itineraryDays, day)
	}

	return itineraryDays
}

type slotAssignment struct {
	description string
	category    string
	mapURL      string
}

func takeSlot(queue *[]tripdata.PointOfInterest, filler string) slotAssignment {
	if len(*queue) == 0 {
		return slotAssignment{description: filler}
	}

	place := (*queue)[0]
	*queue = (*queue)[1:]

	return slotAssignment{
		description: describePlace(place),
		category:    place.Category,
		mapURL:      place.MapURL,
	}
}

func describePlace(place tripdata.PointOfInterest) string {
	if place.EstimatedMinutes > 0 {
		return fmt.Sprintf("%s (%s, ~%d min)", place.Name, place.Category, place.EstimatedMinutes)
	}

	return fmt.Sprintf("%s (%s)", place.Name, place.Category)
}

// scoreAndSort ranks candidates by interest affinity. Every candidate starts
// at 1; each interest appearing as a substring of the category adds 2, of the
// name adds 1.5. The sort is stable so equal scores keep their input order.
func scoreAndSort(places []tripdata.PointOfInterest, interests []string) []tripdata.PointOfInterest {
	type scoredPlace struct {
		place tripdata.PointOfInterest
		score float64
	}

	scored := make([]scoredPlace, 0, len(places))
	for _, place := range places {
		score := 1.0

		for _, interest := range interests {
			lowerInterest := strings.ToLower(strings.TrimSpace(interest))
			if lowerInterest == "" {
				continue
			}

			if strings.Contains(strings.ToLower(place.Category), lowerInterest) {
				score += interestCategoryScore
			}
			if strings.Contains(strings.ToLower(place.Name), lowerInterest) {
				score += interestNameScore
			}
		}

		scored = append(scored, scoredPlace{place: place, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	queue := make([]tripdata.PointOfInterest, 0, len(scored))
	for _, entry := range scored {
		queue = append(queue, entry.place)
	}

	return queue
}
