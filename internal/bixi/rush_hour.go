package bixi

import (
	"time"

	"bixistats.concordia.ca/internal/models"
)

const hoursPerDay = 24

// RushHourOfMonth finds the hour of day with the highest average number of
// trip starts per active day, over every trip whose start falls in the given
// calendar month of any year. An active day is a distinct calendar date with
// at least one such trip. Ties go to the earliest hour. A month without trips
// yields models.NewEmptyRushHour().
func (manager *Manager) RushHourOfMonth(month int) models.RushHour {
	loc := manager.Location()
	return rushHour(tripsInCalendarMonth(manager.snapshot(), month, loc), loc)
}

func tripsInCalendarMonth(trips []models.Trip, month int, loc *time.Location) []models.Trip {
	matching := make([]models.Trip, 0)
	for _, trip := range trips {
		if int(trip.StartTime(loc).Month()) == month {
			matching = append(matching, trip)
		}
	}
	return matching
}

// rushHour expects trips already restricted to a single calendar month.
func rushHour(trips []models.Trip, loc *time.Location) models.RushHour {
	var hourlyCounts [hoursPerDay]int
	activeDays := make(map[string]struct{})

	for _, trip := range trips {
		start := trip.StartTime(loc)
		hourlyCounts[start.Hour()]++
		activeDays[start.Format(time.DateOnly)] = struct{}{}
	}

	if len(activeDays) == 0 {
		return models.NewEmptyRushHour()
	}

	bestHour := 0
	bestAverage := -1.0
	for hour, count := range hourlyCounts {
		average := float64(count) / float64(len(activeDays))
		if average > bestAverage {
			bestHour = hour
			bestAverage = average
		}
	}

	return models.RushHour{Hour: bestHour, AverageTrips: bestAverage}
}
