package bixi

import (
	"cmp"
	"slices"
	"strings"

	"bixistats.concordia.ca/internal/models"
	"bixistats.concordia.ca/internal/utils"
)

// TripsByStation returns trips whose start and/or end station equals
// stationName, ignoring case. mode is "start", "end" or "both"; any other
// value matches nothing. Results keep dataset order.
func (manager *Manager) TripsByStation(stationName, mode string) []models.Trip {
	stationMode := utils.ParseStationMode(mode)
	results := make([]models.Trip, 0)

	if stationMode == utils.ModeNone {
		return results
	}

	for _, trip := range manager.snapshot() {
		if stationMode.MatchesStart() && strings.EqualFold(stationName, trip.StartStationName) {
			results = append(results, trip)
			continue
		}
		if stationMode.MatchesEnd() && strings.EqualFold(stationName, trip.EndStationName) {
			results = append(results, trip)
		}
	}

	return results
}

// TripsByMonth returns trips that started in the "YYYY-MM" month, sorted by
// start time. Trips sharing a start time keep their dataset order.
func (manager *Manager) TripsByMonth(month string) []models.Trip {
	loc := manager.Location()
	results := make([]models.Trip, 0)

	for _, trip := range manager.snapshot() {
		if trip.StartTime(loc).Format(utils.MonthLayout) == month {
			results = append(results, trip)
		}
	}

	sortByStartTime(results)
	return results
}

// TripsByDuration returns trips lasting strictly more than minDuration
// minutes, longest first.
func (manager *Manager) TripsByDuration(minDuration float64) []models.Trip {
	results := make([]models.Trip, 0)

	for _, trip := range manager.snapshot() {
		if trip.DurationMinutes() > minDuration {
			results = append(results, trip)
		}
	}

	slices.SortStableFunc(results, func(a, b models.Trip) int {
		return cmp.Compare(b.DurationMinutes(), a.DurationMinutes())
	})
	return results
}

// TripsByStartTime returns trips whose start time lies in the inclusive
// interval [startTime, finalTime], sorted by start time. Each bound is either
// "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS" in the manager's time zone.
func (manager *Manager) TripsByStartTime(startTime, finalTime string) ([]models.Trip, error) {
	from, to, err := utils.ParseTimeRange(startTime, finalTime, manager.Location())
	if err != nil {
		return nil, err
	}

	results := make([]models.Trip, 0)
	for _, trip := range manager.snapshot() {
		if startsWithin(trip, from, to) {
			results = append(results, trip)
		}
	}

	sortByStartTime(results)
	return results, nil
}

func startsWithin(trip models.Trip, fromMs, toMs int64) bool {
	return trip.StartTimeMs >= fromMs && trip.StartTimeMs <= toMs
}

func sortByStartTime(trips []models.Trip) {
	slices.SortStableFunc(trips, func(a, b models.Trip) int {
		return cmp.Compare(a.StartTimeMs, b.StartTimeMs)
	})
}
