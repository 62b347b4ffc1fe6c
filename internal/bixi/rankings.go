package bixi

import (
	"bixistats.concordia.ca/internal/models"
	"bixistats.concordia.ca/internal/utils"
)

// TopArrondissements ranks start boroughs by number of departures, ties
// broken alphabetically, and returns the first k.
func (manager *Manager) TopArrondissements(k int) []models.BoroughCount {
	counter := newNameCounter()
	for _, trip := range manager.snapshot() {
		counter.add(trip.StartStationBorough)
	}

	top := counter.top(k)
	results := make([]models.BoroughCount, 0, len(top))
	for _, entry := range top {
		results = append(results, models.BoroughCount{Name: entry.name, Departures: entry.count})
	}
	return results
}

// TopStations selects the k busiest start stations among trips starting in
// [startDate, endDate] (count order, alphabetical tie-break) and returns that
// selection sorted alphabetically.
func (manager *Manager) TopStations(k int, startDate, endDate string) ([]models.StationCount, error) {
	from, to, err := utils.ParseTimeRange(startDate, endDate, manager.Location())
	if err != nil {
		return nil, err
	}

	counter := newNameCounter()
	for _, trip := range manager.snapshot() {
		if startsWithin(trip, from, to) {
			counter.add(trip.StartStationName)
		}
	}

	top := counter.top(k)
	sortAlphabetically(top)
	return toStationCounts(top), nil
}

// CompareMonths summarises two calendar months side by side, in the order
// given. Station lists stay in ranking order.
func (manager *Manager) CompareMonths(month1, month2, k int) models.MonthComparison {
	trips := manager.snapshot()
	return models.MonthComparison{
		First:  manager.summarizeMonth(trips, month1, k),
		Second: manager.summarizeMonth(trips, month2, k),
	}
}

func (manager *Manager) summarizeMonth(trips []models.Trip, month, k int) models.MonthSummary {
	loc := manager.Location()
	matching := tripsInCalendarMonth(trips, month, loc)

	starts := newNameCounter()
	ends := newNameCounter()
	for _, trip := range matching {
		starts.add(trip.StartStationName)
		ends.add(trip.EndStationName)
	}

	return models.MonthSummary{
		Month:            month,
		TotalTrips:       len(matching),
		TopStartStations: toStationCounts(starts.top(k)),
		TopEndStations:   toStationCounts(ends.top(k)),
		RushHour:         rushHour(matching, loc),
	}
}

func toStationCounts(entries []nameCount) []models.StationCount {
	results := make([]models.StationCount, 0, len(entries))
	for _, entry := range entries {
		results = append(results, models.StationCount{Name: entry.name, TripCount: entry.count})
	}
	return results
}
