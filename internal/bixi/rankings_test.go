package bixi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bixistats.concordia.ca/internal/models"
)

func departure(t *testing.T, borough, start string) models.Trip {
	t.Helper()
	tr := trip(t, "station", "station", start, 5)
	tr.StartStationBorough = borough
	return tr
}

func stationNames(stations []models.StationCount) []string {
	names := make([]string, 0, len(stations))
	for _, s := range stations {
		names = append(names, s.Name)
	}
	return names
}

func TestManager_TopArrondissements(t *testing.T) {
	manager := newTestManager(t,
		departure(t, "Ville-Marie", "2024-06-01 08:00:00"),
		departure(t, "Rosemont", "2024-06-01 08:00:00"),
		departure(t, "ville-marie", "2024-06-01 08:00:00"),
		departure(t, "Outremont", "2024-06-01 08:00:00"),
		departure(t, "Rosemont", "2024-06-01 08:00:00"),
		departure(t, "Ahuntsic", "2024-06-01 08:00:00"),
		departure(t, "VILLE-MARIE", "2024-06-01 08:00:00"),
	)

	t.Run("count descending then alphabetical", func(t *testing.T) {
		top := manager.TopArrondissements(10)
		assert.Equal(t, []models.BoroughCount{
			{Name: "Ville-Marie", Departures: 3},
			{Name: "Rosemont", Departures: 2},
			{Name: "Ahuntsic", Departures: 1},
			{Name: "Outremont", Departures: 1},
		}, top)
	})

	t.Run("first k only", func(t *testing.T) {
		top := manager.TopArrondissements(3)
		require.Len(t, top, 3)
		assert.Equal(t, "Ahuntsic", top[2].Name)
	})

	for _, k := range []int{0, -1, -100} {
		t.Run("non positive k is empty", func(t *testing.T) {
			top := manager.TopArrondissements(k)
			assert.NotNil(t, top)
			assert.Empty(t, top)
		})
	}
}

func TestManager_TopArrondissements_CaseInsensitiveTieBreak(t *testing.T) {
	manager := newTestManager(t,
		departure(t, "b-borough", "2024-06-01 08:00:00"),
		departure(t, "C-Borough", "2024-06-01 08:00:00"),
		departure(t, "A-Borough", "2024-06-01 08:00:00"),
	)

	top := manager.TopArrondissements(3)
	assert.Equal(t, "A-Borough", top[0].Name)
	assert.Equal(t, "b-borough", top[1].Name)
	assert.Equal(t, "C-Borough", top[2].Name)
}

func TestManager_TopStations(t *testing.T) {
	t.Run("equal counts come back alphabetically", func(t *testing.T) {
		manager := newTestManager(t,
			trip(t, "beta", "x", "2024-06-01 08:00:00", 5),
			trip(t, "Alpha", "x", "2024-06-01 08:00:00", 5),
			trip(t, "BETA", "x", "2024-06-01 09:00:00", 5),
			trip(t, "alpha", "x", "2024-06-01 09:00:00", 5),
			trip(t, "Beta", "x", "2024-06-01 10:00:00", 5),
			trip(t, "ALPHA", "x", "2024-06-01 10:00:00", 5),
		)

		top, err := manager.TopStations(2, "2024-06-01", "2024-06-02")
		require.NoError(t, err)
		assert.Equal(t, []models.StationCount{
			{Name: "Alpha", TripCount: 3},
			{Name: "beta", TripCount: 3},
		}, top)
	})

	manager := newTestManager(t,
		trip(t, "Zulu", "x", "2024-06-01 08:00:00", 5),
		trip(t, "Zulu", "x", "2024-06-01 09:00:00", 5),
		trip(t, "Zulu", "x", "2024-06-01 10:00:00", 5),
		trip(t, "Mike", "x", "2024-06-01 08:00:00", 5),
		trip(t, "Mike", "x", "2024-06-01 09:00:00", 5),
		trip(t, "Alpha", "x", "2024-06-01 08:00:00", 5),
		trip(t, "Alpha", "x", "2024-07-15 08:00:00", 5),
		trip(t, "Alpha", "x", "2024-07-16 08:00:00", 5),
		trip(t, "Alpha", "x", "2024-07-17 08:00:00", 5),
	)

	t.Run("selection by count, presentation alphabetical", func(t *testing.T) {
		top, err := manager.TopStations(2, "2024-06-01", "2024-06-30")
		require.NoError(t, err)
		assert.Equal(t, []string{"Mike", "Zulu"}, stationNames(top))
		assert.Equal(t, 2, top[0].TripCount)
		assert.Equal(t, 3, top[1].TripCount)
	})

	t.Run("interval restricts the counted trips", func(t *testing.T) {
		top, err := manager.TopStations(1, "2024-07-01", "2024-07-31 23:59:59")
		require.NoError(t, err)
		assert.Equal(t, []models.StationCount{{Name: "Alpha", TripCount: 3}}, top)
	})

	t.Run("k larger than distinct stations", func(t *testing.T) {
		top, err := manager.TopStations(10, "2024-01-01", "2024-12-31")
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha", "Mike", "Zulu"}, stationNames(top))
	})

	t.Run("non positive k is empty", func(t *testing.T) {
		top, err := manager.TopStations(0, "2024-01-01", "2024-12-31")
		require.NoError(t, err)
		assert.Empty(t, top)

		top, err = manager.TopStations(-3, "2024-01-01", "2024-12-31")
		require.NoError(t, err)
		assert.Empty(t, top)
	})

	t.Run("malformed bounds", func(t *testing.T) {
		_, err := manager.TopStations(2, "2024-13-01", "2024-12-31")
		assert.Error(t, err)
	})
}

func TestManager_CompareMonths(t *testing.T) {
	manager := newTestManager(t,
		trip(t, "Zulu", "Alpha", "2024-06-01 08:00:00", 5),
		trip(t, "Zulu", "Alpha", "2024-06-01 08:30:00", 5),
		trip(t, "Mike", "Bravo", "2024-06-02 17:00:00", 5),
		trip(t, "Alpha", "Bravo", "2023-06-05 08:00:00", 5),
		trip(t, "Mike", "Charlie", "2024-07-01 12:00:00", 5),
	)

	comparison := manager.CompareMonths(7, 6, 2)

	t.Run("summaries follow argument order", func(t *testing.T) {
		assert.Equal(t, 7, comparison.First.Month)
		assert.Equal(t, 6, comparison.Second.Month)
	})

	t.Run("june across years", func(t *testing.T) {
		june := comparison.Second
		assert.Equal(t, 4, june.TotalTrips)
		// Ranking order, not re-sorted alphabetically.
		assert.Equal(t, []models.StationCount{
			{Name: "Zulu", TripCount: 2},
			{Name: "Alpha", TripCount: 1},
		}, june.TopStartStations)
		assert.Equal(t, []models.StationCount{
			{Name: "Alpha", TripCount: 2},
			{Name: "Bravo", TripCount: 2},
		}, june.TopEndStations)
		// Hour 8 has 3 trips over 3 active days.
		assert.Equal(t, models.RushHour{Hour: 8, AverageTrips: 1}, june.RushHour)
	})

	t.Run("july", func(t *testing.T) {
		july := comparison.First
		assert.Equal(t, 1, july.TotalTrips)
		assert.Equal(t, []models.StationCount{{Name: "Mike", TripCount: 1}}, july.TopStartStations)
		assert.Equal(t, []models.StationCount{{Name: "Charlie", TripCount: 1}}, july.TopEndStations)
		assert.Equal(t, 12, july.RushHour.Hour)
	})

	t.Run("month without trips", func(t *testing.T) {
		empty := manager.CompareMonths(1, 1, 3).First
		assert.Equal(t, 0, empty.TotalTrips)
		assert.Empty(t, empty.TopStartStations)
		assert.Empty(t, empty.TopEndStations)
		assert.Equal(t, models.NewEmptyRushHour(), empty.RushHour)
	})

	t.Run("non positive k keeps totals", func(t *testing.T) {
		june := manager.CompareMonths(6, 7, 0).First
		assert.Equal(t, 4, june.TotalTrips)
		assert.Empty(t, june.TopStartStations)
		assert.Empty(t, june.TopEndStations)
	})
}
