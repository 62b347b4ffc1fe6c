package bixi

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bixistats.concordia.ca/internal/logging"
	"bixistats.concordia.ca/internal/models"
)

// newTestManager returns a UTC manager holding the given trips.
func newTestManager(t *testing.T, trips ...models.Trip) *Manager {
	t.Helper()
	manager := NewManager(Config{Location: time.UTC})
	manager.MockSetTrips(trips...)
	return manager
}

// ms converts a "YYYY-MM-DD HH:MM:SS" UTC timestamp to epoch milliseconds.
func ms(t *testing.T, value string) int64 {
	t.Helper()
	parsed, err := time.ParseInLocation(time.DateTime, value, time.UTC)
	require.NoError(t, err)
	return parsed.UnixMilli()
}

func trip(t *testing.T, from, to, start string, minutes int) models.Trip {
	t.Helper()
	startMs := ms(t, start)
	return models.Trip{
		StartStationName: from,
		EndStationName:   to,
		StartTimeMs:      startMs,
		EndTimeMs:        startMs + int64(minutes)*60_000,
	}
}

func TestManager_Load(t *testing.T) {
	testCases := []struct {
		name            string
		dataPath        string
		expectedTrips   int
		expectedSkipped int
		expectedUnique  int
	}{
		{
			name:            "FromLocalFile",
			dataPath:        models.GetFixturePath(t, "trips_small.csv"),
			expectedTrips:   4,
			expectedSkipped: 2,
			expectedUnique:  3,
		},
		{
			name:           "FromSecondFile",
			dataPath:       models.GetFixturePath(t, "trips_other.csv"),
			expectedTrips:  1,
			expectedUnique: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			manager, err := InitManager(Config{Location: time.UTC}, tc.dataPath)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedTrips, manager.TotalTrips())
			assert.Equal(t, tc.expectedUnique, manager.UniqueStations())
			assert.Equal(t, tc.dataPath, manager.Source())
			assert.False(t, manager.LastUpdated().IsZero())

			result, err := manager.Load(tc.dataPath)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedTrips, result.Trips)
			assert.Equal(t, tc.expectedSkipped, result.SkippedLines)
		})
	}
}

func TestManager_LoadFixtureContents(t *testing.T) {
	manager, err := InitManager(Config{Location: time.UTC}, models.GetFixturePath(t, "trips_small.csv"))
	require.NoError(t, err)

	trips := manager.Trips()
	require.Len(t, trips, 4)

	assert.Equal(t, "Berri / Cherrier", trips[0].StartStationName)
	assert.Equal(t, "Le Plateau-Mont-Royal", trips[0].StartStationBorough)
	assert.Equal(t, 10.0, trips[0].DurationMinutes())

	// Whitespace around fields is trimmed.
	assert.Equal(t, "Berri / Cherrier", trips[3].StartStationName)
	assert.Equal(t, "Le Plateau-Mont-Royal", trips[3].StartStationBorough)
	assert.Equal(t, 0.0, trips[3].DurationMinutes())
}

func TestManager_LoadReplacesDataset(t *testing.T) {
	manager := NewManager(Config{Location: time.UTC})

	_, err := manager.Load(models.GetFixturePath(t, "trips_small.csv"))
	require.NoError(t, err)
	require.Equal(t, 4, manager.TotalTrips())

	_, err = manager.Load(models.GetFixturePath(t, "trips_other.csv"))
	require.NoError(t, err)

	assert.Equal(t, 1, manager.TotalTrips())
	assert.Empty(t, manager.TripsByStation("Berri / Cherrier", "both"))
	assert.Len(t, manager.TripsByStation("atwater", "start"), 1)
	assert.Empty(t, manager.TripsByMonth("2024-06"))
	assert.Len(t, manager.TripsByMonth("2024-01"), 1)

	top := manager.TopArrondissements(10)
	require.Len(t, top, 1)
	assert.Equal(t, "Le Sud-Ouest", top[0].Name)
}

func TestManager_LoadMissingFile(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	manager := NewManager(Config{Location: time.UTC, Logger: logger})
	_, err := manager.Load(models.GetFixturePath(t, "trips_small.csv"))
	require.NoError(t, err)

	_, err = manager.Load(models.GetFixturePath(t, "does_not_exist.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)

	// The previous dataset survives a failed load.
	assert.Equal(t, 4, manager.TotalTrips())
	assert.Contains(t, buf.String(), `"msg":"failed to open trip file"`)
}

func TestManager_LoadLogsOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	manager := NewManager(Config{Location: time.UTC, Logger: logger})
	_, err := manager.Load(models.GetFixturePath(t, "trips_small.csv"))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"msg":"trips_loaded"`)
	assert.Contains(t, output, `"trips":4`)
	assert.Contains(t, output, `"skipped_lines":2`)
}

func TestManager_LoadFrom(t *testing.T) {
	manager := newTestManager(t)

	result, err := manager.LoadFrom(strings.NewReader(header + "\nA,B,1,2,C,D,3,4,1000,2000\n"))
	require.NoError(t, err)
	assert.Equal(t, "reader", result.Source)
	assert.Equal(t, 1, result.Trips)
	assert.Equal(t, 1, manager.TotalTrips())
}

func TestManager_TripsReturnsCopy(t *testing.T) {
	manager := newTestManager(t, trip(t, "A", "B", "2024-06-01 08:00:00", 5))

	trips := manager.Trips()
	trips[0].StartStationName = "changed"

	assert.Equal(t, "A", manager.Trips()[0].StartStationName)
}

func TestManager_UniqueStations(t *testing.T) {
	manager := newTestManager(t,
		trip(t, "Alpha", "beta", "2024-06-01 08:00:00", 5),
		trip(t, "ALPHA", "Gamma", "2024-06-01 09:00:00", 5),
		trip(t, "Beta", "alpha", "2024-06-01 10:00:00", 5),
	)

	assert.Equal(t, 3, manager.UniqueStations())
}

func TestManager_PrintStatistics(t *testing.T) {
	manager := newTestManager(t, trip(t, "Alpha", "Beta", "2024-06-01 08:00:00", 5))

	var buf bytes.Buffer
	manager.PrintStatistics(&buf)

	output := buf.String()
	assert.Contains(t, output, "Source: mock")
	assert.Contains(t, output, "Total trips loaded: 1")
	assert.Contains(t, output, "Unique stations loaded: 2")
}

func TestManager_DefaultLocation(t *testing.T) {
	manager := NewManager(Config{})
	assert.Equal(t, time.Local, manager.Location())
}
