package bixi

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"bixistats.concordia.ca/internal/logging"
	"bixistats.concordia.ca/internal/models"
)

// Manager owns the loaded trip dataset and answers queries over it.
// Every query is a pure function of the current dataset and its arguments.
type Manager struct {
	config      Config
	trips       []models.Trip
	source      string
	lastUpdated time.Time
	dataMutex   sync.RWMutex
}

// LoadResult describes one completed load.
type LoadResult struct {
	Source       string
	Trips        int
	SkippedLines int
	Duration     time.Duration
}

// NewManager creates a Manager with an empty dataset.
func NewManager(config Config) *Manager {
	return &Manager{config: config}
}

// InitManager creates a Manager and loads the file at path into it.
func InitManager(config Config, path string) (*Manager, error) {
	manager := NewManager(config)
	if _, err := manager.Load(path); err != nil {
		return nil, err
	}
	return manager, nil
}

// Load reads the trip file at path and replaces the current dataset with its
// contents. Malformed rows are skipped; only an unreadable file is an error,
// in which case the previous dataset is left untouched.
func (manager *Manager) Load(path string) (result LoadResult, err error) {
	file, err := openTripFile(path)
	if err != nil {
		logging.LogError(manager.config.Logger, "failed to open trip file", err, slog.String("path", path))
		return LoadResult{}, err
	}
	defer logging.HandleDeferredError(&err, file.Close, manager.config.Logger, "close_trip_file")

	result, err = manager.loadFrom(file, path)
	if err != nil {
		logging.LogError(manager.config.Logger, "failed to read trip file", err, slog.String("path", path))
	}
	return result, err
}

// LoadFrom parses trips from r and replaces the current dataset.
func (manager *Manager) LoadFrom(r io.Reader) (LoadResult, error) {
	return manager.loadFrom(r, "reader")
}

func (manager *Manager) loadFrom(r io.Reader, source string) (LoadResult, error) {
	started := time.Now()

	trips, skipped, err := ParseTrips(r)
	if err != nil {
		return LoadResult{}, fmt.Errorf("%w: %s: %w", ErrLoad, source, err)
	}

	manager.setTrips(trips, source)

	result := LoadResult{
		Source:       source,
		Trips:        len(trips),
		SkippedLines: skipped,
		Duration:     time.Since(started),
	}
	logging.LogOperation(manager.config.Logger, "trips_loaded",
		slog.String("path", result.Source),
		slog.Int("trips", result.Trips),
		slog.Int("skipped_lines", result.SkippedLines),
		slog.Duration("duration", result.Duration))

	return result, nil
}

func (manager *Manager) setTrips(trips []models.Trip, source string) {
	manager.dataMutex.Lock()
	defer manager.dataMutex.Unlock()

	manager.trips = trips
	manager.source = source
	manager.lastUpdated = time.Now()
}

// snapshot returns the current dataset. Loads swap the slice wholesale and
// never mutate it, so callers may iterate it without holding the lock.
func (manager *Manager) snapshot() []models.Trip {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.trips
}

// Trips returns a copy of the dataset in file order.
func (manager *Manager) Trips() []models.Trip {
	trips := manager.snapshot()
	out := make([]models.Trip, len(trips))
	copy(out, trips)
	return out
}

// TotalTrips is the number of trips currently loaded.
func (manager *Manager) TotalTrips() int {
	return len(manager.snapshot())
}

// UniqueStations counts distinct station names, start and end combined,
// compared case-insensitively.
func (manager *Manager) UniqueStations() int {
	counter := newNameCounter()
	for _, trip := range manager.snapshot() {
		counter.add(trip.StartStationName)
		counter.add(trip.EndStationName)
	}
	return counter.len()
}

// Source returns the path (or "reader") of the last successful load.
func (manager *Manager) Source() string {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.source
}

// LastUpdated returns when the dataset was last replaced.
func (manager *Manager) LastUpdated() time.Time {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.lastUpdated
}

// Location is the time zone used for calendar computations.
func (manager *Manager) Location() *time.Location {
	return manager.config.location()
}

func (manager *Manager) PrintStatistics(w io.Writer) {
	fmt.Fprintf(w, "Source: %s\n", manager.Source())
	fmt.Fprintf(w, "Last Updated: %s\n", manager.LastUpdated().Format(time.DateTime))
	fmt.Fprintf(w, "Total trips loaded: %d\n", manager.TotalTrips())
	fmt.Fprintf(w, "Unique stations loaded: %d\n", manager.UniqueStations())
}
