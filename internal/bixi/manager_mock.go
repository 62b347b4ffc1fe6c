package bixi

import (
	"slices"

	"bixistats.concordia.ca/internal/models"
)

// MockAddTrip appends a trip to the dataset without going through a file.
func (m *Manager) MockAddTrip(trip models.Trip) {
	m.dataMutex.Lock()
	defer m.dataMutex.Unlock()
	m.trips = append(slices.Clip(m.trips), trip)
}

// MockSetTrips replaces the dataset with the given trips.
func (m *Manager) MockSetTrips(trips ...models.Trip) {
	m.setTrips(slices.Clone(trips), "mock")
}
