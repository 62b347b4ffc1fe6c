package models

import "fmt"

// StationCount is a station name with the number of trips attributed to it.
type StationCount struct {
	Name      string `json:"name"`
	TripCount int    `json:"tripCount"`
}

func (s StationCount) String() string {
	return fmt.Sprintf("%s - %d", s.Name, s.TripCount)
}

// BoroughCount is a borough (arrondissement) with its number of departures.
type BoroughCount struct {
	Name       string `json:"name"`
	Departures int    `json:"departures"`
}

func (b BoroughCount) String() string {
	return fmt.Sprintf("%s - %d", b.Name, b.Departures)
}
