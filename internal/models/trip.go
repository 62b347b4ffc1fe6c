package models

import (
	"fmt"
	"time"
)

// Trip is one recorded bicycle rental. It is created once per valid input row
// and never mutated afterwards.
type Trip struct {
	StartStationName    string  `json:"startStationName"`
	StartStationBorough string  `json:"startStationBorough"`
	StartLatitude       float64 `json:"startLatitude"`
	StartLongitude      float64 `json:"startLongitude"`
	EndStationName      string  `json:"endStationName"`
	EndStationBorough   string  `json:"endStationBorough"`
	EndLatitude         float64 `json:"endLatitude"`
	EndLongitude        float64 `json:"endLongitude"`
	StartTimeMs         int64   `json:"startTimeMs"`
	EndTimeMs           int64   `json:"endTimeMs"`
}

// DurationMinutes is (end - start) expressed in minutes. It may be zero or negative.
func (t Trip) DurationMinutes() float64 {
	return float64(t.EndTimeMs-t.StartTimeMs) / (1000.0 * 60.0)
}

// StartTime returns the start instant in the given location.
func (t Trip) StartTime(loc *time.Location) time.Time {
	return time.UnixMilli(t.StartTimeMs).In(loc)
}

// EndTime returns the end instant in the given location.
func (t Trip) EndTime(loc *time.Location) time.Time {
	return time.UnixMilli(t.EndTimeMs).In(loc)
}

func (t Trip) String() string {
	return fmt.Sprintf("Trip{start=%q, end=%q, startTimeMs=%d, endTimeMs=%d, durationMin=%g}",
		t.StartStationName, t.EndStationName, t.StartTimeMs, t.EndTimeMs, t.DurationMinutes())
}
