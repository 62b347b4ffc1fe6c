package models

import "fmt"

// NoRushHour is the hour value reported when a month has no trips at all.
const NoRushHour = -1

// RushHour is the busiest hour of day and its average trips per active day.
type RushHour struct {
	Hour         int     `json:"hour"`
	AverageTrips float64 `json:"averageTrips"`
}

// NewEmptyRushHour returns the sentinel result for a month without trips.
func NewEmptyRushHour() RushHour {
	return RushHour{Hour: NoRushHour, AverageTrips: 0.0}
}

// Found reports whether the result carries an actual hour.
func (r RushHour) Found() bool {
	return r.Hour != NoRushHour
}

func (r RushHour) String() string {
	return fmt.Sprintf("RushHour{hour=%d, averageTrips=%g}", r.Hour, r.AverageTrips)
}

// MonthSummary aggregates one calendar month (across all years).
type MonthSummary struct {
	Month            int            `json:"month"`
	TotalTrips       int            `json:"totalTrips"`
	TopStartStations []StationCount `json:"topStartStations"`
	TopEndStations   []StationCount `json:"topEndStations"`
	RushHour         RushHour       `json:"rushHour"`
}

// MonthComparison pairs two summaries in the order they were requested.
type MonthComparison struct {
	First  MonthSummary `json:"first"`
	Second MonthSummary `json:"second"`
}
