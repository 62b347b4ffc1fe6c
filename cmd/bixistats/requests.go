package main

import (
	"fmt"
	"strconv"
	"time"

	"bixistats.concordia.ca/internal/models"
	"bixistats.concordia.ca/internal/output"
	"bixistats.concordia.ca/internal/utils"
)

func (s *shell) tripsByStation() error {
	station, err := s.ask("Station name: ")
	if err != nil {
		return err
	}
	mode, err := s.ask("Mode (start/end/both): ")
	if err != nil {
		return err
	}

	s.printTrips(s.app.Manager.TripsByStation(station, mode))
	return nil
}

func (s *shell) tripsByMonth() error {
	month, err := s.ask("Month (YYYY-MM): ")
	if err != nil {
		return err
	}

	s.printTrips(s.app.Manager.TripsByMonth(month))
	return nil
}

func (s *shell) tripsByDuration() error {
	answer, err := s.ask("Minimum duration in minutes (X): ")
	if err != nil {
		return err
	}
	minDuration, err := utils.ParseFloat(answer)
	if err != nil {
		return err
	}

	s.printTrips(s.app.Manager.TripsByDuration(minDuration))
	return nil
}

func (s *shell) tripsByStartTime() error {
	start, err := s.ask("Start time (YYYY-MM-DD HH:mm:ss): ")
	if err != nil {
		return err
	}
	end, err := s.ask("End time (YYYY-MM-DD HH:mm:ss): ")
	if err != nil {
		return err
	}

	trips, err := s.app.Manager.TripsByStartTime(start, end)
	if err != nil {
		return err
	}

	s.printTrips(trips)
	return nil
}

func (s *shell) topArrondissements() error {
	answer, err := s.ask("Top N arrondissements: ")
	if err != nil {
		return err
	}
	n, err := utils.ParseInt(answer)
	if err != nil {
		return err
	}

	boroughs := s.app.Manager.TopArrondissements(n)

	table := output.NewTable(s.printer.Out(), []string{"ARRONDISSEMENT", "DEPARTURES"})
	for _, borough := range boroughs {
		table.AddRow(borough.Name, strconv.Itoa(borough.Departures))
	}
	if err := s.renderTable(table); err != nil {
		return err
	}

	s.printer.Print("Total results: %d", len(boroughs))
	return nil
}

func (s *shell) topStations() error {
	answer, err := s.ask("Top K start stations: ")
	if err != nil {
		return err
	}
	k, err := utils.ParseInt(answer)
	if err != nil {
		return err
	}
	startDate, err := s.ask("Start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	endDate, err := s.ask("End date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	stations, err := s.app.Manager.TopStations(k, startDate, endDate)
	if err != nil {
		return err
	}

	if err := s.printStations(stations, ""); err != nil {
		return err
	}
	s.printer.Print("Total results: %d", len(stations))
	return nil
}

func (s *shell) rushHour() error {
	month, err := s.askMonth("Month number (1..12): ")
	if err != nil {
		return err
	}

	result := s.app.Manager.RushHourOfMonth(month)
	if !result.Found() {
		s.printer.Print("No trips found for this month.")
		return nil
	}

	s.printer.Print("Rush hour: %d", result.Hour)
	s.printer.Print("Average trips/day during rush hour: %g", result.AverageTrips)
	return nil
}

func (s *shell) compareMonths() error {
	month1, err := s.askMonth("Month 1 (1..12): ")
	if err != nil {
		return err
	}
	month2, err := s.askMonth("Month 2 (1..12): ")
	if err != nil {
		return err
	}
	answer, err := s.ask("Top K stations: ")
	if err != nil {
		return err
	}
	k, err := utils.ParseInt(answer)
	if err != nil {
		return err
	}

	comparison := s.app.Manager.CompareMonths(month1, month2, k)
	if err := s.printMonthSummary(comparison.First); err != nil {
		return err
	}
	return s.printMonthSummary(comparison.Second)
}

func (s *shell) askMonth(prompt string) (int, error) {
	answer, err := s.ask(prompt)
	if err != nil {
		return 0, err
	}
	return utils.ParseMonthNumber(answer)
}

func (s *shell) printMonthSummary(summary models.MonthSummary) error {
	s.printer.Header(fmt.Sprintf("Month %d", summary.Month))
	s.printer.Print("Total trips: %d", summary.TotalTrips)

	s.printer.Print("Top start stations:")
	if err := s.printStations(summary.TopStartStations, "  "); err != nil {
		return err
	}

	s.printer.Print("Top end stations:")
	if err := s.printStations(summary.TopEndStations, "  "); err != nil {
		return err
	}

	if !summary.RushHour.Found() {
		s.printer.Print("Rush hour: none (no trips)")
		return nil
	}
	s.printer.Print("Rush hour: %d (avg/day = %g)", summary.RushHour.Hour, summary.RushHour.AverageTrips)
	return nil
}

func (s *shell) printStations(stations []models.StationCount, indent string) error {
	table := output.NewTable(s.printer.Out(), []string{indent + "STATION", "TRIPS"})
	for _, station := range stations {
		table.AddRow(indent+station.Name, strconv.Itoa(station.TripCount))
	}
	return s.renderTable(table)
}

func (s *shell) renderTable(table *output.Table) error {
	if table.Len() == 0 {
		return nil
	}
	return table.Render()
}

// printTrips prints one line per trip, capped at output.max_rows when set,
// followed by the full result count.
func (s *shell) printTrips(trips []models.Trip) {
	limit := len(trips)
	if maxRows := s.app.Config.Output.MaxRows; maxRows > 0 && maxRows < limit {
		limit = maxRows
	}

	loc := s.app.Manager.Location()
	for _, trip := range trips[:limit] {
		s.printer.Print("%s", formatTrip(trip, loc))
	}
	if hidden := len(trips) - limit; hidden > 0 {
		s.printer.Print("%s", s.printer.Dim(fmt.Sprintf("... %d more", hidden)))
	}

	s.printer.Print("Total results: %d", len(trips))
}

func formatTrip(trip models.Trip, loc *time.Location) string {
	return fmt.Sprintf("%s -> %s | %s -> %s | %.2f min",
		trip.StartStationName,
		trip.EndStationName,
		trip.StartTime(loc).Format(time.DateTime),
		trip.EndTime(loc).Format(time.DateTime),
		trip.DurationMinutes())
}
