package bixi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bixistats.concordia.ca/internal/models"
)

// HeaderToken is the first column name of the Bixi export header.
const HeaderToken = "STARTSTATIONNAME"

// MinFields is the number of comma-separated columns a data line must carry.
const MinFields = 10

// ErrLoad marks a trip file that could not be opened or read.
var ErrLoad = errors.New("failed to load trip file")

func openTripFile(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return file, nil
}

// ParseTrips reads a Bixi trip export. The first line is always treated as a
// header. Blank lines and repeated header lines are ignored, malformed rows
// are skipped and counted; neither aborts the parse. Only a read failure is
// an error.
func ParseTrips(r io.Reader) ([]models.Trip, int, error) {
	reader := bufio.NewReader(r)

	if _, err := reader.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Trip{}, 0, nil
		}
		return nil, 0, err
	}

	trips := make([]models.Trip, 0, 1024)
	skipped := 0

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, skipped, err
		}

		line = strings.TrimRight(line, "\r\n")
		if !isIgnoredLine(line) {
			if trip, ok := parseLine(line); ok {
				trips = append(trips, trip)
			} else {
				skipped++
			}
		}

		if err != nil {
			return trips, skipped, nil
		}
	}
}

func isIgnoredLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	first, _, _ := strings.Cut(line, ",")
	return first == HeaderToken
}

func parseLine(line string) (models.Trip, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < MinFields {
		return models.Trip{}, false
	}

	for i := range fields[:MinFields] {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var trip models.Trip
	var err error

	trip.StartStationName = fields[0]
	trip.StartStationBorough = fields[1]
	if trip.StartLatitude, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return models.Trip{}, false
	}
	if trip.StartLongitude, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return models.Trip{}, false
	}
	trip.EndStationName = fields[4]
	trip.EndStationBorough = fields[5]
	if trip.EndLatitude, err = strconv.ParseFloat(fields[6], 64); err != nil {
		return models.Trip{}, false
	}
	if trip.EndLongitude, err = strconv.ParseFloat(fields[7], 64); err != nil {
		return models.Trip{}, false
	}
	if trip.StartTimeMs, err = strconv.ParseInt(fields[8], 10, 64); err != nil {
		return models.Trip{}, false
	}
	if trip.EndTimeMs, err = strconv.ParseInt(fields[9], 10, 64); err != nil {
		return models.Trip{}, false
	}

	return trip, true
}
