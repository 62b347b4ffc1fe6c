package bixi

import (
	"log/slog"
	"time"
)

type Config struct {
	// Location is the time zone used to derive calendar months, days and hours
	// from trip timestamps and to interpret query time bounds. Nil means time.Local.
	Location *time.Location
	Logger   *slog.Logger
}

func (config Config) location() *time.Location {
	if config.Location == nil {
		return time.Local
	}
	return config.Location
}
