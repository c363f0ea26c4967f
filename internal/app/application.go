package app

import (
	"log/slog"
	"time"

	"nextdeparture.onebusaway.org/internal/appconf"
	"nextdeparture.onebusaway.org/internal/gtfs"
	"nextdeparture.onebusaway.org/internal/metrics"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config      appconf.Config
	GtfsConfig  gtfs.Config
	Logger      *slog.Logger
	GtfsManager *gtfs.Manager
	Metrics     *metrics.Collector
	// Clock returns the current instant; nil means time.Now.
	Clock func() time.Time
}

// Now returns the current instant according to the application clock.
func (app *Application) Now() time.Time {
	if app.Clock != nil {
		return app.Clock()
	}
	return time.Now()
}
