package app

import (
	"time"

	"nextdeparture.onebusaway.org/internal/schedule"
)

// TripFilter returns the trip selector configured for the route.
func (app *Application) TripFilter() schedule.TripFilter {
	return schedule.TripFilter{
		RouteID:          app.Config.Route.RouteID,
		DirectionID:      app.Config.Route.DirectionID,
		HeadsignContains: app.Config.Route.Headsign,
	}
}

// Estimator returns the estimator for the configured route. A configured stop
// selects stop times, otherwise frequency windows are used. A configured
// dedupe tolerance of zero reports every departure.
func (app *Application) Estimator() schedule.Estimator {
	tolerance := app.Config.DedupeTolerance
	if tolerance == 0 {
		tolerance = schedule.NoDedupe
	}
	return schedule.Estimator{
		Source:          schedule.SourceFor(app.Config.Route.StopID),
		DedupeTolerance: tolerance,
	}
}

// NextDepartures estimates the next departures of the configured route as
// seen at now, using the snapshot currently served by the GTFS manager.
func (app *Application) NextDepartures(now time.Time) schedule.Result {
	start := time.Now()

	var snap *schedule.Snapshot
	loc := time.UTC
	if app.GtfsManager != nil {
		snap = app.GtfsManager.Snapshot()
		loc = app.GtfsManager.Location()
	}

	instant := schedule.CivilInstantAt(now, loc)
	result := app.Estimator().Estimate(snap, app.TripFilter(), instant)

	app.Metrics.ObserveEstimate(result.Outcome.String(), time.Since(start))
	if app.Logger != nil && result.Outcome == schedule.OutcomeInsufficientData {
		app.Logger.Debug("insufficient data for estimate",
			"route_id", app.Config.Route.RouteID,
			"stop_id", app.Config.Route.StopID,
			"snapshot_loaded", snap != nil)
	}

	return result
}
