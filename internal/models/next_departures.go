package models

import (
	"time"

	"nextdeparture.onebusaway.org/internal/schedule"
)

// Departure is one reported departure.
type Departure struct {
	DeltaSeconds  int    `json:"deltaSeconds"`
	Minutes       int    `json:"minutes"`
	Label         string `json:"label"`
	ArrivingNow   bool   `json:"arrivingNow"`
	DepartureTime int64  `json:"departureTime"`
	TripID        string `json:"tripId"`
	ServiceID     string `json:"serviceId"`
}

// NextDeparturesEntry is the answer of the next-departures endpoint.
// Status is one of "departures", "out_of_service" or "insufficient_data".
type NextDeparturesEntry struct {
	RouteID        string      `json:"routeId"`
	StopID         string      `json:"stopId,omitempty"`
	DirectionID    string      `json:"directionId,omitempty"`
	Status         string      `json:"status"`
	Departures     []Departure `json:"departures"`
	ServiceDate    string      `json:"serviceDate"`
	ActiveServices int         `json:"activeServices"`
	FeedVersion    uint64      `json:"feedVersion"`
}

// NewNextDeparturesEntry converts an estimate evaluated at now into the
// response entry. Departure times are absolute milliseconds.
func NewNextDeparturesEntry(routeID, stopID, directionID string, result schedule.Result, now time.Time) NextDeparturesEntry {
	departures := make([]Departure, 0, len(result.Departures))
	for _, d := range result.Departures {
		departures = append(departures, Departure{
			DeltaSeconds:  d.DeltaSeconds,
			Minutes:       d.Minutes,
			Label:         d.Label,
			ArrivingNow:   d.ArrivingNow,
			DepartureTime: now.Add(time.Duration(d.DeltaSeconds) * time.Second).UnixMilli(),
			TripID:        d.TripID,
			ServiceID:     d.ServiceID,
		})
	}

	return NextDeparturesEntry{
		RouteID:        routeID,
		StopID:         stopID,
		DirectionID:    directionID,
		Status:         result.Outcome.String(),
		Departures:     departures,
		ServiceDate:    result.Instant.Date,
		ActiveServices: result.ActiveServices,
		FeedVersion:    result.FeedVersion,
	}
}
