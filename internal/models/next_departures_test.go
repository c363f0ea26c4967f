package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextdeparture.onebusaway.org/internal/schedule"
)

func TestNewNextDeparturesEntry(t *testing.T) {
	now := time.Date(2024, time.January, 2, 6, 5, 0, 0, time.UTC)
	result := schedule.Result{
		Outcome: schedule.OutcomeDepartures,
		Departures: []schedule.Departure{
			{Seconds: 22200, DeltaSeconds: 300, Minutes: 5, Label: "5 min", TripID: "T1", ServiceID: "WD"},
			{Seconds: 21930, DeltaSeconds: 30, ArrivingNow: true, Label: schedule.ArrivingNowLabel, TripID: "T2", ServiceID: "WD"},
		},
		Instant:        schedule.CivilInstant{Date: "20240102", Weekday: schedule.Tuesday, Seconds: 21900},
		ActiveServices: 1,
		FeedVersion:    3,
	}

	entry := NewNextDeparturesEntry("4", "S1", "0", result, now)

	assert.Equal(t, "4", entry.RouteID)
	assert.Equal(t, "S1", entry.StopID)
	assert.Equal(t, "departures", entry.Status)
	assert.Equal(t, "20240102", entry.ServiceDate)
	assert.Equal(t, 1, entry.ActiveServices)
	assert.Equal(t, uint64(3), entry.FeedVersion)
	require.Len(t, entry.Departures, 2)
	assert.Equal(t, now.Add(5*time.Minute).UnixMilli(), entry.Departures[0].DepartureTime)
	assert.Equal(t, "5 min", entry.Departures[0].Label)
	assert.True(t, entry.Departures[1].ArrivingNow)
}

func TestNewNextDeparturesEntryWithoutDepartures(t *testing.T) {
	result := schedule.Result{Outcome: schedule.OutcomeOutOfService}

	entry := NewNextDeparturesEntry("4", "", "", result, time.Now())

	assert.Equal(t, "out_of_service", entry.Status)
	assert.NotNil(t, entry.Departures)

	body, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"departures":[]`)
	assert.NotContains(t, string(body), `"stopId"`)
}
