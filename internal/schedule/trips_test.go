package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripsForRoute(t *testing.T) {
	trips := map[string]Trip{
		"T1": {ID: "T1", RouteID: "4", ServiceID: "WD", DirectionID: "0", Headsign: "Downtown"},
		"T2": {ID: "T2", RouteID: "4", ServiceID: "WD", DirectionID: "1", Headsign: "University District"},
		"T3": {ID: "T3", RouteID: "4", ServiceID: "WE", DirectionID: "0", Headsign: "Downtown Express"},
		"T4": {ID: "T4", RouteID: "7", ServiceID: "WD", DirectionID: "0", Headsign: "Downtown"},
	}

	tests := []struct {
		name   string
		filter TripFilter
		want   []string
	}{
		{"route only", TripFilter{RouteID: "4"}, []string{"T1", "T2", "T3"}},
		{"route and direction", TripFilter{RouteID: "4", DirectionID: "0"}, []string{"T1", "T3"}},
		{"headsign substring is case insensitive", TripFilter{RouteID: "4", HeadsignContains: "express"}, []string{"T3"}},
		{"all predicates", TripFilter{RouteID: "4", DirectionID: "1", HeadsignContains: "univ"}, []string{"T2"}},
		{"unknown route", TripFilter{RouteID: "99"}, []string{}},
		{"conflicting predicates", TripFilter{RouteID: "7", DirectionID: "1"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TripsForRoute(trips, tt.filter)
			ids := make([]string, 0, len(got))
			for id := range got {
				ids = append(ids, id)
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}
