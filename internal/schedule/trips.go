package schedule

import "strings"

// TripSet is a set of trip identifiers.
type TripSet map[string]struct{}

// Contains reports whether id is in the set.
func (s TripSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// TripFilter selects the trips of one route. Empty optional fields match
// every trip.
type TripFilter struct {
	RouteID          string
	DirectionID      string
	HeadsignContains string
}

// TripsForRoute returns the ids of the trips matching every predicate of
// filter. The result may be empty.
func TripsForRoute(trips map[string]Trip, filter TripFilter) TripSet {
	headsign := strings.ToLower(filter.HeadsignContains)
	result := make(TripSet)
	for id, trip := range trips {
		if trip.RouteID != filter.RouteID {
			continue
		}
		if filter.DirectionID != "" && trip.DirectionID != filter.DirectionID {
			continue
		}
		if headsign != "" && !strings.Contains(strings.ToLower(trip.Headsign), headsign) {
			continue
		}
		result[id] = struct{}{}
	}
	return result
}
