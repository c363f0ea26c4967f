package schedule

import "time"

// CalendarRule is the weekly pattern of a service over an inclusive date range.
type CalendarRule struct {
	ServiceID string
	StartDate string // YYYYMMDD, inclusive
	EndDate   string // YYYYMMDD, inclusive
	Days      [7]bool
}

// RunsOn reports whether the rule alone makes the service active on date.
func (r CalendarRule) RunsOn(date string, weekday Weekday) bool {
	if weekday < Monday || weekday > Sunday {
		return false
	}
	return r.StartDate <= date && date <= r.EndDate && r.Days[weekday]
}

// ExceptionKind is the effect of a calendar exception.
type ExceptionKind int

const (
	ExceptionAdded ExceptionKind = iota + 1
	ExceptionRemoved
)

func (k ExceptionKind) String() string {
	switch k {
	case ExceptionAdded:
		return "added"
	case ExceptionRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// ServiceException overrides the calendar rule of a service on a single date.
type ServiceException struct {
	ServiceID string
	Date      string // YYYYMMDD
	Kind      ExceptionKind
}

// Trip is a single scheduled trip.
type Trip struct {
	ID          string
	RouteID     string
	ServiceID   string
	DirectionID string // "" when unspecified
	Headsign    string
}

// FrequencyWindow describes departures every Headway seconds from Start up to
// and including End. All values are seconds since midnight.
type FrequencyWindow struct {
	TripID  string
	Start   int
	End     int
	Headway int
}

// StopTimeEntry is one scheduled event of a trip at a stop.
type StopTimeEntry struct {
	TripID  string
	StopID  string
	Seconds int
}

// Snapshot is an immutable view of a loaded feed. It is never modified after
// being published; a refresh builds a new one.
type Snapshot struct {
	Version     uint64
	LoadedAt    time.Time
	Timezone    string
	Rules       []CalendarRule
	Exceptions  []ServiceException
	Trips       map[string]Trip
	Frequencies []FrequencyWindow
	StopTimes   []StopTimeEntry
}

// HasStop reports whether any stop-time entry references stopID.
func (s *Snapshot) HasStop(stopID string) bool {
	for _, st := range s.StopTimes {
		if st.StopID == stopID {
			return true
		}
	}
	return false
}
