package schedule

import "fmt"

const (
	// DefaultDepartureCount is the number of departures reported.
	DefaultDepartureCount = 2
	// DefaultDedupeTolerance is the gap in seconds under which two candidates
	// are reported as one departure.
	DefaultDedupeTolerance = 10
	// NoDedupe as a tolerance reports every candidate, even identical ones.
	NoDedupe = -1
	// ArrivingNowLabel is the label of a departure less than a minute away.
	ArrivingNowLabel = "arriving now"
)

// Departure is a projected departure relative to the evaluation instant.
type Departure struct {
	Seconds      int // seconds since midnight of the evaluated service day
	DeltaSeconds int
	Minutes      int
	ArrivingNow  bool
	Label        string
	TripID       string
	ServiceID    string
}

// NextN picks the next n departures out of candidates, which must be sorted
// ascending. Candidates earlier than now are ignored, and a candidate within
// tolerance seconds of the one before it is treated as the same physical
// departure and dropped. Fewer than n departures are returned when the
// candidates run out.
func NextN(candidates []Candidate, now, n, tolerance int) []Departure {
	if n <= 0 {
		return nil
	}

	departures := make([]Departure, 0, n)
	prev, seen := 0, false
	for _, c := range candidates {
		if c.Seconds < now {
			continue
		}
		duplicate := seen && c.Seconds-prev <= tolerance
		prev, seen = c.Seconds, true
		if duplicate {
			continue
		}
		departures = append(departures, newDeparture(c, now))
		if len(departures) == n {
			break
		}
	}
	return departures
}

func newDeparture(c Candidate, now int) Departure {
	delta := c.Seconds - now
	if delta < 0 {
		delta = 0
	}
	d := Departure{
		Seconds:      c.Seconds,
		DeltaSeconds: delta,
		TripID:       c.TripID,
		ServiceID:    c.ServiceID,
	}
	if delta < 60 {
		d.ArrivingNow = true
		d.Label = ArrivingNowLabel
		return d
	}
	d.Minutes = (delta + 30) / 60
	d.Label = fmt.Sprintf("%d min", d.Minutes)
	return d
}
