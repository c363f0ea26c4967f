package schedule

import "sort"

// CandidatesPerWindow is the number of departures generated per frequency
// window. The projector never reports more than two departures.
const CandidatesPerWindow = 2

// Candidate is a departure time attributed to the trip and service that
// produced it.
type Candidate struct {
	Seconds   int
	TripID    string
	ServiceID string
}

// Source produces the candidate departures of the selected trips, in
// ascending order, for one service day.
type Source interface {
	CandidateDepartures(snap *Snapshot, active ServiceSet, trips TripSet, now int) []Candidate
}

// FrequencySource generates departures from repeating frequency windows.
type FrequencySource struct{}

// CandidateDepartures implements Source.
func (FrequencySource) CandidateDepartures(snap *Snapshot, active ServiceSet, trips TripSet, now int) []Candidate {
	var candidates []Candidate
	for _, w := range snap.Frequencies {
		serviceID, ok := owningService(snap, active, trips, w.TripID)
		if !ok {
			continue
		}
		for _, s := range windowDepartures(w, now, CandidatesPerWindow) {
			candidates = append(candidates, Candidate{Seconds: s, TripID: w.TripID, ServiceID: serviceID})
		}
	}
	sortCandidates(candidates)
	return candidates
}

// windowDepartures returns up to limit departures of w at or after now.
func windowDepartures(w FrequencyWindow, now, limit int) []int {
	if w.Headway <= 0 || w.Start > w.End || now > w.End {
		return nil
	}

	next := w.Start
	if now > w.Start {
		steps := (now - w.Start + w.Headway - 1) / w.Headway
		next = w.Start + steps*w.Headway
	}

	var out []int
	for next <= w.End && len(out) < limit {
		out = append(out, next)
		next += w.Headway
	}
	return out
}

// StopTimeSource reads literal departures at one stop.
type StopTimeSource struct {
	StopID string
}

// CandidateDepartures implements Source. Entries before now are skipped.
func (s StopTimeSource) CandidateDepartures(snap *Snapshot, active ServiceSet, trips TripSet, now int) []Candidate {
	var candidates []Candidate
	for _, st := range snap.StopTimes {
		if st.StopID != s.StopID {
			continue
		}
		serviceID, ok := owningService(snap, active, trips, st.TripID)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{Seconds: st.Seconds, TripID: st.TripID, ServiceID: serviceID})
	}
	sortCandidates(candidates)

	start := sort.Search(len(candidates), func(i int) bool {
		return candidates[i].Seconds >= now
	})
	return candidates[start:]
}

func owningService(snap *Snapshot, active ServiceSet, trips TripSet, tripID string) (string, bool) {
	if !trips.Contains(tripID) {
		return "", false
	}
	trip, ok := snap.Trips[tripID]
	if !ok || !active.Contains(trip.ServiceID) {
		return "", false
	}
	return trip.ServiceID, true
}

func sortCandidates(c []Candidate) {
	sort.Slice(c, func(i, j int) bool {
		if c[i].Seconds != c[j].Seconds {
			return c[i].Seconds < c[j].Seconds
		}
		return c[i].TripID < c[j].TripID
	})
}
