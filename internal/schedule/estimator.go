package schedule

// Outcome classifies the answer of an estimate.
type Outcome int

const (
	// OutcomeDepartures means at least one departure was found.
	OutcomeDepartures Outcome = iota
	// OutcomeOutOfService means the route is known but nothing runs for the
	// rest of the service day.
	OutcomeOutOfService
	// OutcomeInsufficientData means the snapshot cannot answer for the
	// selector, e.g. no feed is loaded or the route is unknown.
	OutcomeInsufficientData
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDepartures:
		return "departures"
	case OutcomeOutOfService:
		return "out_of_service"
	case OutcomeInsufficientData:
		return "insufficient_data"
	default:
		return "unknown"
	}
}

// Result is the answer for one route selector at one instant.
type Result struct {
	Outcome        Outcome
	Departures     []Departure
	Instant        CivilInstant
	ActiveServices int
	FeedVersion    uint64
}

// Slot returns the i-th departure and whether it exists.
func (r Result) Slot(i int) (Departure, bool) {
	if i < 0 || i >= len(r.Departures) {
		return Departure{}, false
	}
	return r.Departures[i], true
}

// SourceFor returns the stop-time source for stopID, or the frequency source
// when stopID is empty.
func SourceFor(stopID string) Source {
	if stopID == "" {
		return FrequencySource{}
	}
	return StopTimeSource{StopID: stopID}
}

// Estimator computes next departures from a snapshot. The zero value of
// Count and DedupeTolerance selects the defaults; a negative DedupeTolerance
// (NoDedupe) turns deduplication off. An Estimator holds no state and is safe
// for concurrent use.
type Estimator struct {
	Source          Source
	Count           int
	DedupeTolerance int
}

// Estimate returns the next departures of the trips selected by filter as
// seen at instant.
//
// Services of the previous day are evaluated as well, with the instant moved
// past 24:00:00 of that day, so that trips running after midnight on
// yesterday's calendar are reported. Their times are moved back into today's
// frame by the length of the previous day.
func (e Estimator) Estimate(snap *Snapshot, filter TripFilter, instant CivilInstant) Result {
	result := Result{Outcome: OutcomeInsufficientData, Instant: instant}
	if snap == nil {
		return result
	}
	result.FeedVersion = snap.Version

	trips := TripsForRoute(snap.Trips, filter)
	if len(trips) == 0 {
		return result
	}

	source := e.Source
	if source == nil {
		source = FrequencySource{}
	}
	if st, ok := source.(StopTimeSource); ok && !snap.HasStop(st.StopID) {
		return result
	}

	today := ActiveServices(snap.Rules, snap.Exceptions, instant.Date, instant.Weekday)
	result.ActiveServices = len(today)

	candidates := source.CandidateDepartures(snap, today, trips, instant.Seconds)

	prev := instant.PreviousDay()
	yesterday := ActiveServices(snap.Rules, snap.Exceptions, prev.Date, prev.Weekday)
	if len(yesterday) > 0 {
		shift := prev.Seconds - instant.Seconds
		for _, c := range source.CandidateDepartures(snap, yesterday, trips, prev.Seconds) {
			c.Seconds -= shift
			candidates = append(candidates, c)
		}
		sortCandidates(candidates)
	}

	result.Departures = NextN(candidates, instant.Seconds, e.count(), e.tolerance())
	if len(result.Departures) == 0 {
		result.Outcome = OutcomeOutOfService
		return result
	}
	result.Outcome = OutcomeDepartures
	return result
}

func (e Estimator) count() int {
	if e.Count > 0 {
		return e.Count
	}
	return DefaultDepartureCount
}

func (e Estimator) tolerance() int {
	if e.DedupeTolerance < 0 {
		return NoDedupe
	}
	if e.DedupeTolerance > 0 {
		return e.DedupeTolerance
	}
	return DefaultDedupeTolerance
}
