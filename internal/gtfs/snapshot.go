package gtfs

import (
	"time"

	"github.com/jamespfennell/gtfs"
	"nextdeparture.onebusaway.org/internal/schedule"
)

// BuildSnapshot converts parsed static data into the read-only tables used
// for departure estimates.
func BuildSnapshot(staticData *gtfs.Static, version uint64, loadedAt time.Time) *schedule.Snapshot {
	snap := &schedule.Snapshot{
		Version:  version,
		LoadedAt: loadedAt,
		Trips:    make(map[string]schedule.Trip, len(staticData.Trips)),
	}
	if len(staticData.Agencies) > 0 {
		snap.Timezone = staticData.Agencies[0].Timezone
	}

	for _, service := range staticData.Services {
		snap.Rules = append(snap.Rules, schedule.CalendarRule{
			ServiceID: service.Id,
			StartDate: service.StartDate.Format(schedule.DateLayout),
			EndDate:   service.EndDate.Format(schedule.DateLayout),
			Days: [7]bool{
				service.Monday,
				service.Tuesday,
				service.Wednesday,
				service.Thursday,
				service.Friday,
				service.Saturday,
				service.Sunday,
			},
		})
		for _, d := range service.AddedDates {
			snap.Exceptions = append(snap.Exceptions, schedule.ServiceException{
				ServiceID: service.Id,
				Date:      d.Format(schedule.DateLayout),
				Kind:      schedule.ExceptionAdded,
			})
		}
		for _, d := range service.RemovedDates {
			snap.Exceptions = append(snap.Exceptions, schedule.ServiceException{
				ServiceID: service.Id,
				Date:      d.Format(schedule.DateLayout),
				Kind:      schedule.ExceptionRemoved,
			})
		}
	}

	for i := range staticData.Trips {
		trip := &staticData.Trips[i]
		if trip.Route == nil || trip.Service == nil {
			continue
		}
		snap.Trips[trip.ID] = schedule.Trip{
			ID:          trip.ID,
			RouteID:     trip.Route.Id,
			ServiceID:   trip.Service.Id,
			DirectionID: directionID(trip.DirectionId),
			Headsign:    trip.Headsign,
		}

		for _, f := range trip.Frequencies {
			snap.Frequencies = append(snap.Frequencies, schedule.FrequencyWindow{
				TripID:  trip.ID,
				Start:   int(f.StartTime / time.Second),
				End:     int(f.EndTime / time.Second),
				Headway: int(f.Headway / time.Second),
			})
		}

		for _, st := range trip.StopTimes {
			if st.Stop == nil {
				continue
			}
			t := st.DepartureTime
			if t == 0 && st.ArrivalTime > 0 {
				t = st.ArrivalTime
			}
			snap.StopTimes = append(snap.StopTimes, schedule.StopTimeEntry{
				TripID:  trip.ID,
				StopID:  st.Stop.Id,
				Seconds: int(t / time.Second),
			})
		}
	}

	return snap
}

func directionID(d gtfs.DirectionID) string {
	switch d {
	case gtfs.DirectionID_True:
		return "1"
	case gtfs.DirectionID_False:
		return "0"
	default:
		return ""
	}
}
