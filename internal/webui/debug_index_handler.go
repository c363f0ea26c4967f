package webui

import (
	"net/http"
	"time"

	"github.com/davecgh/go-spew/spew"

	"nextdeparture.onebusaway.org/internal/schedule"
)

type debugData struct {
	Title string
	Pre   string
}

type snapshotSummary struct {
	Version     uint64
	LoadedAt    time.Time
	Timezone    string
	Rules       int
	Exceptions  int
	Trips       int
	Frequencies int
	StopTimes   int
}

func summarize(snap *schedule.Snapshot) snapshotSummary {
	return snapshotSummary{
		Version:     snap.Version,
		LoadedAt:    snap.LoadedAt,
		Timezone:    snap.Timezone,
		Rules:       len(snap.Rules),
		Exceptions:  len(snap.Exceptions),
		Trips:       len(snap.Trips),
		Frequencies: len(snap.Frequencies),
		StopTimes:   len(snap.StopTimes),
	}
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := templates.ExecuteTemplate(w, "debug_index.html", debugData{
		Title: title,
		Pre:   dumpConfig.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var snap *schedule.Snapshot
	if webUI.GtfsManager != nil {
		snap = webUI.GtfsManager.Snapshot()
	}
	if snap == nil && dataType != "estimate" {
		writeDebugData(w, "No feed loaded", map[string]string{
			"error": "The GTFS feed has not been loaded yet.",
		})
		return
	}

	var data interface{}
	var title string

	switch dataType {
	case "snapshot":
		data = summarize(snap)
		title = "Snapshot"
	case "rules":
		data = snap.Rules
		title = "Calendar Rules"
	case "exceptions":
		data = snap.Exceptions
		title = "Calendar Exceptions"
	case "trips":
		data = schedule.TripsForRoute(snap.Trips, webUI.TripFilter())
		title = "Trips of Route " + webUI.Config.Route.RouteID
	case "frequencies":
		data = snap.Frequencies
		title = "Frequency Windows"
	case "stoptimes":
		data = snap.StopTimes
		title = "Stop Times"
	case "estimate":
		data = webUI.NextDepartures(webUI.Now())
		title = "Current Estimate"
	default:
		data = map[string]string{
			"error": "Please use one of the following: snapshot, rules, exceptions, trips, frequencies, stoptimes, estimate.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
