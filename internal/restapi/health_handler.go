package restapi

import (
	"net/http"
	"time"

	"nextdeparture.onebusaway.org/internal/models"
)

type healthStatus struct {
	Status      string `json:"status"`
	FeedVersion uint64 `json:"feedVersion,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// healthHandler reports 200 once a feed snapshot is served, 503 before.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	if api.GtfsManager == nil || api.GtfsManager.Snapshot() == nil {
		api.sendStatus(w, r, http.StatusServiceUnavailable, "no feed loaded")
		return
	}

	snap := api.GtfsManager.Snapshot()
	status := healthStatus{
		Status:      "ok",
		FeedVersion: snap.Version,
	}
	if !snap.LoadedAt.IsZero() {
		status.LastUpdated = snap.LoadedAt.UTC().Format(time.RFC3339)
	}

	api.sendResponse(w, r, models.NewOKResponse(status))
}
