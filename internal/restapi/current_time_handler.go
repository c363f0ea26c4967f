package restapi

import (
	"net/http"
	"time"

	"nextdeparture.onebusaway.org/internal/models"
)

// currentTimeHandler writes the current time as seen in the feed timezone.
func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	loc := time.UTC
	if api.GtfsManager != nil {
		loc = api.GtfsManager.Location()
	}

	entry := models.NewCurrentTimeModel(api.Now(), loc)
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
