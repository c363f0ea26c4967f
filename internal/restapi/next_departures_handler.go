package restapi

import (
	"net/http"

	"nextdeparture.onebusaway.org/internal/models"
	"nextdeparture.onebusaway.org/internal/utils"
)

func (api *RestAPI) nextDeparturesHandler(w http.ResponseWriter, r *http.Request) {
	now, fieldErrors, ok := utils.ParseTimeParameter(r.URL.Query().Get("time"), api.Now())
	if !ok {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	result := api.NextDepartures(now)

	route := api.Config.Route
	entry := models.NewNextDeparturesEntry(route.RouteID, route.StopID, route.DirectionID, result, now)

	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
