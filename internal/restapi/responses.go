package restapi

import (
	"encoding/json"
	"net/http"

	"nextdeparture.onebusaway.org/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendStatus(w, r, http.StatusNotFound, "resource not found")
}

func (api *RestAPI) sendStatus(w http.ResponseWriter, r *http.Request, code int, text string) {
	setJSONResponseType(&w)
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(models.NewErrorResponse(code, text))
	if err != nil {
		api.logger().Error("failed to encode response", "status", code, "error", err)
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
