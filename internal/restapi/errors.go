package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"nextdeparture.onebusaway.org/internal/logging"
	"nextdeparture.onebusaway.org/internal/models"
)

func (api *RestAPI) logger() *slog.Logger {
	if api.Logger != nil {
		return api.Logger
	}
	return slog.Default()
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "rest_api"))

	api.sendStatus(w, r, http.StatusInternalServerError, "internal server error")
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		models.ResponseModel
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		ResponseModel: models.NewErrorResponse(http.StatusBadRequest, "invalid request parameters"),
		FieldErrors:   fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.logger().Error("failed to encode validation error response", "error", err)
	}
}
