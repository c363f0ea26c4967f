package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the JSON API, health and metrics endpoints.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/where/next-departures.json", api.limited(api.nextDeparturesHandler))
	router.Handler(http.MethodGet, "/api/where/current-time.json", api.limited(api.currentTimeHandler))
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
	router.Handler(http.MethodGet, "/metrics", api.Metrics.Handler())

	router.NotFound = http.HandlerFunc(api.sendNotFound)
}

// Handler wraps handler with the middleware shared by every endpoint:
// request logging, security headers and compression.
func (api *RestAPI) Handler(handler http.Handler) http.Handler {
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	return NewRequestLoggingMiddleware(api.Logger)(handler)
}
