package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"nextdeparture.onebusaway.org/internal/app"
	"nextdeparture.onebusaway.org/internal/restapi"
	"nextdeparture.onebusaway.org/internal/webui"
)

// routes builds the HTTP handler of the application. The returned func
// releases resources held by the handlers.
func routes(application *app.Application) (http.Handler, func()) {
	router := httprouter.New()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)

	webUI := webui.NewWebUI(application)
	webUI.SetWebUIRoutes(router)

	return api.Handler(router), api.Close
}
