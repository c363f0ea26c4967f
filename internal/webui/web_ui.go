package webui

import (
	"embed"
	"html/template"

	"nextdeparture.onebusaway.org/internal/app"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// WebUI serves the HTML pages.
type WebUI struct {
	*app.Application
}

// NewWebUI creates the HTML frontend for app.
func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}
