package webui

import (
	"bytes"
	"net/http"
	"time"

	"nextdeparture.onebusaway.org/internal/logging"
	"nextdeparture.onebusaway.org/internal/schedule"
	"nextdeparture.onebusaway.org/internal/utils"
)

// boardSlots is the number of departures shown on the board.
const boardSlots = 2

const noDataLabel = "no data"

type boardSlot struct {
	Label       string
	Present     bool
	ArrivingNow bool
}

type boardData struct {
	RouteID     string
	StopID      string
	Headsign    string
	Message     string
	Slots       []boardSlot
	ServiceDate string
	UpdatedAt   string
}

// boardMessage describes outcomes that have no departure to show.
func boardMessage(outcome schedule.Outcome) string {
	switch outcome {
	case schedule.OutcomeOutOfService:
		return "No more departures today"
	case schedule.OutcomeInsufficientData:
		return "Schedule data unavailable"
	default:
		return ""
	}
}

func newBoardData(webUI *WebUI, result schedule.Result, now time.Time) boardData {
	route := webUI.Config.Route
	data := boardData{
		RouteID:     route.RouteID,
		StopID:      route.StopID,
		Headsign:    route.Headsign,
		Message:     boardMessage(result.Outcome),
		Slots:       make([]boardSlot, boardSlots),
		ServiceDate: result.Instant.Date,
	}

	for i := range data.Slots {
		departure, ok := result.Slot(i)
		if !ok {
			data.Slots[i] = boardSlot{Label: noDataLabel}
			continue
		}
		data.Slots[i] = boardSlot{
			Label:       departure.Label,
			Present:     true,
			ArrivingNow: departure.ArrivingNow,
		}
	}

	loc := time.UTC
	if webUI.GtfsManager != nil {
		loc = webUI.GtfsManager.Location()
	}
	data.UpdatedAt = now.In(loc).Format("15:04:05")

	return data
}

func (webUI *WebUI) boardHandler(w http.ResponseWriter, r *http.Request) {
	now, _, ok := utils.ParseTimeParameter(r.URL.Query().Get("time"), webUI.Now())
	if !ok {
		http.Error(w, "invalid time parameter", http.StatusBadRequest)
		return
	}

	result := webUI.NextDepartures(now)

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "board.html", newBoardData(webUI, result, now)); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render departure board", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
