package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"nextdeparture.onebusaway.org/internal/app"
	"nextdeparture.onebusaway.org/internal/appconf"
	"nextdeparture.onebusaway.org/internal/gtfs"
	"nextdeparture.onebusaway.org/internal/logging"
	"nextdeparture.onebusaway.org/internal/metrics"
	"nextdeparture.onebusaway.org/internal/models"
	"nextdeparture.onebusaway.org/internal/schedule"
)

// tuesdayMorning is 2024-01-02 06:05:00 UTC, 300s before the first
// frequency departure of testSnapshot.
var tuesdayMorning = time.Date(2024, time.January, 2, 6, 5, 0, 0, time.UTC)

func testSnapshot() *schedule.Snapshot {
	return &schedule.Snapshot{
		Version:  7,
		LoadedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Timezone: "UTC",
		Rules: []schedule.CalendarRule{{
			ServiceID: "WD",
			StartDate: "20240101",
			EndDate:   "20241231",
			Days:      [7]bool{true, true, true, true, true, false, false},
		}},
		Trips: map[string]schedule.Trip{
			"T1": {ID: "T1", RouteID: "4", ServiceID: "WD", DirectionID: "0", Headsign: "Downtown"},
		},
		Frequencies: []schedule.FrequencyWindow{
			{TripID: "T1", Start: 22200, End: 86400, Headway: 300},
		},
	}
}

// createTestApi creates a RestAPI serving snap for route 4 with the clock
// fixed at now.
func createTestApi(t *testing.T, snap *schedule.Snapshot, now time.Time) *RestAPI {
	t.Helper()

	cfg := appconf.Default()
	cfg.EnvName = "test"
	cfg.Env = appconf.Test
	cfg.Route = appconf.RouteConfig{RouteID: "4"}
	cfg.RateLimit = 0

	application := &app.Application{
		Config:      cfg,
		Logger:      logging.NewStructuredLogger(io.Discard, slog.LevelWarn),
		GtfsManager: gtfs.NewMockManager(snap, time.UTC),
		Metrics:     metrics.NewCollector(time.Hour),
		Clock:       func() time.Time { return now },
	}

	api := NewRestAPI(application)
	t.Cleanup(api.Close)
	return api
}

func newTestServer(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()

	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(api.Handler(router))
	t.Cleanup(server.Close)
	return server
}

// serveApiAndRetrieveEndpoint makes a request to the endpoint and returns the
// response and the decoded envelope.
func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := newTestServer(t, api)
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

func entryOf(t *testing.T, response models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "response data should hold an entry")
	return entry
}
