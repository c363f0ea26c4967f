package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentTimeHandler(t *testing.T) {
	api := createTestApi(t, testSnapshot(), tuesdayMorning)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/where/current-time.json")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, model.Version)

	entry := entryOf(t, model)
	assert.Equal(t, float64(tuesdayMorning.UnixMilli()), entry["time"])
	assert.Equal(t, "20240102", entry["serviceDate"])
	assert.Equal(t, "UTC", entry["timezone"])
}
