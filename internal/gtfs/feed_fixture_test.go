package gtfs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testFeedFiles() map[string]string {
	return map[string]string{
		"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n" +
			"1,Test Transit,https://example.com,America/Los_Angeles\n",
		"routes.txt": "route_id,agency_id,route_short_name,route_long_name,route_type\n" +
			"4,1,4,Downtown,3\n",
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"S1,First Ave,47.6,-122.3\n" +
			"S2,Second Ave,47.61,-122.31\n",
		"calendar.txt": "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n" +
			"WD,1,1,1,1,1,0,0,20240101,20241231\n",
		"calendar_dates.txt": "service_id,date,exception_type\n" +
			"WD,20240101,2\n" +
			"WD,20240106,1\n",
		"trips.txt": "route_id,service_id,trip_id,trip_headsign,direction_id\n" +
			"4,WD,T1,Downtown,0\n" +
			"4,WD,T2,University,1\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
			"T1,06:10:00,06:10:00,S1,1\n" +
			"T1,06:20:00,06:20:00,S2,2\n" +
			"T2,25:10:00,25:10:00,S1,1\n" +
			"T2,25:20:00,25:20:00,S2,2\n",
		"frequencies.txt": "trip_id,start_time,end_time,headway_secs\n" +
			"T1,06:10:00,24:00:00,300\n",
	}
}

func buildFeedZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func writeFeedZip(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gtfs.zip")
	require.NoError(t, os.WriteFile(path, buildFeedZip(t, files), 0o644))
	return path
}
