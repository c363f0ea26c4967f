package utils

import (
	"strconv"
	"time"
)

// ParseTimeParameter parses the optional "time" query parameter.
// It accepts epoch milliseconds or an RFC 3339 timestamp. An empty parameter
// yields now. It returns the instant, any field errors encountered, and a
// boolean indicating if the parsing was successful.
func ParseTimeParameter(timeParam string, now time.Time) (time.Time, map[string][]string, bool) {
	if timeParam == "" {
		return now, nil, true
	}

	if epochMillis, err := strconv.ParseInt(timeParam, 10, 64); err == nil {
		if epochMillis < 0 {
			return time.Time{}, invalidTimeField(), false
		}
		return time.UnixMilli(epochMillis), nil, true
	}

	if parsed, err := time.Parse(time.RFC3339, timeParam); err == nil {
		return parsed, nil, true
	}

	return time.Time{}, invalidTimeField(), false
}

func invalidTimeField() map[string][]string {
	return map[string][]string{
		"time": {"Invalid field value for field \"time\"."},
	}
}
