package models

import "time"

// CurrentTimeModel Current time specific model
type CurrentTimeModel struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
	ServiceDate  string `json:"serviceDate"`
	Timezone     string `json:"timezone"`
}

// NewCurrentTimeModel describes t in the feed timezone loc.
func NewCurrentTimeModel(t time.Time, loc *time.Location) CurrentTimeModel {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return CurrentTimeModel{
		ReadableTime: local.Format(time.RFC3339),
		Time:         t.UnixMilli(),
		ServiceDate:  local.Format("20060102"),
		Timezone:     loc.String(),
	}
}
