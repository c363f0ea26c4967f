package models

import (
	"net/http"
	"time"
)

// ResponseVersion is the version reported in every response envelope.
const ResponseVersion = 2

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// EntryData wraps a single entry in the response data.
type EntryData struct {
	Entry interface{} `json:"entry"`
}

// ResponseCurrentTime returns the current time in milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

// NewOKResponse wraps data in a 200 OK envelope.
func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     ResponseVersion,
	}
}

// NewEntryResponse wraps a single entry in a 200 OK envelope.
func NewEntryResponse(entry interface{}) ResponseModel {
	return NewOKResponse(EntryData{Entry: entry})
}

// NewErrorResponse builds an envelope without data.
func NewErrorResponse(code int, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Text:        text,
		Version:     ResponseVersion,
	}
}
