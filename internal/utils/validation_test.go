package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid simple ID",
			id:      "agency_123",
			wantErr: false,
		},
		{
			name:    "valid complex ID",
			id:      "40_100479",
			wantErr: false,
		},
		{
			name:    "empty ID",
			id:      "",
			wantErr: true,
			errMsg:  "id cannot be empty",
		},
		{
			name:    "ID too long",
			id:      strings.Repeat("a", 101),
			wantErr: true,
			errMsg:  "id too long (max 100 characters)",
		},
		{
			name:    "ID with invalid characters",
			id:      "agency_123<script>",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
		{
			name:    "ID with SQL injection attempt",
			id:      "agency_'; DROP TABLE stops; --",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
		{
			name:    "ID with path traversal",
			id:      "../../../etc/passwd",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
		{
			name:    "valid ID with hyphens",
			id:      "agency-123_stop-456",
			wantErr: false,
		},
		{
			name:    "valid ID with dots",
			id:      "agency.123_stop.456",
			wantErr: false,
		},
		{
			name:    "valid ID with colon",
			id:      "stop:1001",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				assert.Error(t, err, "ValidateID should return error for invalid ID")
				assert.Contains(t, err.Error(), tt.errMsg, "Error message should contain expected text")
			} else {
				assert.NoError(t, err, "ValidateID should not return error for valid ID")
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid simple query",
			query:   "downtown",
			wantErr: false,
		},
		{
			name:    "valid query with spaces",
			query:   "main street station",
			wantErr: false,
		},
		{
			name:    "empty query is valid",
			query:   "",
			wantErr: false,
		},
		{
			name:    "query too long",
			query:   strings.Repeat("a", 201),
			wantErr: true,
			errMsg:  "query too long (max 200 characters)",
		},
		{
			name:    "query with special characters",
			query:   "St. Mary's Hospital & Clinic",
			wantErr: false,
		},
		{
			name:    "query with script tags",
			query:   "<script>alert('xss')</script>",
			wantErr: true,
			errMsg:  "query contains invalid characters",
		},
		{
			name:    "query with SQL injection",
			query:   "'; DROP TABLE stops; --",
			wantErr: true,
			errMsg:  "query contains invalid characters",
		},
		{
			name:    "valid query with numbers",
			query:   "Route 123",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if tt.wantErr {
				assert.Error(t, err, "ValidateQuery should return error for invalid query")
				assert.Contains(t, err.Error(), tt.errMsg, "Error message should contain expected text")
			} else {
				assert.NoError(t, err, "ValidateQuery should not return error for valid query")
			}
		})
	}
}

func TestValidateOptionalID(t *testing.T) {
	assert.NoError(t, ValidateOptionalID(""))
	assert.NoError(t, ValidateOptionalID("S1"))
	assert.Error(t, ValidateOptionalID("S1<b>"))
}
