package utils

import (
	"errors"
	"regexp"
)

var (
	// Alphanumeric, underscore, hyphen, dot and colon, common in transit IDs
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.:-]+$`)

	// Detect potentially dangerous characters
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateOptionalID is ValidateID for identifiers that may be left empty.
func ValidateOptionalID(id string) error {
	if id == "" {
		return nil
	}
	return ValidateID(id)
}

// ValidateQuery validates free text such as a headsign filter
func ValidateQuery(query string) error {
	if query == "" {
		return nil
	}

	if len(query) > 200 {
		return errors.New("query too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(query) {
		return errors.New("query contains invalid characters")
	}

	return nil
}
