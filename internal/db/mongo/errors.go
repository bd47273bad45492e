package db

import "errors"

var (
	// ErrNotFound is returned when a record that must exist does not.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCriteria is returned for filter, sort or page values that
	// were not rejected at the request boundary.
	ErrInvalidCriteria = errors.New("invalid criteria")
)
