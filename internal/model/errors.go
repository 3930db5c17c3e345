package model

import "errors"

// Validation and import errors surfaced synchronously to the user.
var (
	// ErrInsufficientFields means fewer than two of start time, end time
	// and duration were supplied.
	ErrInsufficientFields = errors.New("at least two of start time, end time and duration are required")

	// ErrInvalidInput means the supplied time fields could not be resolved
	// into a consistent activity.
	ErrInvalidInput = errors.New("invalid activity input")

	// ErrMissingField means a launch point was created with an empty icon
	// or label.
	ErrMissingField = errors.New("launch point icon and label are required")

	// ErrImport means an import document was malformed or incomplete.
	ErrImport = errors.New("invalid import document")
)
