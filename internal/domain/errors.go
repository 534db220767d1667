package domain

import "errors"

// ErrNotFound is returned by repo and service functions when a referenced
// client, trip, or registration does not exist, or when a trip no longer
// accepts registrations.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing first name, malformed pesel).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a client is already registered for a trip.
// Handlers should map this to HTTP 400.
var ErrConflict = errors.New("conflict")

// ErrCreationFailed is returned when an insert did not yield the inserted row.
// It should be unreachable under normal store behaviour.
// Handlers should map this to HTTP 500.
var ErrCreationFailed = errors.New("creation failed")
