package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the
// requested trip, day, event or location does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails
// business rule validation (e.g. missing title, end date before start
// date, unknown transport type).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
