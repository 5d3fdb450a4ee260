// Package codec implements the external representations of a trip:
// JSON (export and import), CSV, ICS and plain text (export only).
// Every transform is a pure, stateless function; the only failure modes
// are the two import errors below. CSV and ICS import are deliberately
// unsupported — the import surface accepts JSON and nothing else.
package codec

import "errors"

// ErrParse is returned by ImportTripJSON when the payload is not
// syntactically valid JSON or is not a JSON object.
// Handlers should map this to HTTP 400.
var ErrParse = errors.New("invalid JSON")

// ErrInvalidTrip is returned by ImportTripJSON when the payload parses
// but is missing one of the required trip fields (title, destination,
// startDate, endDate).
// Handlers should map this to HTTP 422.
var ErrInvalidTrip = errors.New("missing required trip fields")
