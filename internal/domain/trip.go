// Package domain contains the core data types for the itinerary planner.
// This package holds the aggregate model plus the pure functions that
// operate on it (day generation, event ordering, reordering). It is
// imported by every other internal package (repo, service, handler, codec).
package domain

import "github.com/google/uuid"

// DateLayout is the wire and storage format for calendar dates.
// Dates stay strings throughout the model: lexical comparison of
// "2006-01-02" strings matches chronological order, and the JSON wire
// format round-trips without timezone surprises.
const DateLayout = "2006-01-02"

// ClockLayout is the format for event times of day ("HH:MM", 24-hour).
// Zero-padded 24-hour strings compare correctly with plain string <.
const ClockLayout = "15:04"

// Trip is the top-level aggregate. Days and their events have no
// existence outside the trip that owns them.
//
// Invariant: Days spans exactly StartDate..EndDate inclusive, one entry
// per calendar date, ascending, no gaps or duplicates. GenerateDays and
// RealignDays are the only producers of the day list.
type Trip struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"` // "2006-01-02"
	EndDate     string `json:"endDate"`   // "2006-01-02"
	Timezone    string `json:"timezone,omitempty"`
	Days        []Day  `json:"days"`
}

// Day is one calendar day of a trip. Events keep their storage order
// here; display order is derived with SortEvents.
type Day struct {
	Date   string  `json:"date"` // "2006-01-02"
	Events []Event `json:"events"`
}

// Event is a single itinerary entry within a day.
// StartTime and EndTime are "HH:MM" strings; empty means unscheduled.
// OrderIndex defines the manual order among events without a start time
// and is rewritten to the list position on every reorder.
type Event struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	StartTime  string   `json:"startTime,omitempty"`
	EndTime    string   `json:"endTime,omitempty"`
	Address    string   `json:"address"`
	Notes      string   `json:"notes"`
	Transport  string   `json:"transport"`
	Tags       []string `json:"tags"`
	OrderIndex int      `json:"orderIndex"`
	Duration   *int     `json:"duration,omitempty"` // minutes
}

// DefaultEventDuration is assumed, in minutes, when an event needs a
// derived end time but carries neither EndTime nor Duration.
const DefaultEventDuration = 60

// TransportTypes is the fixed vocabulary for Event.Transport.
// The empty string ("no transport") is also valid.
var TransportTypes = []string{
	"walk", "taxi", "subway", "bus", "train", "flight", "car", "bike",
}

// EventTags is the fixed vocabulary for Event.Tags. The model does not
// prevent duplicates; de-duplication is a concern of whoever builds the
// tag list (the original UI toggled tags on and off).
var EventTags = []string{
	"sightseeing", "food", "shopping", "culture", "nature", "business", "rest", "transport",
}

// ValidTransport reports whether t is empty or one of TransportTypes.
func ValidTransport(t string) bool {
	if t == "" {
		return true
	}
	for _, known := range TransportTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NewID returns a fresh opaque identifier for any entity.
func NewID() string {
	return uuid.NewString()
}
