// Package timeline computes the hour-grid placement of a day's events.
// It is pure view math: the display window, row height and stacking
// rules live here so the presentation layer (and its tests) never
// re-derive them. All sizes are in abstract layout units; the original
// rendering treated one unit as one pixel.
package timeline

import (
	"time"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

const (
	// HourStart and HourEnd bound the display window, inclusive:
	// 06:00 through 22:00, 17 one-hour rows.
	HourStart = 6
	HourEnd   = 22

	// UnitsPerHour is the height of one hour row.
	UnitsPerHour = 80

	// MinHeight is the smallest rendered event height; shorter events
	// are stretched so they stay clickable.
	MinHeight = 30

	// DefaultHeight is used when an event has no end time.
	DefaultHeight = 60

	// MaxDisplayHeight caps the rendered height. The uncapped Height is
	// still reported because it is the logical duration.
	MaxDisplayHeight = 240

	// StackOffset is the horizontal shift applied per extra event in the
	// same hour row. Collision handling is purely visual; there is no
	// packing algorithm.
	StackOffset = 8
)

// Placement is the computed position of one timed event on the grid.
type Placement struct {
	EventID string `json:"eventId"`

	// Hour is the row the event belongs to: the integer hour of its
	// start time.
	Hour int `json:"hour"`

	// TopOffset is the vertical offset within the hour row, in units.
	TopOffset float64 `json:"topOffset"`

	// Height is the logical height: end minus start in minutes, floored
	// at MinHeight, or DefaultHeight without an end time.
	Height float64 `json:"height"`

	// DisplayHeight is Height capped at MaxDisplayHeight.
	DisplayHeight float64 `json:"displayHeight"`

	// StackIndex is the event's arrival position within its hour row
	// (storage order). LeftOffset is StackIndex * StackOffset.
	StackIndex int     `json:"stackIndex"`
	LeftOffset float64 `json:"leftOffset"`
}

// Build computes a Placement for every event that can appear on the
// grid. Events without a start time are list-view only and are skipped,
// as are events starting outside the display window.
func Build(events []domain.Event) []Placement {
	placements := make([]Placement, 0, len(events))
	perHour := make(map[int]int)

	for _, e := range events {
		hour, minute, ok := parseClock(e.StartTime)
		if !ok || hour < HourStart || hour > HourEnd {
			continue
		}

		stack := perHour[hour]
		perHour[hour]++

		placements = append(placements, Placement{
			EventID:       e.ID,
			Hour:          hour,
			TopOffset:     float64(minute) / 60 * UnitsPerHour,
			Height:        eventHeight(e),
			DisplayHeight: min(eventHeight(e), MaxDisplayHeight),
			StackIndex:    stack,
			LeftOffset:    float64(stack * StackOffset),
		})
	}
	return placements
}

// NowPosition returns the vertical position of the current-time
// indicator, measured from the top of the grid. ok is false when the
// current hour is outside the display window and no indicator should be
// drawn.
func NowPosition(now time.Time) (position float64, ok bool) {
	hour := now.Hour()
	if hour < HourStart || hour > HourEnd {
		return 0, false
	}
	return float64((hour-HourStart)*UnitsPerHour) + float64(now.Minute())/60*UnitsPerHour, true
}

// eventHeight computes the logical height of an event in units.
// One minute equals one unit because UnitsPerHour is 80 and heights are
// derived from minute spans directly, matching the source layout.
func eventHeight(e domain.Event) float64 {
	if e.EndTime == "" {
		return DefaultHeight
	}
	startHour, startMin, ok := parseClock(e.StartTime)
	if !ok {
		return DefaultHeight
	}
	endHour, endMin, ok := parseClock(e.EndTime)
	if !ok {
		return DefaultHeight
	}
	span := (endHour*60 + endMin) - (startHour*60 + startMin)
	return max(float64(span), MinHeight)
}

// parseClock parses an "HH:MM" string. ok is false for empty or
// malformed input.
func parseClock(s string) (hour, minute int, ok bool) {
	t, err := time.Parse(domain.ClockLayout, s)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}
