package codec

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// icsProductID identifies this application in exported calendars.
const icsProductID = "-//China Itinerary Planner//EN"

// icsUIDSuffix makes event UIDs globally unique while staying
// deterministic: the same event always exports the same UID.
const icsUIDSuffix = "@itinerary-planner.local"

// ExportTripICS renders the trip as a VCALENDAR with one VEVENT per
// event that has a start time; unscheduled events are silently skipped.
//
// Event times are interpreted in the trip's timezone (DefaultTimezone
// when the trip has none, UTC when the zone name is unknown) and
// emitted in UTC "20060102T150405Z" form. DTEND comes from the event's
// end time when present, otherwise start plus duration (default 60
// minutes). now stamps CREATED and LAST-MODIFIED; pass a fixed value
// for reproducible output. Lines are CRLF-terminated per RFC 5545.
func ExportTripICS(trip domain.Trip, now time.Time) string {
	timezone := trip.Timezone
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	cal := ics.NewCalendar()
	cal.SetVersion("2.0")
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName(trip.Title)
	cal.SetXWRTimezone(timezone)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	for _, day := range trip.Days {
		for _, e := range day.Events {
			if e.StartTime == "" {
				continue
			}
			start, err := time.ParseInLocation(
				domain.DateLayout+"T"+domain.ClockLayout, day.Date+"T"+e.StartTime, loc)
			if err != nil {
				continue // malformed time; nothing sensible to emit
			}

			var end time.Time
			if e.EndTime != "" {
				if t, err := time.ParseInLocation(
					domain.DateLayout+"T"+domain.ClockLayout, day.Date+"T"+e.EndTime, loc); err == nil {
					end = t
				}
			}
			if end.IsZero() {
				minutes := domain.DefaultEventDuration
				if e.Duration != nil {
					minutes = *e.Duration
				}
				end = start.Add(time.Duration(minutes) * time.Minute)
			}

			event := cal.AddEvent(e.ID + icsUIDSuffix)
			event.SetStartAt(start.UTC())
			event.SetEndAt(end.UTC())
			event.SetSummary(e.Title)
			event.SetLocation(e.Address)
			event.SetDescription(icsDescription(e))
			event.SetCreatedTime(now.UTC())
			event.SetModifiedAt(now.UTC())
			event.SetStatus(ics.ObjectStatusConfirmed)
			event.SetTimeTransparency(ics.TransparencyOpaque)
		}
	}

	return cal.Serialize()
}

// icsDescription folds notes, transport and tags into the DESCRIPTION
// value. The library handles RFC 5545 text escaping.
func icsDescription(e domain.Event) string {
	return fmt.Sprintf("%s\n\nTransport: %s\nTags: %s",
		e.Notes, e.Transport, strings.Join(e.Tags, ", "))
}
