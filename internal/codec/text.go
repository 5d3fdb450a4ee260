package codec

import (
	"strings"
	"time"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// ExportTripText renders a human-readable summary of the trip, grouped
// by day. Events within a day are written in display order (timed
// first, then manual order), each with its time, then indented address,
// transport, notes and tags lines. Days with no events print an
// explicit "No events planned" line.
func ExportTripText(trip domain.Trip) string {
	lines := []string{
		trip.Title,
		"Destination: " + trip.Destination,
		trip.StartDate + " to " + trip.EndDate,
		strings.Repeat("=", 50),
		"",
	}

	for _, day := range trip.Days {
		header := day.Date
		if date, err := time.Parse(domain.DateLayout, day.Date); err == nil {
			header = date.Format("Monday, 1/2/2006")
		}
		lines = append(lines, header, strings.Repeat("-", 30))

		if len(day.Events) == 0 {
			lines = append(lines, "  No events planned")
		} else {
			for _, e := range domain.SortEvents(day.Events) {
				timeLabel := "Time TBD"
				if e.StartTime != "" {
					timeLabel = e.StartTime
					if e.EndTime != "" {
						timeLabel += " - " + e.EndTime
					}
				}
				lines = append(lines, "  "+timeLabel+": "+e.Title)
				if e.Address != "" {
					lines = append(lines, "    📍 "+e.Address)
				}
				if e.Transport != "" {
					lines = append(lines, "    🚗 "+e.Transport)
				}
				if e.Notes != "" {
					lines = append(lines, "    📝 "+e.Notes)
				}
				if len(e.Tags) > 0 {
					lines = append(lines, "    🏷️  "+strings.Join(e.Tags, ", "))
				}
				lines = append(lines, "")
			}
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
