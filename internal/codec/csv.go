package codec

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// csvHeader defines the column names written as the first row of the
// CSV export. The wording is part of the format contract.
var csvHeader = []string{
	"Date", "Start Time", "End Time", "Title", "Address",
	"Transport", "Tags", "Notes", "Duration (min)",
}

// ExportTripCSV renders one row per event across all days, in storage
// order — days as stored on the trip, events as stored on the day,
// not time-sorted. Fields containing commas, quotes or newlines are
// quoted with internal quotes doubled per RFC 4180. Tags are joined
// with ";" inside a single field. Duration is blank when unset.
func ExportTripCSV(trip domain.Trip) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck — csv.Writer over a bytes.Buffer cannot fail.
	w.Write(csvHeader)
	for _, day := range trip.Days {
		for _, e := range day.Events {
			duration := ""
			if e.Duration != nil {
				duration = strconv.Itoa(*e.Duration)
			}
			//nolint:errcheck
			w.Write([]string{
				day.Date,
				e.StartTime,
				e.EndTime,
				e.Title,
				e.Address,
				e.Transport,
				strings.Join(e.Tags, ";"),
				e.Notes,
				duration,
			})
		}
	}
	w.Flush()
	return buf.String()
}
