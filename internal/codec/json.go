package codec

import (
	"encoding/json"
	"fmt"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// ExportTripJSON serializes the trip aggregate verbatim, pretty-printed
// with two-space indentation. The output is the canonical interchange
// form: ImportTripJSON accepts it unchanged.
func ExportTripJSON(trip domain.Trip) ([]byte, error) {
	out, err := json.MarshalIndent(trip, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("codec.ExportTripJSON: %w", err)
	}
	return out, nil
}

// importTrip mirrors domain.Trip with the looseness the import contract
// requires: optional fields are pointers or raw messages so "absent" is
// distinguishable from "zero", and unknown fields are silently dropped
// by the decoder.
type importTrip struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Destination string      `json:"destination"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Timezone    string      `json:"timezone"`
	Days        []importDay `json:"days"`
}

type importDay struct {
	Date   string        `json:"date"`
	Events []importEvent `json:"events"`
}

type importEvent struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
	Transport string `json:"transport"`
	// Tags stays raw so a non-array value degrades to an empty list
	// instead of failing the whole import.
	Tags       json.RawMessage `json:"tags"`
	OrderIndex *int            `json:"orderIndex"`
	Duration   *int            `json:"duration"`
}

// ImportTripJSON parses and normalizes a trip from raw JSON text.
//
// Failure modes:
//   - ErrParse when the input is not valid JSON or not an object;
//   - ErrInvalidTrip when title, destination, startDate or endDate is
//     missing or empty.
//
// Normalization: a missing trip or event id gets a fresh one; a missing
// event title becomes "Untitled Event"; address, notes and transport
// default to empty strings; tags default to an empty list unless the
// field is a JSON array of strings; a missing orderIndex becomes the
// event's position in its day; duration stays unset when absent.
// Ids present in the input are preserved, so export→import round-trips.
func ImportTripJSON(data []byte) (domain.Trip, error) {
	var raw importTrip
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Trip{}, fmt.Errorf("codec.ImportTripJSON: %w: %v", ErrParse, err)
	}

	if raw.Title == "" || raw.Destination == "" || raw.StartDate == "" || raw.EndDate == "" {
		return domain.Trip{}, fmt.Errorf("codec.ImportTripJSON: %w", ErrInvalidTrip)
	}

	trip := domain.Trip{
		ID:          raw.ID,
		Title:       raw.Title,
		Destination: raw.Destination,
		StartDate:   raw.StartDate,
		EndDate:     raw.EndDate,
		Timezone:    raw.Timezone,
		Days:        make([]domain.Day, 0, len(raw.Days)),
	}
	if trip.ID == "" {
		trip.ID = domain.NewID()
	}

	for _, d := range raw.Days {
		day := domain.Day{Date: d.Date, Events: make([]domain.Event, 0, len(d.Events))}
		for i, e := range d.Events {
			event := domain.Event{
				ID:        e.ID,
				Title:     e.Title,
				StartTime: e.StartTime,
				EndTime:   e.EndTime,
				Address:   e.Address,
				Notes:     e.Notes,
				Transport: e.Transport,
				Tags:      decodeTags(e.Tags),
				Duration:  e.Duration,
			}
			if event.ID == "" {
				event.ID = domain.NewID()
			}
			if event.Title == "" {
				event.Title = "Untitled Event"
			}
			if e.OrderIndex != nil {
				event.OrderIndex = *e.OrderIndex
			} else {
				event.OrderIndex = i
			}
			day.Events = append(day.Events, event)
		}
		trip.Days = append(trip.Days, day)
	}

	return trip, nil
}

// decodeTags turns the raw tags value into a string slice, degrading to
// an empty slice for absent, null or non-array-of-strings values.
func decodeTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}
