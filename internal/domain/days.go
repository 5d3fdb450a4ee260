package domain

import (
	"fmt"
	"time"
)

// GenerateDays derives the ordered day list spanning startDate..endDate
// inclusive, one Day per calendar date, each with an empty event list.
//
// A start date after the end date is not an error — it yields an empty
// list, matching the "iterate while date <= end" contract. Unparseable
// dates are an error; callers validate before persisting.
//
// Iteration uses plain calendar-day arithmetic on date-only values, so
// DST transitions cannot shorten or lengthen the list. No timezone
// normalization is attempted; a date string means the same calendar day
// everywhere.
func GenerateDays(startDate, endDate string) ([]Day, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("domain.GenerateDays: start date: %w", err)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("domain.GenerateDays: end date: %w", err)
	}

	days := []Day{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d.Format(DateLayout), Events: []Event{}})
	}
	return days, nil
}

// RealignDays rebuilds trip.Days for the trip's current date range.
// Days whose date falls inside the new range keep their events; dates
// that left the range are dropped, and newly covered dates get empty
// event lists. Call this after changing StartDate or EndDate.
func RealignDays(trip Trip) (Trip, error) {
	days, err := GenerateDays(trip.StartDate, trip.EndDate)
	if err != nil {
		return Trip{}, err
	}

	existing := make(map[string][]Event, len(trip.Days))
	for _, d := range trip.Days {
		existing[d.Date] = d.Events
	}
	for i := range days {
		if events, ok := existing[days[i].Date]; ok && events != nil {
			days[i].Events = events
		}
	}

	trip.Days = days
	return trip, nil
}
