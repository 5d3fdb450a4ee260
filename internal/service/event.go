package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// AddEvent validates and appends an event to the given day of the given
// trip. The event gets a fresh id and an OrderIndex equal to its
// position at the end of the day's list.
func (s *TripService) AddEvent(ctx context.Context, tripID, date string, event domain.Event) (domain.Event, error) {
	if err := validateEvent(event); err != nil {
		return domain.Event{}, fmt.Errorf("service.TripService.AddEvent: %w", err)
	}

	trips := s.store.Load(ctx)
	trip, day, err := findDay(trips, tripID, date)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.TripService.AddEvent: %w", err)
	}

	event.ID = domain.NewID()
	event.OrderIndex = len(trips[trip].Days[day].Events)
	if event.Tags == nil {
		event.Tags = []string{}
	}

	trips[trip].Days[day].Events = append(trips[trip].Days[day].Events, event)
	s.store.Save(ctx, trips)
	return event, nil
}

// UpdateEvent replaces the mutable fields of an event. The id and
// OrderIndex are preserved; everything else comes from the supplied
// value, matching the edit form's whole-event submit.
func (s *TripService) UpdateEvent(ctx context.Context, tripID, date, eventID string, event domain.Event) (domain.Event, error) {
	if err := validateEvent(event); err != nil {
		return domain.Event{}, fmt.Errorf("service.TripService.UpdateEvent: %w", err)
	}

	trips := s.store.Load(ctx)
	trip, day, err := findDay(trips, tripID, date)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.TripService.UpdateEvent: %w", err)
	}

	events := trips[trip].Days[day].Events
	for i, existing := range events {
		if existing.ID != eventID {
			continue
		}
		event.ID = existing.ID
		event.OrderIndex = existing.OrderIndex
		if event.Tags == nil {
			event.Tags = []string{}
		}
		events[i] = event
		s.store.Save(ctx, trips)
		return event, nil
	}
	return domain.Event{}, fmt.Errorf("service.TripService.UpdateEvent: event %q: %w", eventID, domain.ErrNotFound)
}

// DeleteEvent removes an event from its day. Remaining events keep
// their OrderIndex values; ordering among untimed events stays relative.
func (s *TripService) DeleteEvent(ctx context.Context, tripID, date, eventID string) error {
	trips := s.store.Load(ctx)
	trip, day, err := findDay(trips, tripID, date)
	if err != nil {
		return fmt.Errorf("service.TripService.DeleteEvent: %w", err)
	}

	events := trips[trip].Days[day].Events
	for i, existing := range events {
		if existing.ID == eventID {
			trips[trip].Days[day].Events = append(events[:i], events[i+1:]...)
			s.store.Save(ctx, trips)
			return nil
		}
	}
	return fmt.Errorf("service.TripService.DeleteEvent: event %q: %w", eventID, domain.ErrNotFound)
}

// ReorderEvents moves one event onto another's position within a day
// and rewrites every OrderIndex, returning the day's new event list.
func (s *TripService) ReorderEvents(ctx context.Context, tripID, date, fromID, toID string) ([]domain.Event, error) {
	trips := s.store.Load(ctx)
	trip, day, err := findDay(trips, tripID, date)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ReorderEvents: %w", err)
	}

	reordered, err := domain.MoveEvent(trips[trip].Days[day].Events, fromID, toID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ReorderEvents: %w", err)
	}

	trips[trip].Days[day].Events = reordered
	s.store.Save(ctx, trips)
	return reordered, nil
}

// validateEvent enforces the event boundary rules: non-blank title and
// a transport from the fixed vocabulary (or empty).
func validateEvent(event domain.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !domain.ValidTransport(event.Transport) {
		return fmt.Errorf("%w: unknown transport %q", domain.ErrValidation, event.Transport)
	}
	return nil
}

// findDay locates a trip and one of its days, returning their indices.
func findDay(trips []domain.Trip, tripID, date string) (tripIdx, dayIdx int, err error) {
	tripIdx = tripIndex(trips, tripID)
	if tripIdx < 0 {
		return 0, 0, fmt.Errorf("trip %q: %w", tripID, domain.ErrNotFound)
	}
	for i, d := range trips[tripIdx].Days {
		if d.Date == date {
			return tripIdx, i, nil
		}
	}
	return 0, 0, fmt.Errorf("day %q: %w", date, domain.ErrNotFound)
}
