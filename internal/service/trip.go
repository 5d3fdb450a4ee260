// Package service contains the business logic for the itinerary
// planner API. Services validate inputs, enforce the trip invariants,
// and orchestrate store calls. No SQL and no HTTP lives here — services
// depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/boropappa/china-trip-solo/backend/internal/codec"
	"github.com/boropappa/china-trip-solo/backend/internal/domain"
	"github.com/boropappa/china-trip-solo/backend/internal/repo"
)

// TripService implements business logic for trips and the events they
// contain. All mutations follow the same pattern: load the full trip
// list, build the complete next value in memory, then save once — so a
// failed step never leaves a partial write behind.
type TripService struct {
	store repo.TripStore
}

// NewTripService constructs a TripService backed by the provided store.
func NewTripService(store repo.TripStore) *TripService {
	return &TripService{store: store}
}

// TripPatch is a partial update for a trip's own fields. Nil fields are
// left unchanged. Days are not patched directly; they are realigned
// automatically when the date range changes, and mutated through the
// event operations otherwise.
type TripPatch struct {
	Title       *string
	Destination *string
	StartDate   *string
	EndDate     *string
	Timezone    *string
}

// List returns all trips in storage order.
func (s *TripService) List(ctx context.Context) []domain.Trip {
	return s.store.Load(ctx)
}

// Get returns a single trip by id.
func (s *TripService) Get(ctx context.Context, id string) (domain.Trip, error) {
	for _, trip := range s.store.Load(ctx) {
		if trip.ID == id {
			return trip, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("service.TripService.Get: trip %q: %w", id, domain.ErrNotFound)
}

// Create validates the trip, assigns a fresh id, generates its day list
// from the date range, and appends it to the stored list.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTripFields(trip.Title, trip.Destination, trip.StartDate, trip.EndDate); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	days, err := domain.GenerateDays(trip.StartDate, trip.EndDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: %v", domain.ErrValidation, err)
	}

	trip.ID = domain.NewID()
	trip.Days = days

	trips := s.store.Load(ctx)
	s.store.Save(ctx, append(trips, trip))
	return trip, nil
}

// Update applies a partial update to a trip. When the date range
// changes, the day list is realigned: in-range days keep their events,
// out-of-range days are dropped, new dates get empty days.
func (s *TripService) Update(ctx context.Context, id string, patch TripPatch) (domain.Trip, error) {
	trips := s.store.Load(ctx)
	idx := tripIndex(trips, id)
	if idx < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: trip %q: %w", id, domain.ErrNotFound)
	}

	trip := trips[idx]
	if patch.Title != nil {
		trip.Title = *patch.Title
	}
	if patch.Destination != nil {
		trip.Destination = *patch.Destination
	}
	if patch.StartDate != nil {
		trip.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		trip.EndDate = *patch.EndDate
	}
	if patch.Timezone != nil {
		trip.Timezone = *patch.Timezone
	}

	if err := validateTripFields(trip.Title, trip.Destination, trip.StartDate, trip.EndDate); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	if patch.StartDate != nil || patch.EndDate != nil {
		realigned, err := domain.RealignDays(trip)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w: %v", domain.ErrValidation, err)
		}
		trip = realigned
	}

	trips[idx] = trip
	s.store.Save(ctx, trips)
	return trip, nil
}

// Delete removes a trip by id.
func (s *TripService) Delete(ctx context.Context, id string) error {
	trips := s.store.Load(ctx)
	idx := tripIndex(trips, id)
	if idx < 0 {
		return fmt.Errorf("service.TripService.Delete: trip %q: %w", id, domain.ErrNotFound)
	}
	s.store.Save(ctx, append(trips[:idx], trips[idx+1:]...))
	return nil
}

// Import parses raw JSON into a normalized trip and appends it to the
// stored list. Codec errors (codec.ErrParse, codec.ErrInvalidTrip)
// propagate unchanged for the handler to map.
func (s *TripService) Import(ctx context.Context, raw []byte) (domain.Trip, error) {
	trip, err := codec.ImportTripJSON(raw)
	if err != nil {
		return domain.Trip{}, err
	}
	trips := s.store.Load(ctx)
	s.store.Save(ctx, append(trips, trip))
	return trip, nil
}

// validateTripFields enforces the create/update rules shared by Create,
// Update and the import boundary: non-blank title and destination, and
// a start date not after the end date (dates are zero-padded ISO
// strings, so string comparison is chronological).
func validateTripFields(title, destination, startDate, endDate string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if startDate > endDate {
		return fmt.Errorf("%w: end date is before start date", domain.ErrValidation)
	}
	return nil
}

// tripIndex returns the position of the trip with the given id, or -1.
func tripIndex(trips []domain.Trip, id string) int {
	for i, t := range trips {
		if t.ID == id {
			return i
		}
	}
	return -1
}
