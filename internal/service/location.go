package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
	"github.com/boropappa/china-trip-solo/backend/internal/repo"
)

// LocationService implements business logic for the favorite-location
// address book. Locations have their own lifecycle, independent of any
// trip.
type LocationService struct {
	store repo.LocationStore
}

// NewLocationService constructs a LocationService backed by the
// provided store.
func NewLocationService(store repo.LocationStore) *LocationService {
	return &LocationService{store: store}
}

// List returns all favorite locations in storage order.
func (s *LocationService) List(ctx context.Context) []domain.FavoriteLocation {
	return s.store.Load(ctx)
}

// Create validates and appends a location, assigning a fresh id.
func (s *LocationService) Create(ctx context.Context, location domain.FavoriteLocation) (domain.FavoriteLocation, error) {
	if err := validateLocation(location); err != nil {
		return domain.FavoriteLocation{}, fmt.Errorf("service.LocationService.Create: %w", err)
	}

	location.ID = domain.NewID()
	locations := s.store.Load(ctx)
	s.store.Save(ctx, append(locations, location))
	return location, nil
}

// Update replaces the mutable fields of a location; the id is kept.
func (s *LocationService) Update(ctx context.Context, id string, location domain.FavoriteLocation) (domain.FavoriteLocation, error) {
	if err := validateLocation(location); err != nil {
		return domain.FavoriteLocation{}, fmt.Errorf("service.LocationService.Update: %w", err)
	}

	locations := s.store.Load(ctx)
	for i, existing := range locations {
		if existing.ID != id {
			continue
		}
		location.ID = existing.ID
		locations[i] = location
		s.store.Save(ctx, locations)
		return location, nil
	}
	return domain.FavoriteLocation{}, fmt.Errorf("service.LocationService.Update: location %q: %w", id, domain.ErrNotFound)
}

// Delete removes a location by id.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	locations := s.store.Load(ctx)
	for i, existing := range locations {
		if existing.ID == id {
			s.store.Save(ctx, append(locations[:i], locations[i+1:]...))
			return nil
		}
	}
	return fmt.Errorf("service.LocationService.Delete: location %q: %w", id, domain.ErrNotFound)
}

func validateLocation(location domain.FavoriteLocation) error {
	if strings.TrimSpace(location.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(location.Address) == "" {
		return fmt.Errorf("%w: address is required", domain.ErrValidation)
	}
	return nil
}
