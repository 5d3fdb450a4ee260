package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// LocationStore persists the favorite-location list as one JSON
// document, with the same degrade-to-default read/write contract as
// TripStore.
type LocationStore interface {
	Load(ctx context.Context) []domain.FavoriteLocation
	Save(ctx context.Context, locations []domain.FavoriteLocation)
}

type kvLocationStore struct {
	kv  KV
	log *slog.Logger
}

// NewLocationStore constructs a LocationStore over the provided KV.
func NewLocationStore(kv KV, log *slog.Logger) LocationStore {
	return &kvLocationStore{kv: kv, log: log}
}

func (s *kvLocationStore) Load(ctx context.Context) []domain.FavoriteLocation {
	raw, err := s.kv.Get(ctx, KeyLocations)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn("location store read failed; using empty list", "error", err)
		}
		return []domain.FavoriteLocation{}
	}

	var locations []domain.FavoriteLocation
	if err := json.Unmarshal(raw, &locations); err != nil {
		s.log.Warn("location store value corrupt; using empty list", "error", err)
		return []domain.FavoriteLocation{}
	}
	if locations == nil {
		locations = []domain.FavoriteLocation{}
	}
	return locations
}

func (s *kvLocationStore) Save(ctx context.Context, locations []domain.FavoriteLocation) {
	raw, err := json.Marshal(locations)
	if err != nil {
		s.log.Warn("location store encode failed; changes not persisted", "error", err)
		return
	}
	if err := s.kv.Set(ctx, KeyLocations, raw); err != nil {
		s.log.Warn("location store write failed; changes not persisted", "error", err)
	}
}
