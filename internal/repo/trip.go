package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// TripStore persists the trip list as one JSON document.
//
// Load never fails: a missing key or unreadable/corrupt value degrades
// to an empty list with a logged warning. Save likewise logs and
// swallows failures — persistence problems must not break a flow the
// user already completed in memory. Services are the only writers and
// there is a single logical actor, so read-modify-write over Load/Save
// needs no locking.
type TripStore interface {
	Load(ctx context.Context) []domain.Trip
	Save(ctx context.Context, trips []domain.Trip)
}

// kvTripStore is the KV-backed implementation of TripStore.
type kvTripStore struct {
	kv  KV
	log *slog.Logger
}

// NewTripStore constructs a TripStore over the provided KV.
func NewTripStore(kv KV, log *slog.Logger) TripStore {
	return &kvTripStore{kv: kv, log: log}
}

func (s *kvTripStore) Load(ctx context.Context) []domain.Trip {
	raw, err := s.kv.Get(ctx, KeyTrips)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn("trip store read failed; using empty list", "error", err)
		}
		return []domain.Trip{}
	}

	var trips []domain.Trip
	if err := json.Unmarshal(raw, &trips); err != nil {
		s.log.Warn("trip store value corrupt; using empty list", "error", err)
		return []domain.Trip{}
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips
}

func (s *kvTripStore) Save(ctx context.Context, trips []domain.Trip) {
	raw, err := json.Marshal(trips)
	if err != nil {
		s.log.Warn("trip store encode failed; changes not persisted", "error", err)
		return
	}
	if err := s.kv.Set(ctx, KeyTrips, raw); err != nil {
		s.log.Warn("trip store write failed; changes not persisted", "error", err)
	}
}
