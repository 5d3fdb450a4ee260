package service

import (
	"context"
	"log/slog"

	"github.com/boropappa/china-trip-solo/backend/internal/repo"
)

// DataService implements the clear-all-data operation.
type DataService struct {
	kv  repo.KV
	log *slog.Logger
}

// NewDataService constructs a DataService over the raw KV.
func NewDataService(kv repo.KV, log *slog.Logger) *DataService {
	return &DataService{kv: kv, log: log}
}

// ClearAll removes the trips, locations and settings documents.
// Storage failures are logged, not surfaced: a retry simply clears
// whatever remains.
func (s *DataService) ClearAll(ctx context.Context) {
	if err := repo.ClearAll(ctx, s.kv); err != nil {
		s.log.Warn("clear all data incomplete", "error", err)
	}
}
