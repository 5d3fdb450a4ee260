package service

import (
	"context"
	"fmt"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
	"github.com/boropappa/china-trip-solo/backend/internal/repo"
)

// SettingsService implements business logic for the AppSettings
// singleton.
type SettingsService struct {
	store repo.SettingsStore
}

// NewSettingsService constructs a SettingsService backed by the
// provided store.
func NewSettingsService(store repo.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the current settings; the store supplies defaults when
// nothing has been saved yet.
func (s *SettingsService) Get(ctx context.Context) domain.AppSettings {
	return s.store.Load(ctx)
}

// Update merges a partial update into the current settings and persists
// the result. Unset patch fields keep their current values.
func (s *SettingsService) Update(ctx context.Context, patch domain.SettingsPatch) (domain.AppSettings, error) {
	if patch.PreferredExportFormat != nil {
		switch *patch.PreferredExportFormat {
		case domain.FormatJSON, domain.FormatCSV, domain.FormatICS:
		default:
			return domain.AppSettings{}, fmt.Errorf(
				"service.SettingsService.Update: %w: unknown export format %q",
				domain.ErrValidation, *patch.PreferredExportFormat)
		}
	}

	settings := patch.Apply(s.store.Load(ctx))
	s.store.Save(ctx, settings)
	return settings, nil
}
