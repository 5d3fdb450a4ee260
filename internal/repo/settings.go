package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// SettingsStore persists the AppSettings singleton. Load returns the
// defaults (built with defaultTimezone) on first use or when the stored
// value is unreadable.
type SettingsStore interface {
	Load(ctx context.Context) domain.AppSettings
	Save(ctx context.Context, settings domain.AppSettings)
}

type kvSettingsStore struct {
	kv              KV
	log             *slog.Logger
	defaultTimezone string
}

// NewSettingsStore constructs a SettingsStore over the provided KV.
// defaultTimezone seeds the timezone of first-load defaults; empty
// falls back to domain.DefaultTimezone.
func NewSettingsStore(kv KV, log *slog.Logger, defaultTimezone string) SettingsStore {
	return &kvSettingsStore{kv: kv, log: log, defaultTimezone: defaultTimezone}
}

func (s *kvSettingsStore) Load(ctx context.Context) domain.AppSettings {
	raw, err := s.kv.Get(ctx, KeySettings)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn("settings store read failed; using defaults", "error", err)
		}
		return domain.DefaultSettings(s.defaultTimezone)
	}

	var settings domain.AppSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.log.Warn("settings store value corrupt; using defaults", "error", err)
		return domain.DefaultSettings(s.defaultTimezone)
	}
	return settings
}

func (s *kvSettingsStore) Save(ctx context.Context, settings domain.AppSettings) {
	raw, err := json.Marshal(settings)
	if err != nil {
		s.log.Warn("settings store encode failed; changes not persisted", "error", err)
		return
	}
	if err := s.kv.Set(ctx, KeySettings, raw); err != nil {
		s.log.Warn("settings store write failed; changes not persisted", "error", err)
	}
}
