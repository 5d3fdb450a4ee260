package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
	"github.com/boropappa/china-trip-solo/backend/internal/handler"
)

type mockSettingsServicer struct {
	get    func(ctx context.Context) domain.AppSettings
	update func(ctx context.Context, patch domain.SettingsPatch) (domain.AppSettings, error)
}

func (m *mockSettingsServicer) Get(ctx context.Context) domain.AppSettings {
	return m.get(ctx)
}
func (m *mockSettingsServicer) Update(ctx context.Context, patch domain.SettingsPatch) (domain.AppSettings, error) {
	return m.update(ctx, patch)
}

var _ handler.SettingsServicer = (*mockSettingsServicer)(nil)

func newSettingsHandler(settings handler.SettingsServicer) http.Handler {
	return handler.NewServer(nil, nil, settings, nil, nil).Routes()
}

func TestGetSettings_200(t *testing.T) {
	svc := &mockSettingsServicer{
		get: func(_ context.Context) domain.AppSettings {
			return domain.DefaultSettings("Asia/Shanghai")
		},
	}

	rec := doRequest(t, newSettingsHandler(svc), http.MethodGet, "/settings", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got domain.AppSettings
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Asia/Shanghai", got.Timezone)
	assert.Equal(t, domain.FormatJSON, got.PreferredExportFormat)
}

func TestUpdateSettings_200_PartialPatch(t *testing.T) {
	var received domain.SettingsPatch
	svc := &mockSettingsServicer{
		update: func(_ context.Context, patch domain.SettingsPatch) (domain.AppSettings, error) {
			received = patch
			return patch.Apply(domain.DefaultSettings("Asia/Shanghai")), nil
		},
	}

	body := jsonBody(t, map[string]any{"onboarded": true})
	rec := doRequest(t, newSettingsHandler(svc), http.MethodPatch, "/settings", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received.Onboarded)
	assert.True(t, *received.Onboarded)
	assert.Nil(t, received.Timezone, "absent fields stay nil in the patch")
}

func TestUpdateSettings_422_BadFormat(t *testing.T) {
	svc := &mockSettingsServicer{
		update: func(_ context.Context, _ domain.SettingsPatch) (domain.AppSettings, error) {
			return domain.AppSettings{}, fmt.Errorf("%w: unknown export format", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"preferredExportFormat": "xml"})
	rec := doRequest(t, newSettingsHandler(svc), http.MethodPatch, "/settings", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}
