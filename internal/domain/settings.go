package domain

// Export format names accepted by AppSettings.PreferredExportFormat.
// The text export exists as well but is a copy-to-clipboard format, not
// a download preference.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatICS  = "ics"
	FormatText = "text"
)

// DefaultTimezone is used when neither the trip nor the settings carry
// an explicit zone.
const DefaultTimezone = "Asia/Shanghai"

// AppSettings is the process-wide configuration singleton. It is created
// with defaults on first load and mutated via partial-update merges
// (SettingsPatch).
type AppSettings struct {
	Onboarded             bool   `json:"onboarded"`
	Show24h               bool   `json:"show24h"`
	Timezone              string `json:"timezone"`
	PreferredExportFormat string `json:"preferredExportFormat"` // json | csv | ics
	EnableOnlineFeatures  bool   `json:"enableOnlineFeatures"`
	APIKey                string `json:"apiKey,omitempty"`
}

// DefaultSettings returns the settings used before the user has saved
// anything. timezone falls back to DefaultTimezone when empty.
func DefaultSettings(timezone string) AppSettings {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	return AppSettings{
		Onboarded:             false,
		Show24h:               false,
		Timezone:              timezone,
		PreferredExportFormat: FormatJSON,
		EnableOnlineFeatures:  false,
	}
}

// SettingsPatch is a partial update for AppSettings. Nil fields are
// left unchanged by Apply.
type SettingsPatch struct {
	Onboarded             *bool   `json:"onboarded,omitempty"`
	Show24h               *bool   `json:"show24h,omitempty"`
	Timezone              *string `json:"timezone,omitempty"`
	PreferredExportFormat *string `json:"preferredExportFormat,omitempty"`
	EnableOnlineFeatures  *bool   `json:"enableOnlineFeatures,omitempty"`
	APIKey                *string `json:"apiKey,omitempty"`
}

// Apply merges the patch into s and returns the result.
func (p SettingsPatch) Apply(s AppSettings) AppSettings {
	if p.Onboarded != nil {
		s.Onboarded = *p.Onboarded
	}
	if p.Show24h != nil {
		s.Show24h = *p.Show24h
	}
	if p.Timezone != nil {
		s.Timezone = *p.Timezone
	}
	if p.PreferredExportFormat != nil {
		s.PreferredExportFormat = *p.PreferredExportFormat
	}
	if p.EnableOnlineFeatures != nil {
		s.EnableOnlineFeatures = *p.EnableOnlineFeatures
	}
	if p.APIKey != nil {
		s.APIKey = *p.APIKey
	}
	return s
}
