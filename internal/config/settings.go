package config

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIURL   = "api_url"
	KeyLanguage = "app_language"
)

// Default values
const (
	DefaultAPIURL   = "http://localhost:" + DefaultPort
	DefaultLanguage = "system"
)

// Settings manages desktop client configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIURL returns the base URL of the ytweb API server
func (s *Settings) GetAPIURL() string {
	raw := s.app.Preferences().String(KeyAPIURL)
	if raw == "" {
		s.SetAPIURL(DefaultAPIURL)
		return DefaultAPIURL
	}
	return raw
}

// SetAPIURL stores the API base URL. Values that are not absolute http(s)
// URLs reset the setting to the default.
func (s *Settings) SetAPIURL(raw string) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if !IsValidAPIURL(raw) {
		raw = DefaultAPIURL
	}
	s.app.Preferences().SetString(KeyAPIURL, raw)
}

// IsValidAPIURL reports whether raw can be used as an API base URL
func IsValidAPIURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
