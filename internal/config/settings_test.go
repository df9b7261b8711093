package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetAPIURL(); got != DefaultAPIURL {
		t.Errorf("Expected default API URL %s, got %s", DefaultAPIURL, got)
	}

	// Trailing slash is dropped
	settings.SetAPIURL("https://api.example.com/ ")
	if got := settings.GetAPIURL(); got != "https://api.example.com" {
		t.Errorf("Expected API URL https://api.example.com, got %s", got)
	}

	// Invalid values reset to default
	settings.SetAPIURL("ftp://files.example.com")
	if got := settings.GetAPIURL(); got != DefaultAPIURL {
		t.Errorf("Invalid API URL should reset to %s, got %s", DefaultAPIURL, got)
	}
}

func TestIsValidAPIURL(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"http://localhost:5000", true},
		{"https://api.example.com", true},
		{"localhost:5000", false},
		{"", false},
		{"ws://localhost:5000", false},
	}

	for _, tt := range tests {
		if got := IsValidAPIURL(tt.raw); got != tt.want {
			t.Errorf("IsValidAPIURL(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language 'ru', got %s", got)
	}

	// Unknown languages fall back to system
	settings.SetLanguage("pt")
	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected language %s, got %s", DefaultLanguage, got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
