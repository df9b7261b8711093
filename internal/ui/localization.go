package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySubtitle          = "subtitle"
	KeyEnterURL          = "enter_url"
	KeySubmit            = "submit"
	KeyLoading           = "loading"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAPIURL            = "api_url"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyChooseQuality     = "choose_quality"
	KeyNoAudio           = "no_audio"
	KeyDownloading       = "downloading"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyInvalidAPIURL     = "invalid_api_url"
	KeyErrorGeneric      = "error_generic"
	KeyDownloadError     = "download_error"
	KeyServerUnavailable = "server_unavailable"
	KeyCheckConnection   = "check_connection"
	KeyServerOK          = "server_ok"
	KeyNoFormats         = "no_formats"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// systemLanguage maps the OS locale onto a supported language
func systemLanguage() string {
	if strings.HasPrefix(strings.ToLower(string(lang.SystemLocale())), "ru") {
		return "ru"
	}
	return "en"
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YouTube Downloader",
		KeySubtitle:          "Download YouTube videos in any quality",
		KeyEnterURL:          "Paste a YouTube video link...",
		KeySubmit:            "Get video",
		KeyLoading:           "Loading...",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAPIURL:            "API server URL",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyChooseQuality:     "Choose a quality to download:",
		KeyNoAudio:           "no audio",
		KeyDownloading:       "Download started in your browser",
		KeyPleaseEnterURL:    "Please enter a URL",
		KeyInvalidAPIURL:     "API server URL must start with http:// or https://",
		KeyErrorGeneric:      "An error occurred",
		KeyDownloadError:     "Download failed",
		KeyServerUnavailable: "API server is unavailable",
		KeyCheckConnection:   "Check connection",
		KeyServerOK:          "API server is running",
		KeyNoFormats:         "No downloadable formats",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YouTube Загрузчик",
		KeySubtitle:          "Скачивайте видео с YouTube в любом качестве",
		KeyEnterURL:          "Вставьте ссылку на YouTube видео...",
		KeySubmit:            "Получить видео",
		KeyLoading:           "Загрузка...",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyAPIURL:            "Адрес API сервера",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyChooseQuality:     "Выберите качество для скачивания:",
		KeyNoAudio:           "без звука",
		KeyDownloading:       "Загрузка начата в браузере",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL",
		KeyInvalidAPIURL:     "Адрес API должен начинаться с http:// или https://",
		KeyErrorGeneric:      "Произошла ошибка",
		KeyDownloadError:     "Ошибка при скачивании",
		KeyServerUnavailable: "API сервер недоступен",
		KeyCheckConnection:   "Проверить соединение",
		KeyServerOK:          "API сервер работает",
		KeyNoFormats:         "Нет доступных форматов",
	}
}
