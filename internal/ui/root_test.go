package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/ytweb/internal/apiclient"
	"github.com/ytget/ytweb/internal/logger"
	"github.com/ytget/ytweb/internal/model"
)

const testVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func newTestUI(t *testing.T) (*RootUI, *[]func(), *[]string) {
	t.Helper()

	a := test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	ui := NewRootUI(w, a, logger.Discard())

	var pending []func()
	ui.runAsync = func(f func()) { pending = append(pending, f) }

	var opened []string
	ui.openURL = func(u string) error {
		opened = append(opened, u)
		return nil
	}
	ui.resetDelay = 1 << 62

	return ui, &pending, &opened
}

func testMetadata() *model.VideoMetadata {
	return &model.VideoMetadata{
		Title:     "Never Gonna Give You Up",
		Thumbnail: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
		Duration:  212,
		Author:    "Rick Astley",
		Formats: []model.FormatOption{
			{Quality: "720p", Format: "mp4", Size: "12.34 MB", Itag: 22, HasAudio: true},
			{Quality: "360p", Format: "mp4", Size: "unknown", Itag: 18, HasAudio: true},
		},
	}
}

func TestNewRootUI_InitialState(t *testing.T) {
	ui, _, _ := newTestUI(t)

	if got := ui.state.Status(); got != model.ViewStatusIdle {
		t.Errorf("Expected idle status, got %s", got)
	}
	if ui.videoCard.Visible() {
		t.Error("Video card should be hidden initially")
	}
	if ui.errorContainer.Visible() {
		t.Error("Error panel should be hidden initially")
	}
	if ui.submitBtn.Disabled() {
		t.Error("Submit button should be enabled initially")
	}
}

func TestDurationBadgeRendersWithVideo(t *testing.T) {
	ui, _, _ := newTestUI(t)

	if ui.durationBadge.TextStyle.Bold {
		t.Error("Monospace badge must not request a bold face")
	}

	ui.urlEntry.SetText(testVideoURL)
	ui.onSubmit()
	ui.finishLookup(testVideoURL, testMetadata(), nil)

	// force a layout pass so every label is measured with the current theme
	ui.window.Content().Refresh()
	ui.window.Resize(ui.window.Canvas().Size())

	if ui.durationBadge.Text != "3:32" {
		t.Errorf("Expected duration 3:32, got %q", ui.durationBadge.Text)
	}
}

func TestOnSubmit_EmptyURL(t *testing.T) {
	ui, pending, _ := newTestUI(t)

	ui.urlEntry.SetText("   ")
	ui.onSubmit()

	if len(*pending) != 0 {
		t.Error("No request should be sent for an empty URL")
	}
	if !ui.errorContainer.Visible() {
		t.Fatal("Error panel should be visible")
	}
	if got := ui.errorLabel.Text; got != ui.localization.GetText(KeyPleaseEnterURL) {
		t.Errorf("Unexpected error text %q", got)
	}
}

func TestOnSubmit_LoadingAndResult(t *testing.T) {
	ui, pending, _ := newTestUI(t)

	ui.urlEntry.SetText("  " + testVideoURL + " ")
	test.Tap(ui.submitBtn)

	if len(*pending) != 1 {
		t.Fatalf("Expected one pending lookup, got %d", len(*pending))
	}
	if ui.state.URL != testVideoURL {
		t.Errorf("Expected trimmed URL %q, got %q", testVideoURL, ui.state.URL)
	}
	if !ui.submitBtn.Disabled() || !ui.urlEntry.Disabled() {
		t.Error("Inputs should be disabled while loading")
	}
	if ui.submitBtn.Text != ui.localization.GetText(KeyLoading) {
		t.Errorf("Expected loading label, got %q", ui.submitBtn.Text)
	}

	// a second submit while loading is ignored
	ui.onSubmit()
	if len(*pending) != 1 {
		t.Errorf("Submit while loading should be ignored, got %d requests", len(*pending))
	}

	ui.finishLookup(testVideoURL, testMetadata(), nil)

	if got := ui.state.Status(); got != model.ViewStatusReady {
		t.Errorf("Expected ready status, got %s", got)
	}
	if ui.submitBtn.Disabled() {
		t.Error("Submit button should be enabled after the lookup")
	}
	if !ui.videoCard.Visible() {
		t.Error("Video card should be visible")
	}
	if ui.titleLabel.Text != "Never Gonna Give You Up" {
		t.Errorf("Unexpected title %q", ui.titleLabel.Text)
	}
	if ui.durationBadge.Text != "3:32" {
		t.Errorf("Expected duration 3:32, got %q", ui.durationBadge.Text)
	}
	if len(ui.formatButtons) != 2 {
		t.Errorf("Expected 2 format buttons, got %d", len(ui.formatButtons))
	}
	// thumbnail fetch was scheduled
	if len(*pending) != 2 {
		t.Errorf("Expected thumbnail request to be scheduled, got %d pending", len(*pending))
	}
}

func TestFinishLookup_StaleResultIgnored(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.urlEntry.SetText(testVideoURL)
	ui.onSubmit()

	ui.finishLookup("https://youtu.be/xxxxxxxxxxx", testMetadata(), nil)

	if !ui.state.Loading {
		t.Error("A result for another URL should not end the lookup")
	}
	if ui.videoCard.Visible() {
		t.Error("Video card should stay hidden")
	}
}

func TestFinishLookup_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want func(*Localization) string
	}{
		{
			name: "API error message is shown",
			err:  &apiclient.Error{StatusCode: 400, Message: "Invalid YouTube URL"},
			want: func(*Localization) string { return "Invalid YouTube URL" },
		},
		{
			name: "API error without message",
			err:  &apiclient.Error{StatusCode: 500},
			want: func(l *Localization) string { return l.GetText(KeyErrorGeneric) },
		},
		{
			name: "transport error",
			err:  errors.New("connection refused"),
			want: func(l *Localization) string { return l.GetText(KeyServerUnavailable) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, _, _ := newTestUI(t)

			ui.urlEntry.SetText(testVideoURL)
			ui.onSubmit()
			ui.finishLookup(testVideoURL, nil, tt.err)

			if got := ui.state.Status(); got != model.ViewStatusFailed {
				t.Errorf("Expected failed status, got %s", got)
			}
			if got, want := ui.errorLabel.Text, tt.want(ui.localization); got != want {
				t.Errorf("Expected error %q, got %q", want, got)
			}
			if ui.videoCard.Visible() {
				t.Error("Video card should be hidden after an error")
			}
		})
	}
}

func TestOnDownload(t *testing.T) {
	ui, _, opened := newTestUI(t)

	ui.urlEntry.SetText(testVideoURL)
	ui.onSubmit()
	ui.finishLookup(testVideoURL, testMetadata(), nil)

	test.Tap(ui.formatButtons[0])

	if len(*opened) != 1 {
		t.Fatalf("Expected one opened URL, got %d", len(*opened))
	}
	want := ui.client.DownloadURL(testVideoURL, 22)
	if (*opened)[0] != want {
		t.Errorf("Expected %q, got %q", want, (*opened)[0])
	}
	if !ui.state.Downloading {
		t.Error("Downloading flag should be set")
	}
	for i, btn := range ui.formatButtons {
		if !btn.Disabled() {
			t.Errorf("Format button %d should be disabled while downloading", i)
		}
	}

	// a second click is ignored until the flag resets
	ui.onDownload(testMetadata().Formats[1])
	if len(*opened) != 1 {
		t.Errorf("Second download should be ignored, got %d", len(*opened))
	}

	ui.endDownload()
	if ui.state.Downloading {
		t.Error("Downloading flag should be reset")
	}
	for i, btn := range ui.formatButtons {
		if btn.Disabled() {
			t.Errorf("Format button %d should be enabled again", i)
		}
	}
}

func TestOnDownload_OpenFailure(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ui.openURL = func(string) error { return errors.New("no browser") }

	ui.urlEntry.SetText(testVideoURL)
	ui.onSubmit()
	ui.finishLookup(testVideoURL, testMetadata(), nil)

	ui.onDownload(testMetadata().Formats[0])

	if ui.state.Downloading {
		t.Error("Downloading flag should be cleared when the browser cannot be opened")
	}
}

func TestSetThumbnail_IgnoresOtherVideo(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.urlEntry.SetText(testVideoURL)
	ui.onSubmit()
	ui.finishLookup(testVideoURL, testMetadata(), nil)

	before := ui.thumbnail.Resource
	ui.setThumbnail("https://i.ytimg.com/vi/other/hqdefault.jpg", []byte{1, 2, 3})
	if ui.thumbnail.Resource != before {
		t.Error("Thumbnail of another video should be ignored")
	}

	ui.setThumbnail(testMetadata().Thumbnail, []byte{1, 2, 3})
	if ui.thumbnail.Resource == before {
		t.Error("Thumbnail should be replaced")
	}
}

func TestOnLanguageChange(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.onLanguageChange("ru")

	if ui.settings.GetLanguage() != "ru" {
		t.Errorf("Expected saved language ru, got %s", ui.settings.GetLanguage())
	}
	if ui.submitBtn.Text != "Получить видео" {
		t.Errorf("Expected russian submit label, got %q", ui.submitBtn.Text)
	}
}

func TestValidateURL(t *testing.T) {
	ui, _, _ := newTestUI(t)

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{testVideoURL, false},
		{"ftp://youtube.com/watch?v=dQw4w9WgXcQ", true},
	}

	for _, tt := range tests {
		if err := ui.validateURL(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("validateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
