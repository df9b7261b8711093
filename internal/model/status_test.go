package model

import (
	"errors"
	"testing"
)

func TestViewStatus_IsBusy(t *testing.T) {
	tests := []struct {
		status   ViewStatus
		expected bool
	}{
		{ViewStatusIdle, false},
		{ViewStatusLoading, true},
		{ViewStatusReady, false},
		{ViewStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsBusy()
		if result != test.expected {
			t.Errorf("ViewStatus(%s).IsBusy() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestViewStatus_String(t *testing.T) {
	status := ViewStatusLoading
	expected := "Loading"
	result := status.String()

	if result != expected {
		t.Errorf("ViewStatus.String() = %s, expected %s", result, expected)
	}
}

func TestViewState_LookupTransitions(t *testing.T) {
	state := &ViewState{}
	if state.Status() != ViewStatusIdle {
		t.Fatalf("Expected idle state, got %s", state.Status())
	}

	state.FinishLookup(nil, errors.New("boom"))
	state.BeginLookup("https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	if state.Status() != ViewStatusLoading {
		t.Errorf("Expected loading state, got %s", state.Status())
	}
	if state.Error != "" {
		t.Errorf("Expected error to be cleared, got '%s'", state.Error)
	}
	if state.URL != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("Expected URL to be recorded, got '%s'", state.URL)
	}

	video := &VideoMetadata{Title: "Test"}
	state.FinishLookup(video, nil)

	if state.Loading {
		t.Error("Expected loading flag to be cleared")
	}
	if state.Video != video {
		t.Error("Expected video to be stored")
	}
	if state.Status() != ViewStatusReady {
		t.Errorf("Expected ready state, got %s", state.Status())
	}

	state.BeginLookup("https://youtu.be/dQw4w9WgXcQ")
	if state.Video != nil {
		t.Error("Expected previous video to be cleared on a new lookup")
	}

	state.FinishLookup(nil, errors.New("video unavailable"))
	if state.Status() != ViewStatusFailed {
		t.Errorf("Expected failed state, got %s", state.Status())
	}
	if state.Error != "video unavailable" {
		t.Errorf("Expected error message 'video unavailable', got '%s'", state.Error)
	}
}

func TestViewState_DownloadIndicator(t *testing.T) {
	state := &ViewState{}

	if state.BeginDownload() {
		t.Error("Expected download to be refused without metadata")
	}

	state.FinishLookup(&VideoMetadata{Title: "Test"}, nil)

	if !state.BeginDownload() {
		t.Fatal("Expected first download to start")
	}
	if state.BeginDownload() {
		t.Error("Expected second download to be refused while indicator is set")
	}

	state.EndDownload()
	if state.Downloading {
		t.Error("Expected indicator to be reset")
	}
	if !state.BeginDownload() {
		t.Error("Expected download to start again after reset")
	}
}
