package model

// ViewStatus represents the coarse state of the client view
type ViewStatus string

const (
	// ViewStatusIdle means nothing has been requested yet
	ViewStatusIdle ViewStatus = "Idle"

	// ViewStatusLoading means a metadata lookup is in flight
	ViewStatusLoading ViewStatus = "Loading"

	// ViewStatusReady means metadata is available for display
	ViewStatusReady ViewStatus = "Ready"

	// ViewStatusFailed means the last lookup failed
	ViewStatusFailed ViewStatus = "Failed"
)

// String returns the string representation of ViewStatus
func (vs ViewStatus) String() string {
	return string(vs)
}

// IsBusy returns true while a lookup is running
func (vs ViewStatus) IsBusy() bool {
	return vs == ViewStatusLoading
}

// ViewState holds the client's local state. It is owned by the UI goroutine.
type ViewState struct {
	URL         string         // URL of the last lookup
	Video       *VideoMetadata // result of the last lookup, nil if none
	Loading     bool
	Error       string
	Downloading bool
}

// Status derives the coarse status from the state fields
func (s *ViewState) Status() ViewStatus {
	switch {
	case s.Loading:
		return ViewStatusLoading
	case s.Error != "":
		return ViewStatusFailed
	case s.Video != nil:
		return ViewStatusReady
	default:
		return ViewStatusIdle
	}
}

// BeginLookup clears the previous result and error and marks a lookup as running
func (s *ViewState) BeginLookup(url string) {
	s.URL = url
	s.Video = nil
	s.Error = ""
	s.Loading = true
}

// FinishLookup stores the outcome of a lookup and clears the loading flag
func (s *ViewState) FinishLookup(video *VideoMetadata, err error) {
	s.Loading = false
	if err != nil {
		s.Video = nil
		s.Error = err.Error()
		return
	}
	s.Video = video
	s.Error = ""
}

// BeginDownload sets the downloading indicator. It returns false when a
// download was already started and the indicator has not been reset yet.
func (s *ViewState) BeginDownload() bool {
	if s.Downloading || s.Video == nil {
		return false
	}
	s.Downloading = true
	return true
}

// EndDownload resets the downloading indicator
func (s *ViewState) EndDownload() {
	s.Downloading = false
}
