package api

import (
	"net/http"
)

// Kind classifies an API error
type Kind int

const (
	KindInvalidInput Kind = iota
	KindExtractionFailed
	KindDownloadFailed
	KindRateLimited
	KindInternal
)

// Client facing messages
const (
	MsgInvalidBody        = "Invalid request body"
	MsgURLRequired        = "URL is required"
	MsgInvalidURL         = "Invalid YouTube URL"
	MsgURLAndItagRequired = "URL and itag are required"
	MsgInvalidItag        = "itag must be a positive integer"
	MsgExtractionFailed   = "Failed to get video info. Try another video or retry later."
	MsgDownloadFailed     = "Failed to download video. Try another quality."
	MsgRateLimited        = "Too many requests, retry later"
	MsgInternal           = "Internal server error"
)

var kindNames = map[Kind]string{
	KindInvalidInput:     "invalid_input",
	KindExtractionFailed: "extraction_failed",
	KindDownloadFailed:   "download_failed",
	KindRateLimited:      "rate_limited",
	KindInternal:         "internal",
}

// String returns the kind name used in logs
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Status returns the HTTP status code of the kind
func (k Kind) Status() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is an error with a client facing message. Err holds the cause, which
// is logged and never sent to the client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorBody is the JSON shape of every error response
type errorBody struct {
	Error string `json:"error"`
}

func invalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func extractionFailed(err error) *Error {
	return &Error{Kind: KindExtractionFailed, Message: MsgExtractionFailed, Err: err}
}

func downloadFailed(err error) *Error {
	return &Error{Kind: KindDownloadFailed, Message: MsgDownloadFailed, Err: err}
}

func writeError(w http.ResponseWriter, r *http.Request, e *Error) {
	writeJSON(w, r, e.Kind.Status(), errorBody{Error: e.Message})
}
