package platform

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/kkdai/youtube/v2"
	"github.com/ytget/ytdlp/v2/errs"
)

var (
	// ErrInvalidURL indicates the input is not a single-video YouTube URL
	ErrInvalidURL = errors.New("invalid youtube url")
	// ErrFormatNotFound indicates the requested itag is not offered for the video
	ErrFormatNotFound = errors.New("format not found")
	// ErrNetwork covers transport failures and unexpected upstream responses
	ErrNetwork = errors.New("network error")
)

// StatusError reports an unexpected HTTP status from a media URL
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return "unexpected status " + http.StatusText(e.StatusCode)
}

// Classify maps an extraction error onto one of the errs sentinels or the
// package sentinels above. Errors that cannot be attributed become ErrNetwork.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrVideoUnavailable),
		errors.Is(err, errs.ErrPrivate),
		errors.Is(err, errs.ErrAgeRestricted),
		errors.Is(err, errs.ErrCipherFailed),
		errors.Is(err, errs.ErrGeoBlocked),
		errors.Is(err, errs.ErrRateLimited),
		errors.Is(err, ErrInvalidURL),
		errors.Is(err, ErrFormatNotFound),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return rootSentinel(err)
	case errors.Is(err, youtube.ErrVideoPrivate):
		return errs.ErrPrivate
	case errors.Is(err, youtube.ErrLoginRequired):
		return errs.ErrAgeRestricted
	case errors.Is(err, youtube.ErrNotPlayableInEmbed):
		return errs.ErrVideoUnavailable
	case errors.Is(err, youtube.ErrInvalidCharactersInVideoID),
		errors.Is(err, youtube.ErrVideoIDMinLength):
		return ErrInvalidURL
	}

	var playability *youtube.ErrPlayabiltyStatus
	if errors.As(err, &playability) {
		return classifyReason(playability.Reason)
	}

	var unexpected youtube.ErrUnexpectedStatusCode
	if errors.As(err, &unexpected) {
		return classifyStatus(int(unexpected))
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return classifyStatus(statusErr.StatusCode)
	}

	return ErrNetwork
}

// Reason returns a short label of the classified error for logs
func Reason(err error) string {
	if c := Classify(err); c != nil {
		return c.Error()
	}
	return ""
}

func rootSentinel(err error) error {
	for _, s := range []error{
		errs.ErrVideoUnavailable, errs.ErrPrivate, errs.ErrAgeRestricted,
		errs.ErrCipherFailed, errs.ErrGeoBlocked, errs.ErrRateLimited,
		ErrInvalidURL, ErrFormatNotFound, context.Canceled, context.DeadlineExceeded,
	} {
		if errors.Is(err, s) {
			return s
		}
	}
	return ErrNetwork
}

func classifyReason(reason string) error {
	reason = strings.ToLower(reason)
	switch {
	case strings.Contains(reason, "private"):
		return errs.ErrPrivate
	case strings.Contains(reason, "country"), strings.Contains(reason, "geograph"):
		return errs.ErrGeoBlocked
	case strings.Contains(reason, "age"), strings.Contains(reason, "sign in"):
		return errs.ErrAgeRestricted
	default:
		return errs.ErrVideoUnavailable
	}
}

func classifyStatus(code int) error {
	switch code {
	case http.StatusTooManyRequests:
		return errs.ErrRateLimited
	case http.StatusForbidden, http.StatusNotFound, http.StatusGone:
		return errs.ErrVideoUnavailable
	default:
		return ErrNetwork
	}
}
