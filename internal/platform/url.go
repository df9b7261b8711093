package platform

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
	ThumbnailURLTemplate    = "https://i.ytimg.com/vi/%s/hqdefault.jpg"
)

var validHosts = map[string]bool{
	"youtube.com":        true,
	"www.youtube.com":    true,
	"m.youtube.com":      true,
	"music.youtube.com":  true,
	"gaming.youtube.com": true,
	"youtu.be":           true,
}

var videoPathPrefixes = map[string]bool{
	"embed":  true,
	"shorts": true,
	"live":   true,
	"v":      true,
	"e":      true,
}

var videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ValidateURL reports whether raw is an http(s) URL on a YouTube host that
// carries a well-formed video ID.
func ValidateURL(raw string) bool {
	_, ok := VideoID(raw)
	return ok
}

// VideoID extracts the 11 character video ID from a YouTube URL
func VideoID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", false
	}
	if !validHosts[strings.ToLower(u.Hostname())] {
		return "", false
	}

	var candidate string
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	switch {
	case strings.EqualFold(u.Hostname(), "youtu.be"):
		// youtu.be carries the ID as the first path segment
		candidate = segments[0]
	case u.Query().Get("v") != "":
		candidate = u.Query().Get("v")
	case len(segments) >= 2 && videoPathPrefixes[segments[0]]:
		candidate = segments[1]
	default:
		return "", false
	}

	id, err := youtube.ExtractVideoID(candidate)
	if err != nil || !videoIDPattern.MatchString(id) {
		return "", false
	}
	return id, true
}
