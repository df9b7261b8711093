package model

import (
	"fmt"
)

// Size formatting constants
const (
	BytesPerMB  = 1024 * 1024
	UnknownSize = "unknown"
)

// VideoQuery is the body of a metadata lookup request
type VideoQuery struct {
	URL string `json:"url"`
}

// VideoMetadata is the presentation-ready description of a video
type VideoMetadata struct {
	Title     string         `json:"title"`
	Thumbnail string         `json:"thumbnail"`
	Duration  int            `json:"duration"` // seconds
	Author    string         `json:"author"`
	Formats   []FormatOption `json:"formats"`
}

// FormatOption is a single downloadable quality variant
type FormatOption struct {
	Quality  string `json:"quality"` // e.g. "1080p"
	Format   string `json:"format"`  // container, e.g. "mp4"
	Size     string `json:"size"`    // e.g. "12.34 MB" or "unknown"
	Itag     int    `json:"itag"`
	HasAudio bool   `json:"hasAudio"`
	FPS      int    `json:"fps,omitempty"`
}

// RawVideo is the adapter-independent response of an extraction client
type RawVideo struct {
	ID         string
	Title      string
	Author     string
	Duration   int // seconds
	Thumbnails []string
	Formats    []RawFormat
}

// RawFormat describes one stream variant as reported by the extraction client
type RawFormat struct {
	QualityLabel  string
	Container     string
	ContentLength int64
	Itag          int
	HasVideo      bool
	HasAudio      bool
	FPS           int
}

// HealthStatus is the payload of the health endpoint
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ThumbnailURL returns the last (highest resolution) thumbnail, or "" if none
func (v *RawVideo) ThumbnailURL() string {
	if len(v.Thumbnails) == 0 {
		return ""
	}
	return v.Thumbnails[len(v.Thumbnails)-1]
}

// FormatSize renders a content length in megabytes with two decimals
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return UnknownSize
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/BytesPerMB)
}

// FormatDuration renders seconds as H:MM:SS when the value spans an hour,
// and as M:SS otherwise
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
