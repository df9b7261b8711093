package sanitize

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// DefaultName is the replacement name when nothing survives sanitizing.
	DefaultName = "video"
	// DefaultExt is the extension of every downloaded file.
	DefaultExt = "mp4"
)

// Only ASCII word characters, whitespace and hyphens survive.
var unsafeChars = regexp.MustCompile(`[^\w\s-]`)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Title strips everything but word characters, whitespace and hyphens from a
// video title, turns every whitespace run into a single space and trims the
// result. An empty result becomes DefaultName.
func Title(title string) string {
	name := unsafeChars.ReplaceAllString(title, "")
	name = whitespaceRuns.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return name
}

// Filename builds the attachment filename for a video title.
func Filename(title string) string {
	return Title(title) + "." + DefaultExt
}

// ContentDisposition returns the Content-Disposition header value for title.
func ContentDisposition(title string) string {
	return fmt.Sprintf("attachment; filename=%q", Filename(title))
}
