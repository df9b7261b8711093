package platform

import "strings"

// DefaultContainer is reported when the MIME type is empty or unparsable
const DefaultContainer = "mp4"

var audioCodecs = []string{"mp4a", "opus", "vorbis", "ac-3", "ec-3"}

// Container returns the container name of a MIME type such as
// `video/mp4; codecs="avc1.64001F, mp4a.40.2"`.
func Container(mime string) string {
	base := mimeBase(mime)
	if i := strings.Index(base, "/"); i >= 0 && i < len(base)-1 {
		return base[i+1:]
	}
	return DefaultContainer
}

// IsVideoMime reports whether the MIME type describes a video track
func IsVideoMime(mime string) bool {
	return strings.HasPrefix(mimeBase(mime), "video/")
}

// HasAudioCodec reports whether the codecs parameter lists an audio codec,
// or the MIME type is an audio type
func HasAudioCodec(mime string) bool {
	lower := strings.ToLower(mime)
	if strings.HasPrefix(mimeBase(lower), "audio/") {
		return true
	}
	i := strings.Index(lower, "codecs=")
	if i < 0 {
		return false
	}
	codecs := lower[i+len("codecs="):]
	for _, c := range audioCodecs {
		if strings.Contains(codecs, c) {
			return true
		}
	}
	return false
}

func mimeBase(mime string) string {
	mime = strings.TrimSpace(mime)
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	return strings.ToLower(mime)
}
