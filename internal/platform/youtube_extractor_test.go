package platform

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ytget/ytweb/internal/logger"
)

const (
	testVideoID  = "dQw4w9WgXcQ"
	testVideoURL = "https://www.youtube.com/watch?v=" + testVideoID
	testMedia    = "media-bytes-of-itag-18"
)

// handlerTransport answers every request with h, without touching the network
type handlerTransport struct {
	h http.Handler
}

func (t handlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := httptest.NewRecorder()
	t.h.ServeHTTP(rec, req)
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

func playerResponse() map[string]interface{} {
	return map[string]interface{}{
		"playabilityStatus": map[string]interface{}{"status": "OK", "playableInEmbed": true},
		"videoDetails": map[string]interface{}{
			"videoId":       testVideoID,
			"title":         "Never Gonna Give You Up",
			"author":        "Rick Astley",
			"lengthSeconds": "212",
			"thumbnail": map[string]interface{}{
				"thumbnails": []map[string]interface{}{
					{"url": "https://i.ytimg.com/vi/" + testVideoID + "/default.jpg", "width": 120, "height": 90},
					{"url": "https://i.ytimg.com/vi/" + testVideoID + "/hqdefault.jpg", "width": 480, "height": 360},
				},
			},
		},
		"streamingData": map[string]interface{}{
			"formats": []map[string]interface{}{
				{
					"itag":          18,
					"url":           "https://rr1.googlevideo.com/videoplayback?itag=18",
					"mimeType":      `video/mp4; codecs="avc1.42001E, mp4a.40.2"`,
					"qualityLabel":  "360p",
					"bitrate":       500000,
					"fps":           30,
					"audioChannels": 2,
				},
			},
		},
	}
}

// fakeYouTube serves the endpoints kkdai/youtube calls for metadata and streams
func fakeYouTube(t *testing.T, player http.HandlerFunc) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/youtubei/v1/player":
			player(w, r)
		case strings.HasPrefix(r.URL.Path, "/embed/"):
			io.WriteString(w, `<script src="/s/player/abc123/player_ias.vflset/en_US/base.js"></script>`)
		case strings.HasPrefix(r.URL.Path, "/s/player/"):
			io.WriteString(w, "var player = {};")
		case r.URL.Path == "/videoplayback":
			if r.URL.Query().Get("itag") != "18" {
				http.NotFound(w, r)
				return
			}
			io.WriteString(w, testMedia)
		default:
			// home page used for the visitor id
			io.WriteString(w, "<html></html>")
		}
	})
}

func okPlayer(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(playerResponse())
}

func newTestYouTubeExtractor(h http.Handler) *YouTubeExtractor {
	client := &http.Client{Transport: handlerTransport{h: h}}
	return NewYouTubeExtractor(client, logger.Discard())
}

func TestYouTubeExtractorGetInfo(t *testing.T) {
	ext := newTestYouTubeExtractor(fakeYouTube(t, okPlayer))

	raw, err := ext.GetInfo(context.Background(), testVideoURL)
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}

	if raw.Title != "Never Gonna Give You Up" || raw.Author != "Rick Astley" {
		t.Errorf("unexpected title/author %q/%q", raw.Title, raw.Author)
	}
	if raw.Duration != 212 {
		t.Errorf("expected duration 212, got %d", raw.Duration)
	}
	if got := raw.ThumbnailURL(); !strings.HasSuffix(got, "/hqdefault.jpg") {
		t.Errorf("expected last thumbnail, got %q", got)
	}
	if len(raw.Formats) != 1 {
		t.Fatalf("expected 1 format, got %d", len(raw.Formats))
	}
	f := raw.Formats[0]
	if f.Itag != 18 || f.QualityLabel != "360p" || f.Container != "mp4" || !f.HasVideo || !f.HasAudio {
		t.Errorf("unexpected format %+v", f)
	}
}

func TestYouTubeExtractorOpenStream(t *testing.T) {
	ext := newTestYouTubeExtractor(fakeYouTube(t, okPlayer))

	stream, err := ext.OpenStream(context.Background(), testVideoURL, 18)
	if err != nil {
		t.Fatalf("OpenStream failed: %v", err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if string(data) != testMedia {
		t.Errorf("expected %q, got %q", testMedia, data)
	}
}

func TestYouTubeExtractorOpenStreamUnknownItag(t *testing.T) {
	ext := newTestYouTubeExtractor(fakeYouTube(t, okPlayer))

	_, err := ext.OpenStream(context.Background(), testVideoURL, 999)
	if !errors.Is(err, ErrFormatNotFound) {
		t.Fatalf("expected ErrFormatNotFound, got %v", err)
	}
}

func TestYouTubeExtractorInvalidURL(t *testing.T) {
	ext := newTestYouTubeExtractor(fakeYouTube(t, okPlayer))

	if _, err := ext.OpenStream(context.Background(), "https://example.com/watch?v="+testVideoID, 18); !errors.Is(err, ErrInvalidURL) {
		t.Errorf("expected ErrInvalidURL, got %v", err)
	}
}

func TestYouTubeExtractorOpenStreamMetadataTimeout(t *testing.T) {
	stalled := func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}
	ext := newTestYouTubeExtractor(fakeYouTube(t, stalled))
	ext.SetTimeout(50 * time.Millisecond)

	start := time.Now()
	_, err := ext.OpenStream(context.Background(), testVideoURL, 18)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("metadata fetch was not bounded, took %v", elapsed)
	}
}
