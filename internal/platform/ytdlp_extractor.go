package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/ytweb/internal/logger"
	"github.com/ytget/ytweb/internal/model"
)

// Timeout constants
const (
	DefaultResolveTimeout = 60 * time.Second
)

// Format selector prefix understood by the ytdlp library
const itagSelectorPrefix = "itag="

// YTDLPExtractor resolves videos with github.com/ytget/ytdlp and streams the
// resolved media URL itself
type YTDLPExtractor struct {
	httpClient *http.Client
	timeout    time.Duration
	log        *logger.ComponentLogger
}

// NewYTDLPExtractor creates a new ytdlp-backed extractor
func NewYTDLPExtractor(httpClient *http.Client, log *logger.Logger) *YTDLPExtractor {
	return &YTDLPExtractor{
		httpClient: httpClient,
		timeout:    DefaultResolveTimeout,
		log:        log.WithComponent(logger.ComponentExtractor),
	}
}

// SetTimeout sets the upper bound of a single resolve call
func (y *YTDLPExtractor) SetTimeout(timeout time.Duration) {
	y.timeout = timeout
}

// Name returns the backend name
func (y *YTDLPExtractor) Name() string {
	return BackendYTDLP
}

// ValidateURL reports whether url is a single-video YouTube URL
func (y *YTDLPExtractor) ValidateURL(url string) bool {
	return ValidateURL(url)
}

// GetInfo resolves the video and converts its format list
func (y *YTDLPExtractor) GetInfo(ctx context.Context, url string) (*model.RawVideo, error) {
	_, info, err := y.resolve(ctx, url, "")
	if err != nil {
		return nil, err
	}
	return ytdlpToRawVideo(info), nil
}

// OpenStream resolves the media URL of itag and starts a GET on it. The
// response body is bound to ctx.
func (y *YTDLPExtractor) OpenStream(ctx context.Context, url string, itag int) (io.ReadCloser, error) {
	mediaURL, info, err := y.resolve(ctx, url, itagSelectorPrefix+strconv.Itoa(itag))
	if err != nil {
		return nil, err
	}

	// the library falls back to a default format when the itag is unknown
	if !hasItag(info, itag) {
		return nil, fmt.Errorf("itag %d: %w", itag, ErrFormatNotFound)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create media request: %w", err)
	}

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("media request: %w", &StatusError{StatusCode: resp.StatusCode})
	}

	y.log.Debug("Stream opened", logger.Fields{"video_id": info.ID, "itag": itag, "size": resp.ContentLength})
	return resp.Body, nil
}

func (y *YTDLPExtractor) resolve(ctx context.Context, url, selector string) (string, *ytdlp.VideoInfo, error) {
	if !ValidateURL(url) {
		return "", nil, ErrInvalidURL
	}

	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}

	d := ytdlp.New().WithHTTPClient(y.httpClient)
	if selector != "" {
		d = d.WithFormat(selector, "")
	}

	mediaURL, info, err := d.ResolveURL(ctx, url)
	if err != nil {
		return "", nil, fmt.Errorf("resolve: %w", err)
	}
	if info == nil {
		return "", nil, fmt.Errorf("resolve: %w", ErrNetwork)
	}
	y.log.Debug("Video metadata received", logger.Fields{"video_id": info.ID, "formats": len(info.Formats)})
	return mediaURL, info, nil
}

func hasItag(info *ytdlp.VideoInfo, itag int) bool {
	for _, f := range info.Formats {
		if f.Itag == itag {
			return true
		}
	}
	return false
}

func ytdlpToRawVideo(info *ytdlp.VideoInfo) *model.RawVideo {
	raw := &model.RawVideo{
		ID:       info.ID,
		Title:    info.Title,
		Author:   info.Author,
		Duration: info.Duration,
	}
	if info.ID != "" {
		raw.Thumbnails = []string{fmt.Sprintf(ThumbnailURLTemplate, info.ID)}
	}

	raw.Formats = make([]model.RawFormat, 0, len(info.Formats))
	for _, f := range info.Formats {
		raw.Formats = append(raw.Formats, model.RawFormat{
			QualityLabel:  f.Quality,
			Container:     Container(f.MimeType),
			ContentLength: f.Size,
			Itag:          f.Itag,
			HasVideo:      IsVideoMime(f.MimeType),
			HasAudio:      HasAudioCodec(f.MimeType),
			FPS:           fpsFromLabel(f.Quality),
		})
	}
	return raw
}

// fpsFromLabel reads the frame rate suffix of labels like "1080p60"
func fpsFromLabel(label string) int {
	i := strings.IndexByte(label, 'p')
	if i < 0 || i == len(label)-1 {
		return 0
	}
	fps, err := strconv.Atoi(label[i+1:])
	if err != nil {
		return 0
	}
	return fps
}
