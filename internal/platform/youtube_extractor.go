package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/ytget/ytweb/internal/logger"
	"github.com/ytget/ytweb/internal/model"
)

// YouTubeExtractor resolves videos with github.com/kkdai/youtube
type YouTubeExtractor struct {
	client  youtube.Client
	timeout time.Duration
	log     *logger.ComponentLogger
}

// NewYouTubeExtractor creates an extractor that shares httpClient across calls
func NewYouTubeExtractor(httpClient *http.Client, log *logger.Logger) *YouTubeExtractor {
	return &YouTubeExtractor{
		client:  youtube.Client{HTTPClient: httpClient},
		timeout: DefaultResolveTimeout,
		log:     log.WithComponent(logger.ComponentExtractor),
	}
}

// SetTimeout sets the upper bound of a single metadata fetch. Streams are
// bounded only by the caller's context.
func (e *YouTubeExtractor) SetTimeout(timeout time.Duration) {
	e.timeout = timeout
}

// Name returns the backend name
func (e *YouTubeExtractor) Name() string {
	return BackendYouTube
}

// ValidateURL reports whether url is a single-video YouTube URL
func (e *YouTubeExtractor) ValidateURL(url string) bool {
	return ValidateURL(url)
}

// GetInfo fetches the video metadata and its format list
func (e *YouTubeExtractor) GetInfo(ctx context.Context, url string) (*model.RawVideo, error) {
	video, err := e.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return toRawVideo(video), nil
}

// OpenStream opens the stream of the format identified by itag
func (e *YouTubeExtractor) OpenStream(ctx context.Context, url string, itag int) (io.ReadCloser, error) {
	video, err := e.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	matches := video.Formats.Itag(itag)
	if len(matches) == 0 {
		return nil, fmt.Errorf("itag %d: %w", itag, ErrFormatNotFound)
	}

	stream, size, err := e.client.GetStreamContext(ctx, video, &matches[0])
	if err != nil {
		return nil, fmt.Errorf("open stream: %w", err)
	}

	e.log.Debug("Stream opened", logger.Fields{"video_id": video.ID, "itag": itag, "size": size})
	return stream, nil
}

func (e *YouTubeExtractor) fetch(ctx context.Context, url string) (*youtube.Video, error) {
	if !ValidateURL(url) {
		return nil, ErrInvalidURL
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	video, err := e.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}
	e.log.Debug("Video metadata received", logger.Fields{"video_id": video.ID, "formats": len(video.Formats)})
	return video, nil
}

func toRawVideo(video *youtube.Video) *model.RawVideo {
	raw := &model.RawVideo{
		ID:       video.ID,
		Title:    video.Title,
		Author:   video.Author,
		Duration: int(video.Duration.Seconds()),
	}

	for _, t := range video.Thumbnails {
		raw.Thumbnails = append(raw.Thumbnails, t.URL)
	}

	raw.Formats = make([]model.RawFormat, 0, len(video.Formats))
	for _, f := range video.Formats {
		raw.Formats = append(raw.Formats, model.RawFormat{
			QualityLabel:  f.QualityLabel,
			Container:     Container(f.MimeType),
			ContentLength: f.ContentLength,
			Itag:          f.ItagNo,
			HasVideo:      IsVideoMime(f.MimeType),
			HasAudio:      f.AudioChannels > 0,
			FPS:           f.FPS,
		})
	}
	return raw
}
