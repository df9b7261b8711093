package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/ytweb/internal/logger"
	"github.com/ytget/ytweb/internal/model"
	"github.com/ytget/ytweb/internal/sanitize"
)

// Pipe sizing defaults
const (
	DefaultChunkSize    = 256 * 1024
	DefaultBufferChunks = 8
)

// ContentType is sent for every download regardless of the actual container
const ContentType = "video/mp4"

// Request validation errors
var (
	ErrMissingURL  = errors.New("url is required")
	ErrInvalidItag = errors.New("itag must be a positive integer")
)

// Options configures the transfer pipe
type Options struct {
	ChunkSize    int
	BufferChunks int
	// InfoTimeout bounds the metadata lookup only, never the stream
	InfoTimeout time.Duration
}

// Request identifies the media to download
type Request struct {
	URL  string
	Itag int
}

// Service opens transfers from a Source
type Service struct {
	source Source
	opts   Options
	log    *logger.ComponentLogger
}

// NewService creates a new download service
func NewService(source Source, opts Options, log *logger.Logger) *Service {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.BufferChunks <= 0 {
		opts.BufferChunks = DefaultBufferChunks
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		source: source,
		opts:   opts,
		log:    log.WithComponent(logger.ComponentDownload),
	}
}

// Open fetches the title of the video and opens the upstream stream of
// req.Itag. The caller must Close the returned transfer.
func (s *Service) Open(ctx context.Context, req Request) (*Transfer, error) {
	if req.URL == "" {
		return nil, ErrMissingURL
	}
	if req.Itag <= 0 {
		return nil, ErrInvalidItag
	}

	info, err := s.getInfo(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("get info: %w", err)
	}

	stream, err := s.source.OpenStream(ctx, req.URL, req.Itag)
	if err != nil {
		return nil, fmt.Errorf("open stream: %w", err)
	}

	t := &Transfer{
		ID:       generateTransferID(),
		Title:    info.Title,
		Filename: sanitize.Filename(info.Title),
		Itag:     req.Itag,
		stream:   stream,
		opts:     s.opts,
		log:      s.log,
	}

	s.log.Debug("Transfer opened", logger.Fields{"id": t.ID, "video_id": info.ID, "itag": req.Itag})
	return t, nil
}

func (s *Service) getInfo(ctx context.Context, url string) (*model.RawVideo, error) {
	if s.opts.InfoTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.InfoTimeout)
		defer cancel()
	}
	return s.source.GetInfo(ctx, url)
}

// Transfer is one in-flight download
type Transfer struct {
	ID       string
	Title    string
	Filename string
	Itag     int

	stream    io.ReadCloser
	opts      Options
	log       *logger.ComponentLogger
	closeOnce sync.Once
	closeErr  error
}

// ContentDisposition returns the attachment header value for the transfer
func (t *Transfer) ContentDisposition() string {
	return sanitize.ContentDisposition(t.Title)
}

// Copy streams the media to dst and returns the number of bytes written.
// It stops on the first write error or when ctx is done.
func (t *Transfer) Copy(ctx context.Context, dst io.Writer) (int64, error) {
	started := time.Now()
	written, err := pipe(ctx, dst, t.stream, t.opts.ChunkSize, t.opts.BufferChunks)
	elapsed := time.Since(started)

	fields := logger.Fields{
		"id":      t.ID,
		"itag":    t.Itag,
		"bytes":   written,
		"elapsed": elapsed.Round(time.Millisecond),
		"speed":   formatSpeed(written, elapsed),
	}
	if err != nil {
		t.log.Warn("Transfer aborted", fields, logger.Fields{"error": err})
		return written, err
	}
	t.log.Info("Transfer finished", fields)
	return written, nil
}

// Close releases the upstream stream. It is safe to call more than once.
func (t *Transfer) Close() error {
	t.closeOnce.Do(func() {
		t.closeErr = t.stream.Close()
	})
	return t.closeErr
}

func formatSpeed(bytes int64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "0.0MB/s"
	}
	bytesPerSecond := float64(bytes) / elapsed.Seconds()
	return fmt.Sprintf("%.1fMB/s", bytesPerSecond/model.BytesPerMB)
}

// generateTransferID generates a unique transfer ID
func generateTransferID() string {
	return "transfer-" + uuid.New().String()
}
