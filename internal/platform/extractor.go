package platform

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/ytget/ytweb/internal/logger"
	"github.com/ytget/ytweb/internal/model"
)

// Extractor backend names
const (
	BackendYouTube = "youtube"
	BackendYTDLP   = "ytdlp"
)

// HTTP client constants
const (
	DefaultDialTimeout         = 10 * time.Second
	DefaultTLSHandshakeTimeout = 10 * time.Second
	DefaultIdleConnTimeout     = 90 * time.Second
	DefaultMaxIdleConns        = 100
	DefaultMaxIdleConnsPerHost = 10
)

// Extractor resolves video metadata and opens media streams. Implementations
// must be safe for concurrent use.
type Extractor interface {
	// Name returns the backend name used in logs
	Name() string
	// ValidateURL reports whether url points at a single YouTube video
	ValidateURL(url string) bool
	// GetInfo fetches metadata and the raw format list
	GetInfo(ctx context.Context, url string) (*model.RawVideo, error)
	// OpenStream opens the media bytes of the given itag. The stream ends
	// early when ctx is cancelled.
	OpenStream(ctx context.Context, url string, itag int) (io.ReadCloser, error)
}

// NewExtractor builds the extractor backend called name on top of the shared
// client. A positive metadataTimeout bounds every metadata fetch, including
// the one done before a stream is opened.
func NewExtractor(name string, httpClient *http.Client, metadataTimeout time.Duration, log *logger.Logger) (Extractor, error) {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	if log == nil {
		log = logger.Discard()
	}

	switch name {
	case BackendYouTube, "":
		ext := NewYouTubeExtractor(httpClient, log)
		if metadataTimeout > 0 {
			ext.SetTimeout(metadataTimeout)
		}
		return ext, nil
	case BackendYTDLP:
		ext := NewYTDLPExtractor(httpClient, log)
		if metadataTimeout > 0 {
			ext.SetTimeout(metadataTimeout)
		}
		return ext, nil
	default:
		return nil, fmt.Errorf("unknown extractor backend: %q", name)
	}
}

// NewHTTPClient returns the keep-alive client shared by all extraction calls.
// It has no overall timeout; callers bound each request with a context.
func NewHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   DefaultDialTimeout,
		KeepAlive: 30 * time.Second,
	}
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         dialer.DialContext,
			MaxIdleConns:        DefaultMaxIdleConns,
			MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,
			IdleConnTimeout:     DefaultIdleConnTimeout,
			TLSHandshakeTimeout: DefaultTLSHandshakeTimeout,
			ForceAttemptHTTP2:   false,
		},
	}
}
