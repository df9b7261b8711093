package download

import (
	"context"
	"io"

	"github.com/ytget/ytweb/internal/model"
)

// Source is the part of an extractor used by the download service
type Source interface {
	GetInfo(ctx context.Context, url string) (*model.RawVideo, error)
	OpenStream(ctx context.Context, url string, itag int) (io.ReadCloser, error)
}

// Streamer defines the interface for the download service.
type Streamer interface {
	Open(ctx context.Context, req Request) (*Transfer, error)
}
