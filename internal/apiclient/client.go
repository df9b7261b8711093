// Package apiclient is the HTTP client of the ytweb API used by the desktop
// frontend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/ytget/ytweb/internal/model"
)

// Client defaults
const (
	DefaultTimeout      = 60 * time.Second
	MaxThumbnailBytes   = 5 * 1024 * 1024
	DefaultErrorMessage = "Request failed"
)

// API paths
const (
	PathHealth    = "/health"
	PathVideoInfo = "/api/video-info"
	PathDownload  = "/api/download"
)

// Error is a non-2xx response of the API
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Client talks to one ytweb API server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health checks that the API server is up
func (c *Client) Health(ctx context.Context) (*model.HealthStatus, error) {
	var status model.HealthStatus
	if err := c.do(ctx, http.MethodGet, PathHealth, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// VideoInfo looks up the metadata and downloadable formats of videoURL
func (c *Client) VideoInfo(ctx context.Context, videoURL string) (*model.VideoMetadata, error) {
	body, err := json.Marshal(model.VideoQuery{URL: videoURL})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	var meta model.VideoMetadata
	if err := c.do(ctx, http.MethodPost, PathVideoInfo, body, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// DownloadURL returns the URL that streams videoURL in the format itag
func (c *Client) DownloadURL(videoURL string, itag int) string {
	q := url.Values{}
	q.Set("url", videoURL)
	q.Set("itag", strconv.Itoa(itag))
	return c.baseURL + PathDownload + "?" + q.Encode()
}

// Thumbnail fetches the image at thumbURL
func (c *Client) Thumbnail(ctx context.Context, thumbURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, thumbURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create thumbnail request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxThumbnailBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read thumbnail: %w", err)
	}
	if len(data) > MaxThumbnailBytes {
		return nil, fmt.Errorf("thumbnail larger than %d bytes", MaxThumbnailBytes)
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var r io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "br") {
		r = brotli.NewReader(resp.Body)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, r)
	}

	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(status int, r io.Reader) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || strings.TrimSpace(body.Error) == "" {
		return &Error{StatusCode: status, Message: DefaultErrorMessage}
	}
	return &Error{StatusCode: status, Message: body.Error}
}
