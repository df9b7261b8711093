package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Environment variable names read by the API server
const (
	EnvPort            = "PORT"
	EnvClientURL       = "CLIENT_URL"
	EnvExtractor       = "EXTRACTOR"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvRateLimit       = "RATE_LIMIT_RPS"
	EnvRateBurst       = "RATE_LIMIT_BURST"
	EnvInfoTimeout     = "INFO_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Extractor backends
const (
	ExtractorYouTube = "youtube"
	ExtractorYTDLP   = "ytdlp"
)

// Server defaults
const (
	DefaultPort            = "5000"
	DefaultClientURL       = "http://localhost:3000"
	DefaultExtractor       = ExtractorYouTube
	DefaultLogLevel        = "INFO"
	DefaultLogFormat       = "text"
	DefaultRateLimit       = 10.0
	DefaultRateBurst       = 20
	DefaultInfoTimeout     = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Server is the process-wide configuration of the API server. It is built
// once at startup and treated as read-only afterwards.
type Server struct {
	Port            string
	ClientURL       string
	Extractor       string
	LogLevel        string
	LogFormat       string
	RateLimit       float64 // requests per second, 0 disables limiting
	RateBurst       int
	InfoTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// LoadServer reads the server configuration through getenv (usually os.Getenv)
func LoadServer(getenv func(string) string) (*Server, error) {
	cfg := &Server{
		Port:            valueOr(getenv(EnvPort), DefaultPort),
		ClientURL:       valueOr(getenv(EnvClientURL), DefaultClientURL),
		Extractor:       strings.ToLower(valueOr(getenv(EnvExtractor), DefaultExtractor)),
		LogLevel:        valueOr(getenv(EnvLogLevel), DefaultLogLevel),
		LogFormat:       valueOr(getenv(EnvLogFormat), DefaultLogFormat),
		RateLimit:       DefaultRateLimit,
		RateBurst:       DefaultRateBurst,
		InfoTimeout:     DefaultInfoTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if v := strings.TrimSpace(getenv(EnvRateLimit)); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return nil, fmt.Errorf("%s must be a non-negative number, got %q", EnvRateLimit, v)
		}
		cfg.RateLimit = rps
	}

	if v := strings.TrimSpace(getenv(EnvRateBurst)); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst < 1 {
			return nil, fmt.Errorf("%s must be a positive integer, got %q", EnvRateBurst, v)
		}
		cfg.RateBurst = burst
	}

	var err error
	if cfg.InfoTimeout, err = durationOr(getenv(EnvInfoTimeout), DefaultInfoTimeout); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvInfoTimeout, err)
	}
	if cfg.ShutdownTimeout, err = durationOr(getenv(EnvShutdownTimeout), DefaultShutdownTimeout); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvShutdownTimeout, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that cannot be checked while parsing
func (s *Server) Validate() error {
	port, err := strconv.Atoi(s.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%s must be a TCP port number, got %q", EnvPort, s.Port)
	}

	u, err := url.Parse(s.ClientURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", EnvClientURL, s.ClientURL)
	}

	switch s.Extractor {
	case ExtractorYouTube, ExtractorYTDLP:
	default:
		return fmt.Errorf("%s must be %q or %q, got %q", EnvExtractor, ExtractorYouTube, ExtractorYTDLP, s.Extractor)
	}

	return nil
}

// Addr returns the listen address for net/http
func (s *Server) Addr() string {
	return ":" + s.Port
}

func valueOr(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func durationOr(v string, fallback time.Duration) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}
