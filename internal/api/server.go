package api

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/ytget/ytweb/internal/download"
	"github.com/ytget/ytweb/internal/logger"
	"github.com/ytget/ytweb/internal/platform"
)

// MaxBodyBytes caps JSON request bodies
const MaxBodyBytes = 100 * 1024

// Health response values
const (
	HealthStatusOK = "OK"
	HealthMessage  = "API server is running"
)

// Config holds the HTTP layer settings
type Config struct {
	ClientURL   string
	RateLimit   float64 // requests per second, 0 disables limiting
	RateBurst   int
	InfoTimeout time.Duration
}

// Server serves the ytweb HTTP API
type Server struct {
	extractor platform.Extractor
	downloads download.Streamer
	cfg       Config
	log       *logger.ComponentLogger
	limiter   *rate.Limiter
}

// NewServer creates the API server
func NewServer(extractor platform.Extractor, downloads download.Streamer, cfg Config, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{
		extractor: extractor,
		downloads: downloads,
		cfg:       cfg,
		log:       log.WithComponent(logger.ComponentAPI),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return s
}

// Handler returns the routed handler wrapped in the middleware stack
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.routes(mux)

	return chain(mux,
		requestID,
		accessLog(s.log),
		recoverer(s.log),
		cors(s.cfg.ClientURL),
		rateLimit(s.limiter),
	)
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/video-info", s.handleVideoInfo)
	mux.HandleFunc("GET /api/download", s.handleDownload)

	// root aliases
	mux.HandleFunc("POST /video-info", s.handleVideoInfo)
	mux.HandleFunc("GET /download", s.handleDownload)
}
