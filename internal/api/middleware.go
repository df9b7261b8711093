package api

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ytget/ytweb/internal/logger"
)

// HeaderRequestID carries the request correlation ID
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLength = 128

type ctxKey int

const requestIDKey ctxKey = iota

// RequestIDFromContext returns the request ID stored by the middleware
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Middleware wraps a handler
type Middleware func(http.Handler) http.Handler

// chain applies middleware so that the first one is the outermost
func chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// statusRecorder remembers the status and body size of a response
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (rec *statusRecorder) WriteHeader(status int) {
	if !rec.wroteHeader {
		rec.status = status
		rec.wroteHeader = true
	}
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(p []byte) (int, error) {
	if !rec.wroteHeader {
		rec.WriteHeader(http.StatusOK)
	}
	n, err := rec.ResponseWriter.Write(p)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

func accessLog(log *logger.ComponentLogger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				fields := logger.Fields{
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     rec.status,
					"bytes":      rec.bytes,
					"duration":   time.Since(start).Round(time.Microsecond),
					"request_id": RequestIDFromContext(r.Context()),
				}
				if p := recover(); p != nil {
					fields["aborted"] = true
					log.Warn("Request aborted", fields)
					panic(p)
				}
				log.Info("Request handled", fields)
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

func recoverer(log *logger.ComponentLogger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				log.Error("Handler panic", logger.Fields{
					"panic":      fmt.Sprint(p),
					"request_id": RequestIDFromContext(r.Context()),
					"stack":      string(debug.Stack()),
				})

				if rec, ok := w.(*statusRecorder); ok && rec.wroteHeader {
					panic(http.ErrAbortHandler)
				}
				writeError(w, r, &Error{Kind: KindInternal, Message: MsgInternal})
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func cors(allowedOrigin string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowedOrigin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type, "+HeaderRequestID)
				h.Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			h.Set("Access-Control-Expose-Headers", "Content-Disposition, "+HeaderRequestID)
			next.ServeHTTP(w, r)
		})
	}
}

// rateLimit rejects requests once limiter runs out of tokens. A nil limiter
// disables limiting.
func rateLimit(limiter *rate.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, r, &Error{Kind: KindRateLimited, Message: MsgRateLimited})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
