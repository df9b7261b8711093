package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ytget/ytweb/internal/api"
	"github.com/ytget/ytweb/internal/config"
	"github.com/ytget/ytweb/internal/download"
	"github.com/ytget/ytweb/internal/logger"
	"github.com/ytget/ytweb/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppName = "ytweb"

	ReadHeaderTimeout = 10 * time.Second
	IdleTimeout       = 120 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadServer(os.Getenv)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	appLog := log.WithComponent(logger.ComponentApp)

	extractor, err := platform.NewExtractor(cfg.Extractor, platform.NewHTTPClient(), cfg.InfoTimeout, log)
	if err != nil {
		return err
	}

	downloads := download.NewService(extractor, download.Options{InfoTimeout: cfg.InfoTimeout}, log)
	server := api.NewServer(extractor, downloads, api.Config{
		ClientURL:   cfg.ClientURL,
		RateLimit:   cfg.RateLimit,
		RateBurst:   cfg.RateBurst,
		InfoTimeout: cfg.InfoTimeout,
	}, log)

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
		IdleTimeout:       IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("Server starting", logger.Fields{
			"version":   version,
			"addr":      httpServer.Addr,
			"extractor": extractor.Name(),
			"client":    cfg.ClientURL,
		})
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", httpServer.Addr, err)
	case <-ctx.Done():
	}

	appLog.Info("Shutting down", logger.Fields{"timeout": cfg.ShutdownTimeout})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLog.Warn("Graceful shutdown interrupted", logger.Fields{"error": err})
		return httpServer.Close()
	}
	appLog.Info("Server stopped")
	return nil
}

func newLogger(cfg *config.Server) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	lc := logger.DefaultConfig()
	lc.Level = level
	lc.Format = format
	return logger.New(lc), nil
}
