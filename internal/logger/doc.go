// Package logger provides the structured, component-scoped logger used by the
// server and the desktop client.
//
// Usage:
//
//	log := logger.New(logger.DefaultConfig()).WithComponent(logger.ComponentAPI)
//	log.Info("request served", logger.Fields{
//		"path":   "/api/video-info",
//		"status": 200,
//	})
//
// A Logger is built once at startup and passed explicitly to the components
// that need it; there is no package-level instance.
//
// Components:
//   - ComponentApp: process lifecycle
//   - ComponentAPI: HTTP handlers and middleware
//   - ComponentExtractor: extraction client adapters
//   - ComponentDownload: stream transfers
//   - ComponentClient: desktop client
package logger
