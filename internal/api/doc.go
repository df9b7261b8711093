// Package api exposes the HTTP interface of ytweb: the health check, the
// video metadata lookup and the streaming download endpoint, wrapped in the
// request ID, access log, recovery, CORS and rate limit middleware.
package api
