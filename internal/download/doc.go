// Package download streams media from an extraction client to an HTTP
// response. Each Transfer pipes the upstream stream through a bounded set of
// reusable buffers so that a slow client applies backpressure to the upstream
// connection instead of growing memory.
package download
