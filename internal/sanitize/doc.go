// Package sanitize turns video titles into safe download filenames and the
// matching Content-Disposition header value.
package sanitize
