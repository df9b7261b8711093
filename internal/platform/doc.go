// Package platform contains the glue to external tooling: the YouTube
// extraction clients behind the Extractor interface, URL validation, error
// classification, the shared HTTP client and handing URLs to the system browser.
package platform
