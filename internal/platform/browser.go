package platform

import (
	"fmt"
	"net/url"

	"github.com/pkg/browser"
)

// openBrowser is replaced in tests
var openBrowser = browser.OpenURL

// OpenURL hands an http(s) URL to the system browser
func OpenURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: unsupported scheme", raw)
	}
	if err := openBrowser(u.String()); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
