package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconError    = "❌"
	IconAuthor   = "👤"
	IconDownload = "⬇"
	IconMuted    = "🔇"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	ThumbnailWidth  float32 = 320
	ThumbnailHeight float32 = 180
	LogoSize        float32 = 32

	WindowWidth  float32 = 720
	WindowHeight float32 = 640

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 260
)

// Delays and timeouts
const (
	// DownloadResetDelay is how long format buttons stay disabled after a download starts
	DownloadResetDelay = 2 * time.Second
	LookupTimeout      = 60 * time.Second
	HealthTimeout      = 5 * time.Second
)

// Format button grid cell
const (
	FormatButtonWidth  float32 = 200
	FormatButtonHeight float32 = 56
)
