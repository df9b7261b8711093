// Package ui contains the Fyne-based desktop frontend of ytweb. It sends the
// entered URL to the API, renders the returned video card with one button per
// downloadable format and hands the chosen download URL to the system browser.
// All UI strings are localized via Localization.
package ui
