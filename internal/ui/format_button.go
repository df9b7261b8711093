package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytweb/internal/model"
)

// NewFormatButton creates the download button of one format option
func NewFormatButton(option model.FormatOption, loc *Localization, onTap func()) *widget.Button {
	btn := widget.NewButton(FormatButtonLabel(option, loc), onTap)
	if option.HasAudio {
		btn.Importance = widget.MediumImportance
	} else {
		btn.Importance = widget.LowImportance
	}
	return btn
}

// FormatButtonLabel renders quality, container and size, e.g.
// "⬇ 720p · MP4 · 12.34 MB"
func FormatButtonLabel(option model.FormatOption, loc *Localization) string {
	quality := option.Quality
	if option.FPS > 30 && !strings.HasSuffix(quality, strconv.Itoa(option.FPS)) {
		quality += strconv.Itoa(option.FPS)
	}

	parts := []string{IconDownload + " " + quality, strings.ToUpper(option.Format), option.Size}
	if !option.HasAudio {
		parts = append(parts, IconMuted+" "+loc.GetText(KeyNoAudio))
	}
	return strings.Join(parts, MiddleDotSeparator)
}
