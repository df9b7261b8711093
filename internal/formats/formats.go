// Package formats turns the raw format list of an extraction client into the
// ordered, deduplicated list of quality options shown to users.
package formats

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ytget/ytweb/internal/model"
)

// ParseResolution returns the leading run of digits of a quality label
// ("1080p60" -> 1080). Labels that do not start with a digit yield 0.
func ParseResolution(label string) int {
	label = strings.TrimSpace(label)
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0
	}
	return v
}

// Select filters, sorts and deduplicates raw formats.
//
// Formats without a quality label or without a video track are dropped. The
// remainder is stable-sorted by descending resolution and only the first
// format of each quality label is kept, so on equal labels the extraction
// client's own order decides.
func Select(raw []model.RawFormat) []model.FormatOption {
	candidates := make([]model.RawFormat, 0, len(raw))
	for _, f := range raw {
		if !hasQualityLabel(f) || !f.HasVideo {
			continue
		}
		candidates = append(candidates, f)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return ParseResolution(candidates[i].QualityLabel) > ParseResolution(candidates[j].QualityLabel)
	})

	seen := make(map[string]struct{}, len(candidates))
	options := make([]model.FormatOption, 0, len(candidates))
	for _, f := range candidates {
		label := strings.TrimSpace(f.QualityLabel)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		options = append(options, toOption(f))
	}
	return options
}

func hasQualityLabel(f model.RawFormat) bool {
	return strings.TrimSpace(f.QualityLabel) != ""
}

func toOption(f model.RawFormat) model.FormatOption {
	return model.FormatOption{
		Quality:  strings.TrimSpace(f.QualityLabel),
		Format:   f.Container,
		Size:     model.FormatSize(f.ContentLength),
		Itag:     f.Itag,
		HasAudio: f.HasAudio,
		FPS:      f.FPS,
	}
}
