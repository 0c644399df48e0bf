package clip

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ytclip/yt-trimmer/internal/model"
)

// Filename constants
const (
	MaxTitleLength   = 50
	DefaultClipTitle = "video"
)

var (
	nonAlphanumericPattern = regexp.MustCompile(`[^a-zA-Z0-9 ]+`)
	whitespaceRunPattern   = regexp.MustCompile(`\s+`)
)

// SanitizeTitle makes a video title safe for use in a filename: everything
// except alphanumerics and spaces is stripped, runs of whitespace collapse
// to a single underscore, and the result is truncated to 50 characters.
func SanitizeTitle(title string) string {
	cleaned := nonAlphanumericPattern.ReplaceAllString(title, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = whitespaceRunPattern.ReplaceAllString(cleaned, "_")

	if len(cleaned) > MaxTitleLength {
		cleaned = cleaned[:MaxTitleLength]
	}

	if cleaned == "" {
		return DefaultClipTitle
	}

	return cleaned
}

// FormatTimestamp renders whole seconds as mm:ss. Minutes are not capped
// at 59 since synthetic durations never reach an hour.
func FormatTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ClipFileName builds the output filename for an exported clip:
// {sanitized-title}_{mm:ss-start}-{mm:ss-end}.{ext}
func ClipFileName(title string, trim model.TrimRange, format model.ClipFormat) string {
	return fmt.Sprintf("%s_%s-%s.%s",
		SanitizeTitle(title),
		FormatTimestamp(trim.StartSec),
		FormatTimestamp(trim.EndSec),
		format.Ext())
}
