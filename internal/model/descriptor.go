package model

import "fmt"

// VideoDescriptor holds everything known about a loaded video.
// It is created once per successful load and never mutated; a new load
// replaces it wholesale.
type VideoDescriptor struct {
	ID           string // 11-character video identifier
	Title        string // human-readable title (may be a generic fallback)
	DurationSec  int    // total duration in seconds
	ThumbnailURL string // preview image URL
	EmbedURL     string // embeddable player URL
}

// TrimRange is the user-selected [start, end] sub-interval of a video.
// Both bounds are whole seconds.
type TrimRange struct {
	StartSec int
	EndSec   int
}

// NewFullRange returns the trim range covering the whole duration.
// Used to reset the selection whenever a new descriptor is loaded.
func NewFullRange(durationSec int) TrimRange {
	return TrimRange{StartSec: 0, EndSec: durationSec}
}

// LengthSec returns the selected clip length in seconds
func (tr TrimRange) LengthSec() int {
	return tr.EndSec - tr.StartSec
}

// Validate checks the range against a video duration. The end must be
// strictly greater than the start; a zero or negative length selection is
// rejected before any export work happens.
func (tr TrimRange) Validate(durationSec int) error {
	if tr.StartSec < 0 {
		return fmt.Errorf("trim start must not be negative, got %d", tr.StartSec)
	}
	if tr.EndSec <= tr.StartSec {
		return fmt.Errorf("trim end (%d) must be greater than start (%d)", tr.EndSec, tr.StartSec)
	}
	if durationSec > 0 && tr.EndSec > durationSec {
		return fmt.Errorf("trim end (%d) exceeds video duration (%d)", tr.EndSec, durationSec)
	}
	return nil
}
