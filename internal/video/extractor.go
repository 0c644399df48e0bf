package video

import (
	"errors"
	"regexp"
	"strings"
)

// Identifier constraints
const (
	VideoIDLength = 11
)

// Extraction errors. Callers distinguish a missing URL from one that does
// not look like any supported YouTube URL shape.
var (
	ErrEmptyInput = errors.New("no URL provided")
	ErrNoVideoID  = errors.New("could not recognize a YouTube video URL")
)

// videoIDPattern recognizes the common YouTube URL shapes: watch URLs with a
// v= query parameter, youtu.be short links, and /embed/ or /v/ paths. The
// capture group is exactly 11 characters drawn from the class excluded by
// URL delimiters (quote, ampersand, question mark, slash, whitespace).
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|shorts/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// ExtractVideoID extracts the video identifier from a YouTube URL.
// The identifier is matched by shape only; it is never checked for
// existence against YouTube.
func ExtractVideoID(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", ErrEmptyInput
	}

	matches := videoIDPattern.FindStringSubmatch(trimmed)
	if len(matches) < 2 {
		return "", ErrNoVideoID
	}

	return matches[1], nil
}
