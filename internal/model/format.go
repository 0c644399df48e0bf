package model

// ClipFormat identifies the output container for an exported clip
type ClipFormat string

const (
	// FormatMP4 exports a video clip
	FormatMP4 ClipFormat = "mp4"

	// FormatMP3 exports an audio-only clip
	FormatMP3 ClipFormat = "mp3"
)

// MIME types for clip formats
const (
	MIMETypeMP4 = "video/mp4"
	MIMETypeMP3 = "audio/mpeg"
)

// String returns the string representation of ClipFormat
func (cf ClipFormat) String() string {
	return string(cf)
}

// Ext returns the file extension for the format, without a leading dot
func (cf ClipFormat) Ext() string {
	return string(cf)
}

// MIME returns the MIME type for the format
func (cf ClipFormat) MIME() string {
	if cf == FormatMP3 {
		return MIMETypeMP3
	}
	return MIMETypeMP4
}

// IsValid returns true for the supported formats
func (cf ClipFormat) IsValid() bool {
	return cf == FormatMP4 || cf == FormatMP3
}
