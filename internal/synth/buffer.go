package synth

import (
	"math"

	"github.com/ytclip/yt-trimmer/internal/model"
)

// Buffer sizing
const (
	VideoBufferSize = 204800

	AudioBufferMinSize  = 51200
	AudioBytesPerSecond = 1000
)

// Filler pattern
const (
	VideoFillerMultiplier = 7

	AudioSineStep      = 0.1
	AudioSineAmplitude = 127
	AudioSineBias      = 128
)

// mp4Header is a minimal MP4 file signature: a 32-byte ftyp box (isom brand
// set) followed by an 8-byte moov box header.
var mp4Header = []byte{
	0x00, 0x00, 0x00, 0x20, 'f', 't', 'y', 'p',
	'i', 's', 'o', 'm', 0x00, 0x00, 0x02, 0x00,
	'i', 's', 'o', 'm', 'i', 's', 'o', '2',
	'a', 'v', 'c', '1', 'm', 'p', '4', '1',
	0x00, 0x00, 0x00, 0x08, 'm', 'o', 'o', 'v',
}

// mp3Header is an ID3v2.3 tag header (10 bytes) followed at offset 10 by an
// MPEG-1 Layer III frame sync.
var mp3Header = []byte{
	'I', 'D', '3', 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xFF, 0xFB, 0x90, 0x00,
}

// VideoBuffer synthesizes a fixed-size MP4-shaped buffer for the requested
// duration. Every filler byte at offset i equals (i*7 + duration) mod 256,
// a pure function of offset and duration, so output is bit-reproducible.
func VideoBuffer(durationSec int) []byte {
	buf := make([]byte, VideoBufferSize)
	copy(buf, mp4Header)

	for i := len(mp4Header); i < len(buf); i++ {
		buf[i] = byte((i*VideoFillerMultiplier + durationSec) % 256)
	}

	return buf
}

// AudioBuffer synthesizes an MP3-shaped buffer sized proportionally to the
// requested duration, with a floor of 51200 bytes. Filler bytes follow a
// sine curve over the byte offset, again fully deterministic.
func AudioBuffer(durationSec int) []byte {
	size := durationSec * AudioBytesPerSecond
	if size < AudioBufferMinSize {
		size = AudioBufferMinSize
	}

	buf := make([]byte, size)
	copy(buf, mp3Header)

	for i := len(mp3Header); i < len(buf); i++ {
		buf[i] = byte(math.Round(math.Sin(float64(i)*AudioSineStep)*AudioSineAmplitude + AudioSineBias))
	}

	return buf
}

// MediaBuffer synthesizes the buffer for the given clip format and returns
// it together with its MIME type.
func MediaBuffer(format model.ClipFormat, durationSec int) ([]byte, string) {
	if format == model.FormatMP3 {
		return AudioBuffer(durationSec), model.MIMETypeMP3
	}
	return VideoBuffer(durationSec), model.MIMETypeMP4
}
