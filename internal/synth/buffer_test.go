package synth

import (
	"bytes"
	"testing"

	"github.com/ytclip/yt-trimmer/internal/model"
)

func TestVideoBufferSizeAndHeader(t *testing.T) {
	buf := VideoBuffer(300)

	if len(buf) != 204800 {
		t.Fatalf("Expected buffer size 204800, got %d", len(buf))
	}

	wantFtyp := []byte{
		0x00, 0x00, 0x00, 0x20, 'f', 't', 'y', 'p',
		'i', 's', 'o', 'm', 0x00, 0x00, 0x02, 0x00,
		'i', 's', 'o', 'm', 'i', 's', 'o', '2',
		'a', 'v', 'c', '1', 'm', 'p', '4', '1',
	}

	if !bytes.Equal(buf[:32], wantFtyp) {
		t.Errorf("Expected fixed ftyp header in first 32 bytes, got % x", buf[:32])
	}

	if !bytes.Equal(buf[32:40], []byte{0x00, 0x00, 0x00, 0x08, 'm', 'o', 'o', 'v'}) {
		t.Errorf("Expected moov box header at offset 32, got % x", buf[32:40])
	}
}

func TestVideoBufferFillerPattern(t *testing.T) {
	buf := VideoBuffer(300)

	// (i*7 + duration) mod 256 at a few offsets
	checks := map[int]byte{
		40:     68,
		1000:   132,
		204799: 37,
	}

	for offset, want := range checks {
		if buf[offset] != want {
			t.Errorf("Expected byte %d at offset %d, got %d", want, offset, buf[offset])
		}
	}
}

func TestVideoBufferDeterministic(t *testing.T) {
	first := VideoBuffer(120)
	second := VideoBuffer(120)

	if !bytes.Equal(first, second) {
		t.Error("Expected identical buffers for the same duration")
	}

	other := VideoBuffer(121)
	if bytes.Equal(first, other) {
		t.Error("Expected different filler for a different duration")
	}
}

func TestAudioBufferSize(t *testing.T) {
	// Below the floor: max(51200, 10*1000) = 51200
	if got := len(AudioBuffer(10)); got != 51200 {
		t.Errorf("Expected buffer size 51200 for duration 10, got %d", got)
	}

	// Above the floor: duration * 1000
	if got := len(AudioBuffer(300)); got != 300000 {
		t.Errorf("Expected buffer size 300000 for duration 300, got %d", got)
	}
}

func TestAudioBufferHeaderAndFiller(t *testing.T) {
	buf := AudioBuffer(10)

	if !bytes.Equal(buf[:10], []byte{'I', 'D', '3', 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}) {
		t.Errorf("Expected ID3 tag header, got % x", buf[:10])
	}

	if !bytes.Equal(buf[10:14], []byte{0xFF, 0xFB, 0x90, 0x00}) {
		t.Errorf("Expected MPEG frame sync at offset 10, got % x", buf[10:14])
	}

	// round(sin(i*0.1)*127 + 128) at a few offsets
	checks := map[int]byte{
		14:    253,
		100:   59,
		1000:  64,
		51199: 29,
	}

	for offset, want := range checks {
		if buf[offset] != want {
			t.Errorf("Expected byte %d at offset %d, got %d", want, offset, buf[offset])
		}
	}

	// The sine filler is independent of duration, so buffers of equal size
	// are identical.
	if !bytes.Equal(buf, AudioBuffer(10)) {
		t.Error("Expected identical audio buffers for the same duration")
	}
}

func TestMediaBufferMIME(t *testing.T) {
	buf, mime := MediaBuffer(model.FormatMP4, 60)
	if mime != "video/mp4" {
		t.Errorf("Expected MIME 'video/mp4', got '%s'", mime)
	}
	if len(buf) != 204800 {
		t.Errorf("Expected video buffer size 204800, got %d", len(buf))
	}

	buf, mime = MediaBuffer(model.FormatMP3, 60)
	if mime != "audio/mpeg" {
		t.Errorf("Expected MIME 'audio/mpeg', got '%s'", mime)
	}
	if len(buf) != 60000 {
		t.Errorf("Expected audio buffer size 60000, got %d", len(buf))
	}
}
