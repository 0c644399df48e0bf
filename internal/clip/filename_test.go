package clip

import (
	"testing"

	"github.com/ytclip/yt-trimmer/internal/model"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Test: Video #1!", "Test_Video_1"},
		{"plain title", "plain_title"},
		{"  leading and trailing  ", "leading_and_trailing"},
		{"tabs\tand\nnewlines", "tabsandnewlines"},
		{"многоязычный title", "title"},
		{"!!!", "video"},
		{"", "video"},
	}

	for _, test := range tests {
		result := SanitizeTitle(test.input)
		if result != test.expected {
			t.Errorf("SanitizeTitle(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSanitizeTitleTruncation(t *testing.T) {
	long := ""
	for i := 0; i < 20; i++ {
		long += "abcdefgh "
	}

	result := SanitizeTitle(long)
	if len(result) > MaxTitleLength {
		t.Errorf("Expected at most %d characters, got %d", MaxTitleLength, len(result))
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{600, "10:00"},
		{1259, "20:59"},
		{-3, "00:00"},
	}

	for _, test := range tests {
		result := FormatTimestamp(test.seconds)
		if result != test.expected {
			t.Errorf("FormatTimestamp(%d) = %q, expected %q", test.seconds, result, test.expected)
		}
	}
}

func TestClipFileName(t *testing.T) {
	name := ClipFileName("Test: Video #1!", model.TrimRange{StartSec: 0, EndSec: 5}, model.FormatMP4)

	if name != "Test_Video_1_00:00-00:05.mp4" {
		t.Errorf("Expected 'Test_Video_1_00:00-00:05.mp4', got %q", name)
	}

	name = ClipFileName("Some Song", model.TrimRange{StartSec: 65, EndSec: 185}, model.FormatMP3)

	if name != "Some_Song_01:05-03:05.mp3" {
		t.Errorf("Expected 'Some_Song_01:05-03:05.mp3', got %q", name)
	}
}
