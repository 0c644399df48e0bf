package video

import (
	"errors"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch URL without www", "https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"v path URL", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts URL", "https://www.youtube.com/shorts/jNQXAC9IVRw", "jNQXAC9IVRw"},
		{"watch URL with extra params", "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ"},
		{"surrounding whitespace", "  https://youtu.be/dQw4w9WgXcQ  ", "dQw4w9WgXcQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.input)
			if err != nil {
				t.Fatalf("Expected no error for %q, got %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if len(got) != VideoIDLength {
				t.Errorf("Expected %d-character identifier, got %d", VideoIDLength, len(got))
			}
		})
	}
}

func TestExtractVideoIDEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := ExtractVideoID(input)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Expected ErrEmptyInput for %q, got %v", input, err)
		}
	}
}

func TestExtractVideoIDUnrecognized(t *testing.T) {
	inputs := []string{
		"not a url at all",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"https://vimeo.com/123456789",
		"https://www.youtube.com/watch?v=short",
		"https://www.youtube.com/",
		"youtube.com/watch?x=dQw4w9WgXcQ",
	}

	for _, input := range inputs {
		_, err := ExtractVideoID(input)
		if !errors.Is(err, ErrNoVideoID) {
			t.Errorf("Expected ErrNoVideoID for %q, got %v", input, err)
		}
	}
}
