package model

import (
	"testing"
	"time"
)

func TestClipTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		videoID  string
		expected string
	}{
		{"Video Title", "dQw4w9WgXcQ", "Video Title"},
		{"", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"   ", "jNQXAC9IVRw", "jNQXAC9IVRw"},
		{"", "", ""},
	}

	for _, test := range tests {
		task := &ClipTask{
			Video: VideoDescriptor{
				ID:    test.videoID,
				Title: test.title,
			},
		}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title='%s', id='%s' = '%s', expected '%s'",
				test.title, test.videoID, result, test.expected)
		}
	}
}

func TestClipTask_GetRangeString(t *testing.T) {
	tests := []struct {
		start    int
		end      int
		expected string
	}{
		{0, 30, "00:00–00:30"},
		{90, 185, "01:30–03:05"},
		{0, 1259, "00:00–20:59"},
		{3600, 3725, "60:00–62:05"},
	}

	for _, test := range tests {
		task := &ClipTask{
			Range: TrimRange{StartSec: test.start, EndSec: test.end},
		}
		result := task.GetRangeString()
		if result != test.expected {
			t.Errorf("GetRangeString() with range %d-%d = '%s', expected '%s'",
				test.start, test.end, result, test.expected)
		}
	}
}

func TestClipTask_GetElapsedString(t *testing.T) {
	task := &ClipTask{}
	if result := task.GetElapsedString(); result != "—" {
		t.Errorf("GetElapsedString() before start = '%s', expected '—'", result)
	}

	started := time.Now().Add(-10 * time.Second)
	task = &ClipTask{
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
	}
	if result := task.GetElapsedString(); result != "3s" {
		t.Errorf("GetElapsedString() for finished task = '%s', expected '3s'", result)
	}
}

func TestClipTask_Creation(t *testing.T) {
	now := time.Now()
	task := &ClipTask{
		ID:        "clip-123",
		Video:     VideoDescriptor{ID: "dQw4w9WgXcQ", DurationSec: 1257},
		Range:     TrimRange{StartSec: 0, EndSec: 30},
		Format:    FormatMP4,
		Status:    TaskStatusPending,
		Progress:  0.0,
		Percent:   0,
		StartedAt: now,
	}

	if task.ID != "clip-123" {
		t.Errorf("Expected ID to be 'clip-123', got '%s'", task.ID)
	}

	if task.Status != TaskStatusPending {
		t.Errorf("Expected status to be TaskStatusPending, got %s", task.Status)
	}

	if !task.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt to be %v, got %v", now, task.StartedAt)
	}
}
