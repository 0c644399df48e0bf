package model

import (
	"fmt"
	"strings"
	"time"
)

// ClipTask represents a single clip export attempt
type ClipTask struct {
	ID         string
	Video      VideoDescriptor
	Range      TrimRange
	Format     ClipFormat
	Status     TaskStatus
	Progress   float64   // 0.0 to 1.0
	Percent    int       // 0 to 100
	LastError  string    // last error message if any
	OutputPath string    // path to the exported clip file
	StartedAt  time.Time // when the export was queued
	FinishedAt time.Time // when the export finished
}

// GetDisplayTitle returns the video title, falling back to the identifier
func (ct *ClipTask) GetDisplayTitle() string {
	if strings.TrimSpace(ct.Video.Title) != "" {
		return ct.Video.Title
	}
	if ct.Video.ID != "" {
		return ct.Video.ID
	}
	return ""
}

// GetRangeString returns the selected range as "mm:ss–mm:ss"
func (ct *ClipTask) GetRangeString() string {
	return formatClock(ct.Range.StartSec) + "–" + formatClock(ct.Range.EndSec)
}

// GetElapsedString returns how long the export has been running, or "—"
// before it starts.
func (ct *ClipTask) GetElapsedString() string {
	if ct.StartedAt.IsZero() {
		return "—"
	}
	end := ct.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(ct.StartedAt).Round(time.Second).String()
}

// formatClock renders whole seconds as mm:ss (minutes are not capped at 59)
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
