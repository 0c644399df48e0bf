package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconCopy     = "📋"
	IconClose    = "×"
	IconError    = "❌"
	IconScissors = "✂"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Layout sizing (TaskRow / lists)
const (
	StatusLabelWidth  float32 = 84
	PercentLabelWidth float32 = 48

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 72
)

// Trim panel sizing
const (
	TrimSliderMinWidth float32 = 360
	ThumbnailWidth     float32 = 160
	ThumbnailHeight    float32 = 90
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
