package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the clip export service and
// renders the loaded video, the trim selection, notifications, and export
// tasks. All UI strings are localized via Localization.
