package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytclip/yt-trimmer/internal/model"
	"github.com/ytclip/yt-trimmer/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir          = "output_directory"
	KeyDefaultFormat      = "default_clip_format"
	KeyMaxParallel        = "max_parallel_exports"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyLanguage           = "language"
)

// Default values
const (
	DefaultMaxParallel        = 2
	DefaultAutoRevealComplete = true
)

// DefaultClipFormat is the format preselected for new clips
const DefaultClipFormat = model.FormatMP4

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured clip output directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/clips"
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the clip output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetDefaultFormat returns the preselected clip format
func (s *Settings) GetDefaultFormat() model.ClipFormat {
	format := model.ClipFormat(s.app.Preferences().String(KeyDefaultFormat))
	if !format.IsValid() {
		s.SetDefaultFormat(DefaultClipFormat)
		return DefaultClipFormat
	}
	return format
}

// SetDefaultFormat sets the preselected clip format
func (s *Settings) SetDefaultFormat(format model.ClipFormat) {
	if !format.IsValid() {
		format = DefaultClipFormat
	}
	s.app.Preferences().SetString(KeyDefaultFormat, string(format))
}

// GetMaxParallelExports returns the maximum number of parallel exports
func (s *Settings) GetMaxParallelExports() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelExports(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelExports sets the maximum number of parallel exports
func (s *Settings) SetMaxParallelExports(count int) {
	if count < 1 {
		count = 1
	}
	if count > 4 {
		count = 4
	}
	s.app.Preferences().SetInt(KeyMaxParallel, count)
}

// GetFormatOptions returns the selectable clip formats
func (s *Settings) GetFormatOptions() []model.ClipFormat {
	return []model.ClipFormat{model.FormatMP4, model.FormatMP3}
}

// GetLanguage returns the configured interface language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, "system")
}

// SetLanguage sets the interface language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to auto-reveal exported clips
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to auto-reveal exported clips
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}
