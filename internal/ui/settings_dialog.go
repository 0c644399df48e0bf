package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytclip/yt-trimmer/internal/config"
	"github.com/ytclip/yt-trimmer/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	outputDirEntry   *widget.Entry
	maxParallelEntry *widget.Entry
	formatSelect     *widget.Select
	autoRevealCheck  *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Output directory selection
	sd.outputDirEntry = widget.NewEntry()
	sd.outputDirEntry.SetPlaceHolder("Output directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	// Max parallel exports
	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder("1-4")

	// Default format selection
	formatOptions := []string{}
	for _, format := range sd.settings.GetFormatOptions() {
		formatOptions = append(formatOptions, string(format))
	}
	sd.formatSelect = widget.NewSelect(formatOptions, nil)

	// Auto-reveal toggle
	sd.autoRevealCheck = widget.NewCheck(sd.localization.GetText(KeyAutoReveal), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyOutputDirectory)+":"),
		outputDirRow,

		widget.NewLabel(sd.localization.GetText(KeyMaxParallel)+":"),
		sd.maxParallelEntry,

		widget.NewLabel(sd.localization.GetText(KeyDefaultFormat)+":"),
		sd.formatSelect,

		widget.NewSeparator(),
		sd.autoRevealCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelExports()))
	sd.formatSelect.SetSelected(string(sd.settings.GetDefaultFormat()))
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save output directory
	if outputDir := sd.outputDirEntry.Text; outputDir != "" {
		sd.settings.SetOutputDirectory(outputDir)
	}

	// Validate and save max parallel exports
	if maxParallelStr := sd.maxParallelEntry.Text; maxParallelStr != "" {
		if maxParallel, err := strconv.Atoi(maxParallelStr); err == nil {
			sd.settings.SetMaxParallelExports(maxParallel)
		}
	}

	// Save default format
	if sd.formatSelect.Selected != "" {
		sd.settings.SetDefaultFormat(model.ClipFormat(sd.formatSelect.Selected))
	}

	// Save auto-reveal preference
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
