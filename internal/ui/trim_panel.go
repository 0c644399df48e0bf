package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytclip/yt-trimmer/internal/model"
)

// TrimPanel owns the trim selection state for the currently loaded video:
// start/end sliders, their mm:ss labels, the format choice, and the
// download button. The selection resets to the full duration whenever a
// new video is set.
type TrimPanel struct {
	localization *Localization

	video model.VideoDescriptor
	trim  model.TrimRange

	// UI components
	titleLabel    *widget.Label
	durationLabel *widget.Label
	thumbnail     *canvas.Image
	startSlider   *widget.Slider
	endSlider     *widget.Slider
	startLabel    *widget.Label
	endLabel      *widget.Label
	formatRadio   *widget.RadioGroup
	downloadBtn   *widget.Button
	panel         *fyne.Container

	// Guards against slider callback feedback while clamping
	updating bool

	// Callback invoked when the user requests an export
	onDownload func(video model.VideoDescriptor, trim model.TrimRange, format model.ClipFormat)
}

// NewTrimPanel creates the trim panel in its empty (no video) state
func NewTrimPanel(localization *Localization, defaultFormat model.ClipFormat) *TrimPanel {
	tp := &TrimPanel{
		localization: localization,
	}

	tp.createUI(defaultFormat)
	tp.setEnabled(false)
	return tp
}

// SetOnDownload sets the export request callback
func (tp *TrimPanel) SetOnDownload(callback func(model.VideoDescriptor, model.TrimRange, model.ClipFormat)) {
	tp.onDownload = callback
}

// Container returns the root container of the panel
func (tp *TrimPanel) Container() fyne.CanvasObject {
	return tp.panel
}

// SetVideo replaces the current video and resets the trim selection to the
// full duration.
func (tp *TrimPanel) SetVideo(video model.VideoDescriptor) {
	tp.video = video
	tp.trim = model.NewFullRange(video.DurationSec)

	tp.updating = true
	tp.startSlider.Max = float64(video.DurationSec)
	tp.endSlider.Max = float64(video.DurationSec)
	tp.startSlider.SetValue(0)
	tp.endSlider.SetValue(float64(video.DurationSec))
	tp.updating = false

	// Drop the previous thumbnail; the caller fetches the new one
	tp.thumbnail.Resource = nil
	tp.thumbnail.Refresh()

	tp.titleLabel.SetText(video.Title)
	tp.durationLabel.SetText(fmt.Sprintf("%s: %s",
		tp.localization.GetText(KeyDuration), formatSeconds(video.DurationSec)))

	tp.refreshRangeLabels()
	tp.setEnabled(true)
}

// Video returns the currently loaded descriptor
func (tp *TrimPanel) Video() model.VideoDescriptor {
	return tp.video
}

// Range returns the current trim selection
func (tp *TrimPanel) Range() model.TrimRange {
	return tp.trim
}

// Format returns the currently selected clip format
func (tp *TrimPanel) Format() model.ClipFormat {
	if tp.formatRadio.Selected == string(model.FormatMP3) {
		return model.FormatMP3
	}
	return model.FormatMP4
}

// createUI creates the panel components
func (tp *TrimPanel) createUI(defaultFormat model.ClipFormat) {
	tp.titleLabel = widget.NewLabel(tp.localization.GetText(KeyNoVideoLoaded))
	tp.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tp.titleLabel.Wrapping = fyne.TextWrapWord

	tp.durationLabel = widget.NewLabel(DashPlaceholder)

	tp.thumbnail = &canvas.Image{FillMode: canvas.ImageFillContain}
	tp.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))

	tp.startLabel = widget.NewLabel("00:00")
	tp.startLabel.TextStyle = fyne.TextStyle{Monospace: true}
	tp.endLabel = widget.NewLabel("00:00")
	tp.endLabel.TextStyle = fyne.TextStyle{Monospace: true}

	tp.startSlider = widget.NewSlider(0, 1)
	tp.startSlider.Step = 1
	tp.startSlider.OnChanged = tp.onStartChanged

	tp.endSlider = widget.NewSlider(0, 1)
	tp.endSlider.Step = 1
	tp.endSlider.OnChanged = tp.onEndChanged

	tp.formatRadio = widget.NewRadioGroup(
		[]string{string(model.FormatMP4), string(model.FormatMP3)}, nil)
	tp.formatRadio.Horizontal = true
	tp.formatRadio.SetSelected(string(defaultFormat))

	tp.downloadBtn = widget.NewButton(IconScissors+" "+tp.localization.GetText(KeyDownloadClip), tp.onDownloadClick)
	tp.downloadBtn.Importance = widget.HighImportance

	startRow := container.NewBorder(nil, nil,
		widget.NewLabel(tp.localization.GetText(KeyTrimStart)), tp.startLabel, tp.startSlider)
	endRow := container.NewBorder(nil, nil,
		widget.NewLabel(tp.localization.GetText(KeyTrimEnd)), tp.endLabel, tp.endSlider)

	formatRow := container.NewHBox(
		widget.NewLabel(tp.localization.GetText(KeyFormat)),
		tp.formatRadio,
	)

	infoColumn := container.NewVBox(tp.titleLabel, tp.durationLabel)
	infoRow := container.NewBorder(nil, nil, tp.thumbnail, nil, infoColumn)

	tp.panel = container.NewVBox(
		infoRow,
		widget.NewSeparator(),
		startRow,
		endRow,
		formatRow,
		tp.downloadBtn,
	)
}

// onStartChanged keeps the selection ordered while the start slider moves
func (tp *TrimPanel) onStartChanged(value float64) {
	if tp.updating {
		return
	}

	start := int(value)
	if start >= tp.trim.EndSec {
		// Never allow the handles to cross
		start = tp.trim.EndSec - 1
		if start < 0 {
			start = 0
		}
		tp.updating = true
		tp.startSlider.SetValue(float64(start))
		tp.updating = false
	}

	tp.trim.StartSec = start
	tp.refreshRangeLabels()
}

// onEndChanged keeps the selection ordered while the end slider moves
func (tp *TrimPanel) onEndChanged(value float64) {
	if tp.updating {
		return
	}

	end := int(value)
	if end <= tp.trim.StartSec {
		end = tp.trim.StartSec + 1
		if end > tp.video.DurationSec {
			end = tp.video.DurationSec
		}
		tp.updating = true
		tp.endSlider.SetValue(float64(end))
		tp.updating = false
	}

	tp.trim.EndSec = end
	tp.refreshRangeLabels()
}

// SetThumbnail shows the fetched preview image. A nil or empty payload
// leaves the placeholder in place.
func (tp *TrimPanel) SetThumbnail(data []byte) {
	if len(data) == 0 {
		return
	}
	tp.thumbnail.Resource = fyne.NewStaticResource(tp.video.ID+".jpg", data)
	tp.thumbnail.Refresh()
}

// onDownloadClick forwards the export request to the callback
func (tp *TrimPanel) onDownloadClick() {
	if tp.onDownload != nil {
		tp.onDownload(tp.video, tp.trim, tp.Format())
	}
}

// refreshRangeLabels updates the mm:ss labels next to the sliders
func (tp *TrimPanel) refreshRangeLabels() {
	tp.startLabel.SetText(formatSeconds(tp.trim.StartSec))
	tp.endLabel.SetText(formatSeconds(tp.trim.EndSec))
}

// setEnabled toggles the interactive widgets
func (tp *TrimPanel) setEnabled(enabled bool) {
	if enabled {
		tp.downloadBtn.Enable()
		tp.formatRadio.Enable()
	} else {
		tp.downloadBtn.Disable()
		tp.formatRadio.Disable()
	}
}

// RefreshTexts updates the panel texts after a language change
func (tp *TrimPanel) RefreshTexts() {
	tp.downloadBtn.SetText(IconScissors + " " + tp.localization.GetText(KeyDownloadClip))
	if tp.video.ID == "" {
		tp.titleLabel.SetText(tp.localization.GetText(KeyNoVideoLoaded))
	}
}

// formatSeconds renders whole seconds as mm:ss
func formatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
