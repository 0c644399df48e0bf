package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytclip/yt-trimmer/internal/model"
)

// TaskRow represents a compact export task row widget
type TaskRow struct {
	widget.BaseWidget

	task         *model.ClipTask
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	rangeLabel  *widget.Label
	statusLabel *widget.Label
	progressBar *widget.ProgressBar

	// Action buttons
	revealBtn *widget.Button // reveal in file manager
	openBtn   *widget.Button // open file with default app
	copyBtn   *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
	onRemove   func(taskID string)
}

// NewTaskRow creates a new task row widget
func NewTaskRow(task *model.ClipTask, localization *Localization) *TaskRow {
	tr := &TaskRow{
		task:         task,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TaskRow) SetCallbacks(
	onReveal func(filePath string),
	onOpen func(filePath string),
	onCopyPath func(filePath string),
	onRemove func(taskID string),
) {
	tr.onReveal = onReveal
	tr.onOpen = onOpen
	tr.onCopyPath = onCopyPath
	tr.onRemove = onRemove
}

// UpdateTask updates the row with new task data
func (tr *TaskRow) UpdateTask(task *model.ClipTask) {
	if task == nil {
		return
	}

	tr.task = task
	tr.updateFromTask()
	tr.Refresh()
}

// createUI creates the UI components
func (tr *TaskRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	tr.titleLabel.Alignment = fyne.TextAlignLeading

	tr.rangeLabel = widget.NewLabel("")
	tr.rangeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing

	tr.progressBar = widget.NewProgressBar()

	tr.revealBtn = widget.NewButton(IconFolder, func() {
		if tr.onReveal != nil && tr.task.OutputPath != "" {
			tr.onReveal(tr.task.OutputPath)
		}
	})
	tr.revealBtn.Importance = widget.LowImportance

	tr.openBtn = widget.NewButton(IconFile, func() {
		if tr.onOpen != nil && tr.task.OutputPath != "" {
			tr.onOpen(tr.task.OutputPath)
		}
	})
	tr.openBtn.Importance = widget.LowImportance

	tr.copyBtn = widget.NewButton(IconCopy, func() {
		if tr.onCopyPath != nil && tr.task.OutputPath != "" {
			tr.onCopyPath(tr.task.OutputPath)
		}
	})
	tr.copyBtn.Importance = widget.LowImportance

	tr.removeBtn = widget.NewButton(IconClose, func() {
		if tr.onRemove != nil {
			tr.onRemove(tr.task.ID)
		}
	})
	tr.removeBtn.Importance = widget.LowImportance
}

// updateFromTask refreshes the widgets from the current task state
func (tr *TaskRow) updateFromTask() {
	title := tr.task.GetDisplayTitle()
	tr.titleLabel.SetText(title)

	tr.rangeLabel.SetText(tr.task.GetRangeString() + MiddleDotSeparator + strings.ToUpper(tr.task.Format.Ext()))

	switch tr.task.Status {
	case model.TaskStatusError:
		tr.statusLabel.SetText(IconError + " " + tr.task.Status.String())
	default:
		tr.statusLabel.SetText(tr.task.Status.String())
	}

	tr.progressBar.SetValue(tr.task.Progress)
	tr.progressBar.TextFormatter = func() string {
		return fmt.Sprintf(ProgressLabelFormat, tr.task.Percent)
	}

	// File actions only make sense for a completed export
	if tr.task.Status == model.TaskStatusCompleted && tr.task.OutputPath != "" {
		tr.revealBtn.Enable()
		tr.openBtn.Enable()
		tr.copyBtn.Enable()
	} else {
		tr.revealBtn.Disable()
		tr.openBtn.Disable()
		tr.copyBtn.Disable()
	}

	// Removal is only allowed once the task settled
	if tr.task.Status.IsFinished() {
		tr.removeBtn.Enable()
	} else {
		tr.removeBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	actions := container.NewHBox(tr.revealBtn, tr.openBtn, tr.copyBtn, tr.removeBtn)

	header := container.NewBorder(nil, nil, nil, tr.statusLabel, tr.titleLabel)
	detail := container.NewBorder(nil, nil, tr.rangeLabel, actions, tr.progressBar)

	content := container.NewVBox(header, detail)
	return widget.NewSimpleRenderer(content)
}

// MinSize returns the minimum row size
func (tr *TaskRow) MinSize() fyne.Size {
	min := tr.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
