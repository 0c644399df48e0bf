package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/ytclip/yt-trimmer/internal/clip"
	"github.com/ytclip/yt-trimmer/internal/config"
	"github.com/ytclip/yt-trimmer/internal/model"
	"github.com/ytclip/yt-trimmer/internal/platform"
	"github.com/ytclip/yt-trimmer/internal/video"
)

// StatusFilter enumerates visible subsets of tasks in the UI.
// String() returns human-friendly names for the filter selector.
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterActive
	FilterCompleted
	FilterErrors
)

// String returns a display label for the filter
func (sf StatusFilter) String() string {
	switch sf {
	case FilterAll:
		return "All"
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	case FilterErrors:
		return "Errors"
	default:
		return "Unknown"
	}
}

// statusFilters is the selector order
var statusFilters = []StatusFilter{FilterAll, FilterActive, FilterCompleted, FilterErrors}

// RootUI represents the main UI structure
type RootUI struct {
	window        fyne.Window
	urlEntry      *widget.Entry
	loadBtn       *widget.Button
	trimPanel     *TrimPanel
	taskList      *widget.List
	filterSelect  *widget.Select
	currentFilter StatusFilter
	tasks         binding.UntypedList
	visibleTasks  []*model.ClipTask
	clipSvc       clip.Clipper
	metadata      *video.MetadataClient
	settings      *config.Settings
	localization  *Localization

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, clipSvc clip.Clipper) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the configured output directory exists
	outputDir := settings.GetOutputDirectory()
	platform.CreateDirectoryIfNotExists(outputDir)

	ui := &RootUI{
		window:       window,
		tasks:        binding.NewUntypedList(),
		clipSvc:      clipSvc,
		metadata:     video.NewMetadataClient(),
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized with clip service: %v", ui.clipSvc != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Push service configuration from preferences
	ui.clipSvc.SetOutputDirectory(outputDir)
	ui.clipSvc.SetMaxParallelExports(settings.GetMaxParallelExports())

	// Set up callback for export updates
	ui.clipSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	// Trigger loading when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onLoadClick()
	}

	// Create load button
	ui.loadBtn = widget.NewButton(ui.localization.GetText(KeyLoad), ui.onLoadClick)

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create top panel (URL row)
	topPanel := container.NewBorder(nil, nil, container.NewHBox(settingsBtn), ui.loadBtn, ui.urlEntry)

	// Create notification panel under URL input (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Create trim panel (disabled until a video loads)
	ui.trimPanel = NewTrimPanel(ui.localization, ui.settings.GetDefaultFormat())
	ui.trimPanel.SetOnDownload(ui.onDownloadClip)

	// Combine URL row, notification panel and trim panel at the top
	topCombined := container.NewVBox(topPanel, ui.notificationContainer, ui.trimPanel.Container(), widget.NewSeparator())

	// Create export task list
	ui.taskList = widget.NewList(
		func() int {
			return len(ui.visibleTasks)
		},
		func() fyne.CanvasObject { return ui.createTaskItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateTaskItem(id, obj) },
	)

	// Create status filter selector
	ui.currentFilter = FilterAll
	filterNames := make([]string, len(statusFilters))
	for i, filter := range statusFilters {
		filterNames[i] = filter.String()
	}
	ui.filterSelect = widget.NewSelect(filterNames, ui.onFilterChanged)
	ui.filterSelect.SetSelected(FilterAll.String())
	filterRow := container.NewHBox(ui.filterSelect)

	// Create main layout
	content := container.NewBorder(
		container.NewVBox(topCombined, filterRow), // top
		nil,                                       // bottom
		nil,                                       // left
		nil,                                       // right
		ui.taskList,                               // center - export list
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.loadBtn.SetText(ui.localization.GetText(KeyLoad))
	ui.trimPanel.RefreshTexts()

	// Refresh task list to update button texts
	ui.taskList.Refresh()
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onLoadClick handles the load button click
func (ui *RootUI) onLoadClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterURL), false)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPleaseEnterURL)), ui.window.Canvas())
		return
	}

	if err := ui.validateURL(urlText); err != nil {
		ui.showNotification(ui.localization.GetText(KeyInvalidURL)+": "+err.Error(), false)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyInvalidURL)+": "+err.Error()), ui.window.Canvas())
		return
	}

	// Clean URL from any special characters that might cause display issues
	cleanURL := strings.ReplaceAll(urlText, "\n", "")
	cleanURL = strings.ReplaceAll(cleanURL, "\r", "")
	cleanURL = strings.ReplaceAll(cleanURL, "\t", " ")
	cleanURL = strings.TrimSpace(cleanURL)

	log.Printf("Loading video for URL: %s", cleanURL)

	ui.showNotification(ui.localization.GetText(KeyLoadingVideo), true)

	// Resolve the descriptor in the background; title lookup may hit the network
	go func() {
		descriptor, err := ui.metadata.LoadDescriptor(context.Background(), cleanURL)

		if err != nil {
			log.Printf("Video load failed for %s: %v", cleanURL, err)
			ui.showNotification(ui.localization.GetText(KeyInvalidURL)+": "+err.Error(), false)
			return
		}

		fyne.Do(func() {
			log.Printf("Video loaded: id=%s title=%q duration=%ds",
				descriptor.ID, descriptor.Title, descriptor.DurationSec)

			ui.trimPanel.SetVideo(*descriptor)
			ui.urlEntry.SetText("")
			ui.showNotification(fmt.Sprintf("%s: %s (%s)",
				ui.localization.GetText(KeyVideoLoaded), descriptor.Title,
				formatSeconds(descriptor.DurationSec)), false)
		})

		// Thumbnail is decorative; failures just leave the placeholder
		thumb, thumbErr := ui.metadata.FetchThumbnail(context.Background(), descriptor.ID)
		if thumbErr != nil {
			log.Printf("Thumbnail fetch failed for %s: %v", descriptor.ID, thumbErr)
			return
		}
		fyne.Do(func() {
			ui.trimPanel.SetThumbnail(thumb)
		})
	}()
}

// onDownloadClip handles an export request from the trim panel
func (ui *RootUI) onDownloadClip(videoDesc model.VideoDescriptor, trim model.TrimRange, format model.ClipFormat) {
	log.Printf("Export requested: video=%s range=%d-%d format=%s",
		videoDesc.ID, trim.StartSec, trim.EndSec, format)

	task, err := ui.clipSvc.CreateClip(videoDesc, trim, format)
	if err != nil {
		log.Printf("Failed to create export task: %v", err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyInvalidTrimRange)+": "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("Export task created: ID=%s, Status=%s", task.ID, task.Status)

	// Add to UI task list
	ui.tasks.Append(task)
	ui.updateVisibleTasks()
	ui.taskList.Refresh()

	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyExportStarted)), ui.window.Canvas())
}

// showNotification displays a message in the notification panel under the URL input.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Propagate saved preferences to the export service
		ui.clipSvc.SetOutputDirectory(ui.settings.GetOutputDirectory())
		ui.clipSvc.SetMaxParallelExports(ui.settings.GetMaxParallelExports())
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// createTaskItem creates a new task item widget
func (ui *RootUI) createTaskItem() fyne.CanvasObject {
	// Create placeholder task row - will be updated in updateTaskItem
	dummyTask := &model.ClipTask{
		ID:     "placeholder",
		Status: model.TaskStatusPending,
	}

	taskRow := NewTaskRow(dummyTask, ui.localization)
	taskRow.SetCallbacks(
		ui.onRevealFile,
		ui.onOpenFile,
		ui.onCopyPath,
		ui.onRemoveTask,
	)

	return taskRow
}

// updateTaskItem updates a task item with current data
func (ui *RootUI) updateTaskItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.visibleTasks) {
		return
	}

	task := ui.visibleTasks[id]
	if task == nil {
		return
	}

	if taskRow, ok := item.(*TaskRow); ok {
		// Re-set callbacks so recycled rows point at the right handlers
		taskRow.SetCallbacks(
			ui.onRevealFile,
			ui.onOpenFile,
			ui.onCopyPath,
			ui.onRemoveTask,
		)

		taskRow.UpdateTask(task)
	}
}

// onFilterChanged handles a new selection in the status filter
func (ui *RootUI) onFilterChanged(selected string) {
	for _, filter := range statusFilters {
		if filter.String() == selected {
			ui.currentFilter = filter
			break
		}
	}
	ui.updateVisibleTasks()
	ui.taskList.Refresh()
}

// shouldShowTask returns whether a task passes the current status filter
func (ui *RootUI) shouldShowTask(task *model.ClipTask) bool {
	switch ui.currentFilter {
	case FilterActive:
		return task.Status.IsActive() || task.Status == model.TaskStatusPending
	case FilterCompleted:
		return task.Status == model.TaskStatusCompleted
	case FilterErrors:
		return task.Status == model.TaskStatusError
	default:
		return true
	}
}

// updateVisibleTasks rebuilds the visible task slice from the binding list
func (ui *RootUI) updateVisibleTasks() {
	ui.visibleTasks = nil

	length := ui.tasks.Length()
	for i := 0; i < length; i++ {
		item, err := ui.tasks.GetValue(i)
		if err != nil {
			continue
		}

		if task, ok := item.(*model.ClipTask); ok && ui.shouldShowTask(task) {
			ui.visibleTasks = append(ui.visibleTasks, task)
		}
	}
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	log.Printf("onRevealFile called for path: %s", filePath)

	if filePath == "" {
		widget.ShowPopUp(widget.NewLabel("Error: No file path provided"), ui.window.Canvas())
		return
	}

	err := platform.OpenFileInManager(filePath)
	if err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("File revealed successfully: %s", filePath)
}

// onOpenFile handles opening an exported clip with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	log.Printf("onOpenFile called for path: %s", filePath)

	if filePath == "" {
		widget.ShowPopUp(widget.NewLabel("Error: No file path provided"), ui.window.Canvas())
		return
	}

	err := platform.OpenFileWithDefaultApp(filePath)
	if err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("File opened successfully: %s", filePath)
}

// onCopyPath handles copying file path to clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	if filePath == "" {
		widget.ShowPopUp(widget.NewLabel("Error: No file path provided"), ui.window.Canvas())
		return
	}

	clipboard := fyne.CurrentApp().Clipboard()
	clipboard.SetContent(filePath)
	widget.ShowPopUp(widget.NewLabel("Path copied to clipboard"), ui.window.Canvas())
}

// onRemoveTask handles removing a task from the list
func (ui *RootUI) onRemoveTask(taskID string) {
	log.Printf("onRemoveTask called for task %s", taskID)

	err := ui.clipSvc.RemoveTask(taskID)
	if err != nil {
		log.Printf("Error removing task %s: %v", taskID, err)
		widget.ShowPopUp(widget.NewLabel("Error removing task: "+err.Error()), ui.window.Canvas())
		return
	}

	// Remove from UI binding list
	length := ui.tasks.Length()
	for i := 0; i < length; i++ {
		item, err := ui.tasks.GetValue(i)
		if err != nil {
			continue
		}

		if task, ok := item.(*model.ClipTask); ok && task.ID == taskID {
			newTasks := binding.NewUntypedList()
			for j := 0; j < length; j++ {
				if j != i {
					item, err := ui.tasks.GetValue(j)
					if err == nil {
						newTasks.Append(item)
					}
				}
			}
			ui.tasks = newTasks
			ui.updateVisibleTasks()
			ui.taskList.Refresh()
			log.Printf("Task %s removed from UI list", taskID)
			break
		}
	}
}

// debouncedUIUpdate prevents excessive UI updates by limiting frequency
func (ui *RootUI) debouncedUIUpdate() {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return // Skip update if too soon
	}

	ui.lastUIUpdate = now
}

// onTaskUpdate handles task updates from the export service
func (ui *RootUI) onTaskUpdate(task *model.ClipTask) {
	log.Printf("Task update received: id=%s status=%s percent=%d progress=%.2f output=%s",
		task.ID, task.Status, task.Percent, task.Progress, task.OutputPath)

	// Check if task just completed for notification
	wasCompleted := false

	length := ui.tasks.Length()
	for i := 0; i < length; i++ {
		item, err := ui.tasks.GetValue(i)
		if err != nil {
			continue
		}

		if existingTask, ok := item.(*model.ClipTask); ok && existingTask.ID == task.ID {
			if existingTask.Status != model.TaskStatusCompleted && task.Status == model.TaskStatusCompleted {
				wasCompleted = true
				log.Printf("Task %s completed, OutputPath: %s", task.ID, task.OutputPath)
			}
			ui.tasks.SetValue(i, task)
			break
		}
	}

	// Send notification for completed exports
	if wasCompleted {
		ui.sendCompletionNotification(task)

		// Auto-reveal if enabled
		if ui.settings.GetAutoRevealOnComplete() && task.OutputPath != "" {
			log.Printf("Auto-revealing completed task %s: %s", task.ID, task.OutputPath)
			ui.onRevealFile(task.OutputPath)
		}
	}

	ui.updateVisibleTasks()

	// Use debounced UI update to prevent excessive refreshes
	ui.debouncedUIUpdate()

	// Refresh the list to update UI - must be done in UI thread
	fyne.Do(func() {
		ui.taskList.Refresh()
		for i, visibleTask := range ui.visibleTasks {
			if visibleTask.ID == task.ID {
				ui.taskList.RefreshItem(i)
				break
			}
		}
	})
}

// sendCompletionNotification sends a system notification for completed exports
func (ui *RootUI) sendCompletionNotification(task *model.ClipTask) {
	if task.Status != model.TaskStatusCompleted {
		return
	}

	title := ui.localization.GetText(KeyExportCompleted)
	message := task.GetDisplayTitle()

	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   title,
		Content: message,
	})

	// Show in-app toast notification with action button
	ui.showToastNotification(task)
}

// showToastNotification shows an in-app toast notification with action buttons
func (ui *RootUI) showToastNotification(task *model.ClipTask) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyExportCompleted))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(task.GetDisplayTitle())
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
		if task.OutputPath != "" {
			ui.onRevealFile(task.OutputPath)
		} else {
			widget.ShowPopUp(widget.NewLabel("File path not available"), ui.window.Canvas())
		}
	})
	revealBtn.Importance = widget.HighImportance

	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		if task.OutputPath != "" {
			ui.onOpenFile(task.OutputPath)
		} else {
			widget.ShowPopUp(widget.NewLabel("File path not available"), ui.window.Canvas())
		}
	})
	openBtn.Importance = widget.MediumImportance

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	actions := container.NewHBox(revealBtn, openBtn)
	content := container.NewVBox(
		header,
		messageLabel,
		actions,
	)

	toastPopup = widget.NewModalPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		if toastPopup != nil {
			toastPopup.Hide()
		}
	}()
}
