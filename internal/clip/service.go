package clip

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytclip/yt-trimmer/internal/model"
	"github.com/ytclip/yt-trimmer/internal/platform"
	"github.com/ytclip/yt-trimmer/internal/synth"
)

// Task ID constants
const (
	TaskIDPrefix = "clip-"
)

// Export pacing. The milestone walk is cosmetic: it simulates the progress
// of a processing step that in reality is instantaneous buffer synthesis.
// Once started it always runs to completion; there is no cancellation.
const (
	DefaultMilestoneDelay = 400 * time.Millisecond
)

// ProcessingMilestones are the discrete percentages the progress bar stops
// at during an export.
var ProcessingMilestones = []int{20, 40, 60, 80, 100}

// File permissions
const (
	ClipFilePermissions = 0644
)

// Service handles clip export operations
type Service struct {
	tasks          map[string]*model.ClipTask
	tasksMutex     sync.RWMutex
	maxParallel    int
	activeCount    int
	outputDir      string
	milestoneDelay time.Duration
	onUpdate       func(*model.ClipTask) // callback for UI updates
}

// NewService creates a new clip export service
func NewService(outputDir string, maxParallel int) *Service {
	return &Service{
		tasks:          make(map[string]*model.ClipTask),
		maxParallel:    maxParallel,
		outputDir:      outputDir,
		milestoneDelay: DefaultMilestoneDelay,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ClipTask)) {
	s.onUpdate = callback
}

// SetOutputDirectory sets the directory exported clips are written to
func (s *Service) SetOutputDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.outputDir = dir
}

// SetMaxParallelExports sets the maximum number of parallel exports
func (s *Service) SetMaxParallelExports(max int) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	if max < 1 {
		max = 1
	}
	s.maxParallel = max
}

// SetMilestoneDelay overrides the per-milestone pacing delay (used in tests)
func (s *Service) SetMilestoneDelay(delay time.Duration) {
	s.milestoneDelay = delay
}

// CreateClip validates the trim selection and queues a new export task.
// A selection whose end is not strictly after its start is rejected here,
// before any buffer is allocated.
func (s *Service) CreateClip(video model.VideoDescriptor, trim model.TrimRange, format model.ClipFormat) (*model.ClipTask, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported clip format: %s", format)
	}

	if err := trim.Validate(video.DurationSec); err != nil {
		return nil, fmt.Errorf("invalid trim range: %w", err)
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task := &model.ClipTask{
		ID:        generateTaskID(),
		Video:     video,
		Range:     trim,
		Format:    format,
		Status:    model.TaskStatusPending,
		Progress:  0.0,
		Percent:   0,
		StartedAt: time.Now(),
	}

	s.tasks[task.ID] = task

	// Start immediately if we have capacity
	if s.activeCount < s.maxParallel {
		task.Status = model.TaskStatusStarting
		go s.startTask(task)
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.ClipTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.ClipTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.ClipTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// RemoveTask removes a finished task from the service
func (s *Service) RemoveTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("task not found: %s", id)
	}

	if task.Status.IsActive() {
		return fmt.Errorf("cannot remove an active task: %s", task.Status)
	}

	delete(s.tasks, id)
	return nil
}

// startTask runs a queued export to completion
func (s *Service) startTask(task *model.ClipTask) {
	s.tasksMutex.Lock()
	s.activeCount++
	task.Status = model.TaskStatusStarting
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)

	defer func() {
		s.tasksMutex.Lock()
		s.activeCount--
		s.tasksMutex.Unlock()

		// Try to start next pending task
		s.startNextPendingTask()
	}()

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusProcessing
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	// Walk the milestone sequence. Each step just waits out its delay; the
	// actual buffer synthesis below is instantaneous.
	for _, percent := range ProcessingMilestones {
		time.Sleep(s.milestoneDelay)

		s.tasksMutex.Lock()
		task.Percent = percent
		task.Progress = float64(percent) / 100.0
		s.tasksMutex.Unlock()

		s.notifyUpdate(task)
	}

	outputPath, err := s.writeClip(task)

	s.tasksMutex.Lock()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.OutputPath = outputPath
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// writeClip synthesizes the media buffer and writes it to the output
// directory. The buffer lives only long enough to be flushed to disk.
func (s *Service) writeClip(task *model.ClipTask) (string, error) {
	s.tasksMutex.RLock()
	outputDir := s.outputDir
	s.tasksMutex.RUnlock()

	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	buf, mime := synth.MediaBuffer(task.Format, task.Video.DurationSec)
	fileName := ClipFileName(task.Video.Title, task.Range, task.Format)
	outputPath := filepath.Join(outputDir, fileName)

	if err := os.WriteFile(outputPath, buf, ClipFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write clip file: %w", err)
	}

	log.Printf("Exported clip %s (%s, %d bytes) to %s", task.ID, mime, len(buf), outputPath)
	return outputPath, nil
}

// startNextPendingTask starts the next pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return
	}

	for _, task := range s.tasks {
		if task.Status == model.TaskStatusPending {
			// Claim the task under the lock so concurrent finishers cannot
			// pick it twice.
			task.Status = model.TaskStatusStarting
			go s.startTask(task)
			return
		}
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ClipTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
