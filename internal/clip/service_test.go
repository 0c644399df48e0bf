package clip

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ytclip/yt-trimmer/internal/model"
)

func testDescriptor() model.VideoDescriptor {
	return model.VideoDescriptor{
		ID:          "dQw4w9WgXcQ",
		Title:       "Test: Video #1!",
		DurationSec: 300,
	}
}

func waitForFinish(t *testing.T, service *Service, id string) *model.ClipTask {
	t.Helper()

	for attempt := 0; attempt < 50; attempt++ {
		task, exists := service.GetTask(id)
		if !exists {
			t.Fatalf("Task %s disappeared while waiting", id)
		}
		if task.Status.IsFinished() {
			return task
		}
		time.Sleep(20 * time.Millisecond)
	}

	t.Fatalf("Task %s did not finish in time", id)
	return nil
}

func TestNewService(t *testing.T) {
	service := NewService("/tmp", 2)

	if service.outputDir != "/tmp" {
		t.Errorf("Expected outputDir to be '/tmp', got '%s'", service.outputDir)
	}

	if service.maxParallel != 2 {
		t.Errorf("Expected maxParallel to be 2, got %d", service.maxParallel)
	}

	if len(service.tasks) != 0 {
		t.Errorf("Expected empty tasks map, got %d items", len(service.tasks))
	}
}

func TestCreateClipRejectsInvalidRange(t *testing.T) {
	service := NewService(t.TempDir(), 1)

	invalidRanges := []model.TrimRange{
		{StartSec: 10, EndSec: 10},
		{StartSec: 20, EndSec: 10},
		{StartSec: -5, EndSec: 10},
		{StartSec: 0, EndSec: 301},
	}

	for _, trim := range invalidRanges {
		if _, err := service.CreateClip(testDescriptor(), trim, model.FormatMP4); err == nil {
			t.Errorf("Expected error for range %+v, got nil", trim)
		}
	}

	// Nothing may be queued after rejected requests
	if tasks := service.GetAllTasks(); len(tasks) != 0 {
		t.Errorf("Expected no tasks after rejections, got %d", len(tasks))
	}
}

func TestCreateClipRejectsUnknownFormat(t *testing.T) {
	service := NewService(t.TempDir(), 1)

	_, err := service.CreateClip(testDescriptor(), model.TrimRange{StartSec: 0, EndSec: 5}, model.ClipFormat("wav"))
	if err == nil {
		t.Error("Expected error for unsupported format, got nil")
	}
}

func TestCreateClipExportsVideoFile(t *testing.T) {
	outDir := t.TempDir()
	service := NewService(outDir, 1)
	service.SetMilestoneDelay(0)

	task, err := service.CreateClip(testDescriptor(), model.TrimRange{StartSec: 0, EndSec: 5}, model.FormatMP4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.HasPrefix(task.ID, TaskIDPrefix) {
		t.Errorf("Expected ID with prefix %q, got %q", TaskIDPrefix, task.ID)
	}

	finished := waitForFinish(t, service, task.ID)

	if finished.Status != model.TaskStatusCompleted {
		t.Fatalf("Expected Completed, got %s (%s)", finished.Status, finished.LastError)
	}

	if finished.Percent != 100 {
		t.Errorf("Expected final percent 100, got %d", finished.Percent)
	}

	wantPath := filepath.Join(outDir, "Test_Video_1_00:00-00:05.mp4")
	if finished.OutputPath != wantPath {
		t.Errorf("Expected output path %q, got %q", wantPath, finished.OutputPath)
	}

	info, err := os.Stat(finished.OutputPath)
	if err != nil {
		t.Fatalf("Expected exported file to exist, got %v", err)
	}

	if info.Size() != 204800 {
		t.Errorf("Expected 204800-byte video clip, got %d", info.Size())
	}
}

func TestCreateClipExportsAudioFile(t *testing.T) {
	outDir := t.TempDir()
	service := NewService(outDir, 1)
	service.SetMilestoneDelay(0)

	desc := testDescriptor()
	desc.DurationSec = 10

	task, err := service.CreateClip(desc, model.TrimRange{StartSec: 2, EndSec: 8}, model.FormatMP3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	finished := waitForFinish(t, service, task.ID)

	if finished.Status != model.TaskStatusCompleted {
		t.Fatalf("Expected Completed, got %s (%s)", finished.Status, finished.LastError)
	}

	if filepath.Base(finished.OutputPath) != "Test_Video_1_00:02-00:08.mp3" {
		t.Errorf("Unexpected output filename %q", filepath.Base(finished.OutputPath))
	}

	info, err := os.Stat(finished.OutputPath)
	if err != nil {
		t.Fatalf("Expected exported file to exist, got %v", err)
	}

	if info.Size() != 51200 {
		t.Errorf("Expected 51200-byte audio clip, got %d", info.Size())
	}
}

func TestMilestoneProgression(t *testing.T) {
	service := NewService(t.TempDir(), 1)
	service.SetMilestoneDelay(0)

	var mu sync.Mutex
	var percents []int
	service.SetUpdateCallback(func(task *model.ClipTask) {
		mu.Lock()
		defer mu.Unlock()
		if task.Status == model.TaskStatusProcessing && task.Percent > 0 {
			percents = append(percents, task.Percent)
		}
	})

	task, err := service.CreateClip(testDescriptor(), model.TrimRange{StartSec: 0, EndSec: 5}, model.FormatMP4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	waitForFinish(t, service, task.ID)

	mu.Lock()
	defer mu.Unlock()

	if len(percents) != len(ProcessingMilestones) {
		t.Fatalf("Expected %d milestone updates, got %d (%v)", len(ProcessingMilestones), len(percents), percents)
	}

	for i, want := range ProcessingMilestones {
		if percents[i] != want {
			t.Errorf("Expected milestone %d at step %d, got %d", want, i, percents[i])
		}
	}
}

func TestExportErrorLeavesTaskInErrorState(t *testing.T) {
	// An unwritable output directory fails the export but must not panic or
	// affect other state.
	badDir := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(badDir, []byte("not a directory"), 0644); err != nil {
		t.Fatalf("Failed to set up blocking file: %v", err)
	}

	service := NewService(filepath.Join(badDir, "clips"), 1)
	service.SetMilestoneDelay(0)

	task, err := service.CreateClip(testDescriptor(), model.TrimRange{StartSec: 0, EndSec: 5}, model.FormatMP4)
	if err != nil {
		t.Fatalf("Expected no error at queue time, got %v", err)
	}

	finished := waitForFinish(t, service, task.ID)

	if finished.Status != model.TaskStatusError {
		t.Errorf("Expected Error status, got %s", finished.Status)
	}

	if finished.LastError == "" {
		t.Error("Expected a recorded error message")
	}
}

func TestQueuedTasksRunAfterCapacityFrees(t *testing.T) {
	service := NewService(t.TempDir(), 1)
	service.SetMilestoneDelay(time.Millisecond)

	desc := testDescriptor()
	first, err := service.CreateClip(desc, model.TrimRange{StartSec: 0, EndSec: 5}, model.FormatMP4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	second, err := service.CreateClip(desc, model.TrimRange{StartSec: 5, EndSec: 10}, model.FormatMP3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	firstDone := waitForFinish(t, service, first.ID)
	secondDone := waitForFinish(t, service, second.ID)

	if firstDone.Status != model.TaskStatusCompleted {
		t.Errorf("Expected first task Completed, got %s", firstDone.Status)
	}

	if secondDone.Status != model.TaskStatusCompleted {
		t.Errorf("Expected second task Completed, got %s", secondDone.Status)
	}
}

func TestRemoveTask(t *testing.T) {
	service := NewService(t.TempDir(), 1)
	service.SetMilestoneDelay(0)

	task, err := service.CreateClip(testDescriptor(), model.TrimRange{StartSec: 0, EndSec: 5}, model.FormatMP4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	waitForFinish(t, service, task.ID)

	if err := service.RemoveTask(task.ID); err != nil {
		t.Errorf("Expected no error removing finished task, got %v", err)
	}

	if _, exists := service.GetTask(task.ID); exists {
		t.Error("Expected task to be removed")
	}

	if err := service.RemoveTask("missing-id"); err == nil {
		t.Error("Expected error removing unknown task")
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService(t.TempDir(), 1)

	updateCalled := false
	var updatedTask *model.ClipTask

	service.SetUpdateCallback(func(task *model.ClipTask) {
		updateCalled = true
		updatedTask = task
	})

	task := &model.ClipTask{
		ID:     "test-id",
		Status: model.TaskStatusProcessing,
	}

	service.notifyUpdate(task)

	if !updateCalled {
		t.Error("Expected update callback to be called")
	}

	if updatedTask != task {
		t.Error("Expected updated task to be the same as input task")
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}

	if !strings.HasPrefix(id1, TaskIDPrefix) || !strings.HasPrefix(id2, TaskIDPrefix) {
		t.Errorf("Expected IDs with prefix %q, got %q and %q", TaskIDPrefix, id1, id2)
	}

	// clip- + 36 characters of UUID
	if len(id1) != len(TaskIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(TaskIDPrefix)+36, len(id1), id1)
	}
}
