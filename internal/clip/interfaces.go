package clip

import (
	"github.com/ytclip/yt-trimmer/internal/model"
)

// Clipper defines the interface for the clip export service.
type Clipper interface {
	SetUpdateCallback(func(*model.ClipTask))
	CreateClip(video model.VideoDescriptor, trim model.TrimRange, format model.ClipFormat) (*model.ClipTask, error)
	GetTask(id string) (*model.ClipTask, bool)
	GetAllTasks() []*model.ClipTask
	RemoveTask(id string) error

	// SetMaxParallelExports sets the maximum number of parallel exports
	SetMaxParallelExports(max int)

	// SetOutputDirectory sets the directory exported clips are written to
	SetOutputDirectory(dir string)
}
