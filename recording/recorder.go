package recording

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/squircle/geom"
)

// Recorder captures drawing operations as commands.
// Use FinishRecording to obtain an immutable Recording that can be replayed
// to different backends.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	format    gputypes.TextureFormat
	commands  []Command
	resources *ResourcePool
	bounds    geom.Rect
	finished  bool
}

// NewRecorder creates a new Recorder whose recording targets the given
// texture format. TextureFormatUndefined means the backend chooses.
func NewRecorder(format gputypes.TextureFormat) *Recorder {
	return &Recorder{
		format:    format,
		commands:  make([]Command, 0, 4),
		resources: NewResourcePool(),
		bounds:    geom.EmptyRect(),
	}
}

// Clear records a clear of the whole target. A nil color clears to
// transparent black.
func (r *Recorder) Clear(c *gputypes.Color) {
	if r.finished {
		return
	}
	var stored *gputypes.Color
	if c != nil {
		v := *c
		stored = &v
	}
	r.commands = append(r.commands, ClearCommand{Color: stored})
}

// FillPath records a fill of path with brush. The path is cloned.
func (r *Recorder) FillPath(path *geom.Path, brush Brush, rule FillRule) {
	if r.finished || path == nil || brush == nil {
		return
	}
	r.bounds = r.bounds.Union(path.Bounds())
	r.commands = append(r.commands, FillPathCommand{
		Path:  r.resources.AddPath(path),
		Brush: r.resources.AddBrush(brush),
		Rule:  rule,
	})
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, further recording calls are
// ignored.
func (r *Recorder) FinishRecording() *Recording {
	r.finished = true
	return &Recording{
		format:    r.format,
		commands:  r.commands,
		resources: r.resources,
		bounds:    r.bounds,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	format    gputypes.TextureFormat
	commands  []Command
	resources *ResourcePool
	bounds    geom.Rect
}

// Format returns the texture format the recording targets.
func (r *Recording) Format() gputypes.TextureFormat {
	return r.format
}

// Bounds returns the union of the bounds of every filled path.
func (r *Recording) Bounds() geom.Rect {
	return r.bounds
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.bounds, r.format); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			var col gputypes.Color
			if c.Color != nil {
				col = *c.Color
			}
			backend.Clear(col)
		case FillPathCommand:
			path := r.resources.GetPath(c.Path)
			brush := r.resources.GetBrush(c.Brush)
			if path == nil || brush == nil {
				continue
			}
			backend.FillPath(path, brush, c.Rule)
		}
	}

	return backend.End()
}
