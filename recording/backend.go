package recording

import (
	"image"
	"io"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/squircle/geom"
)

// Backend is the interface that all playback backends must implement.
// Backends receive drawing commands and translate them to their output.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
type Backend interface {
	// Begin initializes the backend. bounds is the union of every filled
	// path in the recording and may be empty.
	Begin(bounds geom.Rect, format gputypes.TextureFormat) error

	// End finalizes the rendering and prepares the output.
	End() error

	// Clear fills the whole target with c.
	Clear(c gputypes.Color)

	// FillPath fills the given path with the brush.
	// The rule determines how to handle self-intersecting paths.
	FillPath(path *geom.Path, brush Brush, rule FillRule)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend extends Backend with access to the rasterized image.
type ImageBackend interface {
	Backend

	// Image returns the rendered image.
	// This should only be called after End().
	Image() *image.RGBA
}
