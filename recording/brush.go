package recording

import "github.com/gogpu/gputypes"

// Brush represents a fill style for recording commands.
// This is a sealed interface - only types in this package implement it.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()
}

// SolidBrush is a solid color brush. Color components are straight
// (not premultiplied) and in the range [0, 1].
type SolidBrush struct {
	Color gputypes.Color
}

func (SolidBrush) brushMarker() {}

// NewSolidBrush creates a solid color brush.
func NewSolidBrush(color gputypes.Color) SolidBrush {
	return SolidBrush{Color: color}
}
