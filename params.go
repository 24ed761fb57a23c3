package squircle

import "math"

// Ranges offered by host property editors. The generator itself never
// clamps; see Params.Clamp.
const (
	MinExtent    = 0.0
	MaxExtent    = 1000.0
	MinCurvature = 0.0
	MaxCurvature = 100.0
)

// Default shape parameters.
const (
	DefaultWidth     = 100.0
	DefaultHeight    = 100.0
	DefaultCurvature = 5.0
)

// Params are the resolved shape parameters for one frame.
type Params struct {
	Variant   Variant `toml:"variant" yaml:"variant"`
	Width     float64 `toml:"width" yaml:"width"`
	Height    float64 `toml:"height" yaml:"height"`
	Curvature float64 `toml:"curvature" yaml:"curvature"`
	Color     Color   `toml:"color" yaml:"color"`
}

// DefaultParams returns a 100×100 opaque white Superellipse with
// curvature 5.
func DefaultParams() Params {
	return Params{
		Variant:   Superellipse,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Curvature: DefaultCurvature,
		Color:     White,
	}
}

// Equal reports whether p and q are bit-for-bit identical. There is no
// tolerance: 0 and -0 differ, and a NaN equals a NaN with the same bits.
func (p Params) Equal(q Params) bool {
	return p.Variant == q.Variant &&
		math.Float64bits(p.Width) == math.Float64bits(q.Width) &&
		math.Float64bits(p.Height) == math.Float64bits(q.Height) &&
		math.Float64bits(p.Curvature) == math.Float64bits(q.Curvature) &&
		p.Color == q.Color
}

// Clamp limits the extents to [MinExtent, MaxExtent] and the curvature to
// [MinCurvature, MaxCurvature], the ranges of the host property editor.
// NaN values are left unchanged.
func (p Params) Clamp() Params {
	p.Width = clamp(p.Width, MinExtent, MaxExtent)
	p.Height = clamp(p.Height, MinExtent, MaxExtent)
	p.Curvature = clamp(p.Curvature, MinCurvature, MaxCurvature)
	return p
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// FrameInfo identifies the frame being rendered. The host supplies it so
// a ParamSource can resolve animated values.
type FrameInfo struct {
	Frame  int     // zero-based frame index
	Length int     // total number of frames
	FPS    float64 // frame rate
}

// Time returns the frame's timestamp in seconds, or 0 when FPS is not
// positive.
func (f FrameInfo) Time() float64 {
	if f.FPS <= 0 {
		return 0
	}
	return float64(f.Frame) / f.FPS
}

// Progress returns Frame/(Length-1) clamped to [0, 1], or 0 for clips of
// fewer than two frames.
func (f FrameInfo) Progress() float64 {
	if f.Length < 2 {
		return 0
	}
	return clamp(float64(f.Frame)/float64(f.Length-1), 0, 1)
}

// ParamSource resolves shape parameters for a frame.
type ParamSource interface {
	Resolve(frame FrameInfo) Params
}

// StaticParams is a ParamSource that returns the same parameters for
// every frame.
type StaticParams Params

// Resolve implements ParamSource.
func (s StaticParams) Resolve(FrameInfo) Params {
	return Params(s)
}

// ParamFunc adapts a function to ParamSource.
type ParamFunc func(frame FrameInfo) Params

// Resolve implements ParamSource.
func (f ParamFunc) Resolve(frame FrameInfo) Params {
	return f(frame)
}
