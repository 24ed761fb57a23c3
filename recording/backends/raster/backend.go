// Package raster provides a raster backend for the recording system.
// It replays recordings into an *image.RGBA using the anti-aliasing
// rasterizer from golang.org/x/image/vector.
//
// The raster backend serves multiple purposes:
//   - Stand-in for the host compositor when previewing shapes
//   - Pixel-accurate comparison testing of recordings
//   - PNG output for the command-line tool
//
// Recordings are centred on the origin. Unless a fixed size is configured,
// the canvas is sized to the recording bounds and the origin is placed at
// the canvas centre.
//
// # Limitations
//
// Only the non-zero fill rule is rasterized; even-odd fills are drawn with
// non-zero winding. Paths containing non-finite coordinates are skipped and
// counted by SkippedPaths. Canvases wider or taller than MaxCanvasSize
// pixels are rejected with ErrCanvasTooLarge.
//
// # Example
//
//	import _ "github.com/gogpu/squircle/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	_ = rec.Playback(backend)
//	img := backend.(recording.ImageBackend).Image()
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/squircle/geom"
	"github.com/gogpu/squircle/recording"
	"golang.org/x/image/vector"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// MaxCanvasSize is the largest canvas width or height, in pixels, that
// Begin will allocate.
const MaxCanvasSize = 16384

// Common errors returned by the raster backend.
var (
	// ErrUnsupportedFormat is returned by Begin for texture formats other
	// than RGBA8Unorm and BGRA8Unorm.
	ErrUnsupportedFormat = errors.New("raster: unsupported texture format")

	// ErrNotRendered is returned by output methods called before End.
	ErrNotRendered = errors.New("raster: nothing rendered")

	// ErrCanvasTooLarge is returned by Begin when the canvas would exceed
	// MaxCanvasSize in either dimension.
	ErrCanvasTooLarge = errors.New("raster: canvas too large")
)

// Option configures a Backend.
type Option func(*Backend)

// WithSize fixes the canvas size instead of deriving it from the
// recording bounds. The origin stays at the canvas centre.
func WithSize(width, height int) Option {
	return func(b *Backend) {
		b.fixedW = width
		b.fixedH = height
	}
}

// WithBackground composites the rendered recording over c.
func WithBackground(c color.Color) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// WithFormat overrides the texture format requested by the recording.
func WithFormat(f gputypes.TextureFormat) Option {
	return func(b *Backend) {
		b.forceFormat = f
	}
}

// Backend renders recordings to a pixel image.
// It implements recording.Backend, recording.WriterBackend and
// recording.ImageBackend.
type Backend struct {
	fixedW, fixedH int
	background     color.Color
	forceFormat    gputypes.TextureFormat

	img     *image.RGBA
	format  gputypes.TextureFormat
	origin  geom.Vec2
	z       *vector.Rasterizer
	skipped int
	done    bool
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin allocates the canvas for a recording with the given bounds.
func (b *Backend) Begin(bounds geom.Rect, format gputypes.TextureFormat) error {
	if b.forceFormat != gputypes.TextureFormatUndefined {
		format = b.forceFormat
	}
	switch format {
	case gputypes.TextureFormatUndefined:
		format = gputypes.TextureFormatRGBA8Unorm
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	w, h := b.fixedW, b.fixedH
	if w <= 0 || h <= 0 {
		fw, fh := canvasSize(bounds)
		if fw > MaxCanvasSize || fh > MaxCanvasSize {
			return fmt.Errorf("%w: %.0fx%.0f (max %d)", ErrCanvasTooLarge, fw, fh, MaxCanvasSize)
		}
		w, h = int(fw), int(fh)
	}
	if w > MaxCanvasSize || h > MaxCanvasSize {
		return fmt.Errorf("%w: %dx%d (max %d)", ErrCanvasTooLarge, w, h, MaxCanvasSize)
	}

	b.format = format
	b.img = image.NewRGBA(image.Rect(0, 0, w, h))
	b.origin = geom.V(float32(w)/2, float32(h)/2)
	b.z = vector.NewRasterizer(w, h)
	b.skipped = 0
	b.done = false
	return nil
}

// canvasSize returns the pixel dimensions of a canvas large enough to hold
// bounds centred on the origin. Empty or non-finite bounds yield a 1x1
// canvas. The result stays in float32 so oversized bounds can be rejected
// before converting to int.
func canvasSize(bounds geom.Rect) (float32, float32) {
	if bounds.IsEmpty() || !bounds.Min.IsFinite() || !bounds.Max.IsFinite() {
		return 1, 1
	}
	halfW := math32.Max(math32.Abs(bounds.Min.X), math32.Abs(bounds.Max.X))
	halfH := math32.Max(math32.Abs(bounds.Min.Y), math32.Abs(bounds.Max.Y))
	w := math32.Ceil(2 * halfW)
	h := math32.Ceil(2 * halfH)
	return math32.Max(w, 1), math32.Max(h, 1)
}

// End finalizes the rendering. A configured background is composited
// beneath the rendered pixels.
func (b *Backend) End() error {
	if b.img != nil && b.background != nil {
		out := image.NewRGBA(b.img.Bounds())
		draw.Draw(out, out.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
		draw.Draw(out, out.Bounds(), b.img, b.img.Bounds().Min, draw.Over)
		b.img = out
	}
	b.done = true
	return nil
}

// Clear fills the whole canvas with c, replacing existing pixels.
func (b *Backend) Clear(c gputypes.Color) {
	if b.img == nil {
		return
	}
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(toNRGBA64(c)), image.Point{}, draw.Src)
}

// FillPath fills path with brush using source-over compositing.
func (b *Backend) FillPath(path *geom.Path, brush recording.Brush, _ recording.FillRule) {
	if b.img == nil || path == nil {
		return
	}
	solid, ok := brush.(recording.SolidBrush)
	if !ok {
		return
	}
	els := path.Elements()
	for _, e := range els {
		if e.Verb != geom.VerbClose && !e.Point.IsFinite() {
			b.skipped++
			return
		}
	}

	size := b.img.Bounds().Size()
	b.z.Reset(size.X, size.Y)
	for _, e := range els {
		p := e.Point.Add(b.origin)
		switch e.Verb {
		case geom.VerbMoveTo:
			b.z.MoveTo(p.X, p.Y)
		case geom.VerbLineTo:
			b.z.LineTo(p.X, p.Y)
		case geom.VerbClose:
			b.z.ClosePath()
		}
	}
	b.z.Draw(b.img, b.img.Bounds(), image.NewUniform(toNRGBA64(solid.Color)), image.Point{})
}

// SkippedPaths returns how many paths were not drawn because they held
// non-finite coordinates.
func (b *Backend) SkippedPaths() int {
	return b.skipped
}

// Origin returns the canvas position of the recording origin.
func (b *Backend) Origin() geom.Vec2 {
	return b.origin
}

// Format returns the texture format of the rendered pixels.
func (b *Backend) Format() gputypes.TextureFormat {
	return b.format
}

// Image returns the rendered image in RGBA order, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// Pixels returns a copy of the premultiplied pixel bytes laid out in the
// backend's texture format.
func (b *Backend) Pixels() ([]byte, error) {
	if !b.done || b.img == nil {
		return nil, ErrNotRendered
	}
	out := make([]byte, len(b.img.Pix))
	copy(out, b.img.Pix)
	if b.format == gputypes.TextureFormatBGRA8Unorm {
		for i := 0; i+3 < len(out); i += 4 {
			out[i], out[i+2] = out[i+2], out[i]
		}
	}
	return out, nil
}

// WriteTo encodes the rendered image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done || b.img == nil {
		return 0, ErrNotRendered
	}
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, b.img); err != nil {
		return cw.n, fmt.Errorf("raster: encode png: %w", err)
	}
	return cw.n, nil
}

// SavePNG writes the rendered image to a PNG file.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// toNRGBA64 converts a straight-alpha float color to color.NRGBA64,
// clamping each component to [0, 1].
func toNRGBA64(c gputypes.Color) color.NRGBA64 {
	return color.NRGBA64{
		R: unit16(c.R),
		G: unit16(c.G),
		B: unit16(c.B),
		A: unit16(c.A),
	}
}

func unit16(v float64) uint16 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 0xffff
	default:
		return uint16(v*0xffff + 0.5)
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
