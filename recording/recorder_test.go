package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/squircle/geom"
)

// traceBackend records every call it receives.
type traceBackend struct {
	begins  int
	ends    int
	bounds  geom.Rect
	format  gputypes.TextureFormat
	clears  []gputypes.Color
	fills   []*geom.Path
	brushes []Brush
	failOn  error
}

func (b *traceBackend) Begin(bounds geom.Rect, format gputypes.TextureFormat) error {
	if b.failOn != nil {
		return b.failOn
	}
	b.begins++
	b.bounds = bounds
	b.format = format
	return nil
}

func (b *traceBackend) End() error {
	b.ends++
	return nil
}

func (b *traceBackend) Clear(c gputypes.Color) {
	b.clears = append(b.clears, c)
}

func (b *traceBackend) FillPath(path *geom.Path, brush Brush, _ FillRule) {
	b.fills = append(b.fills, path)
	b.brushes = append(b.brushes, brush)
}

func square(size float32) *geom.Path {
	return geom.Polygon{
		geom.V(-size, -size), geom.V(size, -size), geom.V(size, size), geom.V(-size, size),
	}.Path()
}

func TestRecorder_FinishRecording(t *testing.T) {
	rec := NewRecorder(gputypes.TextureFormatRGBA8Unorm)
	rec.Clear(nil)
	rec.FillPath(square(10), NewSolidBrush(gputypes.Color{R: 1, A: 1}), FillRuleNonZero)

	r := rec.FinishRecording()
	if got := len(r.Commands()); got != 2 {
		t.Fatalf("len(Commands) = %d, want 2", got)
	}
	if r.Commands()[0].Type() != CmdClear {
		t.Errorf("first command = %v, want Clear", r.Commands()[0].Type())
	}
	if r.Commands()[1].Type() != CmdFillPath {
		t.Errorf("second command = %v, want FillPath", r.Commands()[1].Type())
	}
	if r.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", r.Format())
	}
	b := r.Bounds()
	if b.Min != geom.V(-10, -10) || b.Max != geom.V(10, 10) {
		t.Errorf("Bounds() = %v, want {(-10,-10) (10,10)}", b)
	}
}

func TestRecorder_IgnoresCallsAfterFinish(t *testing.T) {
	rec := NewRecorder(gputypes.TextureFormatUndefined)
	rec.Clear(nil)
	r := rec.FinishRecording()

	rec.Clear(nil)
	rec.FillPath(square(1), NewSolidBrush(gputypes.Color{A: 1}), FillRuleNonZero)

	if got := len(r.Commands()); got != 1 {
		t.Errorf("len(Commands) = %d after post-finish calls, want 1", got)
	}
}

func TestRecorder_PathIsCloned(t *testing.T) {
	path := square(5)
	rec := NewRecorder(gputypes.TextureFormatUndefined)
	rec.FillPath(path, NewSolidBrush(gputypes.Color{A: 1}), FillRuleNonZero)
	r := rec.FinishRecording()

	path.LineTo(geom.V(100, 100))

	stored := r.Resources().GetPath(0)
	if stored.Len() != 5 {
		t.Errorf("stored path Len = %d after mutating source, want 5", stored.Len())
	}
}

func TestRecorder_ClearColorIsCopied(t *testing.T) {
	c := gputypes.Color{R: 0.5, A: 1}
	rec := NewRecorder(gputypes.TextureFormatUndefined)
	rec.Clear(&c)
	c.R = 0

	cmd := rec.FinishRecording().Commands()[0].(ClearCommand)
	if cmd.Color == nil || cmd.Color.R != 0.5 {
		t.Errorf("stored clear color = %v, want R=0.5", cmd.Color)
	}
}

func TestRecording_Playback(t *testing.T) {
	brush := NewSolidBrush(gputypes.Color{G: 1, A: 1})
	rec := NewRecorder(gputypes.TextureFormatBGRA8Unorm)
	rec.Clear(nil)
	rec.FillPath(square(3), brush, FillRuleNonZero)
	r := rec.FinishRecording()

	for i := range 2 {
		b := &traceBackend{}
		if err := r.Playback(b); err != nil {
			t.Fatalf("Playback #%d: %v", i, err)
		}
		if b.begins != 1 || b.ends != 1 {
			t.Errorf("Playback #%d: begins=%d ends=%d, want 1/1", i, b.begins, b.ends)
		}
		if len(b.clears) != 1 || b.clears[0] != (gputypes.Color{}) {
			t.Errorf("Playback #%d: clears = %v, want one transparent clear", i, b.clears)
		}
		if len(b.fills) != 1 || b.brushes[0] != Brush(brush) {
			t.Errorf("Playback #%d: fills = %d, want 1 with the recorded brush", i, len(b.fills))
		}
		if b.format != gputypes.TextureFormatBGRA8Unorm {
			t.Errorf("Playback #%d: format = %v, want BGRA8Unorm", i, b.format)
		}
	}
}

func TestRecording_PlaybackBeginError(t *testing.T) {
	errBoom := errors.New("boom")
	r := NewRecorder(gputypes.TextureFormatUndefined).FinishRecording()
	b := &traceBackend{failOn: errBoom}
	if err := r.Playback(b); !errors.Is(err, errBoom) {
		t.Errorf("Playback error = %v, want %v", err, errBoom)
	}
	if b.ends != 0 {
		t.Errorf("End called %d times after Begin failure, want 0", b.ends)
	}
}

func TestResourcePool_InvalidRefs(t *testing.T) {
	p := NewResourcePool()
	if p.GetPath(0) != nil {
		t.Error("GetPath on empty pool should return nil")
	}
	if p.GetBrush(BrushRef(InvalidRef)) != nil {
		t.Error("GetBrush(InvalidRef) should return nil")
	}
	if PathRef(InvalidRef).IsValid() || BrushRef(InvalidRef).IsValid() {
		t.Error("InvalidRef reported as valid")
	}
	ref := p.AddPath(nil)
	if p.GetPath(ref) != nil || p.PathCount() != 1 {
		t.Error("AddPath(nil) should store a nil placeholder")
	}
}

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CmdClear, "Clear"},
		{CmdFillPath, "FillPath"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
