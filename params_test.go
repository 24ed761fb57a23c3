package squircle

import (
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.Variant != Superellipse || p.Width != 100 || p.Height != 100 || p.Curvature != 5 || p.Color != White {
		t.Errorf("DefaultParams() = %+v", p)
	}
}

func TestParamsEqual(t *testing.T) {
	base := DefaultParams()

	tests := []struct {
		name   string
		modify func(*Params)
		want   bool
	}{
		{"identical", func(*Params) {}, true},
		{"variant", func(p *Params) { p.Variant = Complex }, false},
		{"width next float", func(p *Params) { p.Width = math.Nextafter(p.Width, 200) }, false},
		{"height", func(p *Params) { p.Height++ }, false},
		{"curvature", func(p *Params) { p.Curvature = 5.000000001 }, false},
		{"color alpha", func(p *Params) { p.Color.A = 254 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := base
			tt.modify(&next)
			if got := base.Equal(next); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}

	zero, negZero := base, base
	zero.Width = 0
	negZero.Width = math.Copysign(0, -1)
	if zero.Equal(negZero) {
		t.Error("0 and -0 should not be equal")
	}

	nan := base
	nan.Curvature = math.NaN()
	if !nan.Equal(nan) {
		t.Error("identical NaN bits should be equal")
	}
}

func TestParamsClamp(t *testing.T) {
	p := Params{Width: -10, Height: 5000, Curvature: 250}
	got := p.Clamp()
	if got.Width != MinExtent || got.Height != MaxExtent || got.Curvature != MaxCurvature {
		t.Errorf("Clamp() = %+v", got)
	}

	p = Params{Width: 12, Height: 34, Curvature: -1}
	got = p.Clamp()
	if got.Width != 12 || got.Height != 34 || got.Curvature != MinCurvature {
		t.Errorf("Clamp() = %+v", got)
	}

	p.Width = math.NaN()
	if !math.IsNaN(p.Clamp().Width) {
		t.Error("Clamp should leave NaN unchanged")
	}
}

func TestFrameInfo(t *testing.T) {
	tests := []struct {
		f        FrameInfo
		time     float64
		progress float64
	}{
		{FrameInfo{Frame: 0, Length: 10, FPS: 30}, 0, 0},
		{FrameInfo{Frame: 15, Length: 31, FPS: 30}, 0.5, 0.5},
		{FrameInfo{Frame: 9, Length: 10, FPS: 0}, 0, 1},
		{FrameInfo{Frame: 20, Length: 10, FPS: 10}, 2, 1},
		{FrameInfo{Frame: 3, Length: 1, FPS: 24}, 0.125, 0},
	}
	for _, tt := range tests {
		if got := tt.f.Time(); got != tt.time {
			t.Errorf("%+v.Time() = %v, want %v", tt.f, got, tt.time)
		}
		if got := tt.f.Progress(); got != tt.progress {
			t.Errorf("%+v.Progress() = %v, want %v", tt.f, got, tt.progress)
		}
	}
}

func TestParamSources(t *testing.T) {
	p := DefaultParams()
	p.Width = 42
	if got := StaticParams(p).Resolve(FrameInfo{Frame: 99}); !got.Equal(p) {
		t.Errorf("StaticParams.Resolve() = %+v, want %+v", got, p)
	}

	fn := ParamFunc(func(f FrameInfo) Params {
		q := DefaultParams()
		q.Curvature = 1 + 9*f.Progress()
		return q
	})
	if got := fn.Resolve(FrameInfo{Frame: 10, Length: 11}).Curvature; got != 10 {
		t.Errorf("ParamFunc.Resolve() curvature = %v, want 10", got)
	}
}
