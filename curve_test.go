package squircle

import (
	"fmt"
	"math"
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/squircle/geom"
)

const eps = 1e-3

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= eps*math32.Max(1, math32.Abs(b))
}

func TestGeneratePointCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, DefaultPointCount},
		{-5, DefaultPointCount},
		{2, DefaultPointCount},
		{3, 3},
		{64, 64},
		{1000, 1000},
	}
	for _, tt := range tests {
		for _, v := range Variants() {
			p := DefaultParams()
			p.Variant = v
			if got := len(Generate(p, tt.n)); got != tt.want {
				t.Errorf("len(Generate(%v, %d)) = %d, want %d", v, tt.n, got, tt.want)
			}
		}
	}
}

func TestGenerateUnknownVariant(t *testing.T) {
	p := DefaultParams()
	p.Variant = Variant(42)
	if got := Generate(p, 100); got != nil {
		t.Errorf("Generate(unknown variant) = %d points, want nil", len(got))
	}
}

func TestGenerateSuperellipseBounds(t *testing.T) {
	tests := []struct {
		w, h, c float64
	}{
		{100, 100, 5},
		{100, 100, 2},
		{100, 100, 0.5},
		{300, 80, 4},
		{10, 600, 12},
		{1000, 1000, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%gx%g_n%g", tt.w, tt.h, tt.c), func(t *testing.T) {
			p := Params{Variant: Superellipse, Width: tt.w, Height: tt.h, Curvature: tt.c, Color: White}
			pts := Generate(p, DefaultPointCount)

			hw, hh := float32(tt.w/2), float32(tt.h/2)
			seen := make(map[geom.Vec2]int, len(pts))
			for i, pt := range pts {
				if math32.Abs(pt.X) > hw*(1+eps) || math32.Abs(pt.Y) > hh*(1+eps) {
					t.Fatalf("point %d = %v outside half extents (%v, %v)", i, pt, hw, hh)
				}
				if j, ok := seen[pt]; ok {
					t.Fatalf("point %d = %v duplicates point %d", i, pt, j)
				}
				seen[pt] = i
			}
		})
	}
}

func TestGenerateSuperellipseEllipse(t *testing.T) {
	// Exponent 2/2 = 1 gives a plain ellipse.
	p := Params{Variant: Superellipse, Width: 200, Height: 100, Curvature: 2}
	for i, pt := range Generate(p, 360) {
		r := (pt.X/100)*(pt.X/100) + (pt.Y/50)*(pt.Y/50)
		if !approx(r, 1) {
			t.Fatalf("point %d = %v: x²/a²+y²/b² = %v, want 1", i, pt, r)
		}
	}
}

func TestGenerateStartsOnPositiveXAxis(t *testing.T) {
	for _, v := range Variants() {
		p := Params{Variant: v, Width: 100, Height: 60, Curvature: 3}
		pts := Generate(p, DefaultPointCount)
		if pts[0].Y != 0 || pts[0].X <= 0 {
			t.Errorf("%v: first point = %v, want on the positive x axis", v, pts[0])
		}
	}
}

func TestGenerateComplexNormalization(t *testing.T) {
	tests := []struct {
		w, h, c float64
	}{
		{100, 100, 5},
		{100, 100, 0.3},
		{240, 90, 1},
		{50, 400, 2},
		{1000, 10, 25},
		{100, 100, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%gx%g_n%g", tt.w, tt.h, tt.c), func(t *testing.T) {
			p := Params{Variant: Complex, Width: tt.w, Height: tt.h, Curvature: tt.c}
			x, y := Generate(p, DefaultPointCount).MaxAbs()
			if !approx(x, float32(tt.w/2)) {
				t.Errorf("max |x| = %v, want %v", x, tt.w/2)
			}
			if !approx(y, float32(tt.h/2)) {
				t.Errorf("max |y| = %v, want %v", y, tt.h/2)
			}
		})
	}
}

func TestGenerateComplexMatchesSuperellipseShape(t *testing.T) {
	// With a sample on both axes the raw extrema are exactly 1, so the
	// rescale is the identity on the Superellipse half extents.
	base := Params{Width: 120, Height: 80, Curvature: 4}
	se, cx := base, base
	se.Variant = Superellipse
	cx.Variant = Complex

	a := Generate(se, 1000)
	b := Generate(cx, 1000)
	for i := range a {
		if !approx(a[i].X, b[i].X) || !approx(a[i].Y, b[i].Y) {
			t.Fatalf("point %d: superellipse %v, complex %v", i, a[i], b[i])
		}
	}
}

func TestGenerateFernandezGuastiFullExtents(t *testing.T) {
	p := Params{Variant: FernandezGuasti, Width: 200, Height: 100, Curvature: 0}
	pts := Generate(p, DefaultPointCount)

	x, y := pts.MaxAbs()
	if !approx(x, 200) {
		t.Errorf("max |x| = %v, want 200 (full width)", x)
	}
	if !approx(y, 100) {
		t.Errorf("max |y| = %v, want 100 (full height)", y)
	}

	// Larger s rounds the corners but keeps the axis extents.
	p.Curvature = 20
	x, y = Generate(p, DefaultPointCount).MaxAbs()
	if !approx(x, 200) || !approx(y, 100) {
		t.Errorf("s=20: max |x|, |y| = %v, %v, want 200, 100", x, y)
	}
}

func TestGenerateCornersSharpenWithCurvature(t *testing.T) {
	// Index 125 of 1000 samples t = π/4, the corner diagonal.
	const corner = 125
	prev := float32(0)
	for _, c := range []float64{0.5, 1, 2, 5, 10, 25, 50, 100} {
		p := Params{Variant: Superellipse, Width: 100, Height: 100, Curvature: c}
		pt := Generate(p, DefaultPointCount)[corner]
		if pt.X <= prev {
			t.Errorf("curvature %v: corner x = %v, want > %v", c, pt.X, prev)
		}
		if pt.X > 50 || pt.Y > 50 {
			t.Errorf("curvature %v: corner %v outside the square", c, pt)
		}
		prev = pt.X
	}
	if prev < 49 {
		t.Errorf("curvature 100: corner x = %v, want close to 50", prev)
	}
}

func TestGenerateDegenerateCurvature(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		n    int
		a, b float32
	}{
		{"superellipse n=0", Params{Variant: Superellipse, Width: 100, Height: 80, Curvature: 0}, DefaultPointCount, 50, 40},
		{"fernandez-guasti s=-4", Params{Variant: FernandezGuasti, Width: 100, Height: 80, Curvature: -4}, DefaultPointCount, 100, 80},
		// With four samples per turn landing on the axes, the rescale
		// restores the full half extents.
		{"complex n=0", Params{Variant: Complex, Width: 100, Height: 80, Curvature: 0}, 1000, 50, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := Generate(tt.p, tt.n)
			if len(pts) != tt.n {
				t.Fatalf("len = %d, want %d", len(pts), tt.n)
			}
			if pts[0] != geom.V(tt.a, 0) {
				t.Errorf("first point = %v, want (%v, 0)", pts[0], tt.a)
			}
			// An infinite exponent collapses every sample onto the axes.
			var maxX, maxY float32
			for i, pt := range pts {
				if !pt.IsFinite() {
					t.Fatalf("point %d = %v is not finite", i, pt)
				}
				if pt.X != 0 && pt.Y != 0 {
					t.Fatalf("point %d = %v is not on an axis", i, pt)
				}
				x, y := math32.Abs(pt.X), math32.Abs(pt.Y)
				if x != 0 && x != tt.a {
					t.Fatalf("point %d = %v: |x| not in {0, %v}", i, pt, tt.a)
				}
				if y != 0 && y != tt.b {
					t.Fatalf("point %d = %v: |y| not in {0, %v}", i, pt, tt.b)
				}
				maxX, maxY = math32.Max(maxX, x), math32.Max(maxY, y)
			}
			if maxX != tt.a || maxY != tt.b {
				t.Errorf("extent = (%v, %v), want (%v, %v)", maxX, maxY, tt.a, tt.b)
			}
		})
	}
}

func TestGenerateComplexDegenerateOffAxis(t *testing.T) {
	// When no sample lands on the y axis the largest raw |y| is 0, so the
	// height rescale multiplies 0 by +Inf and every y becomes NaN. The x
	// axis is still hit at t=0 and keeps its extent.
	p := Params{Variant: Complex, Width: 100, Height: 80, Curvature: 0}
	pts := Generate(p, 999)
	if len(pts) != 999 {
		t.Fatalf("len = %d, want 999", len(pts))
	}
	if pts[0].X != 50 || !math32.IsNaN(pts[0].Y) {
		t.Errorf("first point = %v, want (50, NaN)", pts[0])
	}
	var maxX float32
	for i, pt := range pts {
		if pt.IsFinite() {
			t.Fatalf("point %d = %v is finite, want NaN y", i, pt)
		}
		if math32.IsNaN(pt.X) || math32.IsInf(pt.X, 0) {
			t.Fatalf("point %d = %v: x not finite", i, pt)
		}
		if !math32.IsNaN(pt.Y) {
			t.Fatalf("point %d = %v: y = %v, want NaN", i, pt, pt.Y)
		}
		maxX = math32.Max(maxX, math32.Abs(pt.X))
	}
	if maxX != 50 {
		t.Errorf("max |x| = %v, want 50", maxX)
	}
}

func TestGenerateNaNPropagates(t *testing.T) {
	for _, v := range Variants() {
		p := Params{Variant: v, Width: 100, Height: 100, Curvature: math.NaN()}
		for i, pt := range Generate(p, 100) {
			if pt.IsFinite() {
				t.Errorf("%v: point %d = %v is finite, want NaN component", v, i, pt)
				break
			}
		}
	}
}

func TestGeneratorParallelMatchesSerial(t *testing.T) {
	g := NewGenerator(1000, 4)
	defer g.Close()
	if g.Workers() != 4 {
		t.Fatalf("Workers() = %d, want 4", g.Workers())
	}

	for _, v := range Variants() {
		p := Params{Variant: v, Width: 310, Height: 170, Curvature: 3.5}
		want := Generate(p, 1000)
		got := g.Generate(p)
		if len(got) != len(want) {
			t.Fatalf("%v: len = %d, want %d", v, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%v: point %d = %v, want %v", v, i, got[i], want[i])
			}
		}
	}
}

func TestGeneratorAfterClose(t *testing.T) {
	g := NewGenerator(0, 2)
	g.Close()
	if g.PointCount() != DefaultPointCount {
		t.Errorf("PointCount() = %d, want %d", g.PointCount(), DefaultPointCount)
	}
	if got := len(g.Generate(DefaultParams())); got != DefaultPointCount {
		t.Errorf("Generate after Close returned %d points, want %d", got, DefaultPointCount)
	}
}

func TestGeneratorSerial(t *testing.T) {
	g := NewGenerator(100, 1)
	defer g.Close()
	if g.Workers() != 1 {
		t.Errorf("Workers() = %d, want 1", g.Workers())
	}
}

func BenchmarkGenerate(b *testing.B) {
	for _, v := range Variants() {
		p := DefaultParams()
		p.Variant = v
		b.Run(v.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Generate(p, DefaultPointCount)
			}
		})
	}
}

func BenchmarkGeneratorParallel(b *testing.B) {
	g := NewGenerator(DefaultPointCount, 0)
	defer g.Close()
	p := DefaultParams()
	p.Variant = Complex
	b.ReportAllocs()
	for b.Loop() {
		_ = g.Generate(p)
	}
}
