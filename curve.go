package squircle

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/squircle/geom"
	"github.com/gogpu/squircle/internal/parallel"
)

// DefaultPointCount is the number of boundary samples per shape.
const DefaultPointCount = 1000

// minPointCount is the smallest sample count that still encloses an area.
const minPointCount = 3

// Generate samples the boundary of p with n points on the calling
// goroutine. n below 3 selects DefaultPointCount. It returns nil for an
// unknown variant.
func Generate(p Params, n int) geom.Polygon {
	return generate(nil, p, normalizePointCount(n))
}

// Generator samples boundaries with a fixed point count, optionally
// spreading each shape's samples across a worker pool.
//
// A Generator is safe for concurrent use and may be shared by several
// Sources.
type Generator struct {
	pool *parallel.WorkerPool
	n    int
}

// NewGenerator creates a Generator that samples n points per shape.
// n below 3 selects DefaultPointCount. workers <= 0 uses GOMAXPROCS
// workers; workers == 1 samples on the calling goroutine.
func NewGenerator(n, workers int) *Generator {
	g := &Generator{n: normalizePointCount(n)}
	if workers != 1 {
		g.pool = parallel.NewWorkerPool(workers)
	}
	return g
}

// PointCount returns the number of samples per shape.
func (g *Generator) PointCount() int {
	return g.n
}

// Workers returns the number of workers used per shape.
func (g *Generator) Workers() int {
	return g.pool.Workers()
}

// Generate samples the boundary of p. It returns nil for an unknown
// variant.
func (g *Generator) Generate(p Params) geom.Polygon {
	return generate(g.pool, p, g.n)
}

// Close stops the generator's workers. Generate keeps working after Close
// but runs on the calling goroutine.
func (g *Generator) Close() {
	if g.pool != nil {
		g.pool.Close()
	}
}

func normalizePointCount(n int) int {
	if n < minPointCount {
		return DefaultPointCount
	}
	return n
}

func generate(pool *parallel.WorkerPool, p Params, n int) geom.Polygon {
	w, h, c := float32(p.Width), float32(p.Height), float32(p.Curvature)
	pts := make(geom.Polygon, n)

	switch p.Variant {
	case Superellipse:
		sample(pool, pts, w/2, h/2, 2/c)
	case Complex:
		sample(pool, pts, 1, 1, 2/c)
		normalize(pool, pts, w, h)
	case FernandezGuasti:
		sample(pool, pts, w, h, 4/(4+c))
	default:
		return nil
	}

	Logger().Debug("squircle: generated boundary",
		"variant", p.Variant.String(), "points", n, "workers", pool.Workers())
	return pts
}

// sample fills pts with x = a·sgn(cos t)·|cos t|^e, y = b·sgn(sin t)·|sin t|^e
// for t = i·2π/len(pts). Each index is written by exactly one chunk.
func sample(pool *parallel.WorkerPool, pts geom.Polygon, a, b, e float32) {
	step := 2 * math.Pi / float64(len(pts))
	pool.ForRange(len(pts), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			sin, cos := math32.Sincos(float32(float64(i) * step))
			pts[i] = geom.Vec2{
				X: a * sign(cos) * math32.Pow(math32.Abs(cos), e),
				Y: b * sign(sin) * math32.Pow(math32.Abs(sin), e),
			}
		}
	})
}

// normalize rescales pts so the largest |x| becomes w/2 and the largest |y|
// becomes h/2. The extrema are reduced per chunk and combined before any
// point is rescaled.
func normalize(pool *parallel.WorkerPool, pts geom.Polygon, w, h float32) {
	partials := parallel.Reduce(pool, len(pts), func(lo, hi int) geom.Vec2 {
		x, y := pts[lo:hi].MaxAbs()
		return geom.Vec2{X: x, Y: y}
	})
	var maxX, maxY float32
	for _, m := range partials {
		maxX = math32.Max(maxX, m.X)
		maxY = math32.Max(maxY, m.Y)
	}

	sx, sy := w/(2*maxX), h/(2*maxY)
	pool.ForRange(len(pts), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			pts[i] = pts[i].Scale(sx, sy)
		}
	})
}

// sign returns -1, 0 or +1. NaN maps to 0.
func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
