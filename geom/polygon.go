package geom

import "github.com/chewxy/math32"

// Polygon is an ordered, closed sequence of points. Consecutive points are
// joined by straight edges and the last point implicitly connects back to
// the first.
//
// A Polygon returned by the curve generator is never modified afterwards and
// may be shared freely between goroutines.
type Polygon []Vec2

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p)
}

// Bounds returns the bounding box of all finite vertices.
func (p Polygon) Bounds() Rect {
	r := EmptyRect()
	for _, v := range p {
		r = r.Extend(v)
	}
	return r
}

// MaxAbs returns the largest absolute X and the largest absolute Y among
// all vertices. A NaN component makes the corresponding result NaN.
func (p Polygon) MaxAbs() (x, y float32) {
	for _, v := range p {
		x = math32.Max(x, math32.Abs(v.X))
		y = math32.Max(y, math32.Abs(v.Y))
	}
	return x, y
}

// Clone returns a copy of the polygon that shares no memory with p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Path returns the polygon as a single closed figure: a MoveTo at the first
// vertex, a LineTo for every following vertex in order, then Close.
// An empty polygon yields an empty path.
func (p Polygon) Path() *Path {
	path := NewPathCap(len(p) + 1)
	if len(p) == 0 {
		return path
	}
	path.MoveTo(p[0])
	for _, v := range p[1:] {
		path.LineTo(v)
	}
	path.Close()
	return path
}
