package geom

import "github.com/chewxy/math32"

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Vec2
}

// EmptyRect returns a rectangle that acts as the identity for Union.
func EmptyRect() Rect {
	return Rect{
		Min: Vec2{X: math32.Inf(1), Y: math32.Inf(1)},
		Max: Vec2{X: math32.Inf(-1), Y: math32.Inf(-1)},
	}
}

// IsEmpty reports whether the rectangle contains no area and no points.
func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.Y - r.Min.Y
}

// Extend returns the smallest rectangle containing r and p.
// NaN coordinates are ignored.
func (r Rect) Extend(p Vec2) Rect {
	if !math32.IsNaN(p.X) {
		r.Min.X = math32.Min(r.Min.X, p.X)
		r.Max.X = math32.Max(r.Max.X, p.X)
	}
	if !math32.IsNaN(p.Y) {
		r.Min.Y = math32.Min(r.Min.Y, p.Y)
		r.Max.Y = math32.Max(r.Max.Y, p.Y)
	}
	return r
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	if other.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return other
	}
	return r.Extend(other.Min).Extend(other.Max)
}

// Contains reports whether p lies inside or on the edge of r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
