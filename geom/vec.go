package geom

import "github.com/chewxy/math32"

// Vec2 represents a 2D point or vector.
type Vec2 struct {
	X, Y float32
}

// V is a convenience function to create a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns the vector scaled independently along each axis.
func (v Vec2) Scale(sx, sy float32) Vec2 {
	return Vec2{X: v.X * sx, Y: v.Y * sy}
}

// Length returns the length of the vector.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Angle returns the angle of the vector in radians, in (-Pi, Pi].
func (v Vec2) Angle() float32 {
	return math32.Atan2(v.Y, v.X)
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return !math32.IsNaN(v.X) && !math32.IsNaN(v.Y) &&
		!math32.IsInf(v.X, 0) && !math32.IsInf(v.Y, 0)
}
