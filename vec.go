package clockface

import "github.com/chewxy/math32"

// Vec2 represents a 2D point or displacement in model space.
// Components are float32 to match the precision the shader programs
// run at; keeping both sides in the same width avoids reference-vs-GPU
// drift in the anti-aliasing falloffs.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
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

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float32 {
	return math32.Hypot(v.X-w.X, v.Y-w.Y)
}

// Polar returns the point at the given angle and radius around the
// origin, with angle 0 on the positive X axis, counter-clockwise.
func Polar(angle, radius float32) Vec2 {
	return Vec2{X: radius * math32.Cos(angle), Y: radius * math32.Sin(angle)}
}

// ClockAngle converts a position relative to a shape center into the
// arc comparison angle: π at 12 o'clock, decreasing as the position
// moves clockwise, in (-π, π]. The axes are swapped and one negated
// before atan2 so that a fragment lies within a clockwise sweep of s
// radians from 12 o'clock exactly when ClockAngle(p) >= π - s.
func ClockAngle(p Vec2) float32 {
	return math32.Atan2(p.X, -p.Y)
}

// ClockPoint returns the point at the given clockwise angle from
// 12 o'clock at the given radius: angle 0 is straight up, π/2 is
// 3 o'clock.
func ClockPoint(angle, radius float32) Vec2 {
	return Vec2{X: radius * math32.Sin(angle), Y: radius * math32.Cos(angle)}
}
