// Package shader provides the small GLSL-style math vocabulary shared by
// the per-pixel stages. Keeping these as plain functions makes the CPU
// path read like the WGSL it mirrors.
package shader

import "math"

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Mix linearly interpolates between a and b by t.
func Mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Step returns 0 if v < edge, else 1.
func Step(edge, v float64) float64 {
	if v < edge {
		return 0
	}
	return 1
}

// Smoothstep performs Hermite interpolation between edge0 and edge1.
func Smoothstep(edge0, edge1, v float64) float64 {
	t := Clamp01((v - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Fract returns the fractional part of v.
func Fract(v float64) float64 {
	return v - math.Floor(v)
}

// Vec2 is a two-component vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v − o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }
