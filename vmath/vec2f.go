package vmath

import "math"

// Vec2F is a horizontal-plane point; Y maps to world Z
type Vec2F struct {
	X, Y float64
}

// V2F builds a Vec2F
func V2F(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FNormalize returns the unit vector, zero-safe
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	return Vec2F{v.X / mag, v.Y / mag}
}

// V2FDistance returns planar distance between two points
func V2FDistance(a, b Vec2F) float64 {
	return V2FMag(V2FSub(a, b))
}

// YawTowards returns the yaw that makes a -Z facing object look along dir
// Inverse of RotateY applied to (0, 0, -1)
func YawTowards(dir Vec2F) float64 {
	if dir.X == 0 && dir.Y == 0 {
		return 0
	}
	return math.Atan2(-dir.X, -dir.Y)
}
