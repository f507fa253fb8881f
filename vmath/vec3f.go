package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world space
// Y is up; the horizontal plane is X/Z
type Vec3F struct {
	X, Y, Z float64
}

// V3F builds a Vec3F
func V3F(x, y, z float64) Vec3F {
	return Vec3F{X: x, Y: y, Z: z}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FNormalize returns the unit vector, zero-safe
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDistance returns straight-line distance between two points
func V3FDistance(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// XZ projects onto the horizontal plane
func (v Vec3F) XZ() Vec2F {
	return Vec2F{X: v.X, Y: v.Z}
}

// WithXZ replaces the horizontal components, keeping height
func (v Vec3F) WithXZ(p Vec2F) Vec3F {
	return Vec3F{X: p.X, Y: v.Y, Z: p.Y}
}

// RotateY rotates v around the up axis by yaw radians
// Yaw 0 faces -Z; positive yaw turns counter-clockwise seen from above
func RotateY(v Vec3F, yaw float64) Vec3F {
	if yaw == 0 {
		return v
	}
	sin, cos := math.Sincos(yaw)
	return Vec3F{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}
