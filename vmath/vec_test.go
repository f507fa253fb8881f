package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestV3FNormalize(t *testing.T) {
	n := V3FNormalize(V3F(3, 0, 4))
	assert.InDelta(t, 0.6, n.X, eps)
	assert.InDelta(t, 0.8, n.Z, eps)
	assert.InDelta(t, 1.0, V3FMag(n), eps)

	assert.Equal(t, Vec3F{}, V3FNormalize(Vec3F{}))
}

func TestV3FDistance(t *testing.T) {
	assert.InDelta(t, 5.0, V3FDistance(V3F(1, 2, 3), V3F(4, 6, 3)), eps)
	assert.InDelta(t, 0.0, V3FDistance(V3F(1, 1, 1), V3F(1, 1, 1)), eps)
}

func TestXZRoundTrip(t *testing.T) {
	v := V3F(1, 0.2, -3)
	p := v.XZ()
	assert.Equal(t, V2F(1, -3), p)
	assert.Equal(t, V3F(7, 0.2, 8), v.WithXZ(V2F(7, 8)))
}

func TestYawTowardsMatchesRotateY(t *testing.T) {
	dirs := []Vec2F{
		V2F(1, 0), V2F(0, 1), V2F(-1, 0), V2F(0, -1), V2F(3, 4), V2F(-2, 5),
	}
	forward := V3F(0, 0, -1)

	for _, d := range dirs {
		yaw := YawTowards(d)
		facing := RotateY(forward, yaw).XZ()
		want := V2FNormalize(d)
		assert.InDelta(t, want.X, facing.X, 1e-9, "dir %v", d)
		assert.InDelta(t, want.Y, facing.Y, 1e-9, "dir %v", d)
	}
	assert.Equal(t, 0.0, YawTowards(Vec2F{}))
}

func TestRotateYInverse(t *testing.T) {
	v := V3F(1.5, 0.6, -2)
	yaw := math.Pi / 3
	back := RotateY(RotateY(v, yaw), -yaw)
	assert.InDelta(t, v.X, back.X, eps)
	assert.InDelta(t, v.Y, back.Y, eps)
	assert.InDelta(t, v.Z, back.Z, eps)
}
