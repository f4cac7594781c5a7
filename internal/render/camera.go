package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective viewer looking at Target.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	FovY float32 // radians
	Near float32
	Far  float32
}

// DefaultCamera frames the campfire from a standing viewpoint.
func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{3, 2, 3},
		Target: mgl32.Vec3{0, 0.5, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   mgl32.DegToRad(60),
		Near:   0.1,
		Far:    1000,
	}
}

// ViewProjection returns the combined clip-space transform for a w×h target.
func (c Camera) ViewProjection(w, h int) mgl32.Mat4 {
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	proj := mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
	view := mgl32.LookAtV(c.Eye, c.Target, c.Up)
	return proj.Mul4(view)
}

// PointScale converts a world-space sprite size into pixels at unit clip
// depth for a target of the given height.
func (c Camera) PointScale(h int) float32 {
	return float32(h) / (2 * float32(math.Tan(0.5*float64(c.FovY))))
}

// Orbit returns the camera rotated by angle radians around the vertical axis
// through Target.
func (c Camera) Orbit(angle float32) Camera {
	rot := mgl32.HomogRotate3DY(angle)
	offset := c.Eye.Sub(c.Target)
	c.Eye = c.Target.Add(rot.Mul4x1(offset.Vec4(0)).Vec3())
	return c
}
