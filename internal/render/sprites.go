package render

import (
	"campfire/internal/fire"

	"github.com/go-gl/mathgl/mgl32"
)

// Sprite is a particle projected to screen space.
type Sprite struct {
	X, Y   float32
	Radius float32
	Angle  float32
	Color  mgl32.Vec4 // r, g, b, alpha
}

// Project maps a render snapshot onto a w×h target. Snapshot order is kept,
// so the result stays back-to-front. Particles behind the near plane are
// dropped.
func Project(attrs fire.Attributes, cam Camera, w, h int) []Sprite {
	vp := cam.ViewProjection(w, h)
	scale := cam.PointScale(h)
	out := make([]Sprite, 0, attrs.Len())
	for i := 0; i < attrs.Len(); i++ {
		x, y, depth, ok := toScreen(vp, cam.Near, attrs.Positions[i], w, h)
		if !ok {
			continue
		}
		out = append(out, Sprite{
			X:      x,
			Y:      y,
			Radius: 0.5 * attrs.Sizes[i] * scale / depth,
			Angle:  attrs.Angles[i],
			Color:  attrs.Colors[i],
		})
	}
	return out
}

// ProjectPoint maps a single world position to screen coordinates. ok is
// false when p lies behind the near plane.
func ProjectPoint(cam Camera, p mgl32.Vec3, w, h int) (x, y float32, ok bool) {
	x, y, _, ok = toScreen(cam.ViewProjection(w, h), cam.Near, p, w, h)
	return x, y, ok
}

func toScreen(vp mgl32.Mat4, near float32, p mgl32.Vec3, w, h int) (x, y, depth float32, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	depth = clip.W()
	if depth <= near {
		return 0, 0, depth, false
	}
	inv := 1 / depth
	x = (clip.X()*inv*0.5 + 0.5) * float32(w)
	y = (0.5 - clip.Y()*inv*0.5) * float32(h)
	return x, y, depth, true
}
