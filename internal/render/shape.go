package render

import "math"

// flameShape is the sprite footprint at sprite-local (x, y), where the unit
// circle is the sprite radius. The footprint is an ellipse elongated along
// the rotated vertical axis with a smooth falloff to zero at the rim.
func flameShape(x, y, angle float32) float32 {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	u := c*x + s*y
	v := -s*x + c*y
	d := 1.6*u*u + v*v
	if d >= 1 {
		return 0
	}
	w := 1 - d
	return w * w
}
