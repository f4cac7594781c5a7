package render

import (
	"image"
	"image/color"
)

// FillRGBA converts accumulated light into RGBA pixels in buf, added on top
// of bg and saturated per channel. buf must hold 4*W*H bytes.
func (c *Canvas) FillRGBA(buf []byte, bg color.RGBA) {
	n := c.W * c.H
	if len(buf) < 4*n {
		return
	}
	for i := 0; i < n; i++ {
		src := 3 * i
		base := 4 * i
		buf[base+0] = addChannel(bg.R, c.data[src+0])
		buf[base+1] = addChannel(bg.G, c.data[src+1])
		buf[base+2] = addChannel(bg.B, c.data[src+2])
		buf[base+3] = 0xff
	}
}

// Image returns the canvas as an opaque RGBA image over bg.
func (c *Canvas) Image(bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.W, c.H))
	c.FillRGBA(img.Pix, bg)
	return img
}

func addChannel(base uint8, light float32) uint8 {
	v := float32(base) + light*255
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v + 0.5)
}
