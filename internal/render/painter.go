//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const spriteTexSize = 64

// SpritePainter draws projected sprites with additive blending on the GPU.
type SpritePainter struct {
	tex *ebiten.Image
}

// NewSpritePainter builds the shared sprite texture.
func NewSpritePainter() *SpritePainter {
	img := image.NewRGBA(image.Rect(0, 0, spriteTexSize, spriteTexSize))
	half := float32(spriteTexSize) / 2
	for y := 0; y < spriteTexSize; y++ {
		for x := 0; x < spriteTexSize; x++ {
			dx := (float32(x) + 0.5 - half) / half
			dy := (float32(y) + 0.5 - half) / half
			v := uint8(flameShape(dx, dy, 0)*255 + 0.5)
			img.SetRGBA(x, y, color.RGBA{v, v, v, v})
		}
	}
	return &SpritePainter{tex: ebiten.NewImageFromImage(img)}
}

// Draw renders sprites onto dst in order.
func (p *SpritePainter) Draw(dst *ebiten.Image, sprites []Sprite) {
	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterLinear
	scale := 2 / float64(spriteTexSize)
	for _, s := range sprites {
		op.GeoM.Reset()
		op.GeoM.Translate(-spriteTexSize/2, -spriteTexSize/2)
		op.GeoM.Scale(scale*float64(s.Radius), scale*float64(s.Radius))
		op.GeoM.Rotate(float64(s.Angle))
		op.GeoM.Translate(float64(s.X), float64(s.Y))

		a := s.Color[3]
		op.ColorScale.Reset()
		op.ColorScale.Scale(s.Color[0]*a, s.Color[1]*a, s.Color[2]*a, a)
		dst.DrawImage(p.tex, op)
	}
}

// CanvasPainter uploads a software Canvas into an image and draws it.
type CanvasPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	bg   color.RGBA
}

// NewCanvasPainter allocates a painter for a canvas of size w*h.
func NewCanvasPainter(w, h int, bg color.RGBA) *CanvasPainter {
	return &CanvasPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h), bg: bg}
}

// Blit uploads the canvas and draws it scaled onto dst.
func (cp *CanvasPainter) Blit(dst *ebiten.Image, c *Canvas, scale int) {
	if c.W != cp.w || c.H != cp.h {
		return
	}
	c.FillRGBA(cp.buf, cp.bg)
	cp.img.WritePixels(cp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(cp.img, op)
}

// Size returns the dimensions of the underlying image.
func (cp *CanvasPainter) Size() (int, int) { return cp.w, cp.h }
