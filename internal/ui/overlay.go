//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"campfire/internal/core"
	"campfire/internal/render"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type anchorProvider interface {
	Anchors() []mgl32.Vec3
}

// Overlay draws optional debugging visuals on top of the scene.
// Keys: 1 ground grid, 2 fire anchors, 3 draw order.
type Overlay struct {
	sim        core.Sim
	showGrid   bool
	showAnchor bool
	showOrder  bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the debug layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showAnchor = !o.showAnchor
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showOrder = !o.showOrder
	}
}

// Draw renders the enabled layers onto a w×h view seen through cam.
func (o *Overlay) Draw(screen *ebiten.Image, cam render.Camera, w, h int) {
	if o.showGrid {
		o.drawGrid(screen, cam, w, h)
	}
	if o.showAnchor {
		if provider, ok := o.sim.(anchorProvider); ok {
			for _, a := range provider.Anchors() {
				if x, y, ok := render.ProjectPoint(cam, a, w, h); ok {
					o.drawLine(screen, float64(x)-6, float64(y), float64(x)+6, float64(y), 2, color.RGBA{R: 80, G: 220, B: 120, A: 255})
					o.drawLine(screen, float64(x), float64(y)-6, float64(x), float64(y)+6, 2, color.RGBA{R: 80, G: 220, B: 120, A: 255})
				}
			}
		}
	}
	if o.showOrder {
		o.drawOrder(screen, cam, w, h)
	}
}

// drawGrid draws unit lines on the ground plane around the origin.
func (o *Overlay) drawGrid(screen *ebiten.Image, cam render.Camera, w, h int) {
	const extent = 4
	col := color.RGBA{R: 70, G: 70, B: 90, A: 160}
	for i := -extent; i <= extent; i++ {
		f := float32(i)
		o.drawSegment(screen, cam, w, h, mgl32.Vec3{f, 0, -extent}, mgl32.Vec3{f, 0, extent}, col)
		o.drawSegment(screen, cam, w, h, mgl32.Vec3{-extent, 0, f}, mgl32.Vec3{extent, 0, f}, col)
	}
}

// drawOrder marks every particle center, shading from blue for the first
// drawn (farthest) to red for the last drawn (nearest).
func (o *Overlay) drawOrder(screen *ebiten.Image, cam render.Camera, w, h int) {
	attrs := o.sim.Attributes()
	n := attrs.Len()
	if n == 0 {
		return
	}
	for i, s := range render.Project(attrs, cam, w, h) {
		t := float64(i) / math.Max(1, float64(n-1))
		col := color.RGBA{R: uint8(255 * t), G: 40, B: uint8(255 * (1 - t)), A: 255}
		o.drawPoint(screen, float64(s.X), float64(s.Y), 3, col)
	}
}

func (o *Overlay) drawSegment(screen *ebiten.Image, cam render.Camera, w, h int, a, b mgl32.Vec3, col color.RGBA) {
	x1, y1, ok1 := render.ProjectPoint(cam, a, w, h)
	x2, y2, ok2 := render.ProjectPoint(cam, b, w, h)
	if !ok1 || !ok2 {
		return
	}
	o.drawLine(screen, float64(x1), float64(y1), float64(x2), float64(y2), 1, col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
