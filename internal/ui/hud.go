//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"campfire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the stats and parameter panel to the right of the scene view.
type HUD struct {
	sim    core.Sim
	width  int
	panel  *ebiten.Image
	pixel  *ebiten.Image
	title  string
	height int

	snapshot    core.ParameterSnapshot
	controls    []controlState
	rects       []controlRects
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
}

type controlRects struct {
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

var (
	panelBg    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// NewHUD constructs a HUD for sim with a panel of the given width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls())
		h.layoutControls()
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// +/- buttons.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.sim.(core.ParametersProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	for i := range h.controls {
		h.controls[i].refresh(h.snapshot)
	}
	h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(panelBg)
	h.drawPanel()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	px := mx - h.offsetX
	pt := image.Pt(px, my)
	for i := range h.controls {
		switch {
		case pt.In(h.rects[i].minus):
			h.controls[i].apply(-1, h.intSetter, h.floatSetter)
			return
		case pt.In(h.rects[i].plus):
			h.controls[i].apply(1, h.intSetter, h.floatSetter)
			return
		}
	}
}

func (h *HUD) drawPanel() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)

	for _, line := range statsLines(h.sim.Stats(), ebiten.ActualFPS()) {
		y += statsSpacing
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}

	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y+infoSpacing, dimColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		r := h.rects[i]
		baseline := r.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, textColor)

		valueColor := textColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		text.Draw(h.panel, state.value, face, r.minus.Min.X-buttonGap-bounds.Dx(), baseline, valueColor)

		_, canDown := state.target(-1)
		_, canUp := state.target(1)
		h.drawButton(r.minus, "-", canDown)
		h.drawButton(r.plus, "+", canUp)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	h.rects = make([]controlRects, len(h.controls))
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.rects[i] = controlRects{top: top, minus: minus, plus: plus}
	}
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statsSpacing   = 16
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 5*statsSpacing + 14
)
