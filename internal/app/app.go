//go:build ebiten

package app

import (
	"image/color"
	"time"

	"campfire/internal/core"
	"campfire/internal/render"
	"campfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{R: 8, G: 6, B: 10, A: 255}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	base    render.Camera
	cam     render.Camera
	painter *render.SpritePainter
	hud     *ui.HUD
	overlay *ui.Overlay

	canvas        *render.Canvas
	canvasPainter *render.CanvasPainter

	w, h     int
	orbit    float32
	angle    float32
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	g := &Game{
		sim:     sim,
		base:    render.DefaultCamera(),
		painter: render.NewSpritePainter(),
		hud:     ui.NewHUD(sim, cfg.Panel),
		overlay: ui.NewOverlay(sim),
		w:       cfg.Width,
		h:       cfg.Height,
		orbit:   float32(cfg.Orbit),
		seed:    cfg.Seed,
	}
	if cfg.Software {
		g.canvas = render.NewCanvas(cfg.Width, cfg.Height)
		g.canvasPainter = render.NewCanvasPainter(cfg.Width, cfg.Height, background)
	}
	g.cam = g.base
	sim.SetViewer(g.cam.Eye)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.w)

	if !g.paused || g.tickOnce {
		dt := core.FixedDelta(ebiten.TPS())
		if g.orbit != 0 {
			g.angle += g.orbit * dt
			g.cam = g.base.Orbit(g.angle)
		}
		g.sim.SetViewer(g.cam.Eye)
		g.sim.Step(dt)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	sprites := render.Project(g.sim.Attributes(), g.cam, g.w, g.h)
	if g.canvas != nil {
		g.canvas.Clear()
		g.canvas.Draw(sprites)
		g.canvasPainter.Blit(screen, g.canvas, 1)
	} else {
		g.painter.Draw(screen, sprites)
	}
	g.overlay.Draw(screen, g.cam, g.w, g.h)
	g.hud.Draw(screen, g.w, g.h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w + g.hud.Width(), g.h
}
