// Command campfire-tty previews a simulation in the terminal. Each cell
// shows two canvas pixels with an upper half block.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"campfire/internal/core"
	"campfire/internal/render"
	_ "campfire/internal/sims/campfire"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

type viewer struct {
	screen tcell.Screen
	sim    core.Sim
	base   render.Camera
	cam    render.Camera
	canvas *render.Canvas
	clock  *core.FrameClock

	orbit  float32
	angle  float32
	paused bool
	seed   int64
}

func main() {
	simName := flag.String("sim", "campfire", "simulation to run")
	seed := flag.Int64("seed", 42, "seed for simulation reset")
	fps := flag.Int("fps", 30, "frames per second")
	orbit := flag.Float64("orbit", 0.2, "camera orbit speed in radians per second")
	var sets core.Settings
	flag.Var(&sets, "set", "simulation parameter as key=value (repeatable)")
	flag.Parse()

	factory, ok := core.Sims()[*simName]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", *simName, core.Names())
	}

	v, err := newViewer(factory(sets), *seed, float32(*orbit))
	if err != nil {
		log.Fatal(err)
	}
	v.run(*fps)
}

func newViewer(sim core.Sim, seed int64, orbit float32) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	v := &viewer{
		screen: screen,
		sim:    sim,
		base:   render.DefaultCamera(),
		clock:  core.NewFrameClock(100 * time.Millisecond),
		orbit:  orbit,
		seed:   seed,
	}
	v.cam = v.base
	v.sim.SetViewer(v.cam.Eye)
	v.sim.Reset(seed)
	v.resize()
	return v, nil
}

func (v *viewer) run(fps int) {
	defer v.screen.Fini()
	if fps <= 0 {
		fps = 30
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case <-ticker.C:
			v.step(v.clock.Tick())
			v.draw()
		}
	}
}

func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'r':
				v.sim.Reset(v.seed)
			case 's':
				v.seed = time.Now().UnixNano()
				v.sim.Reset(v.seed)
			}
		}
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	}
	return true
}

func (v *viewer) resize() {
	w, h := v.screen.Size()
	v.canvas = render.NewCanvas(w, 2*h)
}

func (v *viewer) step(dt float32) {
	if v.paused {
		return
	}
	if v.orbit != 0 {
		v.angle += v.orbit * dt
		v.cam = v.base.Orbit(v.angle)
	}
	v.sim.SetViewer(v.cam.Eye)
	v.sim.Step(dt)
}

func (v *viewer) draw() {
	c := v.canvas
	c.Clear()
	c.Draw(render.Project(v.sim.Attributes(), v.cam, c.W, c.H))

	for y := 0; y+1 < c.H; y += 2 {
		for x := 0; x < c.W; x++ {
			top := termColor(c.At(x, y))
			bottom := termColor(c.At(x, y+1))
			v.screen.SetContent(x, y/2, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	st := v.sim.Stats()
	status := fmt.Sprintf(" %s  live %d  t %.1fs ", v.sim.Name(), st.Live, st.Elapsed)
	for i, r := range status {
		if i >= c.W {
			break
		}
		v.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
	}
	v.screen.Show()
}

// termColor converts accumulated light into a saturated terminal color.
func termColor(r, g, b float32) tcell.Color {
	return tcell.NewRGBColor(channel(r), channel(g), channel(b))
}

func channel(v float32) int32 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int32(v*255 + 0.5)
}
