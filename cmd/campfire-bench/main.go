// Command campfire-bench steps a simulation headlessly and reports particle
// counts and timing. It can record a CPU or memory profile, plot the live
// particle count and write the final frame as a PNG.
//
//	go run ./cmd/campfire-bench -frames 1200 -graph -png fire.png
//	go tool pprof -http=":8000" cpu.pprof
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"time"

	"campfire/internal/core"
	"campfire/internal/render"
	_ "campfire/internal/sims/campfire"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/profile"
)

type options struct {
	sim     string
	frames  int
	dt      float64
	seed    int64
	sets    core.Settings
	profile string
	dir     string
	graph   bool
	pngPath string
	width   int
	height  int
}

func main() {
	var opts options
	flag.StringVar(&opts.sim, "sim", "campfire", "simulation to run")
	flag.IntVar(&opts.frames, "frames", 600, "number of steps to simulate")
	flag.Float64Var(&opts.dt, "dt", 1.0/60, "seconds per step")
	flag.Int64Var(&opts.seed, "seed", 42, "seed for the run")
	flag.Var(&opts.sets, "set", "simulation parameter as key=value (repeatable)")
	flag.StringVar(&opts.profile, "profile", "", "record a profile: cpu or mem")
	flag.StringVar(&opts.dir, "profile-dir", ".", "directory for profile output")
	flag.BoolVar(&opts.graph, "graph", false, "plot the live particle count")
	flag.StringVar(&opts.pngPath, "png", "", "write the final frame to this PNG file")
	flag.IntVar(&opts.width, "width", 480, "PNG width")
	flag.IntVar(&opts.height, "height", 360, "PNG height")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	factory, ok := core.Sims()[opts.sim]
	if !ok {
		return fmt.Errorf("unknown sim %q (available: %v)", opts.sim, core.Names())
	}
	if opts.frames <= 0 || opts.dt < 0 {
		return fmt.Errorf("frames must be positive and dt non-negative, got %d and %v", opts.frames, opts.dt)
	}

	sim := factory(opts.sets)
	cam := render.DefaultCamera()
	sim.SetViewer(cam.Eye)
	sim.Reset(opts.seed)

	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.dir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(opts.dir), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", opts.profile)
	}

	live := make([]float64, 0, opts.frames)
	peak := 0
	start := time.Now()
	for i := 0; i < opts.frames; i++ {
		sim.Step(float32(opts.dt))
		n := sim.Stats().Live
		live = append(live, float64(n))
		if n > peak {
			peak = n
		}
	}
	elapsed := time.Since(start)

	st := sim.Stats()
	log.Printf("%s: %d steps in %v (%.1f µs/step)", sim.Name(), opts.frames, elapsed, float64(elapsed.Microseconds())/float64(opts.frames))
	log.Printf("live %d (peak %d), spawned %d, expired %d, simulated %.2fs", st.Live, peak, st.Spawned, st.Expired, st.Elapsed)
	if st.Elapsed > 0 {
		log.Printf("observed spawn rate %.2f/s", float64(st.Spawned)/st.Elapsed)
	}

	if provider, ok := sim.(core.ParametersProvider); ok {
		if err := provider.Parameters().Fprint(os.Stdout); err != nil {
			return fmt.Errorf("print parameters: %w", err)
		}
	}

	if opts.graph {
		fmt.Println(asciigraph.Plot(live, asciigraph.Height(10), asciigraph.Width(72), asciigraph.Caption("live particles")))
	}

	if opts.pngPath != "" {
		if err := writePNG(opts.pngPath, sim, cam, opts.width, opts.height); err != nil {
			return err
		}
		log.Printf("wrote %s", opts.pngPath)
	}
	return nil
}

func writePNG(path string, sim core.Sim, cam render.Camera, w, h int) error {
	canvas := render.NewCanvas(w, h)
	canvas.Draw(render.Project(sim.Attributes(), cam, canvas.W, canvas.H))
	img := canvas.Image(color.RGBA{R: 8, G: 6, B: 10, A: 255})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
