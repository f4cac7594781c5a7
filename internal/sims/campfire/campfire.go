package campfire

import (
	"math"

	"campfire/internal/core"
	"campfire/internal/fire"

	"github.com/go-gl/mathgl/mgl32"
)

// Scene runs one or more independent fire systems and presents them to the
// host as a single back-to-front render snapshot.
type Scene struct {
	name string
	cfg  Config
	seed int64

	systems []*fire.System
	viewer  mgl32.Vec3
	attrs   fire.Attributes
}

// New returns a Scene named "campfire" built from cfg. Call Reset before the
// first Step.
func New(cfg Config) *Scene {
	return NewNamed("campfire", cfg)
}

// NewNamed returns a Scene registered under name.
func NewNamed(name string, cfg Config) *Scene {
	if cfg.Fires <= 0 {
		cfg.Fires = 1
	}
	return &Scene{name: name, cfg: cfg, seed: cfg.Seed}
}

// Name returns the simulation identifier.
func (s *Scene) Name() string { return s.name }

// Config returns the active configuration.
func (s *Scene) Config() Config { return s.cfg }

// Reset discards every particle and rebuilds the fires. Each fire draws from
// its own stream of seed; a zero seed falls back to the configured one.
func (s *Scene) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	anchors := s.Anchors()
	s.systems = make([]*fire.System, len(anchors))
	for i, a := range anchors {
		sys := fire.New(s.cfg.Fire, core.Stream(seed, i))
		sys.SetAnchor(a)
		sys.SetViewer(s.viewer)
		s.systems[i] = sys
	}
	s.attrs = fire.Attributes{}
}

// Anchors returns the emission point of every fire.
func (s *Scene) Anchors() []mgl32.Vec3 {
	n := s.cfg.Fires
	if n <= 1 {
		return []mgl32.Vec3{s.cfg.Center}
	}
	out := make([]mgl32.Vec3, n)
	for i := range out {
		theta := 2 * math.Pi * float64(i) / float64(n)
		out[i] = s.cfg.Center.Add(mgl32.Vec3{
			s.cfg.RingRadius * float32(math.Cos(theta)),
			0,
			s.cfg.RingRadius * float32(math.Sin(theta)),
		})
	}
	return out
}

// SetViewer updates the camera position used for depth ordering.
func (s *Scene) SetViewer(pos mgl32.Vec3) {
	s.viewer = pos
	for _, sys := range s.systems {
		sys.SetViewer(pos)
	}
}

// Step advances every fire by dt and rebuilds the combined snapshot.
func (s *Scene) Step(dt float32) {
	if len(s.systems) == 0 {
		s.Reset(s.seed)
	}
	if len(s.systems) == 1 {
		s.attrs = s.systems[0].Step(dt)
		return
	}
	parts := make([]fire.Attributes, len(s.systems))
	for i, sys := range s.systems {
		parts[i] = sys.Step(dt)
	}
	s.attrs = fire.MergeSorted(s.viewer, parts...)
}

// Attributes returns the snapshot produced by the last Step.
func (s *Scene) Attributes() fire.Attributes { return s.attrs }

// Stats sums the counters of every fire.
func (s *Scene) Stats() fire.Stats {
	var out fire.Stats
	for i, sys := range s.systems {
		st := sys.Stats()
		if i == 0 {
			out.Steps = st.Steps
			out.Elapsed = st.Elapsed
		}
		out.Spawned += st.Spawned
		out.Expired += st.Expired
		out.Live += st.Live
	}
	return out
}

func init() {
	core.Register("campfire", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
	core.Register("campfires", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		if _, ok := cfg["fires"]; !ok {
			c.Fires = 3
		}
		return NewNamed("campfires", c)
	})
}
