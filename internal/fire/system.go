package fire

import "github.com/go-gl/mathgl/mgl32"

// Stats summarises a System's history.
type Stats struct {
	Steps   uint64
	Spawned uint64
	Expired uint64
	Live    int
	Elapsed float64 // seconds
}

// System is one flame: an emitter, an integrator and the particles they share.
// It is not safe for concurrent use; the host calls Step once per frame.
type System struct {
	emitter    *Emitter
	integrator *Integrator

	particles []Particle
	viewer    mgl32.Vec3
	anchor    mgl32.Vec3

	stats Stats
}

// New builds a System from cfg. rng drives all spawn jitter.
func New(cfg Config, rng Source) *System {
	return &System{
		emitter:    NewEmitter(cfg, rng),
		integrator: NewIntegrator(cfg),
	}
}

// SetViewer sets the position particles are depth-sorted against.
func (s *System) SetViewer(pos mgl32.Vec3) { s.viewer = pos }

// SetAnchor moves the emission source. Particles follow the anchor.
func (s *System) SetAnchor(pos mgl32.Vec3) { s.anchor = pos }

// Anchor returns the emission source position.
func (s *System) Anchor() mgl32.Vec3 { return s.anchor }

// Step spawns, advances and sorts the particles for dt seconds and returns
// the resulting render snapshot. Newly spawned particles age by the full dt.
func (s *System) Step(dt float32) Attributes {
	var spawned, expired int
	s.particles, spawned = s.emitter.Spawn(dt, s.particles)
	s.particles, expired = s.integrator.Advance(dt, s.particles)
	s.integrator.Sort(s.viewer, s.anchor, s.particles)

	s.stats.Steps++
	s.stats.Spawned += uint64(spawned)
	s.stats.Expired += uint64(expired)
	s.stats.Live = len(s.particles)
	s.stats.Elapsed += float64(dt)

	return s.Attributes()
}

// Attributes flattens the current particles without stepping.
func (s *System) Attributes() Attributes {
	return Flatten(s.particles, s.anchor)
}

// Len returns the number of live particles.
func (s *System) Len() int { return len(s.particles) }

// Stats returns the cumulative counters.
func (s *System) Stats() Stats { return s.stats }
