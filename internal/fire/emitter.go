package fire

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Source supplies uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float32() float32
}

// Emitter creates new particles at a fixed rate. The fractional part of the
// expected spawn count is carried between calls so the long-run rate matches
// the configured one regardless of frame-time jitter.
type Emitter struct {
	cfg  Config
	rng  Source
	debt float64
}

// NewEmitter returns an emitter drawing its jitter from rng.
func NewEmitter(cfg Config, rng Source) *Emitter {
	return &Emitter{cfg: cfg, rng: rng}
}

// Spawn appends the particles owed for dt seconds to ps and reports how many
// were added. Existing particles are left untouched.
func (e *Emitter) Spawn(dt float32, ps []Particle) ([]Particle, int) {
	e.debt += float64(dt) * e.cfg.SpawnRate
	n := math.Floor(e.debt)
	e.debt -= n
	count := int(n)
	for i := 0; i < count; i++ {
		ps = append(ps, e.newParticle())
	}
	return ps, count
}

// Debt returns the fractional spawn count carried into the next call.
func (e *Emitter) Debt() float64 { return e.debt }

func (e *Emitter) newParticle() Particle {
	c := &e.cfg
	life := e.uniform(c.LifeMin, c.LifeMax)

	r := c.SpawnRadius * float32(math.Sqrt(float64(e.rng.Float32())))
	theta := 2 * math.Pi * float64(e.rng.Float32())
	pos := mgl32.Vec3{
		r * float32(math.Cos(theta)),
		e.uniform(0, c.SpawnHeight),
		r * float32(math.Sin(theta)),
	}

	size := e.uniform(c.SizeMin, c.SizeMax)
	rotation := e.rng.Float32() * 2 * math.Pi
	vel := mgl32.Vec3{
		e.uniform(-c.Drift, c.Drift),
		e.uniform(c.RiseMin, c.RiseMax),
		e.uniform(-c.Drift, c.Drift),
	}

	return Particle{
		Position:    pos,
		Velocity:    vel,
		Size:        size,
		CurrentSize: size,
		Alpha:       1,
		Rotation:    rotation,
		Life:        life,
		MaxLife:     life,
	}
}

func (e *Emitter) uniform(lo, hi float32) float32 {
	return lo + e.rng.Float32()*(hi-lo)
}
