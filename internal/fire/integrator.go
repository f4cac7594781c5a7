package fire

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Integrator ages particles, drives their visual parameters from the
// lifetime curves and integrates their motion.
type Integrator struct {
	alpha *Curve[float32]
	size  *Curve[float32]
	color *Curve[colorful.Color]

	gravity     float32
	drag        float32
	angularRate float32
}

// NewIntegrator builds the three lifetime curves from cfg.
func NewIntegrator(cfg Config) *Integrator {
	in := &Integrator{
		alpha:       NewScalarCurve(),
		size:        NewScalarCurve(),
		color:       NewColorCurve(),
		gravity:     cfg.Gravity,
		drag:        cfg.Drag,
		angularRate: cfg.AngularRate,
	}
	for _, p := range cfg.Alpha {
		in.alpha.AddPoint(p.T, p.Value)
	}
	for _, p := range cfg.Size {
		in.size.AddPoint(p.T, p.Value)
	}
	for _, p := range cfg.Color {
		in.color.AddPoint(p.T, p.Color)
	}
	return in
}

// Advance steps every particle by dt. Particles whose life reaches zero are
// dropped; survivors keep their relative order. The compacted slice shares
// the backing array of ps.
func (in *Integrator) Advance(dt float32, ps []Particle) ([]Particle, int) {
	live := ps[:0]
	for i := range ps {
		p := ps[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}

		t := p.Age()
		p.Rotation += dt * in.angularRate
		p.Alpha = in.alpha.Evaluate(t)
		p.CurrentSize = p.Size * in.size.Evaluate(t)
		p.Color = in.color.Evaluate(t)

		p.Position = p.Position.Add(p.Velocity.Mul(dt))

		drag := p.Velocity.Mul(dt * in.drag)
		for axis := 0; axis < 3; axis++ {
			drag[axis] = clampDrag(drag[axis], p.Velocity[axis])
		}
		p.Velocity = p.Velocity.Sub(drag)

		p.Velocity[1] -= dt * in.gravity

		live = append(live, p)
	}
	return live, len(ps) - len(live)
}

// Sort orders ps farthest-first from viewer. Particle positions are offset by
// anchor before measuring. Equal distances keep no particular order.
func (in *Integrator) Sort(viewer, anchor mgl32.Vec3, ps []Particle) {
	eye := viewer.Sub(anchor)
	slices.SortFunc(ps, func(a, b Particle) int {
		return cmp.Compare(b.Position.Sub(eye).LenSqr(), a.Position.Sub(eye).LenSqr())
	})
}

// clampDrag limits drag to the magnitude of v so it can only bring the
// component to zero, never flip it.
func clampDrag(drag, v float32) float32 {
	if v == 0 {
		return 0
	}
	m := min(abs32(drag), abs32(v))
	if v < 0 {
		return -m
	}
	return m
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
