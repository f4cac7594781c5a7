package fire

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Particle is one flame sprite. Position is local to the system anchor.
type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3

	Size        float32 // fixed at spawn
	CurrentSize float32
	Color       colorful.Color
	Alpha       float32
	Rotation    float32

	Life    float32 // remaining seconds
	MaxLife float32
}

// Age returns the normalized elapsed fraction of the particle's life.
func (p *Particle) Age() float32 { return 1 - p.Life/p.MaxLife }

// Alive reports whether the particle still has remaining life.
func (p *Particle) Alive() bool { return p.Life > 0 }
