package core

import (
	"sort"

	"campfire/internal/fire"

	"github.com/go-gl/mathgl/mgl32"
)

// Sim defines the contract host drivers step and draw.
type Sim interface {
	Name() string
	Reset(seed int64)
	// Step advances the simulation by dt seconds.
	Step(dt float32)
	// SetViewer sets the camera position used for back-to-front ordering.
	SetViewer(pos mgl32.Vec3)
	// Attributes returns the render snapshot produced by the last Step.
	Attributes() fire.Attributes
	Stats() fire.Stats
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
