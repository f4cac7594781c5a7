package campfire

import (
	"strconv"

	"campfire/internal/fire"

	"github.com/go-gl/mathgl/mgl32"
)

// Config controls how many fires a Scene runs and where they sit.
type Config struct {
	// Fires is the number of independent flames; more than one places them
	// evenly on a ring of RingRadius around Center.
	Fires      int
	RingRadius float32
	Center     mgl32.Vec3

	Seed int64

	Fire fire.Config
}

// DefaultConfig returns a single campfire at the origin.
func DefaultConfig() Config {
	return Config{
		Fires:      1,
		RingRadius: 2.5,
		Seed:       42,
		Fire:       fire.DefaultConfig(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Flame keys are forwarded to fire.FromMap.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Fire = fire.FromMap(cfg)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["fires"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Fires = parsed
		}
	}
	if v, ok := cfg["ring_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			c.RingRadius = float32(parsed)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
