package fire

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// ScalarPoint is a control point of a scalar curve definition.
type ScalarPoint struct {
	T     float32
	Value float32
}

// ColorPoint is a control point of a color curve definition.
type ColorPoint struct {
	T     float32
	Color colorful.Color
}

// Config holds the constants a System is built with. Values are fixed for the
// lifetime of the System.
type Config struct {
	// SpawnRate is the number of particles emitted per second.
	SpawnRate float64

	LifeMin float32
	LifeMax float32

	// SpawnRadius bounds the horizontal jitter disk around the anchor.
	SpawnRadius float32
	// SpawnHeight is the depth of the vertical jitter band above the anchor.
	SpawnHeight float32

	SizeMin float32
	SizeMax float32

	// RiseMin and RiseMax bound the initial upward speed.
	RiseMin float32
	RiseMax float32
	// Drift is the half-width of the symmetric horizontal velocity jitter.
	Drift float32

	Gravity     float32
	Drag        float32
	AngularRate float32

	Alpha []ScalarPoint
	Size  []ScalarPoint
	Color []ColorPoint
}

// DefaultConfig returns the campfire flame settings.
func DefaultConfig() Config {
	return Config{
		SpawnRate:   75,
		LifeMin:     0.375,
		LifeMax:     1.125,
		SpawnRadius: 0.3,
		SpawnHeight: 0.2,
		SizeMin:     1.5,
		SizeMax:     3.0,
		RiseMin:     2.0,
		RiseMax:     3.5,
		Drift:       0.1,
		Gravity:     1.5,
		Drag:        0.4,
		AngularRate: 0.5,
		Alpha: []ScalarPoint{
			{T: 0.0, Value: 0.0},
			{T: 0.1, Value: 1.0},
			{T: 0.6, Value: 1.0},
			{T: 1.0, Value: 0.0},
		},
		Size: []ScalarPoint{
			{T: 0.0, Value: 1.0},
			{T: 0.5, Value: 3.0},
			{T: 1.0, Value: 1.0},
		},
		Color: []ColorPoint{
			{T: 0.0, Color: colorful.Color{R: 1, G: 1, B: 0x80 / 255.0}},
			{T: 1.0, Color: colorful.Color{R: 1, G: 0x80 / 255.0, B: 0x80 / 255.0}},
		},
	}
}

// FromMap overlays flag-style key/value pairs onto the default config.
// Unparseable or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["spawn_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.SpawnRate = parsed
		}
	}
	setFloat32(cfg, "life_min", &c.LifeMin, func(f float32) bool { return f > 0 })
	setFloat32(cfg, "life_max", &c.LifeMax, func(f float32) bool { return f > 0 })
	if c.LifeMax < c.LifeMin {
		c.LifeMax = c.LifeMin
	}
	setFloat32(cfg, "spawn_radius", &c.SpawnRadius, nonNegative)
	setFloat32(cfg, "spawn_height", &c.SpawnHeight, nonNegative)
	setFloat32(cfg, "size_min", &c.SizeMin, nonNegative)
	setFloat32(cfg, "size_max", &c.SizeMax, nonNegative)
	if c.SizeMax < c.SizeMin {
		c.SizeMax = c.SizeMin
	}
	setFloat32(cfg, "rise_min", &c.RiseMin, nil)
	setFloat32(cfg, "rise_max", &c.RiseMax, nil)
	if c.RiseMax < c.RiseMin {
		c.RiseMax = c.RiseMin
	}
	setFloat32(cfg, "drift", &c.Drift, nonNegative)
	setFloat32(cfg, "gravity", &c.Gravity, nil)
	setFloat32(cfg, "drag", &c.Drag, nonNegative)
	setFloat32(cfg, "angular_rate", &c.AngularRate, nil)
	if v, ok := cfg["color_start"]; ok {
		if parsed, err := colorful.Hex(v); err == nil {
			c.Color[0].Color = parsed
		}
	}
	if v, ok := cfg["color_end"]; ok {
		if parsed, err := colorful.Hex(v); err == nil {
			c.Color[len(c.Color)-1].Color = parsed
		}
	}
	return c
}

func setFloat32(cfg map[string]string, key string, dst *float32, accept func(float32) bool) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return
	}
	f := float32(parsed)
	if accept != nil && !accept(f) {
		return
	}
	*dst = f
}

func nonNegative(f float32) bool { return f >= 0 }
