package app

import (
	"flag"

	"campfire/internal/core"
)

// Config represents the command-line parameters for the GUI driver.
type Config struct {
	Sim      string
	Width    int
	Height   int
	Panel    int
	TPS      int
	Seed     int64
	Orbit    float64
	Software bool
	Sets     core.Settings
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "campfire", Width: 960, Height: 720, Panel: 240, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "scene view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "scene view height in pixels")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Orbit, "orbit", c.Orbit, "camera orbit speed in radians per second")
	fs.BoolVar(&c.Software, "software", c.Software, "composite sprites on the CPU canvas")
	fs.Var(&c.Sets, "set", "simulation parameter as key=value (repeatable)")
}
