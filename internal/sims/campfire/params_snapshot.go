package campfire

import (
	"campfire/internal/core"
	"campfire/internal/fire"
)

func (s *Scene) Parameters() core.ParameterSnapshot {
	f := s.cfg.Fire
	groups := []core.ParameterGroup{
		{
			Name: "Scene",
			Params: []core.Parameter{
				core.IntParam("fires", "Fires", s.cfg.Fires),
				core.Float32Param("ring_radius", "Ring radius", s.cfg.RingRadius),
				core.Int64Param("seed", "Seed", s.seed),
			},
		},
		{
			Name: "Emission",
			Params: []core.Parameter{
				core.FloatParam("spawn_rate", "Spawn rate", f.SpawnRate),
				core.Float32Param("life_min", "Life min", f.LifeMin),
				core.Float32Param("life_max", "Life max", f.LifeMax),
				core.Float32Param("spawn_radius", "Spawn radius", f.SpawnRadius),
				core.Float32Param("spawn_height", "Spawn height", f.SpawnHeight),
				core.Float32Param("size_min", "Size min", f.SizeMin),
				core.Float32Param("size_max", "Size max", f.SizeMax),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				core.Float32Param("rise_min", "Rise min", f.RiseMin),
				core.Float32Param("rise_max", "Rise max", f.RiseMax),
				core.Float32Param("drift", "Drift", f.Drift),
				core.Float32Param("gravity", "Gravity", f.Gravity),
				core.Float32Param("drag", "Drag", f.Drag),
				core.Float32Param("angular_rate", "Angular rate", f.AngularRate),
			},
		},
		{
			Name: "Color",
			Params: []core.Parameter{
				core.ColorParam("color_start", "Color start", f.Color[0].Color.Hex()),
				core.ColorParam("color_end", "Color end", f.Color[len(f.Color)-1].Color.Hex()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fires", Label: "Fires", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 12, HasMin: true, HasMax: true},
		{Key: "spawn_rate", Label: "Spawn rate", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 500, HasMin: true, HasMax: true},
		{Key: "gravity", Label: "Gravity", Type: core.ParamTypeFloat, Step: 0.1, Min: -5, Max: 5, HasMin: true, HasMax: true},
		{Key: "drag", Label: "Drag", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 5, HasMin: true, HasMax: true},
		{Key: "angular_rate", Label: "Angular rate", Type: core.ParamTypeFloat, Step: 0.1, Min: -5, Max: 5, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer control. The fires are rebuilt because
// their configuration is fixed at construction.
func (s *Scene) SetIntParameter(key string, value int) bool {
	ctrl, ok := s.control(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	switch key {
	case "fires":
		s.cfg.Fires = int(ctrl.Clamp(float64(value)))
	default:
		return false
	}
	s.Reset(s.seed)
	return true
}

// SetFloatParameter applies a floating point control and rebuilds the fires.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := s.control(key, core.ParamTypeFloat)
	if !ok {
		return false
	}
	value = ctrl.Clamp(value)
	next := s.cfg.Fire
	switch key {
	case "spawn_rate":
		next.SpawnRate = value
	case "gravity":
		next.Gravity = float32(value)
	case "drag":
		next.Drag = float32(value)
	case "angular_rate":
		next.AngularRate = float32(value)
	default:
		return false
	}
	s.rebuild(next)
	return true
}

func (s *Scene) rebuild(cfg fire.Config) {
	s.cfg.Fire = cfg
	s.Reset(s.seed)
}

func (s *Scene) control(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, c := range s.ParameterControls() {
		if c.Key == key && c.Type == typ {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}
