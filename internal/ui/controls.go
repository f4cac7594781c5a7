package ui

import (
	"fmt"
	"math"
	"strconv"

	"campfire/internal/core"
	"campfire/internal/fire"
)

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool
}

func newControlStates(controls []core.ParameterControl) []controlState {
	out := make([]controlState, len(controls))
	for i, ctrl := range controls {
		out[i] = controlState{control: ctrl, value: "--"}
	}
	return out
}

// refresh reads the control's current value out of snap.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue, s.floatValue = v, float64(v)
		s.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = v
		s.value = formatFloat(s.control.Step, v)
	default:
		return
	}
	s.hasValue = true
}

// target returns the value one step in direction, or false when the control
// is already at that bound.
func (s *controlState) target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	step := s.control.Step
	current := s.floatValue
	if s.control.Type == core.ParamTypeInt {
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
		current = float64(s.intValue)
	} else if step <= 0 {
		step = 0.05
	}
	next := s.control.Clamp(current + float64(direction)*step)
	if math.Abs(next-current) < 1e-9 {
		return 0, false
	}
	return next, true
}

// apply steps the control through whichever setter matches its type.
func (s *controlState) apply(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	next, ok := s.target(direction)
	if !ok {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		if ints == nil || !ints.SetIntParameter(s.control.Key, int(next)) {
			return false
		}
		s.intValue, s.floatValue = int(next), next
		s.value = strconv.Itoa(int(next))
	case core.ParamTypeFloat:
		if floats == nil || !floats.SetFloatParameter(s.control.Key, next) {
			return false
		}
		s.floatValue = next
		s.value = formatFloat(s.control.Step, next)
	default:
		return false
	}
	return true
}

func formatFloat(step, value float64) string {
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// statsLines formats the counters shown above the controls.
func statsLines(st fire.Stats, fps float64) []string {
	return []string{
		fmt.Sprintf("live     %d", st.Live),
		fmt.Sprintf("spawned  %d", st.Spawned),
		fmt.Sprintf("expired  %d", st.Expired),
		fmt.Sprintf("time     %.1fs", st.Elapsed),
		fmt.Sprintf("fps      %.0f", fps),
	}
}
