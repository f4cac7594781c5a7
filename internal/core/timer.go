package core

import "time"

// FrameClock measures the elapsed time between host frames and hands it to
// the simulation as a delta in seconds.
type FrameClock struct {
	maxStep time.Duration
	last    time.Time
	now     func() time.Time
}

// NewFrameClock constructs a clock whose deltas never exceed maxStep.
// A non-positive maxStep defaults to 100ms.
func NewFrameClock(maxStep time.Duration) *FrameClock {
	if maxStep <= 0 {
		maxStep = 100 * time.Millisecond
	}
	return &FrameClock{maxStep: maxStep, now: time.Now}
}

// Tick returns the seconds elapsed since the previous Tick. The first call
// returns zero.
func (f *FrameClock) Tick() float32 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > f.maxStep {
		delta = f.maxStep
	}
	return float32(delta.Seconds())
}

// FixedDelta converts a ticks-per-second rate into a per-tick delta, the form
// ebiten's fixed update loop needs.
func FixedDelta(tps int) float32 {
	if tps <= 0 {
		tps = 60
	}
	return float32(1.0 / float64(tps))
}
