package fire

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func alphaCurve() *Curve[float32] {
	c := NewScalarCurve()
	for _, p := range DefaultConfig().Alpha {
		c.AddPoint(p.T, p.Value)
	}
	return c
}

func TestCurveExactAtControlPoints(t *testing.T) {
	c := alphaCurve()
	cases := []struct {
		t, want float32
	}{
		{0.0, 0.0},
		{0.1, 1.0},
		{0.6, 1.0},
		{1.0, 0.0},
	}
	for _, tc := range cases {
		if got := c.Evaluate(tc.t); got != tc.want {
			t.Fatalf("Evaluate(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestCurveClampsOutsideRange(t *testing.T) {
	c := NewScalarCurve()
	c.AddPoint(0.2, 4)
	c.AddPoint(0.8, 9)

	for _, q := range []float32{-10, -0.5, 0, 0.19} {
		if got := c.Evaluate(q); got != 4 {
			t.Fatalf("Evaluate(%v) = %v, want first value 4", q, got)
		}
	}
	for _, q := range []float32{0.81, 1, 3, 1e6} {
		if got := c.Evaluate(q); got != 9 {
			t.Fatalf("Evaluate(%v) = %v, want last value 9", q, got)
		}
	}
}

func TestCurveMidpoint(t *testing.T) {
	c := NewScalarCurve()
	c.AddPoint(0, 0)
	c.AddPoint(1, 10)
	if got := c.Evaluate(0.5); got != 5 {
		t.Fatalf("Evaluate(0.5) = %v, want 5", got)
	}
	if got := c.Evaluate(0.25); got != 2.5 {
		t.Fatalf("Evaluate(0.25) = %v, want 2.5", got)
	}
}

func TestCurveSinglePoint(t *testing.T) {
	c := NewScalarCurve()
	c.AddPoint(0.5, 7)
	for _, q := range []float32{-1, 0.5, 2} {
		if got := c.Evaluate(q); got != 7 {
			t.Fatalf("Evaluate(%v) = %v, want 7", q, got)
		}
	}
}

func TestCurveSizeProfile(t *testing.T) {
	c := NewScalarCurve()
	for _, p := range DefaultConfig().Size {
		c.AddPoint(p.T, p.Value)
	}
	if got := c.Evaluate(0.25); got != 2 {
		t.Fatalf("size at 0.25 = %v, want 2", got)
	}
	if got := c.Evaluate(0.5); got != 3 {
		t.Fatalf("size at 0.5 = %v, want 3", got)
	}
	if got := c.Evaluate(0.75); got != 2 {
		t.Fatalf("size at 0.75 = %v, want 2", got)
	}
}

func TestColorCurveBlendsChannels(t *testing.T) {
	c := NewColorCurve()
	c.AddPoint(0, colorful.Color{R: 1, G: 1, B: 0})
	c.AddPoint(1, colorful.Color{R: 1, G: 0, B: 1})

	got := c.Evaluate(0.5)
	want := colorful.Color{R: 1, G: 0.5, B: 0.5}
	if math.Abs(got.R-want.R) > 1e-6 || math.Abs(got.G-want.G) > 1e-6 || math.Abs(got.B-want.B) > 1e-6 {
		t.Fatalf("Evaluate(0.5) = %+v, want %+v", got, want)
	}
	if got := c.Evaluate(0); got != (colorful.Color{R: 1, G: 1, B: 0}) {
		t.Fatalf("Evaluate(0) = %+v, want start color", got)
	}
	if got := c.Evaluate(2); got != (colorful.Color{R: 1, G: 0, B: 1}) {
		t.Fatalf("Evaluate(2) = %+v, want end color", got)
	}
}

func TestCurveLen(t *testing.T) {
	if got := alphaCurve().Len(); got != 4 {
		t.Fatalf("expected 4 control points, got %d", got)
	}
}

func TestEmptyCurveYieldsZero(t *testing.T) {
	if got := NewScalarCurve().Evaluate(0.5); got != 0 {
		t.Fatalf("empty scalar curve = %v", got)
	}
	if got := NewColorCurve().Evaluate(0.5); got != (colorful.Color{}) {
		t.Fatalf("empty color curve = %+v", got)
	}
}
