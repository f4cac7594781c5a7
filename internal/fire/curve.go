package fire

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Lerp blends a toward b by fraction t.
type Lerp[T any] func(a, b T, t float32) T

// CurvePoint is a single control point of a Curve.
type CurvePoint[T any] struct {
	T     float32
	Value T
}

// Curve is a piecewise-linear lookup table keyed by normalized lifetime.
// Points must be added in non-decreasing T order.
type Curve[T any] struct {
	points []CurvePoint[T]
	lerp   Lerp[T]
}

// NewCurve returns an empty curve that blends values with lerp.
func NewCurve[T any](lerp Lerp[T]) *Curve[T] {
	return &Curve[T]{lerp: lerp}
}

// NewScalarCurve returns an empty curve over float32 values.
func NewScalarCurve() *Curve[float32] { return NewCurve(LerpScalar) }

// NewColorCurve returns an empty curve over RGB colors.
func NewColorCurve() *Curve[colorful.Color] { return NewCurve(LerpColor) }

// AddPoint appends a control point. The caller keeps t non-decreasing.
func (c *Curve[T]) AddPoint(t float32, value T) {
	c.points = append(c.points, CurvePoint[T]{T: t, Value: value})
}

// Len reports the number of control points.
func (c *Curve[T]) Len() int { return len(c.points) }

// Evaluate returns the curve value at t. Queries outside the control point
// range clamp to the nearest endpoint value. An empty curve yields the zero
// value.
func (c *Curve[T]) Evaluate(t float32) T {
	if len(c.points) == 0 {
		var zero T
		return zero
	}
	// first point strictly after t; the one before it is the segment start
	i := sort.Search(len(c.points), func(i int) bool { return c.points[i].T > t })
	if i == 0 {
		return c.points[0].Value
	}
	p1 := i - 1
	if p1 == len(c.points)-1 {
		return c.points[p1].Value
	}
	a, b := c.points[p1], c.points[p1+1]
	return c.lerp(a.Value, b.Value, (t-a.T)/(b.T-a.T))
}

// LerpScalar is the ordinary linear blend.
func LerpScalar(a, b, t float32) float32 { return a + t*(b-a) }

// LerpColor blends each RGB channel linearly.
func LerpColor(a, b colorful.Color, t float32) colorful.Color {
	return a.BlendRgb(b, float64(t))
}
