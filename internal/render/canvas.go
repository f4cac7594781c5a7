package render

// Canvas accumulates additive RGB light in row-major order. Values are
// unbounded; FillRGBA saturates them when converting to pixels.
type Canvas struct {
	W, H int
	data []float32
}

// NewCanvas allocates a canvas with the given dimensions.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Canvas{W: w, H: h, data: make([]float32, 3*w*h)}
}

// Index returns the pixel index for coordinates (x, y).
func (c *Canvas) Index(x, y int) int { return y*c.W + x }

// At returns the accumulated light at (x, y).
func (c *Canvas) At(x, y int) (r, g, b float32) {
	i := 3 * c.Index(x, y)
	return c.data[i], c.data[i+1], c.data[i+2]
}

// Clear resets the canvas to black.
func (c *Canvas) Clear() {
	for i := range c.data {
		c.data[i] = 0
	}
}

// Splat adds a sprite's light to the pixels it covers. Pixels outside the
// canvas are skipped.
func (c *Canvas) Splat(s Sprite) {
	r := s.Radius
	if r < 0.5 {
		r = 0.5
	}
	x0, x1 := clampSpan(s.X-r, s.X+r, c.W)
	y0, y1 := clampSpan(s.Y-r, s.Y+r, c.H)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	a := s.Color[3]
	cr, cg, cb := s.Color[0]*a, s.Color[1]*a, s.Color[2]*a
	inv := 1 / r
	for y := y0; y < y1; y++ {
		dy := (float32(y) + 0.5 - s.Y) * inv
		row := 3 * c.Index(0, y)
		for x := x0; x < x1; x++ {
			dx := (float32(x) + 0.5 - s.X) * inv
			w := flameShape(dx, dy, s.Angle)
			if w == 0 {
				continue
			}
			i := row + 3*x
			c.data[i] += cr * w
			c.data[i+1] += cg * w
			c.data[i+2] += cb * w
		}
	}
}

// Draw splats every sprite in order.
func (c *Canvas) Draw(sprites []Sprite) {
	for _, s := range sprites {
		c.Splat(s)
	}
}

func clampSpan(lo, hi float32, n int) (int, int) {
	a, b := int(lo), int(hi)+1
	if lo < 0 {
		a = 0
	}
	if b > n {
		b = n
	}
	if hi < 0 {
		b = 0
	}
	return a, b
}
