package render

import (
	"errors"
	"math"
	"sort"
)

// Curve is a monotone cubic Hermite interpolant through a set of knots.
// Tangents follow the monotoneX rule of d3-shape, so the curve never
// overshoots between knots and keeps the direction of the data.
type Curve struct {
	xs, ys, ms []float64
}

// NewCurve builds a curve through (xs[i], ys[i]). xs must be strictly
// ascending and hold at least two points.
func NewCurve(xs, ys []float64) (*Curve, error) {
	n := len(xs)
	if n != len(ys) {
		return nil, errors.New("monotone: xs and ys differ in length")
	}
	if n < 2 {
		return nil, errors.New("monotone: need at least two points")
	}
	for i := 1; i < n; i++ {
		if xs[i] <= xs[i-1] {
			return nil, errors.New("monotone: xs must be strictly ascending")
		}
	}

	ms := make([]float64, n)
	if n == 2 {
		s := (ys[1] - ys[0]) / (xs[1] - xs[0])
		ms[0], ms[1] = s, s
	} else {
		for i := 1; i < n-1; i++ {
			h0, h1 := xs[i]-xs[i-1], xs[i+1]-xs[i]
			s0 := (ys[i] - ys[i-1]) / h0
			s1 := (ys[i+1] - ys[i]) / h1
			p := (s0*h1 + s1*h0) / (h0 + h1)
			ms[i] = (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
		}
		ms[0] = endTangent(xs[1]-xs[0], ys[1]-ys[0], ms[1])
		ms[n-1] = endTangent(xs[n-1]-xs[n-2], ys[n-1]-ys[n-2], ms[n-2])
	}

	return &Curve{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		ms: ms,
	}, nil
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func endTangent(h, dy, inner float64) float64 {
	return (3*dy/h - inner) / 2
}

// Domain is the x range covered by the knots.
func (c *Curve) Domain() (float64, float64) {
	return c.xs[0], c.xs[len(c.xs)-1]
}

// At evaluates the curve. x is clamped to the domain.
func (c *Curve) At(x float64) float64 {
	lo, hi := c.Domain()
	switch {
	case x <= lo:
		return c.ys[0]
	case x >= hi:
		return c.ys[len(c.ys)-1]
	}

	i := sort.SearchFloat64s(c.xs, x)
	if c.xs[i] == x {
		return c.ys[i]
	}
	i--

	h := c.xs[i+1] - c.xs[i]
	t := (x - c.xs[i]) / h
	t2, t3 := t*t, t*t*t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*c.ys[i] + h10*h*c.ms[i] + h01*c.ys[i+1] + h11*h*c.ms[i+1]
}

// MonotoneCurve samples the curve through the knots at n evenly spaced
// points across its domain, endpoints included.
func MonotoneCurve(xs, ys []float64, n int) ([]float64, error) {
	c, err := NewCurve(xs, ys)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, errors.New("monotone: need at least two samples")
	}
	lo, hi := c.Domain()
	out := make([]float64, n)
	for i := range out {
		out[i] = c.At(lo + (hi-lo)*float64(i)/float64(n-1))
	}
	return out, nil
}
