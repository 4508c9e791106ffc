package pathseg

import "math"

// MaxExtrema is the maximum number of extrema reported for a segment: up to
// two per axis for cubic Béziers.
const MaxExtrema = 4

// bezier is the control polygon of a valid segment. It is the value type the
// numeric routines work on, so that recursive algorithms don't have to
// allocate endpoints.
type bezier struct {
	p   [4]Point
	deg int
}

func newBezier(pts ...Point) bezier {
	b := bezier{deg: len(pts) - 1}
	copy(b.p[:], pts)
	return b
}

func (b bezier) points() []Point { return b.p[:b.deg+1] }
func (b bezier) start() Point    { return b.p[0] }
func (b bezier) end() Point      { return b.p[b.deg] }

// segment returns a segment owning new endpoints with b's control polygon.
func (b bezier) segment() Segment {
	switch b.deg {
	case 1:
		return NewLine(b.p[0], b.p[1])
	case 2:
		return NewQuad(b.p[0], b.p[1], b.p[2])
	case 3:
		return NewCubic(b.p[0], b.p[1], b.p[2], b.p[3])
	default:
		return Segment{}
	}
}

// lerp computes (1−t)·a + t·b, which is exact at t = 0 and t = 1.
func lerp(a, b Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*a.X + t*b.X,
		Y: mt*a.Y + t*b.Y,
	}
}

// deCasteljau runs de Casteljau's algorithm at t. It returns the control
// polygons of the parts before and after t, as well as the point at t.
func (b bezier) deCasteljau(t float64) (left, right bezier, pt Point) {
	q := b.p
	left.deg, right.deg = b.deg, b.deg
	left.p[0] = q[0]
	right.p[b.deg] = q[b.deg]
	for j := 1; j <= b.deg; j++ {
		for i := 0; i <= b.deg-j; i++ {
			q[i] = lerp(q[i], q[i+1], t)
		}
		left.p[j] = q[0]
		right.p[b.deg-j] = q[b.deg-j]
	}
	return left, right, q[0]
}

func (b bezier) eval(t float64) Point {
	if b.deg == 1 {
		return lerp(b.p[0], b.p[1], t)
	}
	_, _, pt := b.deCasteljau(t)
	return pt
}

func (b bezier) split(t float64) (bezier, bezier) {
	if b.deg == 1 {
		pt := lerp(b.p[0], b.p[1], t)
		return newBezier(b.p[0], pt), newBezier(pt, b.p[1])
	}
	left, right, _ := b.deCasteljau(t)
	return left, right
}

// deriv evaluates the first derivative at t.
func (b bezier) deriv(t float64) Vec2 {
	var d [3]Vec2
	n := float64(b.deg)
	for i := range b.deg {
		d[i] = b.p[i+1].Sub(b.p[i]).Mul(n)
	}
	for j := 1; j < b.deg; j++ {
		for i := 0; i < b.deg-j; i++ {
			d[i] = d[i].Lerp(d[i+1], t)
		}
	}
	return d[0]
}

// deriv2 evaluates the second derivative at t.
func (b bezier) deriv2(t float64) Vec2 {
	dd := func(i int) Vec2 {
		// p[i+2] − 2·p[i+1] + p[i]
		return b.p[i+2].Sub(b.p[i+1]).Sub(b.p[i+1].Sub(b.p[i]))
	}
	switch b.deg {
	case 2:
		return dd(0).Mul(2)
	case 3:
		return dd(0).Lerp(dd(1), t).Mul(6)
	default:
		return Vec2{}
	}
}

// extrema returns the parameters at which the x or y component of the
// derivative vanishes. The parameters are not restricted to [0, 1] and not
// sorted.
func (b bezier) extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var outN int
	push := func(t float64) {
		out[outN] = t
		outN++
	}

	switch b.deg {
	case 2:
		// The derivative is a line; find its root per axis.
		d0 := b.p[1].Sub(b.p[0])
		d1 := b.p[2].Sub(b.p[1])
		a := d1.Sub(d0)
		if a.X != 0 {
			push(-d0.X / a.X)
		}
		if a.Y != 0 {
			push(-d0.Y / a.Y)
		}
	case 3:
		// The derivative is a quadratic Bézier over the differences of
		// successive control points.
		oneCoord := func(d0, d1, d2 float64) {
			a := d2 - 2*d1 + d0
			b := 2*d1 - 2*d0
			c := d0
			if a == 0 {
				if b != 0 {
					push(-c / b)
				}
				return
			}
			// A negative discriminant is clamped to zero, reporting the
			// tangent double root instead of nothing.
			disc := max(b*b-4*a*c, 0)
			sq := math.Sqrt(disc)
			push((-b + sq) / (2 * a))
			push((-b - sq) / (2 * a))
		}
		d0 := b.p[1].Sub(b.p[0])
		d1 := b.p[2].Sub(b.p[1])
		d2 := b.p[3].Sub(b.p[2])
		oneCoord(d0.X, d1.X, d2.X)
		oneCoord(d0.Y, d1.Y, d2.Y)
	}
	return out, outN
}

func (b bezier) transform(aff Affine) bezier {
	for i := range b.points() {
		b.p[i] = b.p[i].Transform(aff)
	}
	return b
}

// PointAt evaluates the segment at t. The parameter is not clamped; values
// outside of [0, 1] extrapolate the curve.
func (s Segment) PointAt(t float64) Point {
	b, ok := s.bez()
	if !ok {
		return Point{}
	}
	return b.eval(t)
}

// SplitAt splits the segment at t into two segments that, together, trace the
// same curve. Both halves own newly allocated endpoints.
//
// Splitting an invalid segment returns two invalid segments.
func (s Segment) SplitAt(t float64) (Segment, Segment) {
	b, ok := s.bez()
	if !ok {
		return Segment{}, Segment{}
	}
	left, right := b.split(t)
	return left.segment(), right.segment()
}

// Derivative returns the first derivative of the segment at t.
func (s Segment) Derivative(t float64) Vec2 {
	b, ok := s.bez()
	if !ok {
		return Vec2{}
	}
	return b.deriv(t)
}

// Extrema returns the parameters at which the x or y component of the
// segment's derivative is zero. Lines have no extrema.
//
// The parameters are neither sorted nor restricted to [0, 1]. Tangential
// double roots may be reported twice.
func (s Segment) Extrema() []float64 {
	b, ok := s.bez()
	if !ok {
		return nil
	}
	ex, n := b.extrema()
	if n == 0 {
		return nil
	}
	return append([]float64(nil), ex[:n]...)
}
