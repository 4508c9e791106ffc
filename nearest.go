package pathseg

import "math"

// nearestQuadAccuracy is the accuracy, relative to a cubic's extent, of the
// quadratics the cubic is subdivided into when searching for its nearest
// point.
const nearestQuadAccuracy = 1e-3

// nearest finds the parameter of the point on b closest to pt.
//
// Lines project pt onto themselves and quadratics solve the cubic equation
// (b(t) − pt) · b′(t) = 0 directly. Cubics are subdivided into quadratic
// approximations, whose nearest points seed Newton's method on the cubic,
// restricted to each piece.
func (b bezier) nearest(pt Point, accuracy float64) (distSq, t float64) {
	switch b.deg {
	case 1:
		d := b.p[1].Sub(b.p[0])
		dotp := d.Dot(pt.Sub(b.p[0]))
		dSquared := d.Dot(d)
		switch {
		case dotp <= 0:
			return pt.DistanceSquared(b.p[0]), 0
		case dotp >= dSquared:
			return pt.DistanceSquared(b.p[1]), 1
		default:
			t := dotp / dSquared
			return pt.DistanceSquared(b.eval(t)), t
		}
	case 2:
		return b.nearestQuad(pt)
	}

	best, bestT := pt.DistanceSquared(b.p[0]), 0.0
	if d := pt.DistanceSquared(b.p[3]); d < best {
		best, bestT = d, 1
	}
	ext := b.extent()
	if ext == 0 {
		return best, bestT
	}

	// The maximum distance between a cubic and its best approximating
	// quadratic scales with the third power of the number of subdivisions.
	// 432 is the square of 36/√3.
	acc := nearestQuadAccuracy * ext
	p1x2 := Vec2(b.p[1]).Mul(3).Sub(Vec2(b.p[0]))
	p2x2 := Vec2(b.p[2]).Mul(3).Sub(Vec2(b.p[3]))
	errSq := p2x2.Sub(p1x2).Hypot2()
	n := max(int(math.Ceil(math.Sqrt(math.Cbrt(errSq/(432*acc*acc))))), 1)

	for i := range n {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		q := b.subsegment(t0, t1).approxQuad()
		_, qt := q.nearestQuad(pt)
		t := b.polishNearest(pt, t0+qt*(t1-t0), t0, t1, accuracy)
		if d := pt.DistanceSquared(b.eval(t)); d < best {
			best, bestT = d, t
		}
	}
	return best, bestT
}

// nearestQuad solves for the nearest point on the quadratic b.
func (b bezier) nearestQuad(pt Point) (distSq, t float64) {
	d0 := b.p[1].Sub(b.p[0])
	d1 := Vec2(b.p[0]).Add(Vec2(b.p[2])).Sub(Vec2(b.p[1]).Mul(2))
	d := b.p[0].Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2*d0.Hypot2() + d.Dot(d1)
	c2 := 3 * d1.Dot(d0)
	c3 := d1.Hypot2()

	best, bestT := pt.DistanceSquared(b.p[0]), 0.0
	if d := pt.DistanceSquared(b.p[2]); d < best {
		best, bestT = d, 1
	}
	roots, n := solveCubic(c0, c1, c2, c3)
	for _, t := range roots[:n] {
		if !(t >= 0 && t <= 1) {
			continue
		}
		if d := pt.DistanceSquared(b.eval(t)); d < best {
			best, bestT = d, t
		}
	}
	return best, bestT
}

// subsegment returns the part of the cubic b between t0 and t1.
func (b bezier) subsegment(t0, t1 float64) bezier {
	p0 := b.eval(t0)
	p3 := b.eval(t1)
	scale := (t1 - t0) / 3
	p1 := p0.Translate(b.deriv(t0).Mul(scale))
	p2 := p3.Translate(b.deriv(t1).Mul(scale).Negate())
	return newBezier(p0, p1, p2, p3)
}

// approxQuad returns the quadratic closest to the cubic b that shares its
// endpoints.
func (b bezier) approxQuad() bezier {
	p1x2 := Vec2(b.p[1]).Mul(3).Sub(Vec2(b.p[0]))
	p2x2 := Vec2(b.p[2]).Mul(3).Sub(Vec2(b.p[3]))
	return newBezier(b.p[0], Point(p1x2.Add(p2x2).Mul(0.25)), b.p[3])
}

// polishNearest refines t with Newton's method on (b(t) − pt) · b′(t) = 0,
// keeping it within [lo, hi]. It stops at accuracy or where the squared
// distance isn't convex.
func (b bezier) polishNearest(pt Point, t, lo, hi, accuracy float64) float64 {
	for range newtonIterations {
		rel := b.eval(t).Sub(pt)
		d1 := b.deriv(t)
		d2 := b.deriv2(t)
		g := rel.Dot(d1)
		gp := d1.Dot(d1) + rel.Dot(d2)
		if !(gp > 0) {
			break
		}
		step := g / gp
		t = min(max(t-step, lo), hi)
		if math.Abs(step)*d1.Hypot() < accuracy {
			break
		}
	}
	return t
}

// Nearest returns the parameter t in [0, 1] of the point on the segment
// closest to pt, along with the squared distance to it. accuracy bounds the
// final Newton step in the segment's units.
//
// Invalid segments return a NaN distance.
func (s Segment) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	b, ok := s.bez()
	if !ok {
		return math.NaN(), 0
	}
	return b.nearest(pt, accuracy)
}
