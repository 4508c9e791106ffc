package pathseg

import "math"

// fatLine returns the range [dmin, dmax] of signed distances from b's chord
// that contains the whole curve. The control point distances are scaled by the
// factors derived by Sederberg and Nishita: ½ for quadratics, ¾ for cubics with
// both control points on the same side of the chord, and 4/9 otherwise.
//
// ok is false if the chord has zero length, in which case distances from the
// chord are meaningless.
func (b bezier) fatLine() (dmin, dmax float64, ok bool) {
	if b.chord().Hypot2() == 0 {
		return 0, 0, false
	}
	switch b.deg {
	case 1:
		return 0, 0, true
	case 2:
		d1 := b.distanceFromChord(b.p[1])
		return min(0, 0.5*d1), max(0, 0.5*d1), true
	default:
		d1 := b.distanceFromChord(b.p[1])
		d2 := b.distanceFromChord(b.p[2])
		k := 4.0 / 9.0
		if d1*d2 > 0 {
			k = 0.75
		}
		return k * min(0, d1, d2), k * max(0, d1, d2), true
	}
}

// clipInterval returns the range of parameters of o for which o may lie within
// b's fat line.
//
// The signed distance of o from b's chord is itself a Bézier curve,
// D(t) = (t, d(t)), whose control points are (i/n, distance of o's i-th control
// point). Wherever the convex hull of D lies outside of [dmin, dmax], so does
// o. The result is the parameter range of the part of the hull inside the
// band: hull vertices within the band, and points where hull edges cross
// dmin or dmax.
//
// ok is false if no such range exists or the fat line is undefined.
func clipInterval(b, o bezier) (tmin, tmax float64, ok bool) {
	dmin, dmax, ok := b.fatLine()
	if !ok {
		return 0, 1, false
	}

	dist := bezier{deg: o.deg}
	for i := range o.points() {
		dist.p[i] = Point{
			X: float64(i) / float64(o.deg),
			Y: b.distanceFromChord(o.p[i]),
		}
	}
	hull := dist.hull()

	tmin, tmax = math.Inf(1), math.Inf(-1)
	for _, v := range hull {
		if v.Y >= dmin && v.Y <= dmax {
			tmin = min(tmin, v.X)
			tmax = max(tmax, v.X)
		}
	}
	for i, p1 := range hull {
		p2 := hull[(i+1)%len(hull)]
		for _, bound := range [2]float64{dmin, dmax} {
			if (p1.Y < bound) == (p2.Y < bound) {
				continue
			}
			x := p1.X + (bound-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y)
			tmin = min(tmin, x)
			tmax = max(tmax, x)
		}
	}
	if tmin > tmax {
		return 0, 1, false
	}
	return max(tmin, 0), min(tmax, 1), true
}
