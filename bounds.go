package pathseg

import "math"

// DegenerateMargin is the total amount by which the zero-size dimension of a
// horizontal or vertical line's bounding box is widened, so that such lines
// still overlap the things they touch.
const DegenerateMargin = 0.1

func (b bezier) controlRect() Rect {
	r := NewRectFromPoints(b.p[0], b.p[0])
	for _, p := range b.points()[1:] {
		r = r.UnionPoint(p)
	}
	if b.deg == 1 {
		r = r.inflateDegenerate()
	}
	return r
}

// extent returns the larger side of the box around b's control points.
func (b bezier) extent() float64 {
	r := NewRectFromPoints(b.p[0], b.p[0])
	for _, p := range b.points()[1:] {
		r = r.UnionPoint(p)
	}
	return max(r.Width(), r.Height())
}

// magnitude returns the largest absolute coordinate of b's control points.
func (b bezier) magnitude() float64 {
	var m float64
	for _, p := range b.points() {
		m = max(m, math.Abs(p.X), math.Abs(p.Y))
	}
	return m
}

func (b bezier) boundingRect() Rect {
	r := NewRectFromPoints(b.start(), b.end())
	if b.deg == 1 {
		return r.inflateDegenerate()
	}
	ex, n := b.extrema()
	for _, t := range ex[:n] {
		if t >= 0 && t <= 1 {
			r = r.UnionPoint(b.eval(t))
		}
	}
	return r
}

func (b bezier) chord() Vec2 {
	return b.end().Sub(b.start())
}

// distanceFromChord returns the signed distance of pt from the line through
// b's endpoints. Points to the left of the chord, in the direction of positive
// cross products, have positive distances.
func (b bezier) distanceFromChord(pt Point) float64 {
	chord := b.chord()
	rel := pt.Sub(b.start())
	l := chord.Hypot()
	if l == 0 {
		return rel.Hypot()
	}
	return chord.Cross(rel) / l
}

// ControlPointRect returns the smallest rectangle containing all points that
// define the segment. The box of a horizontal or vertical line is widened by
// [DegenerateMargin].
func (s Segment) ControlPointRect() Rect {
	b, ok := s.bez()
	if !ok {
		return Rect{}
	}
	return b.controlRect()
}

// BoundingRect returns the smallest rectangle containing the segment's curve
// between t = 0 and t = 1. The box of a horizontal or vertical line is widened
// by [DegenerateMargin].
func (s Segment) BoundingRect() Rect {
	b, ok := s.bez()
	if !ok {
		return Rect{}
	}
	return b.boundingRect()
}

// ChordLength returns the distance between the segment's endpoints.
func (s Segment) ChordLength() float64 {
	b, ok := s.bez()
	if !ok {
		return 0
	}
	return b.chord().Hypot()
}

// DistanceFromChord returns the signed perpendicular distance of pt from the
// line through the segment's endpoints.
//
// The sign is that of the cross product of the chord and the vector from the
// first endpoint to pt: positive on one side of the chord, negative on the
// other. If the chord has zero length, the result is the unsigned distance
// from the first endpoint.
func (s Segment) DistanceFromChord(pt Point) float64 {
	b, ok := s.bez()
	if !ok {
		return 0
	}
	return b.distanceFromChord(pt)
}

// IsFlat reports whether the curve deviates from its chord by at most
// tolerance, measured as the spread between the largest distances on either
// side of the chord. Lines are always flat.
func (s Segment) IsFlat(tolerance float64) bool {
	b, ok := s.bez()
	if !ok || b.deg <= 1 {
		return true
	}

	// Rotate the curve so that its chord lies on the x axis. The y extrema of
	// the rotated curve are then its extreme distances from the chord.
	aligned := b.transform(RotateAbout(-b.chord().Angle(), b.start()))
	var lo, hi float64
	ex, n := aligned.extrema()
	for _, t := range ex[:n] {
		if t >= 0 && t <= 1 {
			d := aligned.distanceFromChord(aligned.eval(t))
			lo = min(lo, d)
			hi = max(hi, d)
		}
	}
	return hi-lo <= tolerance
}
