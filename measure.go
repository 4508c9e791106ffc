package pathseg

import "math"

// DefaultAccuracy is the default absolute error for length measurements. It is
// suitable for 2D graphics in device units.
const DefaultAccuracy = 0.005

const (
	// maxLengthDepth bounds the number of times Length subdivides a curve.
	maxLengthDepth = 16
	// maxBisections bounds the iterations of ParamAtLength. After this many
	// halvings the interval is below float64 resolution.
	maxBisections = 64
)

// length estimates the arc length by comparing the chord with the control
// polygon, following Jens Gravesen's "Adaptive subdivision and the length of
// Bézier curves": the length lies between the chord length L0 and the polygon
// length L1, and a weighted mean of the two converges quickly as the curve is
// subdivided.
func (b bezier) length(accuracy float64, depth int) float64 {
	chord := b.chord().Hypot()
	if b.deg == 1 {
		return chord
	}
	var poly float64
	for i := range b.deg {
		poly += b.p[i].Distance(b.p[i+1])
	}
	if poly-chord > accuracy && depth < maxLengthDepth {
		l, r := b.split(0.5)
		return l.length(accuracy, depth+1) + r.length(accuracy, depth+1)
	}
	if b.deg == 3 {
		return 0.5*chord + 0.5*poly
	}
	return (2*chord + poly) / 3
}

// Length returns the arc length of the segment. The curve is subdivided until
// the difference between control polygon length and chord length of every
// part is at most accuracy.
func (s Segment) Length(accuracy float64) float64 {
	b, ok := s.bez()
	if !ok {
		return 0
	}
	return b.length(accuracy, 0)
}

// LengthAt returns the arc length of the segment from 0 to t.
func (s Segment) LengthAt(t float64, accuracy float64) float64 {
	b, ok := s.bez()
	if !ok || t == 0 {
		return 0
	}
	if t == 1 {
		return b.length(accuracy, 0)
	}
	l, _ := b.split(t)
	return l.length(accuracy, 0)
}

// ParamAtLength returns the parameter t at which the arc length from the start
// of the segment equals length. tolerance is the permissible error of the
// length at t, relative to length.
//
// For curves, t is found by bisection and lies in [0, 1]. Lengths within
// tolerance of the curve's full length return 1. For lines, the result is the
// ratio of length and chord length and isn't clamped. Invalid segments,
// non-positive lengths and zero-length lines return 0.
func (s Segment) ParamAtLength(length float64, tolerance float64) float64 {
	b, ok := s.bez()
	if !ok {
		return 0
	}
	return b.paramAtLength(length, tolerance)
}

func (b bezier) paramAtLength(length float64, tolerance float64) float64 {
	if !(length > 0) {
		return 0
	}
	if b.deg == 1 {
		chord := b.chord().Hypot()
		if chord == 0 {
			return 0
		}
		return length / chord
	}

	accuracy := DefaultAccuracy
	if tolerance > 0 {
		accuracy = min(accuracy, tolerance*length)
	}
	// The end of the curve is within tolerance of any length this close to
	// the full length.
	if length >= b.length(accuracy, 0)*(1-max(tolerance, 0)) {
		return 1
	}

	lengthAt := func(t float64) float64 {
		l, _ := b.split(t)
		return l.length(accuracy, 0)
	}
	lo, hi := 0.0, 1.0
	mid := 0.5
	midLength := lengthAt(mid)
	for i := 0; i < maxBisections && math.Abs(midLength-length)/length > tolerance; i++ {
		if midLength < length {
			lo = mid
		} else {
			hi = mid
		}
		mid = 0.5 * (lo + hi)
		midLength = lengthAt(mid)
	}
	return mid
}
