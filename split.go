package pathseg

import (
	"iter"
	"math"
)

// SplitN subdivides the segment into n parts of identical arc length, measured
// to the given accuracy. Rounding errors are absorbed by the last part. The
// parts own their endpoints.
//
// If n is less than two, or the segment has zero length, the result is a
// single part tracing the whole segment. Invalid segments yield nothing.
func (s Segment) SplitN(n int, accuracy float64) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		b, ok := s.bez()
		if !ok {
			return
		}
		splitLength := b.length(accuracy, 0) / float64(max(n, 1))
		if n <= 1 || !(splitLength > 0) || math.IsInf(splitLength, 0) {
			yield(b.segment())
			return
		}

		rest := b
		for range n - 1 {
			t := rest.paramAtLength(splitLength, accuracy/splitLength)
			var part bezier
			part, rest = rest.split(t)
			if !yield(part.segment()) {
				return
			}
		}
		yield(rest.segment())
	}
}
