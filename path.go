package pathseg

import (
	"fmt"
	"iter"
	"math"
)

// Path is a sequence of endpoints owned by the path. Consecutive endpoints
// form segments, which borrow the path's endpoints, so that changes to an
// endpoint are seen by both segments adjacent to it.
type Path struct {
	points []*Endpoint
	closed bool
}

// NewPath returns an open path through pts, without control points.
func NewPath(pts ...Point) *Path {
	p := &Path{}
	for _, pt := range pts {
		p.Append(pt)
	}
	return p
}

// Append adds an endpoint at pos to the end of the path and returns it. Set
// its control points to turn the adjacent segments into curves.
func (p *Path) Append(pos Point) *Endpoint {
	ep := &Endpoint{Pos: pos, path: p}
	p.points = append(p.points, ep)
	return ep
}

// Close connects the last endpoint back to the first.
func (p *Path) Close() { p.closed = true }

// Closed reports whether the path is closed.
func (p *Path) Closed() bool { return p.closed }

// Len returns the number of endpoints.
func (p *Path) Len() int { return len(p.points) }

// Endpoint returns the i-th endpoint.
func (p *Path) Endpoint(i int) *Endpoint { return p.points[i] }

// SegmentCount returns the number of segments.
func (p *Path) SegmentCount() int {
	n := len(p.points)
	switch {
	case n < 2:
		return 0
	case p.closed:
		return n
	default:
		return n - 1
	}
}

// Segment returns the i-th segment, which borrows the path's endpoints i and
// i+1. It panics if i is out of range.
func (p *Path) Segment(i int) Segment {
	if n := p.SegmentCount(); i < 0 || i >= n {
		panic(fmt.Sprintf("pathseg: segment index %d out of range [0, %d)", i, n))
	}
	return NewSegment(p.points[i], p.points[(i+1)%len(p.points)])
}

// Segments returns an iterator over the path's segments.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := range p.SegmentCount() {
			if !yield(p.Segment(i)) {
				return
			}
		}
	}
}

// BoundingRect returns the smallest rectangle containing all segments.
func (p *Path) BoundingRect() Rect {
	return SegmentsBoundingRect(p.Segments())
}

// Length returns the sum of the segments' lengths.
func (p *Path) Length(accuracy float64) float64 {
	return SegmentsLength(p.Segments(), accuracy)
}

// Intersections returns the intersections of every segment of p with every
// segment of o. Calling it with p == o reports the endpoints shared by
// adjacent segments.
func (p *Path) Intersections(o *Path) []Point {
	var out []Point
	for s := range p.Segments() {
		for t := range o.Segments() {
			out = append(out, s.Intersections(t)...)
		}
	}
	return out
}

// PathNearest describes the point on a path closest to a query point.
type PathNearest struct {
	// Segment is the index of the segment, or −1 if the path has no segments.
	Segment int
	// T is the parameter on the segment.
	T float64
	// DistSq is the squared distance to the query point.
	DistSq float64
	// Point is the point on the path.
	Point Point
}

// Nearest returns the point on the path closest to pt. Segments whose distance
// can't be computed are skipped.
func (p *Path) Nearest(pt Point, accuracy float64) PathNearest {
	best := PathNearest{Segment: -1, DistSq: math.Inf(1)}
	i := 0
	for s := range p.Segments() {
		distSq, t := s.Nearest(pt, accuracy)
		if !math.IsNaN(distSq) && distSq < best.DistSq {
			best = PathNearest{
				Segment: i,
				T:       t,
				DistSq:  distSq,
				Point:   s.PointAt(t),
			}
		}
		i++
	}
	return best
}

// SegmentsLength returns the sum of the lengths of the segments.
func SegmentsLength(seq iter.Seq[Segment], accuracy float64) float64 {
	var sum float64
	for s := range seq {
		sum += s.Length(accuracy)
	}
	return sum
}

// SegmentsBoundingRect returns the smallest rectangle containing the bounding
// rectangles of all segments.
func SegmentsBoundingRect(seq iter.Seq[Segment]) Rect {
	var bbox Rect
	first := true
	for s := range seq {
		sbbox := s.BoundingRect()
		if first {
			first = false
			bbox = sbbox
		} else {
			bbox = bbox.Union(sbbox)
		}
	}
	return bbox
}
