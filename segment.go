package pathseg

import (
	"fmt"
	"log/slog"
	"strings"
)

type ownership uint8

const (
	// borrowed endpoints belong to somebody else, usually a [Path].
	borrowed ownership = iota
	// owned endpoints were allocated by the segment and are private to it.
	owned
)

// Segment is a line, quadratic Bézier, or cubic Bézier between two endpoints.
//
// The shape of the segment is determined by the first endpoint's outgoing
// control point and the second endpoint's incoming control point. With neither
// set the segment is a line, with one set it is a quadratic Bézier, and with
// both set it is a cubic Bézier. See [Segment.Degree].
//
// A segment either borrows its endpoints, in which case they are shared with
// whoever else references them (usually a [Path]), or owns them, in which case
// they were allocated by the segment itself. Segments created by [NewLine],
// [NewQuad], [NewCubic], [Segment.SplitAt] and [Segment.Mapped] own their
// endpoints. Segments created by [NewSegment] borrow them. Copying a Segment
// value shares both kinds; use [Segment.Clone] to get a copy whose owned
// endpoints are independent.
//
// The zero value is an invalid segment. All queries on invalid segments return
// neutral results, such as a degree of −1, zero lengths and empty slices.
type Segment struct {
	first, second *Endpoint
	firstOwn      ownership
	secondOwn     ownership
}

// NewSegment returns a segment that borrows first and second.
func NewSegment(first, second *Endpoint) Segment {
	return Segment{first: first, second: second}
}

// NewLine returns a line from p0 to p1.
func NewLine(p0, p1 Point) Segment {
	return newOwned(&Endpoint{Pos: p0}, &Endpoint{Pos: p1})
}

// NewQuad returns a quadratic Bézier from p0 to p2 with the control point p1.
func NewQuad(p0, p1, p2 Point) Segment {
	return newOwned(
		&Endpoint{Pos: p0, Out: Ctrl(p1)},
		&Endpoint{Pos: p2},
	)
}

// NewCubic returns a cubic Bézier from p0 to p3 with the control points p1 and
// p2.
func NewCubic(p0, p1, p2, p3 Point) Segment {
	return newOwned(
		&Endpoint{Pos: p0, Out: Ctrl(p1)},
		&Endpoint{Pos: p3, In: Ctrl(p2)},
	)
}

func newOwned(first, second *Endpoint) Segment {
	return Segment{
		first:     first,
		second:    second,
		firstOwn:  owned,
		secondOwn: owned,
	}
}

// First returns the segment's first endpoint, or nil.
func (s Segment) First() *Endpoint { return s.first }

// Second returns the segment's second endpoint, or nil.
func (s Segment) Second() *Endpoint { return s.second }

// OwnsFirst reports whether the first endpoint was allocated by the segment.
func (s Segment) OwnsFirst() bool { return s.first != nil && s.firstOwn == owned }

// OwnsSecond reports whether the second endpoint was allocated by the segment.
func (s Segment) OwnsSecond() bool { return s.second != nil && s.secondOwn == owned }

// SetFirst replaces the first endpoint. The segment borrows ep and releases
// the endpoint it owned previously, if any.
func (s *Segment) SetFirst(ep *Endpoint) {
	s.first = ep
	s.firstOwn = borrowed
}

// SetSecond replaces the second endpoint. The segment borrows ep and releases
// the endpoint it owned previously, if any.
func (s *Segment) SetSecond(ep *Endpoint) {
	s.second = ep
	s.secondOwn = borrowed
}

// IsValid reports whether both endpoints are set.
func (s Segment) IsValid() bool {
	return s.first != nil && s.second != nil
}

// Clone returns a copy of s. Owned endpoints are copied, borrowed endpoints are
// shared with s.
func (s Segment) Clone() Segment {
	c := s
	if s.OwnsFirst() {
		c.first = s.first.detached()
	}
	if s.OwnsSecond() {
		c.second = s.second.detached()
	}
	return c
}

// Equal reports whether two segments have equal endpoints. Two invalid
// segments are equal; an invalid segment never equals a valid one.
func (s Segment) Equal(o Segment) bool {
	if !s.IsValid() || !o.IsValid() {
		return s.IsValid() == o.IsValid()
	}
	return s.first.Equal(o.first) && s.second.Equal(o.second)
}

// Degree returns 1 for lines, 2 for quadratic Béziers, 3 for cubic Béziers,
// and −1 for invalid segments.
func (s Segment) Degree() int {
	if !s.IsValid() {
		return -1
	}
	c1 := s.first.Out.IsSet()
	c2 := s.second.In.IsSet()
	switch {
	case !c1 && !c2:
		return 1
	case c1 && c2:
		return 3
	default:
		return 2
	}
}

// bez returns the control polygon of s.
func (s Segment) bez() (bezier, bool) {
	deg := s.Degree()
	if deg < 1 {
		return bezier{}, false
	}
	b := bezier{deg: deg}
	b.p[0] = s.first.Pos
	switch deg {
	case 2:
		if cp, ok := s.first.Out.Get(); ok {
			b.p[1] = cp
		} else {
			b.p[1] = s.second.In.Point()
		}
	case 3:
		b.p[1] = s.first.Out.Point()
		b.p[2] = s.second.In.Point()
	}
	b.p[deg] = s.second.Pos
	return b, true
}

// ControlPoints returns the points that define the segment, in order: the
// first endpoint, the active control points, and the second endpoint.
func (s Segment) ControlPoints() []Point {
	b, ok := s.bez()
	if !ok {
		return nil
	}
	return append([]Point(nil), b.points()...)
}

// Mapped returns a copy of s with all points transformed by aff. The copy owns
// its endpoints.
func (s Segment) Mapped(aff Affine) Segment {
	if !s.IsValid() {
		return s
	}
	first := s.first.detached()
	second := s.second.detached()
	first.Transform(aff)
	second.Transform(aff)
	return newOwned(first, second)
}

func (s Segment) String() string {
	b, ok := s.bez()
	if !ok {
		return "Segment{invalid}"
	}
	var sb strings.Builder
	sb.WriteString("Segment{")
	for i, p := range b.points() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// LogValue implements [slog.LogValuer].
func (s Segment) LogValue() slog.Value {
	b, ok := s.bez()
	if !ok {
		return slog.GroupValue(slog.Int("degree", -1))
	}
	return b.LogValue()
}

func (b bezier) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, b.deg+2)
	attrs = append(attrs, slog.Int("degree", b.deg))
	for i, p := range b.points() {
		attrs = append(attrs, slog.String(fmt.Sprintf("p%d", i), p.String()))
	}
	return slog.GroupValue(attrs...)
}
