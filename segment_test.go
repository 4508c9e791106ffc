package pathseg

import (
	"fmt"
	"math"
	"testing"
)

var (
	testArch = NewCubic(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0))
	testS    = NewCubic(Pt(0, 0), Pt(3, 0), Pt(0, 3), Pt(3, 3))
	testQuad = NewQuad(Pt(0, 0), Pt(1.5, 3), Pt(3, 0))
	testLine = NewLine(Pt(0, 0), Pt(3, 4))
)

func TestSegmentDegree(t *testing.T) {
	a := NewEndpoint(Pt(0, 0))
	b := NewEndpoint(Pt(1, 0))
	s := NewSegment(a, b)
	if d := s.Degree(); d != 1 {
		t.Fatalf("got degree %d, want 1", d)
	}

	// Only the second endpoint's incoming control point is set.
	b.In = Ctrl(Pt(0.5, 1))
	if d := s.Degree(); d != 2 {
		t.Fatalf("got degree %d, want 2", d)
	}
	diff(t, []Point{Pt(0, 0), Pt(0.5, 1), Pt(1, 0)}, s.ControlPoints())

	a.Out = Ctrl(Pt(0, 1))
	if d := s.Degree(); d != 3 {
		t.Fatalf("got degree %d, want 3", d)
	}

	// Control points facing away from the segment don't matter.
	a.Out = NoControl
	b.In = NoControl
	a.In = Ctrl(Pt(-1, 0))
	b.Out = Ctrl(Pt(2, 0))
	if d := s.Degree(); d != 1 {
		t.Fatalf("got degree %d, want 1", d)
	}

	for _, s := range []Segment{{}, NewSegment(a, nil), NewSegment(nil, b)} {
		if d := s.Degree(); d != -1 {
			t.Errorf("got degree %d for invalid segment, want -1", d)
		}
	}
}

func TestSegmentControlPoints(t *testing.T) {
	diff(t, []Point{Pt(0, 0), Pt(3, 4)}, testLine.ControlPoints())
	diff(t, []Point{Pt(0, 0), Pt(1.5, 3), Pt(3, 0)}, testQuad.ControlPoints())
	diff(t, []Point{Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0)}, testArch.ControlPoints())
}

func TestSegmentPointAtEndpoints(t *testing.T) {
	for _, s := range []Segment{testLine, testQuad, testArch, testS} {
		pts := s.ControlPoints()
		if got := s.PointAt(0); got != pts[0] {
			t.Errorf("%s: got %s at t=0, want %s", s, got, pts[0])
		}
		if got := s.PointAt(1); got != pts[len(pts)-1] {
			t.Errorf("%s: got %s at t=1, want %s", s, got, pts[len(pts)-1])
		}
	}
	diff(t, Pt(1.5, 1.5), testArch.PointAt(0.5))
	diff(t, Pt(1.5, 1.5), testQuad.PointAt(0.5))
}

func TestSegmentSplitAt(t *testing.T) {
	const epsilon = 1e-12
	for _, s := range []Segment{testLine, testQuad, testArch, testS} {
		for _, ts := range []float64{0.25, 0.5, 0.75} {
			t.Run(fmt.Sprintf("%s/%g", s, ts), func(t *testing.T) {
				left, right := s.SplitAt(ts)
				if left.Degree() != s.Degree() || right.Degree() != s.Degree() {
					t.Fatalf("got degrees %d and %d, want %d", left.Degree(), right.Degree(), s.Degree())
				}
				if !left.OwnsFirst() || !left.OwnsSecond() || !right.OwnsFirst() || !right.OwnsSecond() {
					t.Error("expected halves to own their endpoints")
				}
				if left.Second().Pos != right.First().Pos {
					t.Errorf("halves don't meet: %s and %s", left.Second().Pos, right.First().Pos)
				}
				assertNear(t, left.PointAt(1), s.PointAt(ts), epsilon)
				for _, u := range []float64{0, 0.3, 0.6, 1} {
					assertNear(t, left.PointAt(u), s.PointAt(ts*u), epsilon)
					assertNear(t, right.PointAt(u), s.PointAt(ts+(1-ts)*u), epsilon)
				}
			})
		}
	}

	left, right := Segment{}.SplitAt(0.5)
	if left.IsValid() || right.IsValid() {
		t.Error("expected splitting an invalid segment to return invalid segments")
	}
}

func TestSegmentDerivative(t *testing.T) {
	diff(t, Vec(3, 6), testArch.Derivative(0))
	diff(t, Vec(3, -6), testArch.Derivative(1))
	diff(t, Vec(3, 0), testArch.Derivative(0.5))
	diff(t, Vec(3, 4), testLine.Derivative(0.7))

	// Compare against finite differences.
	const delta = 1e-6
	for i := range 11 {
		ts := float64(i) / 10
		p := testS.PointAt(ts)
		p1 := testS.PointAt(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		if l := testS.Derivative(ts).Sub(dApprox).Hypot(); l >= 1e-4 {
			t.Errorf("got difference of %g at t=%g", l, ts)
		}
	}
}

func TestSegmentExtrema(t *testing.T) {
	if ex := testLine.Extrema(); ex != nil {
		t.Errorf("got extrema %v for a line, want none", ex)
	}
	diff(t, []float64{0.5}, testArch.Extrema())
	diff(t, []float64{0.5}, testQuad.Extrema())

	// Every reported parameter zeroes one component of the derivative.
	ex := testS.Extrema()
	if len(ex) == 0 || len(ex) > MaxExtrema {
		t.Fatalf("got %d extrema, want between 1 and %d", len(ex), MaxExtrema)
	}
	for _, ts := range ex {
		d := testS.Derivative(ts)
		if min(math.Abs(d.X), math.Abs(d.Y)) > 1e-9 {
			t.Errorf("derivative %s at t=%g has no zero component", d, ts)
		}
	}
}

func TestSegmentOwnership(t *testing.T) {
	s := NewLine(Pt(0, 0), Pt(1, 1))
	if !s.OwnsFirst() || !s.OwnsSecond() {
		t.Fatal("expected NewLine to own its endpoints")
	}
	c := s.Clone()
	if c.First() == s.First() || c.Second() == s.Second() {
		t.Fatal("clone shares owned endpoints")
	}
	c.First().Pos = Pt(5, 5)
	if s.First().Pos != Pt(0, 0) {
		t.Errorf("modifying the clone changed the original to %s", s.First().Pos)
	}

	a := NewEndpoint(Pt(0, 0))
	b := NewEndpoint(Pt(1, 0))
	borrowedSeg := NewSegment(a, b)
	if borrowedSeg.OwnsFirst() || borrowedSeg.OwnsSecond() {
		t.Fatal("expected NewSegment to borrow its endpoints")
	}
	bc := borrowedSeg.Clone()
	if bc.First() != a || bc.Second() != b {
		t.Error("clone of a borrowing segment doesn't share its endpoints")
	}

	// Replacing an owned endpoint turns that side into a borrowed one.
	s.SetSecond(b)
	if !s.OwnsFirst() || s.OwnsSecond() {
		t.Errorf("got ownership (%t, %t), want (true, false)", s.OwnsFirst(), s.OwnsSecond())
	}
	sc := s.Clone()
	if sc.First() == s.First() || sc.Second() != b {
		t.Error("clone of a mixed segment copied the wrong endpoint")
	}
}

func TestSegmentMapped(t *testing.T) {
	aff := Translate(Vec(1, 2))
	m := testArch.Mapped(aff)
	diff(t, []Point{Pt(1, 2), Pt(2, 4), Pt(3, 4), Pt(4, 2)}, m.ControlPoints())
	diff(t, []Point{Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0)}, testArch.ControlPoints())
	if !m.OwnsFirst() || !m.OwnsSecond() {
		t.Error("expected mapped segment to own its endpoints")
	}

	p := NewPath(Pt(0, 0), Pt(2, 0))
	s := p.Segment(0)
	m = s.Mapped(Scale(2, 2))
	if m.First() == s.First() || m.First().Path() != nil {
		t.Error("mapped segment shares endpoints with the path")
	}
	diff(t, []Point{Pt(0, 0), Pt(4, 0)}, m.ControlPoints())
	diff(t, []Point{Pt(0, 0), Pt(2, 0)}, s.ControlPoints())
}

func TestSegmentEqual(t *testing.T) {
	a := NewSegment(NewEndpoint(Pt(0, 0)), NewEndpoint(Pt(3, 4)))
	if !a.Equal(testLine) {
		t.Errorf("expected %s to equal %s", a, testLine)
	}
	if a.Equal(testArch) {
		t.Errorf("expected %s not to equal %s", a, testArch)
	}
	if !(Segment{}).Equal(Segment{}) {
		t.Error("expected invalid segments to be equal")
	}
	if a.Equal(Segment{}) {
		t.Error("expected valid segment not to equal invalid segment")
	}
}

func TestSegmentInvalid(t *testing.T) {
	var s Segment
	if s.IsValid() {
		t.Fatal("zero segment is valid")
	}
	diff(t, Point{}, s.PointAt(0.5))
	diff(t, Vec2{}, s.Derivative(0.5))
	diff(t, Rect{}, s.BoundingRect())
	diff(t, Rect{}, s.ControlPointRect())
	diff(t, 0.0, s.Length(DefaultAccuracy))
	diff(t, 0.0, s.LengthAt(0.5, DefaultAccuracy))
	diff(t, 0.0, s.ParamAtLength(1, 0.01))
	diff(t, 0.0, s.ChordLength())
	diff(t, 0.0, s.DistanceFromChord(Pt(1, 1)))
	if pts := s.ControlPoints(); pts != nil {
		t.Errorf("got control points %v, want nil", pts)
	}
	if ex := s.Extrema(); ex != nil {
		t.Errorf("got extrema %v, want nil", ex)
	}
	if h := s.ConvexHull(); h != nil {
		t.Errorf("got hull %v, want nil", h)
	}
	if pts := s.Intersections(testArch); pts != nil {
		t.Errorf("got intersections %v, want nil", pts)
	}
	if !s.IsFlat(0) {
		t.Error("expected invalid segment to be flat")
	}
	if d, _ := s.Nearest(Pt(0, 0), 1e-9); !math.IsNaN(d) {
		t.Errorf("got distance %v, want NaN", d)
	}
	diff(t, "Segment{invalid}", s.String())
}

func TestSegmentString(t *testing.T) {
	diff(t, "Segment{(0, 0), (3, 4)}", testLine.String())
	diff(t, "Segment{(0, 0), (1.5, 3), (3, 0)}", testQuad.String())
}

func BenchmarkSegmentSplitAt(b *testing.B) {
	for range b.N {
		testS.SplitAt(0.3)
	}
}
