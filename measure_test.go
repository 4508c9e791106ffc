package pathseg

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentLength(t *testing.T) {
	tests := []struct {
		s    Segment
		want float64
	}{
		{testLine, 5},
		{NewLine(Pt(1, 1), Pt(1, 1)), 0},
		{testArch, 4.43682857263},
		// The same curve as testArch.
		{testQuad, 4.43682857263},
		{testS, 5.02962788226},
		{NewCubic(Pt(0, 0), Pt(1, 0.5), Pt(2, 0.5), Pt(3, 0)), 3.12068645830},
		{NewCubic(Pt(0, 0), Pt(-1, 1), Pt(4, 1), Pt(3, 0)), 4.19417862039},
		// Degenerate curves that are straight lines.
		{NewCubic(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)), 3},
		{NewQuad(Pt(0, 0), Pt(1, 1), Pt(2, 2)), 2 * math.Sqrt2},
	}
	for _, tt := range tests {
		for i := 2; i <= 6; i++ {
			accuracy := math.Pow(0.1, float64(i))
			t.Run(fmt.Sprintf("%s/%g", tt.s, accuracy), func(t *testing.T) {
				diff(t, tt.want, tt.s.Length(accuracy), cmpopts.EquateApprox(0, accuracy+1e-10))
			})
		}
	}
}

func TestSegmentLengthAccuracy(t *testing.T) {
	// Refining the accuracy doesn't make the estimate grow monotonically. It
	// overshoots the true length for all of these curves but the last, so only
	// the error is bounded.
	tests := []struct {
		s    Segment
		want float64
	}{
		{testArch, 4.43682857263},
		{testS, 5.02962788226},
		{NewCubic(Pt(0, 0), Pt(-1, 1), Pt(4, 1), Pt(3, 0)), 4.19417862039},
		{NewCubic(Pt(0, 0), Pt(1, 0.5), Pt(2, 0.5), Pt(3, 0)), 3.12068645830},
	}
	for _, tt := range tests {
		for i := 1; i <= 8; i++ {
			accuracy := math.Pow(0.1, float64(i))
			if got := tt.s.Length(accuracy); math.Abs(got-tt.want) > accuracy {
				t.Errorf("%s: got length %.12f at accuracy %g, want %.12f", tt.s, got, accuracy, tt.want)
			}
		}
	}
}

func TestSegmentLengthAt(t *testing.T) {
	const accuracy = 1e-6
	for _, s := range []Segment{testLine, testQuad, testArch, testS} {
		diff(t, 0.0, s.LengthAt(0, accuracy))
		diff(t, s.Length(accuracy), s.LengthAt(1, accuracy))
		diff(t, s.Length(accuracy)/2, s.LengthAt(0.5, accuracy), cmpopts.EquateApprox(0, 2*accuracy))
		for _, ts := range []float64{0.1, 0.3, 0.7} {
			l, r := s.SplitAt(ts)
			diff(t, l.Length(accuracy)+r.Length(accuracy), s.Length(accuracy), cmpopts.EquateApprox(0, 3*accuracy))
			diff(t, l.Length(accuracy), s.LengthAt(ts, accuracy))
		}
	}
}

func TestSegmentParamAtLength(t *testing.T) {
	line := NewLine(Pt(0, 0), Pt(4, 0))
	diff(t, 0.25, line.ParamAtLength(1, 0))
	diff(t, 2.0, line.ParamAtLength(8, 0))
	diff(t, 0.0, line.ParamAtLength(0, 0))
	diff(t, 0.0, NewLine(Pt(1, 1), Pt(1, 1)).ParamAtLength(1, 0))

	diff(t, 0.0, testArch.ParamAtLength(0, 1e-3))
	diff(t, 0.0, testArch.ParamAtLength(-1, 1e-3))
	diff(t, 0.0, testArch.ParamAtLength(math.NaN(), 1e-3))
	diff(t, 1.0, testArch.ParamAtLength(100, 1e-3))

	// Symmetric curves are halved at t = 0.5.
	for _, s := range []Segment{testQuad, testArch, testS} {
		diff(t, 0.5, s.ParamAtLength(s.Length(1e-9)/2, 1e-3), cmpopts.EquateApprox(0, 1e-3))
	}
}

func TestSegmentParamAtLengthRoundTrip(t *testing.T) {
	const tolerance = 1e-4
	segs := []Segment{
		testQuad,
		testArch,
		testS,
		NewCubic(Pt(0, 0), Pt(-1, 1), Pt(4, 1), Pt(3, 0)),
	}
	for _, s := range segs {
		total := s.Length(1e-9)
		for _, frac := range []float64{0.1, 0.25, 0.6, 0.9} {
			t.Run(fmt.Sprintf("%s/%g", s, frac), func(t *testing.T) {
				target := frac * total
				ts := s.ParamAtLength(target, tolerance)
				if ts < 0 || ts > 1 {
					t.Fatalf("got t=%g, want t in [0, 1]", ts)
				}
				got := s.LengthAt(ts, 1e-9)
				diff(t, target, got, cmpopts.EquateApprox(3*tolerance, 0))
			})
		}
	}

	for _, s := range append(segs, NewCubic(Pt(0, 0), Pt(1, 0.5), Pt(2, 0.5), Pt(3, 0))) {
		for i := 2; i <= 6; i++ {
			tolerance := math.Pow(0.1, float64(i))
			ts := s.ParamAtLength(s.Length(tolerance), tolerance)
			diff(t, 1.0, ts, cmpopts.EquateApprox(0, tolerance))
		}
	}
}

func BenchmarkSegmentLength(b *testing.B) {
	for _, accuracy := range []float64{1e-3, 1e-6, 1e-9} {
		b.Run(fmt.Sprint(accuracy), func(b *testing.B) {
			for range b.N {
				testS.Length(accuracy)
			}
		})
	}
}

func BenchmarkSegmentParamAtLength(b *testing.B) {
	l := testS.Length(1e-6) / 3
	for range b.N {
		testS.ParamAtLength(l, 1e-6)
	}
}
