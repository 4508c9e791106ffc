package pathseg

import (
	"context"
	"log/slog"
	"math"
)

// Defaults of [IntersectOptions].
const (
	// ClipConvergenceWidth is the width of a clipped parameter interval below
	// which it is reported as a single intersection.
	ClipConvergenceWidth = 1e-5
	// MinClipReduction is the fraction by which a clip must shrink the
	// parameter interval. Clips that achieve less subdivide the curve instead.
	MinClipReduction = 0.2
	// MaxClipDepth is the recursion depth at which clipping gives up and the
	// remaining pair of curves is resolved by sampling.
	MaxClipDepth = 50
	// MaxClipSteps is the total number of clipping steps a single intersection
	// query may take before every remaining pair is resolved by sampling.
	MaxClipSteps = 4096
	// FallbackSamples is the number of line segments each curve is flattened
	// into when resolving a pair by sampling.
	FallbackSamples = 16
	// ClipPointTolerance is the size below which a clipped curve is treated as
	// a point. Clipping such curves runs into float64 resolution.
	ClipPointTolerance = 1e-9
)

const (
	newtonIterations = 8
	newtonTolerance  = 1e-9
	// pointULPs scales the magnitude of the input coordinates into the
	// smallest point size that float64 can resolve at that magnitude.
	pointULPs = 64 * 0x1p-52
)

// IntersectOptions configures [Segment.IntersectionsOpt]. Zero fields use the
// package's defaults.
type IntersectOptions struct {
	ConvergenceWidth float64
	MinClipReduction float64
	MaxDepth         int
	MaxSteps         int
	FallbackSamples  int
	PointTolerance   float64
}

// DefaultIntersectOptions are the options used by [Segment.Intersections].
var DefaultIntersectOptions = IntersectOptions{
	ConvergenceWidth: ClipConvergenceWidth,
	MinClipReduction: MinClipReduction,
	MaxDepth:         MaxClipDepth,
	MaxSteps:         MaxClipSteps,
	FallbackSamples:  FallbackSamples,
	PointTolerance:   ClipPointTolerance,
}

func (opts IntersectOptions) withDefaults() IntersectOptions {
	if opts.ConvergenceWidth <= 0 {
		opts.ConvergenceWidth = ClipConvergenceWidth
	}
	if opts.MinClipReduction <= 0 {
		opts.MinClipReduction = MinClipReduction
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = MaxClipDepth
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = MaxClipSteps
	}
	if opts.FallbackSamples <= 0 {
		opts.FallbackSamples = FallbackSamples
	}
	if opts.PointTolerance <= 0 {
		opts.PointTolerance = ClipPointTolerance
	}
	return opts
}

// Intersections returns the points at which s and o intersect, using
// [DefaultIntersectOptions]. See [Segment.IntersectionsOpt].
func (s Segment) Intersections(o Segment) []Point {
	return s.IntersectionsOpt(o, DefaultIntersectOptions)
}

// IntersectionsOpt returns the points at which s and o intersect.
//
// The points are in no particular order. Tangential intersections and
// intersections at points where the algorithm subdivided a curve may be
// reported more than once. Collinear overlapping lines report no
// intersections.
//
// Intersections are found by Bézier clipping, as described by Sederberg and
// Nishita in "Curve intersection using Bézier clipping": each curve is
// alternately clipped to the parameter range in which it may lie within the
// other curve's fat line, until the range converges. When clipping doesn't
// make enough progress, the curve is split in half instead. Two lines are
// intersected directly.
//
// A curve that clipping has shrunk to within opts.PointTolerance of a point is
// intersected by finding the nearest point on the other curve.
//
// Recursion is bounded by opts.MaxDepth and opts.MaxSteps. Pairs of curves
// that exceed the budget are flattened into opts.FallbackSamples lines each,
// and crossings of the flattened curves are refined with Newton's method.
func (s Segment) IntersectionsOpt(o Segment, opts IntersectOptions) []Point {
	a, ok1 := s.bez()
	b, ok2 := o.bez()
	if !ok1 || !ok2 {
		return nil
	}
	is := intersector{
		opts: opts.withDefaults(),
		log:  Logger(),
	}
	is.pointTol = max(is.opts.PointTolerance, pointULPs*max(a.magnitude(), b.magnitude()))
	is.intersect(a, b, 0)
	if is.fallbacks > 0 {
		is.log.Warn("pathseg: intersection budget exhausted, resolved by sampling",
			"a", s, "b", o, "steps", is.steps, "fallbacks", is.fallbacks)
	}
	return is.out
}

type intersector struct {
	opts      IntersectOptions
	pointTol  float64
	log       *slog.Logger
	steps     int
	fallbacks int
	out       []Point
}

func (is *intersector) debug(msg string, args ...any) {
	if is.log.Enabled(context.Background(), slog.LevelDebug) {
		is.log.Debug(msg, args...)
	}
}

// intersect finds the intersections of a and b, clipping b against a's fat
// line. Recursive calls swap the roles of the two curves.
func (is *intersector) intersect(a, b bezier, depth int) {
	is.steps++
	if !a.boundingRect().Overlaps(b.boundingRect()) {
		return
	}
	if a.deg == 1 && b.deg == 1 {
		if pt, ok := intersectLines(a, b); ok {
			is.out = append(is.out, pt)
		}
		return
	}
	if a.extent() <= is.pointTol || b.extent() <= is.pointTol {
		is.intersectPoint(a, b, depth)
		return
	}
	if depth >= is.opts.MaxDepth || is.steps > is.opts.MaxSteps {
		is.fallback(a, b, depth)
		return
	}

	tmin, tmax, ok := clipInterval(a, b)
	switch {
	case !ok || 1-(tmax-tmin) <= is.opts.MinClipReduction:
		is.debug("pathseg: clip too small, splitting", "depth", depth, "tmin", tmin, "tmax", tmax)
		a0, a1 := a.split(0.5)
		is.intersect(b, a0, depth+1)
		is.intersect(b, a1, depth+1)
	case tmax-tmin < is.opts.ConvergenceWidth:
		pt := b.eval(0.5 * (tmin + tmax))
		is.debug("pathseg: found intersection", "depth", depth, "point", pt)
		is.out = append(is.out, pt)
	default:
		is.debug("pathseg: clipping", "depth", depth, "tmin", tmin, "tmax", tmax)
		_, rest := b.split(tmin)
		clipped, _ := rest.split((tmax - tmin) / (1 - tmin))
		is.intersect(clipped, a, depth+1)
	}
}

// intersectPoint intersects a pair in which at least one curve has collapsed
// to a point. The point intersects the other curve if the other curve passes
// within the tolerance of it.
func (is *intersector) intersectPoint(a, b bezier, depth int) {
	p, o := a, b
	if a.extent() > is.pointTol {
		p, o = b, a
	}
	distSq, t := o.nearest(p.eval(0.5), is.pointTol)
	if distSq > 4*is.pointTol*is.pointTol {
		return
	}
	pt := o.eval(t)
	is.debug("pathseg: curve collapsed to a point", "depth", depth, "point", pt)
	is.out = append(is.out, pt)
}

// lineParams solves a0 + r·(a1−a0) = b0 + s·(b1−b0). ok is false for parallel
// and collinear lines.
func lineParams(a0, a1, b0, b1 Point) (r, s float64, ok bool) {
	ab := a1.Sub(a0)
	cd := b1.Sub(b0)
	ca := a0.Sub(b0)
	denom := ab.Cross(cd)
	if denom == 0 {
		return 0, 0, false
	}
	return cd.Cross(ca) / denom, ab.Cross(ca) / denom, true
}

func intersectLines(a, b bezier) (Point, bool) {
	r, s, ok := lineParams(a.p[0], a.p[1], b.p[0], b.p[1])
	if !ok || r < 0 || r > 1 || s < 0 || s > 1 {
		return Point{}, false
	}
	return lerp(a.p[0], a.p[1], r), true
}

// fallback flattens a and b and refines every crossing of the flattened curves
// with Newton's method. Crossings that don't converge are reported as found on
// the flattened curves.
func (is *intersector) fallback(a, b bezier, depth int) {
	is.fallbacks++
	is.debug("pathseg: falling back to sampling", "depth", depth, "steps", is.steps, "a", a, "b", b)

	n := is.opts.FallbackSamples
	pa := sample(a, n)
	pb := sample(b, n)
	for i := range n {
		for j := range n {
			r, s, ok := lineParams(pa[i], pa[i+1], pb[j], pb[j+1])
			if !ok || r < 0 || r > 1 || s < 0 || s > 1 {
				continue
			}
			// Report crossings at shared sample points only once.
			if (r == 1 && i < n-1) || (s == 1 && j < n-1) {
				continue
			}
			ta := (float64(i) + r) / float64(n)
			tb := (float64(j) + s) / float64(n)
			if pt, ok := refineCrossing(a, b, ta, tb); ok {
				is.out = append(is.out, pt)
			} else {
				is.out = append(is.out, lerp(pa[i], pa[i+1], r))
			}
		}
	}
}

func sample(b bezier, n int) []Point {
	out := make([]Point, n+1)
	for i := range out {
		out[i] = b.eval(float64(i) / float64(n))
	}
	return out
}

// refineCrossing solves a(ta) = b(tb) with Newton's method, starting at
// (ta, tb).
func refineCrossing(a, b bezier, ta, tb float64) (Point, bool) {
	for range newtonIterations {
		f := a.eval(ta).Sub(b.eval(tb))
		if f.Hypot() < newtonTolerance {
			return a.eval(ta), true
		}
		da := a.deriv(ta)
		db := b.deriv(tb)
		det := da.Cross(db)
		if det == 0 {
			return Point{}, false
		}
		ta = clamp01(ta - f.Cross(db)/det)
		tb = clamp01(tb - f.Cross(da)/det)
	}
	if a.eval(ta).Sub(b.eval(tb)).Hypot() < newtonTolerance {
		return a.eval(ta), true
	}
	return Point{}, false
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) {
		return t
	}
	return min(max(t, 0), 1)
}
