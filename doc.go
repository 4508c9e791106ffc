// Package pathseg provides the geometry of path segments: lines, quadratic
// Béziers, and cubic Béziers between two endpoints. It evaluates, splits,
// measures, and bounds segments, and finds the intersections of pairs of
// segments.
//
// # Endpoints and segments
//
// An [Endpoint] is a position with optional incoming and outgoing control
// points. A [Segment] connects two endpoints and derives its shape from the
// control points facing each other: the first endpoint's Out and the second
// endpoint's In. Which of them are set determines the segment's degree, so a
// segment changes from a line to a curve when a control point is added to one
// of its endpoints.
//
// Segments either borrow their endpoints from a [Path], in which case
// adjacent segments share the endpoint between them, or own endpoints they
// allocated themselves, as is the case for segments produced by [NewLine],
// [NewQuad], [NewCubic], [Segment.SplitAt] and [Segment.Mapped].
//
// # Measuring
//
// [Segment.Length] approximates arc length by adaptive subdivision, comparing
// the length of the control polygon with the chord. [Segment.ParamAtLength]
// inverts it by bisection. Both take an accuracy; [DefaultAccuracy] suits
// device-space graphics.
//
// # Intersections
//
// [Segment.Intersections] uses Bézier clipping. Recursion is bounded, and
// pairs of curves that exhaust the budget are resolved by sampling, which is
// logged at [slog.LevelWarn] to the logger installed with [SetLogger].
//
// # Coordinate system
//
// Like most 2D graphics APIs, this package assumes a y-down coordinate
// system. Only the documentation of orientation (such as the winding of
// [Segment.ConvexHull]) depends on it.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - Curve intersection using Bézier clipping by Sederberg and Nishita
//   - Adaptive subdivision and the length and energy of Bézier curves by Jens Gravesen
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package pathseg
