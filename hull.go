package pathseg

import "slices"

// hull returns the convex hull of b's control polygon.
//
// The polygon is oriented so that the cross product of consecutive edges is
// negative, which is counter-clockwise in a y-down coordinate system. If all
// points are collinear, the hull degenerates to the two points farthest
// apart.
//
// Since at most four points are involved, the hull is built directly: a
// triangle from the endpoints and one control point, into which the remaining
// control point is inserted.
func (b bezier) hull() []Point {
	p0, p1 := b.start(), b.end()
	chord := b.chord()
	side := func(pt Point) float64 { return chord.Cross(pt.Sub(p0)) }

	switch b.deg {
	case 1:
		return []Point{p0, p1}
	case 2:
		if side(b.p[1]) == 0 {
			return farthestPair(b.points())
		}
		return hullTriangle(p0, p1, b.p[1], side(b.p[1]))
	default:
		c1, c2 := b.p[1], b.p[2]
		if side(c1) == 0 {
			if side(c2) == 0 {
				return farthestPair(b.points())
			}
			c1, c2 = c2, c1
		}
		return insertHullPoint(hullTriangle(p0, p1, c1, side(c1)), c2)
	}
}

// hullTriangle orders the triangle p0, p1, c according to which side of the
// chord p0→p1 the point c is on.
func hullTriangle(p0, p1, c Point, side float64) []Point {
	h := make([]Point, 3, 4)
	if side > 0 {
		h[0], h[1], h[2] = p0, c, p1
	} else {
		h[0], h[1], h[2] = p0, p1, c
	}
	return h
}

// insertHullPoint adds pt to the hull triangle h.
func insertHullPoint(h []Point, pt Point) []Point {
	var outside [3]bool
	for i := range 3 {
		edge := h[(i+1)%3].Sub(h[i])
		outside[i] = edge.Cross(pt.Sub(h[i])) > 0
	}
	for i := range 3 {
		prev := (i + 2) % 3
		next := (i + 1) % 3
		switch {
		case outside[i] && !outside[prev] && !outside[next]:
			// Only beyond edge i: break the edge in two.
			return slices.Insert(h, i+1, pt)
		case outside[i] && outside[next]:
			// Beyond the vertex shared by edges i and i+1.
			h[next] = pt
			return h
		case outside[i] && outside[prev]:
			h[i] = pt
			return h
		}
	}
	// Inside the triangle.
	return h
}

func farthestPair(pts []Point) []Point {
	var best [2]Point
	bestD := -1.0
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := pts[i].DistanceSquared(pts[j]); d > bestD {
				bestD = d
				best = [2]Point{pts[i], pts[j]}
			}
		}
	}
	return best[:]
}

// ConvexHull returns the convex hull of the points that define the segment.
//
// Lines return their two endpoints, quadratic Béziers a triangle, and cubic
// Béziers a triangle or a quadrilateral. The polygon is counter-clockwise in a
// y-down coordinate system: the cross product of consecutive edges is
// negative. Collinear points degenerate to the two points farthest apart.
func (s Segment) ConvexHull() []Point {
	b, ok := s.bez()
	if !ok {
		return nil
	}
	return b.hull()
}
