package pathseg

import "fmt"

// Endpoint is a vertex of a path. Together with its neighbour it defines a
// [Segment].
//
// In is the control point that shapes the segment arriving at the endpoint,
// Out the one that shapes the segment leaving it. A segment from a to b
// therefore uses a.Out and b.In.
type Endpoint struct {
	Pos Point
	In  Control
	Out Control

	path *Path
}

// NewEndpoint returns a free endpoint at pos without control points.
func NewEndpoint(pos Point) *Endpoint {
	return &Endpoint{Pos: pos}
}

// Path returns the path that the endpoint belongs to, or nil if the endpoint
// is free.
func (ep *Endpoint) Path() *Path {
	return ep.path
}

// Transform maps the position and both control points of ep through aff, in
// place.
func (ep *Endpoint) Transform(aff Affine) {
	ep.Pos = ep.Pos.Transform(aff)
	ep.In = ep.In.Transform(aff)
	ep.Out = ep.Out.Transform(aff)
}

// Equal reports whether two endpoints have the same position and control
// points. Path membership is not compared.
func (ep *Endpoint) Equal(o *Endpoint) bool {
	return ep.Pos == o.Pos && ep.In == o.In && ep.Out == o.Out
}

// detached returns a copy of ep that doesn't belong to any path.
func (ep *Endpoint) detached() *Endpoint {
	return &Endpoint{Pos: ep.Pos, In: ep.In, Out: ep.Out}
}

func (ep *Endpoint) String() string {
	return fmt.Sprintf("Endpoint{%s, in: %s, out: %s}", ep.Pos, ep.In, ep.Out)
}
