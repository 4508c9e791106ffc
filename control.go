package pathseg

// Control is an optional control point on one side of an [Endpoint].
//
// The zero value means that there is no control point. Use [Ctrl] to create a
// control point at a position.
type Control struct {
	isSet bool
	value Point
}

// NoControl is the absence of a control point. It is equal to the zero value.
var NoControl = Control{}

// Ctrl returns a control point at pt.
func Ctrl(pt Point) Control {
	return Control{isSet: true, value: pt}
}

// Get returns the control point's position and whether it is set.
func (c Control) Get() (Point, bool) {
	return c.value, c.isSet
}

// IsSet reports whether there is a control point.
func (c Control) IsSet() bool {
	return c.isSet
}

// Point returns the control point's position. It panics if the control point
// isn't set.
func (c Control) Point() Point {
	if !c.isSet {
		panic("control point isn't set")
	}
	return c.value
}

// Transform returns the control point transformed by aff. An unset control
// point stays unset.
func (c Control) Transform(aff Affine) Control {
	if !c.isSet {
		return c
	}
	return Ctrl(c.value.Transform(aff))
}

func (c Control) String() string {
	if !c.isSet {
		return "none"
	}
	return c.value.String()
}
