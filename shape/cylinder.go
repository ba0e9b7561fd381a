package shape

import (
	"github.com/akmonengine/euclid"
	"github.com/go-gl/mathgl/mgl64"
)

// Cylinder represents a finite solid cylinder. Center is the middle of the
// axis, Axis is its direction (any non-zero length) and Length the distance
// between the two caps.
type Cylinder struct {
	Length float64
	Radius float64
	Center mgl64.Vec3
	Axis   mgl64.Vec3
}

// Validate checks that the length and radius are not negative and that the
// axis is not zero. A zero length or radius is valid and describes an empty shape.
func (c Cylinder) Validate() error {
	if c.Length < 0 {
		return euclid.MalformedShapef("cylinder length %g is negative", c.Length)
	}
	if c.Radius < 0 {
		return euclid.MalformedShapef("cylinder radius %g is negative", c.Radius)
	}
	if c.Axis.LenSqr() < euclid.OneTrillionth*euclid.OneTrillionth {
		return euclid.MalformedShapef("cylinder axis %v has no direction", c.Axis)
	}
	return nil
}

// IsEmpty reports whether the cylinder has no volume.
func (c Cylinder) IsEmpty() bool {
	return c.Length == 0 || c.Radius == 0
}

// UnitAxis returns Axis scaled to unit length. A unit Axis is returned as is.
func (c Cylinder) UnitAxis() mgl64.Vec3 {
	length := c.Axis.Len()
	if length == 1 {
		return c.Axis
	}
	return c.Axis.Mul(1.0 / length)
}

// TopCenter returns the center of the cap on the positive side of the axis.
func (c Cylinder) TopCenter() mgl64.Vec3 {
	return c.Center.Add(c.UnitAxis().Mul(0.5 * c.Length))
}

// BottomCenter returns the center of the cap on the negative side of the axis.
func (c Cylinder) BottomCenter() mgl64.Vec3 {
	return c.Center.Sub(c.UnitAxis().Mul(0.5 * c.Length))
}
