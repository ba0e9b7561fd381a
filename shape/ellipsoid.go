package shape

import (
	"github.com/akmonengine/euclid"
	"github.com/go-gl/mathgl/mgl64"
)

// Ellipsoid represents an axis-aligned ellipsoid centered at the origin of its
// own frame, with one radius per axis.
type Ellipsoid struct {
	Radii mgl64.Vec3
}

// Sphere creates an ellipsoid with the same radius on every axis.
func Sphere(radius float64) Ellipsoid {
	return Ellipsoid{Radii: mgl64.Vec3{radius, radius, radius}}
}

// Validate checks that no radius is negative. A zero radius is valid and
// describes an empty shape.
func (e Ellipsoid) Validate() error {
	for i := 0; i < 3; i++ {
		if e.Radii[i] < 0 {
			return euclid.MalformedShapef("ellipsoid radius %g is negative on axis %d", e.Radii[i], i)
		}
	}
	return nil
}

// IsEmpty reports whether any radius is zero.
func (e Ellipsoid) IsEmpty() bool {
	return e.Radii[0] == 0 || e.Radii[1] == 0 || e.Radii[2] == 0
}
