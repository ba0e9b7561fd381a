package intersect

import (
	"math"

	"github.com/akmonengine/euclid"
	"github.com/akmonengine/euclid/feature"
	"github.com/akmonengine/euclid/internal/logx"
	"github.com/akmonengine/euclid/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Ellipsoid intersects a feature with an ellipsoid centered at the origin.
//
// Dividing every coordinate by the matching radius turns the ellipsoid into
// the unit sphere, and the feature into start' + t*direction'. The crossings
// are the roots of
//
//	|direction'|² t² + 2 (start'·direction') t + |start'|² - 1 = 0
//
// A negative discriminant means no intersection. A discriminant within
// OneTrillionth of zero means the feature is tangent: a single root.
//
// A zero radius gives no intersection. Returns an error matching
// euclid.ErrMalformedShape if a radius is negative.
func Ellipsoid(f feature.Feature3, ellipsoid shape.Ellipsoid) (Result3, error) {
	if err := ellipsoid.Validate(); err != nil {
		return none3(), err
	}
	if ellipsoid.IsEmpty() {
		logx.Degenerate("empty ellipsoid", "radii", ellipsoid.Radii)
		return none3(), nil
	}

	r := ellipsoidRoots(ellipsoid.Radii, f.Start, f.Direction(), f.CanOccurBeforeStart, f.CanOccurAfterEnd)
	return r.result3(f.Start, f.Direction()), nil
}

func ellipsoidRoots(radii, start, direction mgl64.Vec3, canOccurBeforeStart, canOccurAfterEnd bool) roots {
	scaledStart := mgl64.Vec3{start[0] / radii[0], start[1] / radii[1], start[2] / radii[2]}
	scaledDirection := mgl64.Vec3{direction[0] / radii[0], direction[1] / radii[1], direction[2] / radii[2]}

	// Work on a unit direction so the discriminant is measured in unit-sphere
	// distances, whatever the length of the feature.
	scale := scaledDirection.Len()
	if scale < euclid.OneTrillionth {
		logx.Degenerate("zero-length feature direction against an ellipsoid")
		return roots{}
	}
	unitDirection := scaledDirection.Mul(1.0 / scale)

	b := 2 * scaledStart.Dot(unitDirection)
	c := scaledStart.LenSqr() - 1
	discriminant := b*b - 4*c

	if discriminant < -euclid.OneTrillionth {
		return roots{}
	}

	var candidates [2]float64
	count := 2
	if discriminant < euclid.OneTrillionth {
		candidates[0] = -0.5 * b / scale
		count = 1
	} else {
		sqrtDiscriminant := math.Sqrt(discriminant)
		candidates[0] = 0.5 * (-b - sqrtDiscriminant) / scale
		candidates[1] = 0.5 * (-b + sqrtDiscriminant) / scale
	}

	return keep(candidates[:count], canOccurBeforeStart, canOccurAfterEnd)
}

// LineEllipsoid intersects the line through point along direction with the ellipsoid.
func LineEllipsoid(point, direction mgl64.Vec3, ellipsoid shape.Ellipsoid) (Result3, error) {
	return Ellipsoid(feature.Line3(point, direction), ellipsoid)
}

// RayEllipsoid intersects the ray from origin along direction with the ellipsoid.
func RayEllipsoid(origin, direction mgl64.Vec3, ellipsoid shape.Ellipsoid) (Result3, error) {
	return Ellipsoid(feature.Ray3(origin, direction), ellipsoid)
}

// SegmentEllipsoid intersects the segment [start, end] with the ellipsoid.
func SegmentEllipsoid(start, end mgl64.Vec3, ellipsoid shape.Ellipsoid) (Result3, error) {
	return Ellipsoid(feature.Segment3(start, end), ellipsoid)
}
