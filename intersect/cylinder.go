package intersect

import (
	"math"
	"sort"

	"github.com/akmonengine/euclid"
	"github.com/akmonengine/euclid/feature"
	"github.com/akmonengine/euclid/internal/logx"
	"github.com/akmonengine/euclid/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Cylinder intersects a feature with a finite solid cylinder.
//
// Up to four candidate parameters are computed:
//   - one per cap, where the supporting line crosses the cap plane within
//     Radius of the cap center
//   - two from the lateral surface, solving A t² + B t + C = 0 for the squared
//     distance to the axis equal to Radius², kept when the point projects
//     within ±Length/2 along the axis
//
// Candidates rejected by the boundary flags are dropped and the remaining
// nearest and farthest are reported. A feature grazing the rim produces a
// cap and a lateral candidate at the same parameter, merged into one.
//
// A zero Length or Radius gives no intersection. Returns an error matching
// euclid.ErrMalformedShape if Length or Radius is negative or Axis is zero.
func Cylinder(f feature.Feature3, cylinder shape.Cylinder) (Result3, error) {
	if err := cylinder.Validate(); err != nil {
		return none3(), err
	}
	if cylinder.IsEmpty() {
		logx.Degenerate("empty cylinder", "length", cylinder.Length, "radius", cylinder.Radius)
		return none3(), nil
	}

	r := cylinderRoots(cylinder, f.Start, f.Direction(), f.CanOccurBeforeStart, f.CanOccurAfterEnd)
	return r.result3(f.Start, f.Direction()), nil
}

// cylinderRoots is the numeric core of Cylinder.
func cylinderRoots(cylinder shape.Cylinder, start, direction mgl64.Vec3, canOccurBeforeStart, canOccurAfterEnd bool) roots {
	directionLengthSquared := direction.LenSqr()
	if directionLengthSquared < euclid.OneTrillionth*euclid.OneTrillionth {
		logx.Degenerate("zero-length feature direction against a cylinder")
		return roots{}
	}

	axis := cylinder.UnitAxis()
	center := cylinder.Center
	halfLength := 0.5 * cylinder.Length
	radiusSquared := cylinder.Radius * cylinder.Radius

	bounds := feature.Bounds{Lower: 0, Upper: 1}
	if canOccurBeforeStart {
		bounds.Lower = math.Inf(-1)
	}
	if canOccurAfterEnd {
		bounds.Upper = math.Inf(1)
	}

	var candidates [4]float64
	n := 0
	accept := func(t float64) {
		if bounds.Accepts(t, euclid.OneTenMillionth) {
			candidates[n] = t
			n++
		}
	}

	// Caps
	for _, capCenter := range [2]mgl64.Vec3{cylinder.TopCenter(), cylinder.BottomCenter()} {
		t := linePlaneParameter(capCenter, axis, 1, start, direction)
		if math.IsNaN(t) {
			continue
		}
		p := start.Add(direction.Mul(t))
		if p.Sub(capCenter).LenSqr() <= radiusSquared*(1+euclid.OneMillionth) {
			accept(t)
		}
	}

	// Lateral surface: remove the axial components of the direction and of
	// the offset to the center, what remains is the distance to the axis.
	deltaP := start.Sub(center)
	directionPerpendicular := direction.Sub(axis.Mul(direction.Dot(axis)))
	deltaPPerpendicular := deltaP.Sub(axis.Mul(deltaP.Dot(axis)))

	a := directionPerpendicular.LenSqr()
	if a > euclid.OneTrillionth*directionLengthSquared {
		b := 2 * directionPerpendicular.Dot(deltaPPerpendicular)
		c := deltaPPerpendicular.LenSqr() - radiusSquared
		discriminant := b*b - 4*a*c

		if discriminant >= 0 {
			sqrtDiscriminant := math.Sqrt(discriminant)
			oneOverTwoA := 0.5 / a
			for _, t := range [2]float64{(-b - sqrtDiscriminant) * oneOverTwoA, (-b + sqrtDiscriminant) * oneOverTwoA} {
				axial := deltaP.Add(direction.Mul(t)).Dot(axis)
				if math.Abs(axial) <= halfLength+euclid.OneMillionth*max(1, halfLength) {
					accept(t)
				}
			}
		}
	}

	return mergeRoots(candidates[:n])
}

// mergeRoots keeps the nearest and farthest parameters of a convex shape's
// boundary crossings, merging them when they coincide.
func mergeRoots(candidates []float64) roots {
	switch len(candidates) {
	case 0:
		return roots{}
	case 1:
		return roots{n: 1, t0: candidates[0]}
	}

	sort.Float64s(candidates)
	r := roots{n: 2, t0: candidates[0], t1: candidates[len(candidates)-1]}
	if r.t1-r.t0 < euclid.OneTrillionth*max(1, math.Abs(r.t0)) {
		r.n = 1
	}
	return r
}

// LineCylinder intersects the line through point along direction with the cylinder.
func LineCylinder(point, direction mgl64.Vec3, cylinder shape.Cylinder) (Result3, error) {
	return Cylinder(feature.Line3(point, direction), cylinder)
}

// RayCylinder intersects the ray from origin along direction with the cylinder.
func RayCylinder(origin, direction mgl64.Vec3, cylinder shape.Cylinder) (Result3, error) {
	return Cylinder(feature.Ray3(origin, direction), cylinder)
}

// SegmentCylinder intersects the segment [start, end] with the cylinder.
func SegmentCylinder(start, end mgl64.Vec3, cylinder shape.Cylinder) (Result3, error) {
	return Cylinder(feature.Segment3(start, end), cylinder)
}
