package intersect

import (
	"math"

	"github.com/akmonengine/euclid"
	"github.com/akmonengine/euclid/feature"
	"github.com/akmonengine/euclid/internal/logx"
	"github.com/akmonengine/euclid/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// linePlaneParameter returns t such that start + t*direction lies on the
// plane through point with the given normal, or NaN when the line is
// parallel to the plane. normalLength is the precomputed length of normal;
// pass 1 for a unit normal.
func linePlaneParameter(point, normal mgl64.Vec3, normalLength float64, start, direction mgl64.Vec3) float64 {
	directionLength := direction.Len()
	if directionLength < euclid.OneTrillionth || normalLength < euclid.OneTrillionth {
		return math.NaN()
	}

	dot := normal.Dot(direction)
	// Cosine of the angle between the normal and the direction.
	if math.Abs(dot/(normalLength*directionLength)) < euclid.OneTrillionth {
		return math.NaN()
	}
	return point.Sub(start).Dot(normal) / dot
}

// PercentageOfIntersectionPlane returns the parameter t along the feature's
// supporting line at which it crosses the plane, ignoring the boundary flags.
// It returns NaN when the line is parallel to the plane or either is degenerate.
func PercentageOfIntersectionPlane(f feature.Feature3, plane shape.Plane) float64 {
	return linePlaneParameter(plane.Point, plane.Normal, plane.Normal.Len(), f.Start, f.Direction())
}

// FeaturePlane intersects a feature with a plane. It reports false when the
// feature is parallel to the plane or does not reach it.
func FeaturePlane(f feature.Feature3, plane shape.Plane) (mgl64.Vec3, bool) {
	t := PercentageOfIntersectionPlane(f, plane)
	if math.IsNaN(t) || !f.Accepts(t, euclid.OneTenMillionth) {
		return nan3, false
	}
	return f.PointAt(t), true
}

// PlanePlane computes the line along which two planes intersect. The returned
// feature is an infinite line whose direction is the unit vector n1 × n2.
//
// It reports false when a normal is shorter than OneTrillionth, or when the
// angle between the planes is within angleThreshold of parallel.
//
// The point of the line is pinned with a third plane through the midpoint of
// plane1.Point and plane2.Point, orthogonal to the line. Each point p on the
// intersection satisfies n1·p = d1 and n2·p = d2, the third plane adds
// n3·p = d3 with n3 = n1 × n2, and
//
//	p = (d1 (n2 × n3) + d2 (n3 × n1) + d3 n3) / |n3|²
//
// Returns an error matching euclid.ErrParameterOutOfRange if angleThreshold is
// outside [0, π/2].
func PlanePlane(plane1, plane2 shape.Plane, angleThreshold float64) (feature.Feature3, bool, error) {
	if !(angleThreshold >= 0 && angleThreshold <= math.Pi/2) {
		return feature.Feature3{}, false, euclid.OutOfRangef("angle threshold %g is outside [0, π/2]", angleThreshold)
	}

	normal1 := plane1.Normal
	normal2 := plane2.Normal
	normalLength1 := normal1.Len()
	normalLength2 := normal2.Len()
	if normalLength1 <= euclid.OneTrillionth || normalLength2 <= euclid.OneTrillionth {
		logx.Degenerate("plane without normal", "normal1", normal1, "normal2", normal2)
		return feature.Feature3{}, false, nil
	}

	cosine := normal1.Dot(normal2) / (normalLength1 * normalLength2)
	if math.Abs(cosine) >= math.Cos(angleThreshold) {
		logx.Degenerate("parallel planes", "cosine", cosine)
		return feature.Feature3{}, false, nil
	}

	normal3 := normal1.Cross(normal2)
	determinant := normal3.LenSqr()

	d1 := normal1.Dot(plane1.Point)
	d2 := normal2.Dot(plane2.Point)
	d3 := 0.5 * normal3.Dot(plane1.Point.Add(plane2.Point))

	point := normal2.Cross(normal3).Mul(d1).
		Add(normal3.Cross(normal1).Mul(d2)).
		Add(normal3.Mul(d3)).
		Mul(1.0 / determinant)

	return feature.Line3(point, normal3.Mul(1.0/math.Sqrt(determinant))), true, nil
}
