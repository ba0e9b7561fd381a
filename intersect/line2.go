package intersect

import (
	"math"

	"github.com/akmonengine/euclid"
	"github.com/akmonengine/euclid/feature"
	"github.com/akmonengine/euclid/internal/logx"
	"github.com/go-gl/mathgl/mgl64"
)

// PercentageOfIntersection2 returns alpha such that point1 + alpha*direction1
// is the intersection of the two lines.
//
// The problem is solved as A * x = b:
//
//	/ direction1x  -direction2x \   / alpha \   / point2x - point1x \
//	|                           | * |       | = |                   |
//	\ direction1y  -direction2y /   \ beta  /   \ point2y - point1y /
//
// Only alpha is computed. The lines are parallel when the sine of the angle
// between the directions is below OneTenMillionth; it then returns NaN, unless
// they are collinear: there is then an infinite number of solutions and it
// returns 0, i.e. point1. The outcome does not depend on the direction
// lengths, and it returns NaN when a direction has no length.
func PercentageOfIntersection2(point1, direction1, point2, direction2 mgl64.Vec2) float64 {
	length1 := direction1.Len()
	length2 := direction2.Len()
	if length1 < euclid.OneTrillionth || length2 < euclid.OneTrillionth {
		logx.Degenerate("zero-length line direction", "length1", length1, "length2", length2)
		return math.NaN()
	}

	determinant := -direction1.X()*direction2.Y() + direction1.Y()*direction2.X()

	dx := point2.X() - point1.X()
	dy := point2.Y() - point1.Y()

	if math.Abs(determinant)/(length1*length2) < euclid.OneTenMillionth {
		// Distance from point2 to the first line.
		cross := (dx*direction1.Y() - dy*direction1.X()) / length1
		if math.Abs(cross) < euclid.OneTenMillionth {
			logx.Degenerate("collinear lines, using the first line's point", "point", point1)
			return 0
		}
		return math.NaN()
	}

	oneOverDeterminant := 1.0 / determinant
	aInverse00 := -direction2.Y()
	aInverse01 := direction2.X()
	return oneOverDeterminant * (aInverse00*dx + aInverse01*dy)
}

// Features2 computes the intersection between two lines, rays or segments.
// It reports false when they do not intersect.
//
// Parallel features intersect only when collinear. The intersection is then
// not unique and a representative is chosen:
//   - if f2 is a line, f1.Start
//   - else if f1 is a line, f2.Start
//   - else the first of f1.Start, f1.End, f2.Start, f2.End lying on the other feature
//
// Two collinear lines therefore intersect at f1.Start.
func Features2(f1, f2 feature.Feature2) (mgl64.Vec2, bool) {
	d1 := f1.Direction()
	d2 := f2.Direction()

	length1 := d1.Len()
	length2 := d2.Len()
	if length1 < euclid.OneTrillionth || length2 < euclid.OneTrillionth {
		return degenerateFeature2(f1, f2, length1, length2)
	}

	// Unit-direction determinant: the sine of the angle between the features.
	determinant := (-d1.X()*d2.Y() + d1.Y()*d2.X()) / (length1 * length2)

	dx := f2.Start.X() - f1.Start.X()
	dy := f2.Start.Y() - f1.Start.Y()

	if math.Abs(determinant) < euclid.OneTenMillionth {
		// Distance from f2.Start to the line supporting f1.
		cross := (dx*d1.Y() - dy*d1.X()) / length1
		if math.Abs(cross) >= euclid.OneTenMillionth {
			return nan2, false
		}
		return collinear2(f1, f2)
	}

	determinant *= length1 * length2
	oneOverDeterminant := 1.0 / determinant

	alpha := oneOverDeterminant * (-d2.Y()*dx + d2.X()*dy)
	if !f1.Accepts(alpha, euclid.OneTenMillionth) {
		return nan2, false
	}

	beta := oneOverDeterminant * (-d1.Y()*dx + d1.X()*dy)
	if !f2.Accepts(beta, euclid.OneTenMillionth) {
		return nan2, false
	}

	return f1.PointAt(alpha), true
}

func collinear2(f1, f2 feature.Feature2) (mgl64.Vec2, bool) {
	logx.Degenerate("collinear features", "kind1", f1.Kind(), "kind2", f2.Kind())

	if f2.IsLine() {
		return f1.Start, true
	}
	if f1.IsLine() {
		return f2.Start, true
	}

	if f2.Accepts(f2.Parameter(f1.Start), euclid.OneTenMillionth) {
		return f1.Start, true
	}
	if f2.Accepts(f2.Parameter(f1.End), euclid.OneTenMillionth) {
		return f1.End, true
	}
	if f1.Accepts(f1.Parameter(f2.Start), euclid.OneTenMillionth) {
		return f2.Start, true
	}
	if f1.Accepts(f1.Parameter(f2.End), euclid.OneTenMillionth) {
		return f2.End, true
	}
	return nan2, false
}

// degenerateFeature2 handles features without direction: they are reduced to
// their start point, which intersects the other feature when it lies on it.
func degenerateFeature2(f1, f2 feature.Feature2, length1, length2 float64) (mgl64.Vec2, bool) {
	logx.Degenerate("zero-length feature direction", "length1", length1, "length2", length2)

	switch {
	case length1 < euclid.OneTrillionth && length2 < euclid.OneTrillionth:
		if f1.Start.Sub(f2.Start).Len() < euclid.OneTenMillionth {
			return f1.Start, true
		}
	case length1 < euclid.OneTrillionth:
		if onFeature2(f1.Start, f2) {
			return f1.Start, true
		}
	default:
		if onFeature2(f2.Start, f1) {
			return f2.Start, true
		}
	}
	return nan2, false
}

func onFeature2(p mgl64.Vec2, f feature.Feature2) bool {
	t := f.Parameter(p)
	if !f.Accepts(t, euclid.OneTenMillionth) {
		return false
	}
	return f.PointAt(t).Sub(p).Len() < euclid.OneTenMillionth
}

// LineLine2 intersects the line through point1 along direction1 with the line
// through point2 along direction2.
func LineLine2(point1, direction1, point2, direction2 mgl64.Vec2) (mgl64.Vec2, bool) {
	return Features2(feature.Line2(point1, direction1), feature.Line2(point2, direction2))
}

// LineSegment2 intersects the line through point along direction with the segment [start, end].
func LineSegment2(point, direction, start, end mgl64.Vec2) (mgl64.Vec2, bool) {
	return Features2(feature.Line2(point, direction), feature.Segment2(start, end))
}

// LineRay2 intersects the line through point along direction with a ray.
func LineRay2(point, direction, rayOrigin, rayDirection mgl64.Vec2) (mgl64.Vec2, bool) {
	return Features2(feature.Line2(point, direction), feature.Ray2(rayOrigin, rayDirection))
}

// RaySegment2 intersects a ray with the segment [start, end].
func RaySegment2(rayOrigin, rayDirection, start, end mgl64.Vec2) (mgl64.Vec2, bool) {
	return Features2(feature.Ray2(rayOrigin, rayDirection), feature.Segment2(start, end))
}

// RayRay2 intersects two rays.
func RayRay2(origin1, direction1, origin2, direction2 mgl64.Vec2) (mgl64.Vec2, bool) {
	return Features2(feature.Ray2(origin1, direction1), feature.Ray2(origin2, direction2))
}

// SegmentSegment2 intersects the segments [start1, end1] and [start2, end2].
func SegmentSegment2(start1, end1, start2, end2 mgl64.Vec2) (mgl64.Vec2, bool) {
	return Features2(feature.Segment2(start1, end1), feature.Segment2(start2, end2))
}
