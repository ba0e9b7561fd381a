// Package interop runs the euclid queries on vector types from other
// geometry libraries.
//
// Any type whose underlying type is struct{ X, Y, Z float64 } satisfies
// Vector3, and struct{ X, Y float64 } satisfies Vector2. This covers
// github.com/golang/geo r3.Vector and r2.Point, and gonum.org/v1/gonum
// spatial/r3.Vec and spatial/r2.Vec, without importing either library:
//
//	points, err := interop.SegmentAABB3(r3.Vector{X: -2}, r3.Vector{X: 2}, boxMin, boxMax)
package interop

import (
	"github.com/akmonengine/euclid/closest"
	"github.com/akmonengine/euclid/intersect"
	"github.com/akmonengine/euclid/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is any 3D vector type laid out as three float64 fields X, Y and Z.
type Vector3 interface {
	~struct{ X, Y, Z float64 }
}

// Vector2 is any 2D vector type laid out as two float64 fields X and Y.
type Vector2 interface {
	~struct{ X, Y float64 }
}

// Vec3 converts v to an mgl64.Vec3.
func Vec3[V Vector3](v V) mgl64.Vec3 {
	s := struct{ X, Y, Z float64 }(v)
	return mgl64.Vec3{s.X, s.Y, s.Z}
}

// From3 converts an mgl64.Vec3 to V.
func From3[V Vector3](v mgl64.Vec3) V {
	return V(struct{ X, Y, Z float64 }{X: v[0], Y: v[1], Z: v[2]})
}

// Vec2 converts v to an mgl64.Vec2.
func Vec2[V Vector2](v V) mgl64.Vec2 {
	s := struct{ X, Y float64 }(v)
	return mgl64.Vec2{s.X, s.Y}
}

// From2 converts an mgl64.Vec2 to V.
func From2[V Vector2](v mgl64.Vec2) V {
	return V(struct{ X, Y float64 }{X: v[0], Y: v[1]})
}

func points3[V Vector3](r intersect.Result3) []V {
	points := make([]V, 0, r.Count)
	for _, p := range r.Points() {
		points = append(points, From3[V](p))
	}
	return points
}

// SegmentAABB3 intersects the segment [start, end] with the box [boxMin, boxMax]
// and returns the intersections, nearest to start first.
func SegmentAABB3[V Vector3](start, end, boxMin, boxMax V) ([]V, error) {
	r, err := intersect.SegmentAABB3(Vec3(start), Vec3(end), shape.AABB3{Min: Vec3(boxMin), Max: Vec3(boxMax)})
	if err != nil {
		return nil, err
	}
	return points3[V](r), nil
}

// RayAABB3 intersects the ray from origin along direction with the box
// [boxMin, boxMax] and returns the intersections, nearest to origin first.
func RayAABB3[V Vector3](origin, direction, boxMin, boxMax V) ([]V, error) {
	r, err := intersect.RayAABB3(Vec3(origin), Vec3(direction), shape.AABB3{Min: Vec3(boxMin), Max: Vec3(boxMax)})
	if err != nil {
		return nil, err
	}
	return points3[V](r), nil
}

// ClosestSegmentSegment3 returns the closest points between the segments
// [p0, p1] and [q0, q1] and their distance.
func ClosestSegmentSegment3[V Vector3](p0, p1, q0, q1 V) (V, V, float64) {
	r := closest.SegmentSegment3(Vec3(p0), Vec3(p1), Vec3(q0), Vec3(q1))
	return From3[V](r.OnFirst), From3[V](r.OnSecond), r.Distance
}

// LineLine3Closest returns the closest points between the line through p0
// along u and the line through q0 along v, and their distance.
func LineLine3Closest[V Vector3](p0, u, q0, v V) (V, V, float64) {
	r := closest.LineLine3(Vec3(p0), Vec3(u), Vec3(q0), Vec3(v))
	return From3[V](r.OnFirst), From3[V](r.OnSecond), r.Distance
}

// SegmentSegment2 intersects the segments [p0, p1] and [q0, q1].
func SegmentSegment2[V Vector2](p0, p1, q0, q1 V) (V, bool) {
	p, ok := intersect.SegmentSegment2(Vec2(p0), Vec2(p1), Vec2(q0), Vec2(q1))
	if !ok {
		var zero V
		return zero, false
	}
	return From2[V](p), true
}
