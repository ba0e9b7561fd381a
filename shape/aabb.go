package shape

import (
	"github.com/akmonengine/euclid"
	"github.com/go-gl/mathgl/mgl64"
)

// AABB3 represents an axis-aligned bounding box in 3D
type AABB3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB3 creates the smallest box containing both corners, whatever their order
func NewAABB3(a, b mgl64.Vec3) AABB3 {
	return AABB3{
		Min: mgl64.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])},
		Max: mgl64.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])},
	}
}

// Validate checks that Min does not exceed Max on any axis
func (a AABB3) Validate() error {
	for i := 0; i < 3; i++ {
		if a.Min[i] > a.Max[i] {
			return euclid.MalformedShapef("bounding box min %v exceeds max %v on axis %d", a.Min, a.Max, i)
		}
	}
	return nil
}

// ContainsPoint checks if a point is inside the AABB, boundary included.
// Points within OneTrillionth of a face count as on it.
func (a AABB3) ContainsPoint(point mgl64.Vec3) bool {
	return containsPoint(point[:], a.Min[:], a.Max[:])
}

// AABB2 represents an axis-aligned bounding box in 2D
type AABB2 struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// NewAABB2 creates the smallest box containing both corners, whatever their order
func NewAABB2(a, b mgl64.Vec2) AABB2 {
	return AABB2{
		Min: mgl64.Vec2{min(a[0], b[0]), min(a[1], b[1])},
		Max: mgl64.Vec2{max(a[0], b[0]), max(a[1], b[1])},
	}
}

// Validate checks that Min does not exceed Max on any axis
func (a AABB2) Validate() error {
	for i := 0; i < 2; i++ {
		if a.Min[i] > a.Max[i] {
			return euclid.MalformedShapef("bounding box min %v exceeds max %v on axis %d", a.Min, a.Max, i)
		}
	}
	return nil
}

// ContainsPoint checks if a point is inside the AABB, boundary included.
// See AABB3.ContainsPoint.
func (a AABB2) ContainsPoint(point mgl64.Vec2) bool {
	return containsPoint(point[:], a.Min[:], a.Max[:])
}

func containsPoint(point, lo, hi []float64) bool {
	for i := range point {
		if point[i] < lo[i]-euclid.OneTrillionth || point[i] > hi[i]+euclid.OneTrillionth {
			return false
		}
	}
	return true
}
