package shape

import (
	"math"

	"github.com/akmonengine/euclid"
	"github.com/go-gl/mathgl/mgl64"
)

// OrientedBox represents a box of full extent Size, centered on Pose.Position
// and rotated by Pose.Rotation
type OrientedBox struct {
	Pose Pose
	Size mgl64.Vec3
}

// Validate checks that every size component is strictly positive and that the
// rotation is a unit quaternion
func (b OrientedBox) Validate() error {
	if math.Abs(b.Pose.Rotation.Len()-1) > euclid.OneMillionth {
		return euclid.MalformedShapef("oriented box rotation %v is not a unit quaternion", b.Pose.Rotation)
	}
	for i := 0; i < 3; i++ {
		if !(b.Size[i] > 0) {
			return euclid.MalformedShapef("oriented box size %v must be strictly positive on axis %d", b.Size, i)
		}
	}
	return nil
}

// HalfExtents returns half the size of the box
func (b OrientedBox) HalfExtents() mgl64.Vec3 {
	return b.Size.Mul(0.5)
}

// LocalBounds returns the box as an AABB in its own frame
func (b OrientedBox) LocalBounds() AABB3 {
	h := b.HalfExtents()
	return AABB3{Min: h.Mul(-1), Max: h}
}

// Bounds returns the world axis-aligned box enclosing the oriented box. Each
// half extent is rotated into world space and its absolute components summed
// per axis.
func (b OrientedBox) Bounds() AABB3 {
	h := b.HalfExtents()
	var extent mgl64.Vec3
	for i := 0; i < 3; i++ {
		var local mgl64.Vec3
		local[i] = h[i]
		world := b.Pose.Rotation.Rotate(local)
		for j := 0; j < 3; j++ {
			extent[j] += math.Abs(world[j])
		}
	}
	return AABB3{Min: b.Pose.Position.Sub(extent), Max: b.Pose.Position.Add(extent)}
}
