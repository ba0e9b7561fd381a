package shape

import "github.com/go-gl/mathgl/mgl64"

// Pose places a local frame in world space: a rotation followed by a translation
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewPose creates a pose with a normalized rotation
func NewPose(position mgl64.Vec3, rotation mgl64.Quat) Pose {
	return Pose{Position: position, Rotation: rotation.Normalize()}
}

// IdentityPose creates a pose at the origin without rotation
func IdentityPose() Pose {
	return Pose{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// Transform maps a point from the local frame to world space
func (p Pose) Transform(local mgl64.Vec3) mgl64.Vec3 {
	return p.Rotation.Rotate(local).Add(p.Position)
}

// InverseTransform maps a world point into the local frame
func (p Pose) InverseTransform(world mgl64.Vec3) mgl64.Vec3 {
	// Rotation is a unit quaternion, its conjugate is its inverse
	return p.Rotation.Conjugate().Rotate(world.Sub(p.Position))
}
