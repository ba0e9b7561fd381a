package shape

import (
	"math"

	"github.com/akmonengine/euclid"
	"github.com/go-gl/mathgl/mgl64"
)

// Plane represents an infinite plane through Point, orthogonal to Normal.
// Normal does not need to be normalized.
type Plane struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// IsDegenerate reports whether the normal is too short to define a plane.
func (p Plane) IsDegenerate() bool {
	return p.Normal.Len() <= euclid.OneTrillionth
}

// SignedDistance returns the distance from point to the plane, positive on
// the side the normal points to. It returns NaN for a degenerate plane.
func (p Plane) SignedDistance(point mgl64.Vec3) float64 {
	length := p.Normal.Len()
	if length <= euclid.OneTrillionth {
		return math.NaN()
	}
	return point.Sub(p.Point).Dot(p.Normal) / length
}
