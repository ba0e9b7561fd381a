package closest

import (
	"github.com/akmonengine/euclid/feature"
	"github.com/go-gl/mathgl/mgl64"
)

// PointOnFeature3 returns the point of f closest to p and its parameter.
// The orthogonal projection on the supporting line is clamped to the valid
// range of f; a zero-length feature returns its start.
func PointOnFeature3(p mgl64.Vec3, f feature.Feature3) (mgl64.Vec3, float64) {
	t := snap(f.Clamp(f.Parameter(p)))
	return f.PointAt(t), t
}

// PointOnFeature2 returns the point of f closest to p and its parameter.
func PointOnFeature2(p mgl64.Vec2, f feature.Feature2) (mgl64.Vec2, float64) {
	t := snap(f.Clamp(f.Parameter(p)))
	return f.PointAt(t), t
}

// DistanceToFeature3 returns the distance from p to the nearest point of f.
func DistanceToFeature3(p mgl64.Vec3, f feature.Feature3) float64 {
	q, _ := PointOnFeature3(p, f)
	return p.Sub(q).Len()
}

// DistanceToFeature2 returns the distance from p to the nearest point of f.
func DistanceToFeature2(p mgl64.Vec2, f feature.Feature2) float64 {
	q, _ := PointOnFeature2(p, f)
	return p.Sub(q).Len()
}
