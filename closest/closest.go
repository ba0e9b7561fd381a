// Package closest computes the closest points and the minimum distance
// between linear features.
//
// With P(s) = P0 + s·u on the first feature and Q(t) = Q0 + t·v on the second,
// the squared distance |w0 + s·u - t·v|², w0 = P0 - Q0, is minimized through
// the Gram system
//
//	a = u·u   b = u·v   c = v·v   d = u·w0   e = v·w0
//
// whose unconstrained solution is s = (b·e - c·d)/δ, t = (a·e - b·d)/δ with
// δ = a·c - b². Bounded features then clamp s, recompute t from the clamped s
// and clamp it, and recompute s once more if t moved. The second pass is
// required when the minimum of the unbounded lines falls outside one of the
// features. See http://geomalgorithms.com/a07-_distance.html.
package closest

import (
	"math"

	"github.com/akmonengine/euclid"
	"github.com/akmonengine/euclid/feature"
	"github.com/akmonengine/euclid/internal/logx"
	"github.com/go-gl/mathgl/mgl64"
)

// Below this squared length a direction is treated as a point.
const degenerateLengthSquared = euclid.OneTrillionth * euclid.OneTrillionth

// Result3 holds the closest pair between two features in 3D.
type Result3 struct {
	OnFirst  mgl64.Vec3
	OnSecond mgl64.Vec3
	// S and T are the parameters of OnFirst and OnSecond along their feature.
	S, T     float64
	Distance float64
}

// Result2 holds the closest pair between two features in 2D.
type Result2 struct {
	OnFirst  mgl64.Vec2
	OnSecond mgl64.Vec2
	S, T     float64
	Distance float64
}

// solve returns the minimizing parameters (s, t) of the Gram system, s
// restricted to first and t to second.
func solve(a, b, c, d, e float64, first, second feature.Bounds) (float64, float64) {
	switch {
	case a < degenerateLengthSquared && c < degenerateLengthSquared:
		logx.Degenerate("closest points between two zero-length features")
		return 0, 0
	case a < degenerateLengthSquared:
		logx.Degenerate("zero-length first feature, projecting its start")
		return 0, snap(second.Clamp(e / c))
	case c < degenerateLengthSquared:
		logx.Degenerate("zero-length second feature, projecting its start")
		return snap(first.Clamp(-d / a)), 0
	}

	var s float64
	delta := a*c - b*b
	if delta <= euclid.OneTrillionth*a*c {
		// Parallel: every s has a matching t, keep the first start.
		logx.Degenerate("parallel features, closest points pinned at the first start", "delta", delta)
		s = 0
	} else {
		s = first.Clamp((b*e - c*d) / delta)
	}

	unclamped := (b*s + e) / c
	t := second.Clamp(unclamped)
	if t != unclamped {
		s = first.Clamp((b*t - d) / a)
	}

	return snap(s), snap(t)
}

func snap(x float64) float64 {
	if math.Abs(x) < euclid.OneTrillionth {
		return 0
	}
	return x
}

// Features3 computes the closest points between two features of any kind.
// For parallel features the closest pair is not unique; the point reported on
// the first feature is its start when the second feature covers it.
func Features3(f1, f2 feature.Feature3) Result3 {
	u := f1.Direction()
	v := f2.Direction()
	w0 := f1.Start.Sub(f2.Start)

	s, t := solve(u.Dot(u), u.Dot(v), v.Dot(v), u.Dot(w0), v.Dot(w0), f1.Bounds(), f2.Bounds())

	p := f1.PointAt(s)
	q := f2.PointAt(t)
	return Result3{OnFirst: p, OnSecond: q, S: s, T: t, Distance: p.Sub(q).Len()}
}

// Features2 computes the closest points between two features of any kind in 2D.
// The features are lifted to the z = 0 plane and solved as in Features3.
func Features2(f1, f2 feature.Feature2) Result2 {
	r := Features3(f1.To3(), f2.To3())
	return Result2{OnFirst: r.OnFirst.Vec2(), OnSecond: r.OnSecond.Vec2(), S: r.S, T: r.T, Distance: r.Distance}
}

// LineLine3 computes the closest points between the infinite lines through p0
// along u and through q0 along v.
func LineLine3(p0, u, q0, v mgl64.Vec3) Result3 {
	return Features3(feature.Line3(p0, u), feature.Line3(q0, v))
}

// SegmentSegment3 computes the closest points between the segments [p0, p1]
// and [q0, q1].
func SegmentSegment3(p0, p1, q0, q1 mgl64.Vec3) Result3 {
	return Features3(feature.Segment3(p0, p1), feature.Segment3(q0, q1))
}

// SegmentSegment2 computes the closest points between the segments [p0, p1]
// and [q0, q1] in 2D.
func SegmentSegment2(p0, p1, q0, q1 mgl64.Vec2) Result2 {
	return Features2(feature.Segment2(p0, p1), feature.Segment2(q0, q1))
}

// Distance3 returns the minimum distance between two features.
func Distance3(f1, f2 feature.Feature3) float64 {
	return Features3(f1, f2).Distance
}

// Distance2 returns the minimum distance between two features in 2D.
func Distance2(f1, f2 feature.Feature2) float64 {
	return Features2(f1, f2).Distance
}

// LineLineDistance3 returns the minimum distance between two infinite lines.
func LineLineDistance3(p0, u, q0, v mgl64.Vec3) float64 {
	return LineLine3(p0, u, q0, v).Distance
}

// SegmentSegmentDistance3 returns the minimum distance between two segments.
func SegmentSegmentDistance3(p0, p1, q0, q1 mgl64.Vec3) float64 {
	return SegmentSegment3(p0, p1, q0, q1).Distance
}
