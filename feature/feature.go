// Package feature implements the parametric representation shared by lines,
// rays and segments.
//
// A feature is stored as two points and two boundary flags. The point at
// parameter t is Start + t*(End-Start):
//
//	t < 0       valid only if CanOccurBeforeStart
//	0 <= t <= 1 always valid
//	t > 1       valid only if CanOccurAfterEnd
//
// Solvers compute their t-roots once, whatever the kind of feature, and then
// filter them with Accepts. The length of End-Start never matters: every
// solver in this module is invariant to the direction magnitude.
package feature

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind names the four combinations of boundary flags.
type Kind int

const (
	// KindSegment is bounded on both sides.
	KindSegment Kind = iota
	// KindRay starts at Start and extends past End.
	KindRay
	// KindReverseRay ends at End and extends before Start.
	KindReverseRay
	// KindLine is unbounded on both sides.
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindRay:
		return "ray"
	case KindReverseRay:
		return "reverse ray"
	case KindLine:
		return "line"
	}
	return "unknown"
}

func kindOf(before, after bool) Kind {
	switch {
	case before && after:
		return KindLine
	case after:
		return KindRay
	case before:
		return KindReverseRay
	}
	return KindSegment
}

// Bounds is the valid parametric range of a feature. Unbounded sides are infinite.
type Bounds struct {
	Lower float64
	Upper float64
}

func boundsOf(before, after bool) Bounds {
	b := Bounds{Lower: 0, Upper: 1}
	if before {
		b.Lower = math.Inf(-1)
	}
	if after {
		b.Upper = math.Inf(1)
	}
	return b
}

// Accepts reports whether t lies in the range, widened by eps on bounded sides.
func (b Bounds) Accepts(t, eps float64) bool {
	return t >= b.Lower-eps && t <= b.Upper+eps
}

// Clamp returns t restricted to the range.
func (b Bounds) Clamp(t float64) float64 {
	if t < b.Lower {
		return b.Lower
	}
	if t > b.Upper {
		return b.Upper
	}
	return t
}

// Unbounded reports whether neither side is bounded.
func (b Bounds) Unbounded() bool {
	return math.IsInf(b.Lower, -1) && math.IsInf(b.Upper, 1)
}

// Feature3 is a line, ray or segment in 3D.
type Feature3 struct {
	Start mgl64.Vec3
	End   mgl64.Vec3

	CanOccurBeforeStart bool
	CanOccurAfterEnd    bool
}

// Line3 creates an infinite line through point along direction.
func Line3(point, direction mgl64.Vec3) Feature3 {
	return Feature3{Start: point, End: point.Add(direction), CanOccurBeforeStart: true, CanOccurAfterEnd: true}
}

// LineThrough3 creates an infinite line through a and b.
func LineThrough3(a, b mgl64.Vec3) Feature3 {
	return Feature3{Start: a, End: b, CanOccurBeforeStart: true, CanOccurAfterEnd: true}
}

// Ray3 creates a ray starting at origin along direction.
func Ray3(origin, direction mgl64.Vec3) Feature3 {
	return Feature3{Start: origin, End: origin.Add(direction), CanOccurAfterEnd: true}
}

// Segment3 creates the bounded segment [a, b].
func Segment3(a, b mgl64.Vec3) Feature3 {
	return Feature3{Start: a, End: b}
}

// Direction returns End - Start.
func (f Feature3) Direction() mgl64.Vec3 {
	return f.End.Sub(f.Start)
}

// PointAt returns Start + t*(End-Start).
func (f Feature3) PointAt(t float64) mgl64.Vec3 {
	return f.Start.Add(f.End.Sub(f.Start).Mul(t))
}

// Kind returns the kind of feature described by the boundary flags.
func (f Feature3) Kind() Kind {
	return kindOf(f.CanOccurBeforeStart, f.CanOccurAfterEnd)
}

// IsLine reports whether the feature is unbounded on both sides.
func (f Feature3) IsLine() bool {
	return f.Bounds().Unbounded()
}

// Bounds returns the valid parametric range.
func (f Feature3) Bounds() Bounds {
	return boundsOf(f.CanOccurBeforeStart, f.CanOccurAfterEnd)
}

// Accepts reports whether the parameter t is on the feature, with the bounded
// sides widened by eps.
func (f Feature3) Accepts(t, eps float64) bool {
	return f.Bounds().Accepts(t, eps)
}

// Clamp restricts t to the valid range of the feature.
func (f Feature3) Clamp(t float64) float64 {
	return f.Bounds().Clamp(t)
}

// Parameter returns the parameter of the orthogonal projection of p on the
// supporting line. It returns 0 when the feature has no length.
func (f Feature3) Parameter(p mgl64.Vec3) float64 {
	d := f.Direction()
	lengthSquared := d.LenSqr()
	if lengthSquared == 0 {
		return 0
	}
	return p.Sub(f.Start).Dot(d) / lengthSquared
}

// Feature2 is a line, ray or segment in 2D.
type Feature2 struct {
	Start mgl64.Vec2
	End   mgl64.Vec2

	CanOccurBeforeStart bool
	CanOccurAfterEnd    bool
}

// Line2 creates an infinite line through point along direction.
func Line2(point, direction mgl64.Vec2) Feature2 {
	return Feature2{Start: point, End: point.Add(direction), CanOccurBeforeStart: true, CanOccurAfterEnd: true}
}

// LineThrough2 creates an infinite line through a and b.
func LineThrough2(a, b mgl64.Vec2) Feature2 {
	return Feature2{Start: a, End: b, CanOccurBeforeStart: true, CanOccurAfterEnd: true}
}

// Ray2 creates a ray starting at origin along direction.
func Ray2(origin, direction mgl64.Vec2) Feature2 {
	return Feature2{Start: origin, End: origin.Add(direction), CanOccurAfterEnd: true}
}

// Segment2 creates the bounded segment [a, b].
func Segment2(a, b mgl64.Vec2) Feature2 {
	return Feature2{Start: a, End: b}
}

// Direction returns End - Start.
func (f Feature2) Direction() mgl64.Vec2 {
	return f.End.Sub(f.Start)
}

// PointAt returns Start + t*(End-Start).
func (f Feature2) PointAt(t float64) mgl64.Vec2 {
	return f.Start.Add(f.End.Sub(f.Start).Mul(t))
}

// Kind returns the kind of feature described by the boundary flags.
func (f Feature2) Kind() Kind {
	return kindOf(f.CanOccurBeforeStart, f.CanOccurAfterEnd)
}

// IsLine reports whether the feature is unbounded on both sides.
func (f Feature2) IsLine() bool {
	return f.Bounds().Unbounded()
}

// Bounds returns the valid parametric range.
func (f Feature2) Bounds() Bounds {
	return boundsOf(f.CanOccurBeforeStart, f.CanOccurAfterEnd)
}

// Accepts reports whether the parameter t is on the feature, with the bounded
// sides widened by eps.
func (f Feature2) Accepts(t, eps float64) bool {
	return f.Bounds().Accepts(t, eps)
}

// Clamp restricts t to the valid range of the feature.
func (f Feature2) Clamp(t float64) float64 {
	return f.Bounds().Clamp(t)
}

// Parameter returns the parameter of the orthogonal projection of p on the
// supporting line. It returns 0 when the feature has no length.
func (f Feature2) Parameter(p mgl64.Vec2) float64 {
	d := f.Direction()
	lengthSquared := d.LenSqr()
	if lengthSquared == 0 {
		return 0
	}
	return p.Sub(f.Start).Dot(d) / lengthSquared
}

// To3 lifts the feature to the z = 0 plane.
func (f Feature2) To3() Feature3 {
	return Feature3{
		Start:               f.Start.Vec3(0),
		End:                 f.End.Vec3(0),
		CanOccurBeforeStart: f.CanOccurBeforeStart,
		CanOccurAfterEnd:    f.CanOccurAfterEnd,
	}
}
