// Package classify places points relative to features and planes, and
// compares the directions of features.
//
// Classifications are tri-state: a point within OneTenMillionth of the
// boundary is on it. The boolean predicates are derived from the tri-state.
package classify

import (
	"math"

	"github.com/akmonengine/euclid"
	"github.com/akmonengine/euclid/feature"
	"github.com/akmonengine/euclid/internal/logx"
	"github.com/akmonengine/euclid/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Side is the position of a 2D point relative to the supporting line of a feature.
type Side int

const (
	// OnLine is within OneTenMillionth of the supporting line.
	OnLine Side = iota
	// Left is the counter-clockwise side, looking from Start towards End.
	Left
	// Right is the clockwise side, looking from Start towards End.
	Right
)

func (s Side) String() string {
	switch s {
	case OnLine:
		return "on line"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Height is the position of a 3D point relative to a plane.
type Height int

const (
	// OnPlane is within OneTenMillionth of the plane.
	OnPlane Height = iota
	// Above is the side the normal points to.
	Above
	// Below is the side opposite to the normal.
	Below
)

func (h Height) String() string {
	switch h {
	case OnPlane:
		return "on plane"
	case Above:
		return "above"
	case Below:
		return "below"
	}
	return "unknown"
}

// Side2 classifies point against the supporting line of f, looking from Start
// towards End. Left is counter-clockwise. A zero-length feature has no side:
// every point is reported OnLine.
func Side2(point mgl64.Vec2, f feature.Feature2) Side {
	d := f.Direction()
	length := d.Len()
	if length < euclid.OneTrillionth {
		logx.Degenerate("side of a zero-length feature", "start", f.Start)
		return OnLine
	}

	offset := point.Sub(f.Start)
	distance := (d.X()*offset.Y() - d.Y()*offset.X()) / length
	switch {
	case distance > euclid.OneTenMillionth:
		return Left
	case distance < -euclid.OneTenMillionth:
		return Right
	}
	return OnLine
}

// IsLeft2 reports whether point is strictly on the left of f.
func IsLeft2(point mgl64.Vec2, f feature.Feature2) bool {
	return Side2(point, f) == Left
}

// IsRight2 reports whether point is strictly on the right of f.
func IsRight2(point mgl64.Vec2, f feature.Feature2) bool {
	return Side2(point, f) == Right
}

// Height3 classifies point against plane. Above is the side the normal points
// to. Every point is OnPlane for a degenerate plane.
func Height3(point mgl64.Vec3, plane shape.Plane) Height {
	if plane.IsDegenerate() {
		logx.Degenerate("height over a plane without normal", "point", plane.Point)
		return OnPlane
	}

	distance := plane.SignedDistance(point)
	switch {
	case distance > euclid.OneTenMillionth:
		return Above
	case distance < -euclid.OneTenMillionth:
		return Below
	}
	return OnPlane
}

// IsAbove3 reports whether point is strictly above plane.
func IsAbove3(point mgl64.Vec3, plane shape.Plane) bool {
	return Height3(point, plane) == Above
}

// IsBelow3 reports whether point is strictly below plane.
func IsBelow3(point mgl64.Vec3, plane shape.Plane) bool {
	return Height3(point, plane) == Below
}

func checkAngle(angle float64) error {
	if !(angle >= 0 && angle <= math.Pi/2) {
		return euclid.OutOfRangef("angle threshold %g is outside [0, π/2]", angle)
	}
	return nil
}

// AreParallel3 reports whether u and v are within angle radians of each
// other, in either orientation. A zero vector is parallel to nothing.
//
// Returns an error matching euclid.ErrParameterOutOfRange if angle is outside [0, π/2].
func AreParallel3(u, v mgl64.Vec3, angle float64) (bool, error) {
	if err := checkAngle(angle); err != nil {
		return false, err
	}

	lengths := u.Len() * v.Len()
	if lengths < euclid.OneTrillionth {
		logx.Degenerate("parallel test on a zero vector", "u", u, "v", v)
		return false, nil
	}
	return math.Abs(u.Dot(v)/lengths) >= math.Cos(angle), nil
}

// AreParallel2 reports whether u and v are within angle radians of each
// other, in either orientation. See AreParallel3.
func AreParallel2(u, v mgl64.Vec2, angle float64) (bool, error) {
	return AreParallel3(u.Vec3(0), v.Vec3(0), angle)
}

// AreCollinear2 reports whether the supporting lines of f1 and f2 are the same
// line: their directions are within angle radians and both endpoints of f2
// are within distance of the supporting line of f1. The boundary flags are
// ignored.
//
// Returns an error matching euclid.ErrParameterOutOfRange if angle is outside
// [0, π/2] or distance is negative.
func AreCollinear2(f1, f2 feature.Feature2, angle, distance float64) (bool, error) {
	if !(distance >= 0) {
		return false, euclid.OutOfRangef("distance threshold %g is negative", distance)
	}
	parallel, err := AreParallel2(f1.Direction(), f2.Direction(), angle)
	if err != nil || !parallel {
		return false, err
	}

	return lineDistance2(f2.Start, f1) <= distance && lineDistance2(f2.End, f1) <= distance, nil
}

// lineDistance2 returns the distance from point to the supporting line of f,
// which is assumed to have a length.
func lineDistance2(point mgl64.Vec2, f feature.Feature2) float64 {
	d := f.Direction()
	offset := point.Sub(f.Start)
	return math.Abs(d.X()*offset.Y()-d.Y()*offset.X()) / d.Len()
}
