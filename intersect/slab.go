package intersect

import (
	"math"

	"github.com/akmonengine/euclid"
	"github.com/akmonengine/euclid/feature"
	"github.com/akmonengine/euclid/internal/logx"
	"github.com/akmonengine/euclid/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// slabInterval is the parametric interval along which the supporting line of
// a feature lies inside a box.
type slabInterval struct {
	tMin, tMax   float64
	colinearAxes int
	// onFace is set when the line runs on a face along a colinear axis.
	onFace bool
}

// clip intersects the supporting line of start + t*(end-start) with the box
// [lo, hi] using the slab method. It works on any number of axes, so the 2D
// and 3D queries share it. It reports false when the line misses the box.
//
// For every axis the line enters the slab lo <= x <= hi at one parameter
// and leaves it at another; the box is the intersection of all slabs, hence
// the line crosses it on [tMin, tMax] where tMin is the latest entry and
// tMax the earliest exit.
//
// An axis along which the feature does not move (|d| < OneTrillionth) is
// colinear: its slab contains either every parameter or none, depending
// only on the start point. Deltas within OneTrillionth of a face are snapped
// onto it, so a feature running on a face is kept.
func clip(start, end, lo, hi []float64) (slabInterval, bool) {
	in := slabInterval{tMin: math.Inf(-1), tMax: math.Inf(1)}

	for i := range start {
		d := end[i] - start[i]
		minDelta := lo[i] - start[i]
		maxDelta := hi[i] - start[i]

		if math.Abs(d) < euclid.OneTrillionth {
			in.colinearAxes++
			if math.Abs(minDelta) < euclid.OneTrillionth {
				minDelta = 0
			}
			if math.Abs(maxDelta) < euclid.OneTrillionth {
				maxDelta = 0
			}
			if minDelta > 0 || maxDelta < 0 {
				return in, false
			}
			in.onFace = in.onFace || minDelta == 0 || maxDelta == 0
			continue
		}

		invD := 1.0 / d
		t0 := minDelta * invD
		t1 := maxDelta * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		in.tMin = max(in.tMin, t0)
		in.tMax = min(in.tMax, t1)

		if in.tMin > in.tMax+euclid.OneTrillionth*max(1, math.Abs(in.tMin), math.Abs(in.tMax)) {
			return in, false
		}
	}

	if in.tMin > in.tMax {
		// Overlap within tolerance only: the line grazes an edge or a corner.
		in.tMin, in.tMax = in.tMax, in.tMin
	}
	return in, true
}

// slab returns the boundary crossings of the feature with the box [lo, hi]:
// the ends of the clipped interval that survive the boundary flags. The
// second result reports a feature lying on a face, for which the crossings
// miss the endpoints resting on that face; see faceEndpoints.
func slab(start, end, lo, hi []float64, canOccurBeforeStart, canOccurAfterEnd bool) (roots, bool) {
	in, ok := clip(start, end, lo, hi)
	if !ok {
		return roots{}, false
	}

	if in.colinearAxes == len(start) {
		// No direction at all, the feature is its start point. It intersects
		// the box only when it lies on a face.
		if !in.onFace {
			return roots{}, false
		}
		logx.Degenerate("zero-length feature on a box face, reporting its start")
		return roots{n: 1, t0: 0}, false
	}

	interval := [2]float64{in.tMin, in.tMax}
	r := keep(interval[:], canOccurBeforeStart, canOccurAfterEnd)

	if r.n == 2 && r.t1-r.t0 < euclid.OneTrillionth {
		r.n = 1
	}
	return r, in.onFace
}

// faceEndpoints completes the crossings of a feature lying on a box face. Every
// point of such a feature inside the box is on the boundary, so a bounded
// endpoint inside the box is an intersection even though the slab interval
// does not end there. startInside and endInside tell whether Start and End
// are in the box.
func faceEndpoints(r roots, startInside, endInside, canOccurBeforeStart, canOccurAfterEnd bool) roots {
	candidates := make([]float64, 0, 4)
	if r.n > 0 {
		candidates = append(candidates, r.t0)
	}
	if r.n > 1 {
		candidates = append(candidates, r.t1)
	}
	if !canOccurBeforeStart && startInside {
		candidates = append(candidates, 0)
	}
	if !canOccurAfterEnd && endInside {
		candidates = append(candidates, 1)
	}
	if len(candidates) > r.n {
		logx.Degenerate("feature lying on a box face, promoting its endpoints")
	}
	return mergeRoots(candidates)
}

// reaches reports whether some accepted parameter of f lies within box.
func reaches(f feature.Feature3, box shape.AABB3) bool {
	in, ok := clip(f.Start[:], f.End[:], box.Min[:], box.Max[:])
	if !ok {
		return false
	}
	b := f.Bounds()
	return in.tMax >= b.Lower-euclid.OneTenMillionth && in.tMin <= b.Upper+euclid.OneTenMillionth
}

// AABB3 intersects a feature with an axis-aligned box in 3D.
//
// A segment or ray whose start is inside the box yields only its exit point;
// a segment entirely inside the box yields no intersection. A feature lying
// on a face is on the boundary wherever it is in the box, so its endpoints
// in the box are reported along with the crossings, nearest and farthest
// kept.
//
// Returns an error matching euclid.ErrMalformedShape if box.Min exceeds
// box.Max on any axis.
func AABB3(f feature.Feature3, box shape.AABB3) (Result3, error) {
	if err := box.Validate(); err != nil {
		return none3(), err
	}
	r, face := slab(f.Start[:], f.End[:], box.Min[:], box.Max[:], f.CanOccurBeforeStart, f.CanOccurAfterEnd)
	if face {
		r = faceEndpoints(r, box.ContainsPoint(f.Start), box.ContainsPoint(f.End), f.CanOccurBeforeStart, f.CanOccurAfterEnd)
	}
	return r.result3(f.Start, f.Direction()), nil
}

// AABB2 intersects a feature with an axis-aligned box in 2D.
// See AABB3 for the semantics.
func AABB2(f feature.Feature2, box shape.AABB2) (Result2, error) {
	if err := box.Validate(); err != nil {
		return none2(), err
	}
	r, face := slab(f.Start[:], f.End[:], box.Min[:], box.Max[:], f.CanOccurBeforeStart, f.CanOccurAfterEnd)
	if face {
		r = faceEndpoints(r, box.ContainsPoint(f.Start), box.ContainsPoint(f.End), f.CanOccurBeforeStart, f.CanOccurAfterEnd)
	}
	return r.result2(f.Start, f.Direction()), nil
}

// LineAABB3 intersects the line through point along direction with the box.
func LineAABB3(point, direction mgl64.Vec3, box shape.AABB3) (Result3, error) {
	return AABB3(feature.Line3(point, direction), box)
}

// RayAABB3 intersects the ray from origin along direction with the box.
func RayAABB3(origin, direction mgl64.Vec3, box shape.AABB3) (Result3, error) {
	return AABB3(feature.Ray3(origin, direction), box)
}

// SegmentAABB3 intersects the segment [start, end] with the box.
func SegmentAABB3(start, end mgl64.Vec3, box shape.AABB3) (Result3, error) {
	return AABB3(feature.Segment3(start, end), box)
}

// LineAABB2 intersects the line through point along direction with the box.
func LineAABB2(point, direction mgl64.Vec2, box shape.AABB2) (Result2, error) {
	return AABB2(feature.Line2(point, direction), box)
}

// RayAABB2 intersects the ray from origin along direction with the box.
func RayAABB2(origin, direction mgl64.Vec2, box shape.AABB2) (Result2, error) {
	return AABB2(feature.Ray2(origin, direction), box)
}

// SegmentAABB2 intersects the segment [start, end] with the box.
func SegmentAABB2(start, end mgl64.Vec2, box shape.AABB2) (Result2, error) {
	return AABB2(feature.Segment2(start, end), box)
}
