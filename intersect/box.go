package intersect

import (
	"github.com/akmonengine/euclid/feature"
	"github.com/akmonengine/euclid/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// OrientedBox intersects a feature with an oriented box.
//
// Features missing the world bounds of the box are rejected first. The
// others are expressed in the box frame, where the box is the AABB
// [-Size/2, Size/2], intersected there with the slab method and the
// intersections are brought back to world space. The frame change is rigid,
// so the parametric order along the feature is preserved.
//
// Returns an error matching euclid.ErrMalformedShape if a size component is
// not strictly positive or the rotation is not a unit quaternion.
func OrientedBox(f feature.Feature3, box shape.OrientedBox) (Result3, error) {
	if err := box.Validate(); err != nil {
		return none3(), err
	}

	if !reaches(f, box.Bounds()) {
		return none3(), nil
	}

	localStart := box.Pose.InverseTransform(f.Start)
	localEnd := box.Pose.InverseTransform(f.End)
	bounds := box.LocalBounds()

	r, face := slab(localStart[:], localEnd[:], bounds.Min[:], bounds.Max[:], f.CanOccurBeforeStart, f.CanOccurAfterEnd)
	if face {
		r = faceEndpoints(r, bounds.ContainsPoint(localStart), bounds.ContainsPoint(localEnd), f.CanOccurBeforeStart, f.CanOccurAfterEnd)
	}

	res := r.result3(localStart, localEnd.Sub(localStart))
	if res.Count > 0 {
		res.First = box.Pose.Transform(res.First)
	}
	if res.Count > 1 {
		res.Second = box.Pose.Transform(res.Second)
	}
	return res, nil
}

// LineOrientedBox intersects the line through point along direction with the box.
func LineOrientedBox(point, direction mgl64.Vec3, box shape.OrientedBox) (Result3, error) {
	return OrientedBox(feature.Line3(point, direction), box)
}

// RayOrientedBox intersects the ray from origin along direction with the box.
func RayOrientedBox(origin, direction mgl64.Vec3, box shape.OrientedBox) (Result3, error) {
	return OrientedBox(feature.Ray3(origin, direction), box)
}

// SegmentOrientedBox intersects the segment [start, end] with the box.
func SegmentOrientedBox(start, end mgl64.Vec3, box shape.OrientedBox) (Result3, error) {
	return OrientedBox(feature.Segment3(start, end), box)
}
