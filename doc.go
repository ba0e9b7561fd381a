// Package euclid provides closed-form geometric queries between linear features
// (lines, rays, segments) and convex primitives in 2D and 3D.
//
// A linear feature is always described by two points and two boundary flags:
// whether a solution may lie before the first point, and whether it may lie
// after the second one. Lines, rays and segments are the three useful flag
// combinations, and every solver in the sub-packages computes its roots once
// and then filters them with these flags.
//
// Sub-packages:
//   - feature: the parametric feature representation
//   - shape: AABB, oriented box, cylinder, ellipsoid and plane parameters
//   - intersect: intersection engines (2D resolver, slabs, cylinder, ellipsoid, planes)
//   - closest: closest points and minimum distance between features
//   - classify: side and parallelism predicates
//   - interop: adapters for golang/geo and gonum vector types
//
// All queries are pure functions; they are safe for concurrent use and keep no state.
//
// References:
//   - Sunday: "Distance between Lines and Segments", geomalgorithms.com (2001)
//   - Williams et al.: "An Efficient and Robust Ray-Box Intersection Algorithm" (2005)
package euclid
