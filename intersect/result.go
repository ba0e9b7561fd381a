// Package intersect computes intersections between linear features and convex shapes.
//
// Every solver follows the same pipeline:
//  1. Reduce the query to raw coordinates and the feature's boundary flags
//  2. Compute the parametric roots t along the feature with a closed form
//  3. Drop the roots the boundary flags reject
//  4. Report the surviving roots in parametric order, nearest to Start first
//
// A result carries a count in {0, 1, 2}. Unused points are always set to NaN,
// so the count is the authoritative answer and the points are only meaningful
// up to it.
//
// Malformed shapes and out-of-range parameters are returned as errors
// matching euclid.ErrMalformedShape and euclid.ErrParameterOutOfRange.
// Degenerate configurations (parallel or collinear features, zero-size
// cylinders and ellipsoids) are never errors: they resolve to a documented
// fallback through the ordinary result.
package intersect

import (
	"math"

	"github.com/akmonengine/euclid"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	nan2 = mgl64.Vec2{math.NaN(), math.NaN()}
	nan3 = mgl64.Vec3{math.NaN(), math.NaN(), math.NaN()}
)

// Result3 holds up to two intersection points in 3D.
type Result3 struct {
	Count  int
	First  mgl64.Vec3
	Second mgl64.Vec3
}

// Points returns the valid intersection points, nearest first.
func (r Result3) Points() []mgl64.Vec3 {
	switch r.Count {
	case 1:
		return []mgl64.Vec3{r.First}
	case 2:
		return []mgl64.Vec3{r.First, r.Second}
	}
	return nil
}

// Result2 holds up to two intersection points in 2D.
type Result2 struct {
	Count  int
	First  mgl64.Vec2
	Second mgl64.Vec2
}

// Points returns the valid intersection points, nearest first.
func (r Result2) Points() []mgl64.Vec2 {
	switch r.Count {
	case 1:
		return []mgl64.Vec2{r.First}
	case 2:
		return []mgl64.Vec2{r.First, r.Second}
	}
	return nil
}

func none3() Result3 {
	return Result3{Count: 0, First: nan3, Second: nan3}
}

func none2() Result2 {
	return Result2{Count: 0, First: nan2, Second: nan2}
}

// roots holds up to two parameters along a feature, in increasing order.
type roots struct {
	n      int
	t0, t1 float64
}

// keep returns the candidates accepted by the boundary flags, in the given order.
// At most two candidates are expected.
func keep(candidates []float64, canOccurBeforeStart, canOccurAfterEnd bool) roots {
	var r roots
	for _, t := range candidates {
		if !canOccurBeforeStart && t < -euclid.OneTenMillionth {
			continue
		}
		if !canOccurAfterEnd && t > 1+euclid.OneTenMillionth {
			continue
		}
		if r.n == 0 {
			r.t0 = t
		} else {
			r.t1 = t
		}
		r.n++
	}
	return r
}

func (r roots) result3(start, direction mgl64.Vec3) Result3 {
	res := none3()
	res.Count = r.n
	if r.n > 0 {
		res.First = start.Add(direction.Mul(r.t0))
	}
	if r.n > 1 {
		res.Second = start.Add(direction.Mul(r.t1))
	}
	return res
}

func (r roots) result2(start, direction mgl64.Vec2) Result2 {
	res := none2()
	res.Count = r.n
	if r.n > 0 {
		res.First = start.Add(direction.Mul(r.t0))
	}
	if r.n > 1 {
		res.Second = start.Add(direction.Mul(r.t1))
	}
	return res
}
