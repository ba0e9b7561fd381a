package intersect

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func vec3Equal(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

func vec2Equal(a, b mgl64.Vec2, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance
}

func isNaN3(v mgl64.Vec3) bool {
	return math.IsNaN(v[0]) && math.IsNaN(v[1]) && math.IsNaN(v[2])
}

func isNaN2(v mgl64.Vec2) bool {
	return math.IsNaN(v[0]) && math.IsNaN(v[1])
}

// assertResult3 checks the count, the expected points in order, and the NaN
// sentinel on every unused output.
func assertResult3(t *testing.T, r Result3, expected ...mgl64.Vec3) {
	t.Helper()
	if !assert.Equal(t, len(expected), r.Count, "count, result %+v", r) {
		return
	}
	switch r.Count {
	case 0:
		assert.True(t, isNaN3(r.First), "First should be NaN, got %v", r.First)
		assert.True(t, isNaN3(r.Second), "Second should be NaN, got %v", r.Second)
	case 1:
		assert.True(t, vec3Equal(r.First, expected[0], 1e-9), "First = %v, want %v", r.First, expected[0])
		assert.True(t, isNaN3(r.Second), "Second should be NaN, got %v", r.Second)
	case 2:
		assert.True(t, vec3Equal(r.First, expected[0], 1e-9), "First = %v, want %v", r.First, expected[0])
		assert.True(t, vec3Equal(r.Second, expected[1], 1e-9), "Second = %v, want %v", r.Second, expected[1])
	}
	assert.Len(t, r.Points(), r.Count)
}

func assertResult2(t *testing.T, r Result2, expected ...mgl64.Vec2) {
	t.Helper()
	if !assert.Equal(t, len(expected), r.Count, "count, result %+v", r) {
		return
	}
	switch r.Count {
	case 0:
		assert.True(t, isNaN2(r.First), "First should be NaN, got %v", r.First)
		assert.True(t, isNaN2(r.Second), "Second should be NaN, got %v", r.Second)
	case 1:
		assert.True(t, vec2Equal(r.First, expected[0], 1e-9), "First = %v, want %v", r.First, expected[0])
		assert.True(t, isNaN2(r.Second), "Second should be NaN, got %v", r.Second)
	case 2:
		assert.True(t, vec2Equal(r.First, expected[0], 1e-9), "First = %v, want %v", r.First, expected[0])
		assert.True(t, vec2Equal(r.Second, expected[1], 1e-9), "Second = %v, want %v", r.Second, expected[1])
	}
	assert.Len(t, r.Points(), r.Count)
}
