package intersect

import (
	"testing"

	"github.com/akmonengine/euclid"
	"github.com/akmonengine/euclid/feature"
	"github.com/akmonengine/euclid/shape"
	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABB2(t *testing.T) {
	box := shape.NewAABB2(mgl64.Vec2{-1, -1}, mgl64.Vec2{1, 1})

	tests := []struct {
		name     string
		f        feature.Feature2
		expected []mgl64.Vec2
	}{
		{
			name:     "line through the center",
			f:        feature.Line2(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}),
			expected: []mgl64.Vec2{{-1, 0}, {1, 0}},
		},
		{
			name:     "reversed line reports the nearest first",
			f:        feature.Line2(mgl64.Vec2{0, 0}, mgl64.Vec2{-1, 0}),
			expected: []mgl64.Vec2{{1, 0}, {-1, 0}},
		},
		{
			name:     "ray from inside yields its exit",
			f:        feature.Ray2(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}),
			expected: []mgl64.Vec2{{1, 0}},
		},
		{
			name:     "ray from outside enters and exits",
			f:        feature.Ray2(mgl64.Vec2{-3, 0.5}, mgl64.Vec2{2, 0}),
			expected: []mgl64.Vec2{{-1, 0.5}, {1, 0.5}},
		},
		{
			name:     "ray pointing away",
			f:        feature.Ray2(mgl64.Vec2{-3, 0}, mgl64.Vec2{-1, 0}),
			expected: nil,
		},
		{
			name:     "segment entirely inside",
			f:        feature.Segment2(mgl64.Vec2{-0.5, 0}, mgl64.Vec2{0.5, 0}),
			expected: nil,
		},
		{
			name:     "segment entering the box",
			f:        feature.Segment2(mgl64.Vec2{-2, 0}, mgl64.Vec2{0, 0}),
			expected: []mgl64.Vec2{{-1, 0}},
		},
		{
			name:     "segment stopping short",
			f:        feature.Segment2(mgl64.Vec2{-4, 0}, mgl64.Vec2{-2, 0}),
			expected: nil,
		},
		{
			name:     "line missing the box",
			f:        feature.Line2(mgl64.Vec2{0, 2}, mgl64.Vec2{1, 0}),
			expected: nil,
		},
		{
			name:     "line running along a face",
			f:        feature.Line2(mgl64.Vec2{0, 1}, mgl64.Vec2{1, 0}),
			expected: []mgl64.Vec2{{-1, 1}, {1, 1}},
		},
		{
			name:     "ray along a face from a face point",
			f:        feature.Ray2(mgl64.Vec2{0, 1}, mgl64.Vec2{1, 0}),
			expected: []mgl64.Vec2{{0, 1}, {1, 1}},
		},
		{
			name:     "segment lying in a face",
			f:        feature.Segment2(mgl64.Vec2{-0.5, 1}, mgl64.Vec2{0.5, 1}),
			expected: []mgl64.Vec2{{-0.5, 1}, {0.5, 1}},
		},
		{
			name:     "segment leaving a face",
			f:        feature.Segment2(mgl64.Vec2{0.5, 1}, mgl64.Vec2{3, 1}),
			expected: []mgl64.Vec2{{0.5, 1}, {1, 1}},
		},
		{
			name:     "reverse ray ending on a face",
			f:        feature.Feature2{Start: mgl64.Vec2{-3, 1}, End: mgl64.Vec2{0, 1}, CanOccurBeforeStart: true},
			expected: []mgl64.Vec2{{-1, 1}, {0, 1}},
		},
		{
			name:     "segment on a face plane beside the box",
			f:        feature.Segment2(mgl64.Vec2{2, 1}, mgl64.Vec2{3, 1}),
			expected: nil,
		},
		{
			name:     "line grazing a corner",
			f:        feature.Line2(mgl64.Vec2{0, 2}, mgl64.Vec2{1, -1}),
			expected: []mgl64.Vec2{{1, 1}},
		},
		{
			name:     "diagonal line",
			f:        feature.Line2(mgl64.Vec2{-2, -2}, mgl64.Vec2{1, 1}),
			expected: []mgl64.Vec2{{-1, -1}, {1, 1}},
		},
		{
			name:     "zero-length segment on a face",
			f:        feature.Segment2(mgl64.Vec2{1, 0}, mgl64.Vec2{1, 0}),
			expected: []mgl64.Vec2{{1, 0}},
		},
		{
			name:     "zero-length segment inside",
			f:        feature.Segment2(mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0}),
			expected: nil,
		},
		{
			name:     "zero-length segment outside",
			f:        feature.Segment2(mgl64.Vec2{3, 0}, mgl64.Vec2{3, 0}),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := AABB2(tt.f, box)
			require.NoError(t, err)
			assertResult2(t, r, tt.expected...)
		})
	}
}

func TestAABB3(t *testing.T) {
	box := shape.NewAABB3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})

	tests := []struct {
		name     string
		f        feature.Feature3
		expected []mgl64.Vec3
	}{
		{
			name:     "ray along x",
			f:        feature.Ray3(mgl64.Vec3{-5, 0.5, 0.5}, mgl64.Vec3{1, 0, 0}),
			expected: []mgl64.Vec3{{0, 0.5, 0.5}, {1, 0.5, 0.5}},
		},
		{
			name:     "segment along the diagonal, backwards",
			f:        feature.Segment3(mgl64.Vec3{2, 2, 2}, mgl64.Vec3{-1, -1, -1}),
			expected: []mgl64.Vec3{{1, 1, 1}, {0, 0, 0}},
		},
		{
			name:     "line above the box",
			f:        feature.Line3(mgl64.Vec3{0.5, 0.5, 2}, mgl64.Vec3{1, 1, 0}),
			expected: nil,
		},
		{
			name:     "vertical line through the top face",
			f:        feature.Line3(mgl64.Vec3{0.25, 0.75, 10}, mgl64.Vec3{0, 0, -3}),
			expected: []mgl64.Vec3{{0.25, 0.75, 1}, {0.25, 0.75, 0}},
		},
		{
			name:     "line along an edge",
			f:        feature.Line3(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 1}),
			expected: []mgl64.Vec3{{0, 0, 0}, {0, 0, 1}},
		},
		{
			name:     "segment lying in the top face",
			f:        feature.Segment3(mgl64.Vec3{0.2, 0.2, 1}, mgl64.Vec3{0.8, 0.5, 1}),
			expected: []mgl64.Vec3{{0.2, 0.2, 1}, {0.8, 0.5, 1}},
		},
		{
			name:     "ray along an edge from its midpoint",
			f:        feature.Ray3(mgl64.Vec3{0, 0, 0.5}, mgl64.Vec3{0, 0, 1}),
			expected: []mgl64.Vec3{{0, 0, 0.5}, {0, 0, 1}},
		},
		{
			name:     "reverse ray ending inside",
			f:        feature.Feature3{Start: mgl64.Vec3{0.5, 0.5, 0.5}, End: mgl64.Vec3{0.5, 0.5, 0.75}, CanOccurBeforeStart: true},
			expected: []mgl64.Vec3{{0.5, 0.5, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := AABB3(tt.f, box)
			require.NoError(t, err)
			assertResult3(t, r, tt.expected...)
		})
	}
}

func TestAABBMalformed(t *testing.T) {
	_, err := AABB3(feature.Line3(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}), shape.AABB3{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{0, 1, 1}})
	assert.True(t, errors.Is(err, euclid.ErrMalformedShape), "got %v", err)

	r, err := AABB2(feature.Line2(mgl64.Vec2{}, mgl64.Vec2{1, 0}), shape.AABB2{Min: mgl64.Vec2{0, 1}, Max: mgl64.Vec2{1, 0}})
	assert.True(t, errors.Is(err, euclid.ErrMalformedShape), "got %v", err)
	assert.Equal(t, 0, r.Count)
	assert.True(t, isNaN2(r.First))

	// A flat box is valid.
	_, err = AABB2(feature.Line2(mgl64.Vec2{}, mgl64.Vec2{1, 0}), shape.AABB2{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 0}})
	assert.NoError(t, err)
}

func TestAABBDirectionMagnitudeIndependent(t *testing.T) {
	box := shape.NewAABB3(mgl64.Vec3{-1, -2, -3}, mgl64.Vec3{1, 2, 3})

	for _, scale := range []float64{1e-3, 1, 1e3} {
		r, err := LineAABB3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, scale, 0}, box)
		require.NoError(t, err)
		assertResult3(t, r, mgl64.Vec3{0, -2, 0}, mgl64.Vec3{0, 2, 0})
	}
}

func TestAABBWrappers(t *testing.T) {
	box3 := shape.NewAABB3(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})

	r3, err := RayAABB3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, box3)
	require.NoError(t, err)
	assertResult3(t, r3, mgl64.Vec3{0, 0, 1})

	r3, err = SegmentAABB3(mgl64.Vec3{0, 0, -3}, mgl64.Vec3{0, 0, 3}, box3)
	require.NoError(t, err)
	assertResult3(t, r3, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, 1})

	box2 := shape.NewAABB2(mgl64.Vec2{1, 1}, mgl64.Vec2{-1, -1})

	r2, err := LineAABB2(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, box2)
	require.NoError(t, err)
	assertResult2(t, r2, mgl64.Vec2{-1, 0}, mgl64.Vec2{1, 0})

	r2, err = RayAABB2(mgl64.Vec2{0, -5}, mgl64.Vec2{0, 1}, box2)
	require.NoError(t, err)
	assertResult2(t, r2, mgl64.Vec2{0, -1}, mgl64.Vec2{0, 1})

	r2, err = SegmentAABB2(mgl64.Vec2{0, 0}, mgl64.Vec2{0, 5}, box2)
	require.NoError(t, err)
	assertResult2(t, r2, mgl64.Vec2{0, 1})
}

// A segment long enough to cross the whole box behaves like its supporting line.
func TestAABBSegmentMatchesLine(t *testing.T) {
	box := shape.NewAABB3(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	start := mgl64.Vec3{-4, -3, -2}
	end := mgl64.Vec3{4, 3, 2}

	line, err := AABB3(feature.LineThrough3(start, end), box)
	require.NoError(t, err)
	segment, err := AABB3(feature.Segment3(start, end), box)
	require.NoError(t, err)

	require.Equal(t, line.Count, segment.Count)
	assert.Equal(t, 2, line.Count)
	assert.True(t, vec3Equal(line.First, segment.First, 1e-12))
	assert.True(t, vec3Equal(line.Second, segment.Second, 1e-12))
}
