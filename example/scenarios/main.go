package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/akmonengine/euclid"
	"github.com/akmonengine/euclid/closest"
	"github.com/akmonengine/euclid/feature"
	"github.com/akmonengine/euclid/interop"
	"github.com/akmonengine/euclid/intersect"
	"github.com/akmonengine/euclid/shape"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/r2"
)

// Scenario is a single query with a printable outcome
type Scenario struct {
	Name string
	Run  func() (string, error)
}

func describe3(r intersect.Result3) string {
	return fmt.Sprintf("count=%d points=%v", r.Count, r.Points())
}

func describe2(r intersect.Result2) string {
	return fmt.Sprintf("count=%d points=%v", r.Count, r.Points())
}

// Scenarios returns the reference queries
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name: "line vs AABB",
			Run: func() (string, error) {
				r, err := intersect.LineAABB2(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, shape.NewAABB2(mgl64.Vec2{-1, -1}, mgl64.Vec2{1, 1}))
				return describe2(r), err
			},
		},
		{
			Name: "segment vs line",
			Run: func() (string, error) {
				p, ok := intersect.Features2(
					feature.Segment2(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 0}),
					feature.Line2(mgl64.Vec2{1, -1}, mgl64.Vec2{0, 1}),
				)
				return fmt.Sprintf("intersects=%t point=%v", ok, p), nil
			},
		},
		{
			Name: "parallel lines",
			Run: func() (string, error) {
				_, ok := intersect.LineLine2(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1}, mgl64.Vec2{1, 0})
				return fmt.Sprintf("intersects=%t", ok), nil
			},
		},
		{
			Name: "ray vs segment",
			Run: func() (string, error) {
				p, ok := intersect.RaySegment2(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{5, -1}, mgl64.Vec2{5, 1})
				return fmt.Sprintf("intersects=%t point=%v", ok, p), nil
			},
		},
		{
			Name: "line vs cylinder",
			Run: func() (string, error) {
				cylinder := shape.Cylinder{Length: 2, Radius: 1, Center: mgl64.Vec3{0, 0, 0}, Axis: mgl64.Vec3{0, 0, 1}}
				r, err := intersect.LineCylinder(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}, cylinder)
				return describe3(r), err
			},
		},
		{
			Name: "line vs unit sphere",
			Run: func() (string, error) {
				r, err := intersect.LineEllipsoid(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, shape.Sphere(1))
				return describe3(r), err
			},
		},
		{
			Name: "skew lines",
			Run: func() (string, error) {
				r := closest.LineLine3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{3, 5, 2}, mgl64.Vec3{0, 1, 0})
				return fmt.Sprintf("onFirst=%v onSecond=%v distance=%.6f", r.OnFirst, r.OnSecond, r.Distance), nil
			},
		},
		{
			Name: "segment vs box (golang/geo)",
			Run: func() (string, error) {
				points, err := interop.SegmentAABB3(
					r3.Vector{X: -3, Y: 0.5, Z: 0.5}, r3.Vector{X: 3, Y: 0.5, Z: 0.5},
					r3.Vector{X: 0, Y: 0, Z: 0}, r3.Vector{X: 1, Y: 1, Z: 1},
				)
				return fmt.Sprintf("points=%v", points), err
			},
		},
		{
			Name: "crossing segments (gonum)",
			Run: func() (string, error) {
				p, ok := interop.SegmentSegment2(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 2, Y: 2}, r2.Vec{X: 0, Y: 2}, r2.Vec{X: 2, Y: 0})
				return fmt.Sprintf("intersects=%t point=%v", ok, p), nil
			},
		},
		{
			Name: "malformed box",
			Run: func() (string, error) {
				r, err := intersect.AABB2(feature.Line2(mgl64.Vec2{}, mgl64.Vec2{1, 0}), shape.AABB2{Min: mgl64.Vec2{1, 1}, Max: mgl64.Vec2{0, 0}})
				return describe2(r), err
			},
		},
	}
}

// Outcome is the printable result of a scenario
type Outcome struct {
	Name   string
	Result string
	Err    error
}

func main() {
	euclid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	outcomes := euclid.Batch(4, Scenarios(), func(s Scenario) Outcome {
		result, err := s.Run()
		return Outcome{Name: s.Name, Result: result, Err: err}
	})

	for i, o := range outcomes {
		fmt.Printf("--- SCENARIO %d: %s ---\n", i+1, o.Name)
		if o.Err != nil {
			fmt.Printf("  error: %v\n", o.Err)
			continue
		}
		fmt.Printf("  %s\n", o.Result)
	}
}
