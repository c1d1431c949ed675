package tidefall

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCamera_ProjectionTracksAspect(t *testing.T) {
	cam := NewCamera(16.0 / 9.0)
	wide := cam.Projection()

	cam.Aspect = 1
	cam.RecomputeProjection()
	square := cam.Projection()

	if wide == square {
		t.Error("Projection should change with aspect")
	}
	if square != mgl32.Perspective(mgl32.DegToRad(38), 1, 0.1, 100) {
		t.Error("Projection should match the camera parameters exactly")
	}
}

func TestCamera_ProjectionCachedUntilRecompute(t *testing.T) {
	cam := NewCamera(1)
	before := cam.Projection()

	// Mutating the aspect alone must not touch the cached projection;
	// the capture pipeline relies on recompute being an explicit step.
	cam.Aspect = 2
	if cam.Projection() != before {
		t.Error("Projection should be cached until RecomputeProjection")
	}
}

func TestCamera_ViewProjectionCombines(t *testing.T) {
	cam := NewCamera(1)
	want := cam.Projection().Mul4(cam.ViewMatrix())
	if cam.ViewProjection() != want {
		t.Error("ViewProjection should be projection times view")
	}
}
