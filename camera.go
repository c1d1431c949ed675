package tidefall

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera. Aspect is read/write; callers that change
// it must call RecomputeProjection before the next render.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	FovY   float32 // radians
	Aspect float32
	Near   float32
	Far    float32

	proj mgl32.Mat4
}

// NewCamera returns a camera looking at the origin with the tableau's
// default framing.
func NewCamera(aspect float32) *Camera {
	c := &Camera{
		Position: mgl32.Vec3{0, 2.6, 7.5},
		Target:   mgl32.Vec3{0, 1.6, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     mgl32.DegToRad(38),
		Aspect:   aspect,
		Near:     0.1,
		Far:      100,
	}
	c.RecomputeProjection()
	return c
}

// RecomputeProjection rebuilds the projection matrix from the current
// field of view, aspect ratio and clip planes.
func (c *Camera) RecomputeProjection() {
	c.proj = mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// Projection returns the cached projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return c.proj
}

// ViewMatrix returns the world-to-camera matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.proj.Mul4(c.ViewMatrix())
}
