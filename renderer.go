package tidefall

import "image"

// RenderTarget is the surface the frame loop and the capture pipeline share.
// Pixel density scales the physical framebuffer relative to the logical
// viewport, mirroring a high-DPI display; capture forces it to 1.
type RenderTarget interface {
	Render(scene *Scene, cam *Camera)
	SetViewportSize(w, h int)
	ViewportSize() (int, int)
	SetPixelDensity(d float64)
	PixelDensity() float64
	Image() *image.RGBA
}

// Renderer is the CPU render target. One instance is shared by the live
// frame loop and the exporter; the two never run interleaved (single
// thread), so the in-place viewport mutations during capture are safe.
type Renderer struct {
	log     Logger
	width   int
	height  int
	density float64
	raster  *Rasterizer
}

// NewRenderer creates a renderer with a logical viewport of w×h at pixel
// density 1.
func NewRenderer(w, h int, log Logger) *Renderer {
	if log == nil {
		log = NewNopLogger()
	}
	r := &Renderer{log: log, density: 1}
	r.width, r.height = w, h
	r.raster = NewRasterizer(r.physical())
	return r
}

func (r *Renderer) physical() (int, int) {
	return int(float64(r.width) * r.density), int(float64(r.height) * r.density)
}

// SetViewportSize changes the logical viewport and reallocates the
// framebuffer.
func (r *Renderer) SetViewportSize(w, h int) {
	r.width, r.height = w, h
	r.raster.Resize(r.physical())
	r.log.Debugf("viewport %dx%d @ density %g", w, h, r.density)
}

// ViewportSize returns the logical viewport size.
func (r *Renderer) ViewportSize() (int, int) {
	return r.width, r.height
}

// SetPixelDensity changes the physical-per-logical pixel ratio.
func (r *Renderer) SetPixelDensity(d float64) {
	if d <= 0 {
		d = 1
	}
	r.density = d
	r.raster.Resize(r.physical())
}

// PixelDensity returns the current density.
func (r *Renderer) PixelDensity() float64 {
	return r.density
}

// Image returns the current framebuffer.
func (r *Renderer) Image() *image.RGBA {
	return r.raster.Image()
}

// Render draws one full frame: background, static objects, then the
// instanced particle batches. Each batch's dirty flag is consumed exactly
// once per pass — that is this renderer's "upload".
func (r *Renderer) Render(scene *Scene, cam *Camera) {
	if scene == nil || cam == nil {
		return
	}
	vp := cam.ViewProjection()
	light := scene.Lighting

	r.raster.ClearGradient(scene.SkyTop, scene.SkyBottom)

	// Opaque first so transparent surfaces blend over settled depth.
	for _, obj := range scene.Objects {
		if obj.Material.Alpha >= 1 {
			r.raster.DrawMesh(obj.Mesh, obj.Transform, obj.Material, vp, light)
		}
	}
	for _, obj := range scene.Objects {
		if obj.Material.Alpha < 1 {
			r.raster.DrawMesh(obj.Mesh, obj.Transform, obj.Material, vp, light)
		}
	}

	for _, batch := range scene.Batches {
		batch.Buffer.ConsumeDirty()
		for i := 0; i < batch.Buffer.Len(); i++ {
			r.raster.DrawMesh(batch.Mesh, batch.Buffer.Transform(i), batch.Material, vp, light)
		}
	}
}
