package tidefall

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Rasterizer draws z-buffered triangles into an RGBA image. It is the
// deterministic CPU path behind both the live view and the still export:
// same scene, same camera, same pixels.
type Rasterizer struct {
	img  *image.RGBA
	zbuf []float32
	w, h int
}

// NewRasterizer allocates a rasterizer at the given pixel size.
func NewRasterizer(w, h int) *Rasterizer {
	r := &Rasterizer{}
	r.Resize(w, h)
	return r
}

// Resize reallocates the framebuffer and depth buffer.
func (r *Rasterizer) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r.w, r.h = w, h
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.zbuf = make([]float32, w*h)
}

// Image returns the framebuffer. Contents are valid until the next Resize.
func (r *Rasterizer) Image() *image.RGBA {
	return r.img
}

// Size returns the framebuffer dimensions in pixels.
func (r *Rasterizer) Size() (int, int) {
	return r.w, r.h
}

// ClearGradient fills the framebuffer with a vertical top→bottom gradient
// and resets the depth buffer.
func (r *Rasterizer) ClearGradient(top, bottom mgl32.Vec3) {
	for y := 0; y < r.h; y++ {
		t := float32(y) / float32(r.h)
		c := top.Add(bottom.Sub(top).Mul(t))
		cr, cg, cb := colorBytes(c)
		row := r.img.Pix[y*r.img.Stride : y*r.img.Stride+r.w*4]
		for x := 0; x < r.w*4; x += 4 {
			row[x] = cr
			row[x+1] = cg
			row[x+2] = cb
			row[x+3] = 255
		}
	}
	for i := range r.zbuf {
		r.zbuf[i] = math.MaxFloat32
	}
}

type screenVert struct {
	x, y, z, w float32
	uv         mgl32.Vec2
}

// DrawMesh rasterizes every triangle of the mesh under the given model
// transform. Surfaces are shaded double-sided (Lambert on the face normal's
// absolute incidence plus an ambient floor), which keeps thin lathe shells
// like the bottle correct from both sides.
func (r *Rasterizer) DrawMesh(m *Mesh, model mgl32.Mat4, mat Material, viewProj mgl32.Mat4, light Lighting) {
	mvp := viewProj.Mul4(model)

	for ti := 0; ti+2 < len(m.Indices); ti += 3 {
		i0, i1, i2 := m.Indices[ti], m.Indices[ti+1], m.Indices[ti+2]

		var sv [3]screenVert
		var world [3]mgl32.Vec3
		allBehind := true

		for k, idx := range [3]uint32{i0, i1, i2} {
			p := m.Positions[idx]
			wp := model.Mul4x1(p.Vec4(1))
			world[k] = wp.Vec3()

			clip := mvp.Mul4x1(p.Vec4(1))
			if clip.W() > 0 {
				allBehind = false
			}
			if clip.W() != 0 {
				inv := 1 / clip.W()
				sv[k].x = (clip.X()*inv + 1) * 0.5 * float32(r.w)
				sv[k].y = (1 - clip.Y()*inv) * 0.5 * float32(r.h)
				sv[k].z = clip.Z() * inv
			}
			sv[k].w = clip.W()
			if len(m.UVs) > int(idx) {
				sv[k].uv = m.UVs[idx]
			}
		}
		if allBehind {
			continue
		}

		intensity := float32(1)
		if !mat.Unlit {
			e1 := world[1].Sub(world[0])
			e2 := world[2].Sub(world[0])
			n := e1.Cross(e2)
			if l := n.Len(); l > 1e-12 {
				n = n.Mul(1 / l)
				d := n.Dot(light.Direction)
				if d < 0 {
					d = -d
				}
				intensity = light.Ambient + light.Intensity*d
			} else {
				intensity = light.Ambient
			}
			if intensity > 1 {
				intensity = 1
			}
		}

		r.fillTriangle(sv, mat, intensity)
	}
}

func (r *Rasterizer) fillTriangle(sv [3]screenVert, mat Material, intensity float32) {
	minX := int(math.Max(0, math.Floor(float64(min3(sv[0].x, sv[1].x, sv[2].x)))))
	maxX := int(math.Min(float64(r.w-1), math.Ceil(float64(max3(sv[0].x, sv[1].x, sv[2].x)))))
	minY := int(math.Max(0, math.Floor(float64(min3(sv[0].y, sv[1].y, sv[2].y)))))
	maxY := int(math.Min(float64(r.h-1), math.Ceil(float64(max3(sv[0].y, sv[1].y, sv[2].y)))))
	if minX > maxX || minY > maxY {
		return
	}

	d00x, d00y := sv[1].x-sv[0].x, sv[1].y-sv[0].y
	d01x, d01y := sv[2].x-sv[0].x, sv[2].y-sv[0].y
	denom := d00x*d01y - d01x*d00y
	if denom == 0 {
		return
	}
	invDenom := 1 / denom

	// Perspective-correct interpolation factors.
	var invW [3]float32
	for i := range invW {
		if sv[i].w != 0 {
			invW[i] = 1 / sv[i].w
		}
	}

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			dx, dy := px-sv[0].x, py-sv[0].y
			b1 := (dx*d01y - d01x*dy) * invDenom
			b2 := (d00x*dy - dx*d00y) * invDenom
			b0 := 1 - b1 - b2
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			z := b0*sv[0].z + b1*sv[1].z + b2*sv[2].z
			zi := y*r.w + x
			if z >= r.zbuf[zi] {
				continue
			}

			c := mat.Color
			if mat.Texture != nil {
				w0, w1, w2 := b0*invW[0], b1*invW[1], b2*invW[2]
				oneOverW := w0 + w1 + w2
				if oneOverW != 0 {
					u := (w0*sv[0].uv.X() + w1*sv[1].uv.X() + w2*sv[2].uv.X()) / oneOverW
					v := (w0*sv[0].uv.Y() + w1*sv[1].uv.Y() + w2*sv[2].uv.Y()) / oneOverW
					c = modulate(c, sampleTexture(mat.Texture, u, v))
				}
			}
			c = c.Mul(intensity)

			if mat.Alpha >= 1 {
				r.zbuf[zi] = z
				r.setPixel(x, y, c, 1)
			} else {
				// Transparent surfaces blend but keep depth open, so
				// later droplets still show through mist.
				r.setPixel(x, y, c, mat.Alpha)
			}
		}
	}
}

func (r *Rasterizer) setPixel(x, y int, c mgl32.Vec3, alpha float32) {
	off := y*r.img.Stride + x*4
	if alpha >= 1 {
		cr, cg, cb := colorBytes(c)
		r.img.Pix[off] = cr
		r.img.Pix[off+1] = cg
		r.img.Pix[off+2] = cb
		r.img.Pix[off+3] = 255
		return
	}
	blend := func(dst uint8, src float32) uint8 {
		v := float32(dst)*(1-alpha) + clamp01(src)*255*alpha
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	r.img.Pix[off] = blend(r.img.Pix[off], c.X())
	r.img.Pix[off+1] = blend(r.img.Pix[off+1], c.Y())
	r.img.Pix[off+2] = blend(r.img.Pix[off+2], c.Z())
	r.img.Pix[off+3] = 255
}

// sampleTexture does nearest-neighbor lookup with clamped coordinates.
func sampleTexture(tex *image.RGBA, u, v float32) mgl32.Vec3 {
	b := tex.Bounds()
	x := b.Min.X + int(clamp01(u)*float32(b.Dx()-1))
	y := b.Min.Y + int(clamp01(v)*float32(b.Dy()-1))
	off := tex.PixOffset(x, y)
	return mgl32.Vec3{
		float32(tex.Pix[off]) / 255,
		float32(tex.Pix[off+1]) / 255,
		float32(tex.Pix[off+2]) / 255,
	}
}

func modulate(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func colorBytes(c mgl32.Vec3) (uint8, uint8, uint8) {
	return uint8(clamp01(c.X()) * 255), uint8(clamp01(c.Y()) * 255), uint8(clamp01(c.Z()) * 255)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
