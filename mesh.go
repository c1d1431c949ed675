package tidefall

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle mesh. Positions, Normals and UVs run parallel;
// Indices holds three entries per triangle.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// RecomputeNormals rebuilds per-vertex normals from the current triangle
// geometry. Face normals are accumulated unnormalized, so larger triangles
// weigh more.
func (m *Mesh) RecomputeNormals() {
	if len(m.Normals) != len(m.Positions) {
		m.Normals = make([]mgl32.Vec3, len(m.Positions))
	} else {
		for i := range m.Normals {
			m.Normals[i] = mgl32.Vec3{}
		}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		e1 := m.Positions[i1].Sub(m.Positions[i0])
		e2 := m.Positions[i2].Sub(m.Positions[i0])
		fn := e1.Cross(e2)
		m.Normals[i0] = m.Normals[i0].Add(fn)
		m.Normals[i1] = m.Normals[i1].Add(fn)
		m.Normals[i2] = m.Normals[i2].Add(fn)
	}

	for i, n := range m.Normals {
		if n.Len() > 1e-12 {
			m.Normals[i] = n.Normalize()
		} else {
			m.Normals[i] = mgl32.Vec3{0, 1, 0}
		}
	}
}

// NewLatheMesh revolves a 2D profile (x = radius, y = height) around the Y
// axis. The seam column is duplicated so UVs can span [0,1] cleanly.
func NewLatheMesh(profile []mgl32.Vec2, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	rows := len(profile)
	cols := segments + 1

	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, rows*cols),
		UVs:       make([]mgl32.Vec2, 0, rows*cols),
	}

	for ri, p := range profile {
		v := float32(ri) / float32(rows-1)
		for ci := 0; ci < cols; ci++ {
			u := float32(ci) / float32(segments)
			ang := u * 2 * math.Pi
			sin, cos := float32(math.Sin(float64(ang))), float32(math.Cos(float64(ang)))
			m.Positions = append(m.Positions, mgl32.Vec3{p.X() * cos, p.Y(), p.X() * sin})
			m.UVs = append(m.UVs, mgl32.Vec2{u, v})
		}
	}

	for ri := 0; ri < rows-1; ri++ {
		for ci := 0; ci < segments; ci++ {
			a := uint32(ri*cols + ci)
			b := a + 1
			c := uint32((ri+1)*cols + ci)
			d := c + 1
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}

	m.RecomputeNormals()
	return m
}

// NewSphereMesh builds a UV sphere centered at the origin.
func NewSphereMesh(radius float32, widthSegments, heightSegments int) *Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	m := &Mesh{}
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		theta := float64(v) * math.Pi
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := float64(u) * 2 * math.Pi

			x := -radius * float32(math.Cos(phi)*math.Sin(theta))
			y := radius * float32(math.Cos(theta))
			z := radius * float32(math.Sin(phi)*math.Sin(theta))

			m.Positions = append(m.Positions, mgl32.Vec3{x, y, z})
			m.UVs = append(m.UVs, mgl32.Vec2{u, 1 - v})
		}
	}

	cols := widthSegments + 1
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy*cols + ix)
			b := a + 1
			c := uint32((iy+1)*cols + ix)
			d := c + 1
			if iy != 0 {
				m.Indices = append(m.Indices, a, c, b)
			}
			if iy != heightSegments-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}

	m.RecomputeNormals()
	return m
}

// NewBoxMesh builds an axis-aligned box centered at the origin.
func NewBoxMesh(width, height, depth float32) *Mesh {
	hw, hh, hd := width/2, height/2, depth/2

	// 4 vertices per face so each face keeps a flat normal.
	faces := [6][4]mgl32.Vec3{
		{{hw, -hh, -hd}, {hw, -hh, hd}, {hw, hh, hd}, {hw, hh, -hd}},     // +x
		{{-hw, -hh, hd}, {-hw, -hh, -hd}, {-hw, hh, -hd}, {-hw, hh, hd}}, // -x
		{{-hw, hh, -hd}, {hw, hh, -hd}, {hw, hh, hd}, {-hw, hh, hd}},     // +y
		{{-hw, -hh, hd}, {hw, -hh, hd}, {hw, -hh, -hd}, {-hw, -hh, -hd}}, // -y
		{{-hw, -hh, hd}, {-hw, hh, hd}, {hw, hh, hd}, {hw, -hh, hd}},     // +z
		{{hw, -hh, -hd}, {hw, hh, -hd}, {-hw, hh, -hd}, {-hw, -hh, -hd}}, // -z
	}

	m := &Mesh{}
	for _, f := range faces {
		base := uint32(len(m.Positions))
		m.Positions = append(m.Positions, f[0], f[1], f[2], f[3])
		m.UVs = append(m.UVs,
			mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 1})
		m.Indices = append(m.Indices, base, base+2, base+1, base, base+3, base+2)
	}

	m.RecomputeNormals()
	return m
}

// NewCylinderMesh builds a capped cylinder along the Y axis, centered at the
// origin.
func NewCylinderMesh(radius, height float32, radialSegments int) *Mesh {
	if radialSegments < 3 {
		radialSegments = 3
	}
	hh := height / 2
	cols := radialSegments + 1

	m := &Mesh{}

	// Side wall.
	for _, y := range []float32{-hh, hh} {
		v := (y + hh) / height
		for ci := 0; ci < cols; ci++ {
			u := float32(ci) / float32(radialSegments)
			ang := float64(u) * 2 * math.Pi
			m.Positions = append(m.Positions, mgl32.Vec3{
				radius * float32(math.Cos(ang)), y, radius * float32(math.Sin(ang)),
			})
			m.UVs = append(m.UVs, mgl32.Vec2{u, v})
		}
	}
	for ci := 0; ci < radialSegments; ci++ {
		a := uint32(ci)
		b := a + 1
		c := uint32(cols + ci)
		d := c + 1
		m.Indices = append(m.Indices, a, b, c, b, d, c)
	}

	// Caps, fanned around a center vertex.
	for _, cap := range []struct {
		y       float32
		flipped bool
	}{{-hh, true}, {hh, false}} {
		center := uint32(len(m.Positions))
		m.Positions = append(m.Positions, mgl32.Vec3{0, cap.y, 0})
		m.UVs = append(m.UVs, mgl32.Vec2{0.5, 0.5})
		for ci := 0; ci < cols; ci++ {
			ang := float64(ci) / float64(radialSegments) * 2 * math.Pi
			cos, sin := float32(math.Cos(ang)), float32(math.Sin(ang))
			m.Positions = append(m.Positions, mgl32.Vec3{radius * cos, cap.y, radius * sin})
			m.UVs = append(m.UVs, mgl32.Vec2{0.5 + cos/2, 0.5 + sin/2})
		}
		for ci := 0; ci < radialSegments; ci++ {
			a := center + 1 + uint32(ci)
			b := a + 1
			if cap.flipped {
				m.Indices = append(m.Indices, center, a, b)
			} else {
				m.Indices = append(m.Indices, center, b, a)
			}
		}
	}

	m.RecomputeNormals()
	return m
}

// NewPlaneMesh builds a flat rectangle in the XZ plane, facing +Y.
func NewPlaneMesh(width, depth float32) *Mesh {
	hw, hd := width/2, depth/2
	m := &Mesh{
		Positions: []mgl32.Vec3{
			{-hw, 0, -hd}, {hw, 0, -hd}, {hw, 0, hd}, {-hw, 0, hd},
		},
		UVs: []mgl32.Vec2{
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
		},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
	m.RecomputeNormals()
	return m
}
