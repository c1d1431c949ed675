package tidefall

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DisplaceParams controls the two noise bands used for rock displacement.
// Base gives the broad undulation, ridge adds sharp high-frequency features.
type DisplaceParams struct {
	BaseFrequency  float32
	RidgeFrequency float32
	BaseAmplitude  float32
	RidgeAmplitude float32
}

// DefaultDisplaceParams returns the tuning used for the tableau rock.
func DefaultDisplaceParams() DisplaceParams {
	return DisplaceParams{
		BaseFrequency:  0.9,
		RidgeFrequency: 2.6,
		BaseAmplitude:  0.55,
		RidgeAmplitude: 0.3,
	}
}

// DisplaceRadial pushes every vertex outward along its own position vector
// by a noise-derived factor:
//
//	k = 1 + base*BaseAmplitude + |ridge|^3*RidgeAmplitude
//
// Topology is untouched: vertex count and indices are exactly what they were
// before the call. Normals are recomputed from the displaced triangles.
//
// Precondition: the mesh must be roughly star-shaped around the origin, or
// the displaced surface can self-intersect. A vertex at the origin stays at
// the origin (scaling a zero vector is a no-op), which is expected for
// lathe caps.
func DisplaceRadial(m *Mesh, field *NoiseField, p DisplaceParams) {
	for i, pos := range m.Positions {
		base := field.Sample(
			pos.X()*p.BaseFrequency,
			pos.Y()*p.BaseFrequency,
			pos.Z()*p.BaseFrequency,
		)
		ridge := field.Sample(
			pos.X()*p.RidgeFrequency,
			pos.Y()*p.RidgeFrequency,
			pos.Z()*p.RidgeFrequency,
		)
		r := float32(math.Abs(float64(ridge)))
		k := 1 + base*p.BaseAmplitude + r*r*r*p.RidgeAmplitude
		m.Positions[i] = pos.Mul(k)
	}
	m.RecomputeNormals()
}

// jaggedRockMesh lathes a smooth silhouette and roughens it with the field.
func jaggedRockMesh(field *NoiseField, radius, height float32, segments int) *Mesh {
	profile := rockProfile(radius, height)
	m := NewLatheMesh(profile, segments)
	DisplaceRadial(m, field, DefaultDisplaceParams())
	return m
}

// rockProfile is the 2D silhouette revolved into the rock: a squat dome that
// bulges near the base.
func rockProfile(radius, height float32) []mgl32.Vec2 {
	const steps = 14
	profile := make([]mgl32.Vec2, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		// Half-cosine dome with a bulge term low on the flank.
		r := radius * float32(math.Sin(t*math.Pi/2)*0.2+math.Cos(t*math.Pi/2)*0.8+0.2)
		if i == steps {
			r = 0
		}
		y := height * float32(t)
		profile = append(profile, mgl32.Vec2{r, y})
	}
	return profile
}
