package tidefall

import "math"

// grad3 holds the 12 cube-edge gradient vectors from Perlin's 2002 paper.
// They give an even directional distribution without axis bias.
var grad3 = [12][3]float32{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// NoiseField is deterministic 3D gradient noise. It carries no mutable
// state after construction, so concurrent sampling is safe.
type NoiseField struct {
	perm [512]int
}

// NewNoiseField builds a field whose permutation table is shuffled with the
// given generator, tying every sample back to the seed.
func NewNoiseField(r *Rand) *NoiseField {
	nf := &NoiseField{}

	var p [256]int
	for i := range p {
		p[i] = i
	}
	// Fisher-Yates
	for i := 255; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	// Doubled to avoid index wrapping.
	for i := 0; i < 512; i++ {
		nf.perm[i] = p[i&255]
	}
	return nf
}

// fade is the quintic interpolant 6t^5 - 15t^4 + 10t^3. It has zero first
// and second derivatives at 0 and 1, which keeps surface normals smooth.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}

func gradDot(hash int, x, y, z float32) float32 {
	g := grad3[hash%12]
	return g[0]*x + g[1]*y + g[2]*z
}

func floor32(v float32) (int, float32) {
	f := float32(math.Floor(float64(v)))
	return int(f), v - f
}

// Sample returns the noise value at (x, y, z), roughly in [-1, 1].
// Small input deltas yield small output deltas.
func (nf *NoiseField) Sample(x, y, z float32) float32 {
	xi, xf := floor32(x)
	yi, yf := floor32(y)
	zi, zf := floor32(z)

	xi &= 255
	yi &= 255
	zi &= 255

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	p := &nf.perm
	a := p[xi] + yi
	aa := p[a] + zi
	ab := p[a+1] + zi
	b := p[xi+1] + yi
	ba := p[b] + zi
	bb := p[b+1] + zi

	return lerp32(
		lerp32(
			lerp32(gradDot(p[aa], xf, yf, zf), gradDot(p[ba], xf-1, yf, zf), u),
			lerp32(gradDot(p[ab], xf, yf-1, zf), gradDot(p[bb], xf-1, yf-1, zf), u),
			v),
		lerp32(
			lerp32(gradDot(p[aa+1], xf, yf, zf-1), gradDot(p[ba+1], xf-1, yf, zf-1), u),
			lerp32(gradDot(p[ab+1], xf, yf-1, zf-1), gradDot(p[bb+1], xf-1, yf-1, zf-1), u),
			v),
		w)
}
