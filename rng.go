package tidefall

// Rand is a Mulberry32 pseudo-random generator. The same seed and call
// sequence always yield the same output sequence, which is what makes the
// whole tableau reproducible from one integer.
type Rand struct {
	state uint32
	seed  uint32
}

// NewRand creates a generator from a 32-bit seed. Zero and negative seeds
// are valid; they simply wrap into the uint32 state.
func NewRand(seed int32) *Rand {
	s := uint32(seed)
	return &Rand{state: s, seed: s}
}

// Reset rewinds the generator to its initial seed.
func (r *Rand) Reset() {
	r.state = r.seed
}

// Float returns the next value in [0, 1).
func (r *Rand) Float() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Float32 returns the next value in [0, 1) with 24 bits of precision,
// exactly representable in a float32.
func (r *Rand) Float32() float32 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float32((t^(t>>14))>>8) / (1 << 24)
}

// Range returns a value in [min, max).
func (r *Rand) Range(min, max float32) float32 {
	return min + float32(r.Float())*(max-min)
}

// Intn returns an integer in [0, n). n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.Float() * float64(n))
}
