package tidefall

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Fixed pool sizes for the two tableau effects.
const (
	WaterfallPoolSize = 900
	SprayPoolSize     = 180
)

// Particle is one slot in a flow pool. Progress advances every tick and
// wraps modulo 1; the jitter constants are drawn once at creation and never
// change, so siblings follow decorrelated paths without any per-frame
// randomness.
type Particle struct {
	Progress float32
	Speed    float32

	// Jitter constants, all in [-1, 1] except Phase/Angle (radians).
	JitterX float32
	JitterZ float32
	Phase   float32
	Angle   float32
}

// FlowCurve maps a particle to its world transform. Implementations are pure
// functions of (particle state, elapsed time) — no inter-particle coupling,
// no mutation.
type FlowCurve interface {
	Evaluate(p *Particle, elapsed float32) (pos mgl32.Vec3, rot mgl32.Vec3, scale float32)
}

// FlowSystem owns a fixed pool of particles advancing along one curve.
// The pool is created once and never resized; slot i keeps its identity for
// the lifetime of the system.
type FlowSystem struct {
	Curve     FlowCurve
	particles []Particle
	elapsed   float32
}

// NewFlowSystem creates a pool of count particles with randomized progress,
// speed and jitter drawn from r.
func NewFlowSystem(curve FlowCurve, count int, r *Rand, minSpeed, maxSpeed float32) *FlowSystem {
	if count < 1 {
		count = 1
	}
	s := &FlowSystem{
		Curve:     curve,
		particles: make([]Particle, count),
	}
	for i := range s.particles {
		s.particles[i] = Particle{
			Progress: r.Float32(),
			Speed:    r.Range(minSpeed, maxSpeed),
			JitterX:  r.Range(-1, 1),
			JitterZ:  r.Range(-1, 1),
			Phase:    r.Range(0, 2*math.Pi),
			Angle:    r.Range(0, 2*math.Pi),
		}
	}
	return s
}

// Len returns the pool size.
func (s *FlowSystem) Len() int {
	return len(s.particles)
}

// Particle returns a pointer to slot i.
func (s *FlowSystem) Particle(i int) *Particle {
	return &s.particles[i]
}

// Elapsed returns accumulated simulation time in seconds.
func (s *FlowSystem) Elapsed() float32 {
	return s.elapsed
}

// Advance moves every particle forward by dt seconds. Progress always lands
// back in [0, 1); crossing 1 is the respawn at the curve start.
func (s *FlowSystem) Advance(dt float32) {
	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt
	for i := range s.particles {
		p := &s.particles[i]
		p.Progress = fract(p.Progress + dt*p.Speed)
	}
}

// Transform evaluates the curve for slot i at the current simulation time.
func (s *FlowSystem) Transform(i int) (pos mgl32.Vec3, rot mgl32.Vec3, scale float32) {
	return s.Curve.Evaluate(&s.particles[i], s.elapsed)
}

// fract wraps v into [0, 1), correct for negative inputs.
func fract(v float32) float32 {
	f := v - float32(math.Floor(float64(v)))
	if f >= 1 { // float rounding can land exactly on 1
		f = 0
	}
	return f
}

func sin32(v float32) float32 { return float32(math.Sin(float64(v))) }
func cos32(v float32) float32 { return float32(math.Cos(float64(v))) }

// WaterfallCurve pours particles from a spout down to a splash zone. The
// path is a start→end lerp with a sinusoidal vertical bulge and small
// phase-shifted sway on x and z. The end point is jittered per particle so
// the stream fans out instead of collapsing onto a line.
type WaterfallCurve struct {
	Start        mgl32.Vec3
	End          mgl32.Vec3
	CurveHeight  float32
	SwayAmp      float32
	SplashRadius float32
	MinScale     float32
	MaxScale     float32
}

// DefaultWaterfallCurve positions the stream between the bottle spout and
// the splash zone at the rock base.
func DefaultWaterfallCurve() *WaterfallCurve {
	return &WaterfallCurve{
		Start:        mgl32.Vec3{0.62, 2.55, 0},
		End:          mgl32.Vec3{1.7, 0.04, 0.2},
		CurveHeight:  0.35,
		SwayAmp:      0.045,
		SplashRadius: 0.38,
		MinScale:     0.05,
		MaxScale:     0.28,
	}
}

// Evaluate implements FlowCurve.
func (c *WaterfallCurve) Evaluate(p *Particle, elapsed float32) (mgl32.Vec3, mgl32.Vec3, float32) {
	t := fract(p.Progress)

	end := c.End.Add(mgl32.Vec3{p.JitterX * c.SplashRadius, 0, p.JitterZ * c.SplashRadius})
	pos := c.Start.Add(end.Sub(c.Start).Mul(t))
	pos = pos.Add(mgl32.Vec3{
		sin32(t*2*math.Pi+p.Phase) * c.SwayAmp,
		sin32(t*math.Pi) * c.CurveHeight,
		sin32(t*2*math.Pi+p.Phase*1.7+1.3) * c.SwayAmp,
	})

	// Droplets coalesce on the way down: small at the spout, larger near
	// the splash. 1-(1-t)^2 is monotonic in t.
	fall := 1 - t
	scale := c.MinScale + (c.MaxScale-c.MinScale)*(1-fall*fall)

	rot := mgl32.Vec3{
		sin32(t*4*math.Pi+p.Phase) * 0.6,
		t*2*math.Pi + p.Phase,
		cos32(t*4*math.Pi+p.Phase) * 0.6,
	}
	return pos, rot, scale
}

// SprayCurve puffs mist around the spout axis. Each particle holds a fixed
// orbit angle; its phase is derived from elapsed time and a per-particle
// offset, so the cloud breathes without any stored per-frame state.
type SprayCurve struct {
	Origin   mgl32.Vec3
	Radius   float32
	Rise     float32
	MinScale float32
	MaxScale float32
}

// DefaultSprayCurve hugs the waterfall's splash zone.
func DefaultSprayCurve() *SprayCurve {
	return &SprayCurve{
		Origin:   mgl32.Vec3{1.7, 0.08, 0.2},
		Radius:   0.55,
		Rise:     0.75,
		MinScale: 0.04,
		MaxScale: 0.22,
	}
}

// Evaluate implements FlowCurve.
func (c *SprayCurve) Evaluate(p *Particle, elapsed float32) (mgl32.Vec3, mgl32.Vec3, float32) {
	phase := fract(elapsed*p.Speed*0.25 + p.Phase/(2*math.Pi))

	radius := c.Radius * (0.2 + 0.8*sin32(phase*math.Pi))
	pos := c.Origin.Add(mgl32.Vec3{
		cos32(p.Angle) * radius,
		phase * c.Rise,
		sin32(p.Angle) * radius,
	})

	scale := c.MinScale + (c.MaxScale-c.MinScale)*phase

	rot := mgl32.Vec3{
		sin32(phase*2*math.Pi+p.Phase) * 0.4,
		p.Angle + phase*math.Pi,
		0,
	}
	return pos, rot, scale
}
