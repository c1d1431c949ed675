package tidefall

import "github.com/go-gl/mathgl/mgl32"

// InstanceBuffer is the contiguous per-instance transform buffer consumed by
// the renderer's instanced draw path. Slot i always belongs to particle i;
// the buffer never reorders or resizes.
type InstanceBuffer struct {
	transforms []mgl32.Mat4
	dirty      bool
}

// NewInstanceBuffer allocates a buffer of n identity transforms.
func NewInstanceBuffer(n int) *InstanceBuffer {
	b := &InstanceBuffer{transforms: make([]mgl32.Mat4, n)}
	for i := range b.transforms {
		b.transforms[i] = mgl32.Ident4()
	}
	return b
}

// Len returns the slot count.
func (b *InstanceBuffer) Len() int {
	return len(b.transforms)
}

// SetTransform writes one slot. It does not touch the dirty flag; batch
// writers mark the buffer once after the whole update.
func (b *InstanceBuffer) SetTransform(slot int, m mgl32.Mat4) {
	b.transforms[slot] = m
}

// Transform reads one slot.
func (b *InstanceBuffer) Transform(slot int) mgl32.Mat4 {
	return b.transforms[slot]
}

// MarkDirty signals that the buffer changed since the renderer last read it.
func (b *InstanceBuffer) MarkDirty() {
	b.dirty = true
}

// ConsumeDirty returns whether the buffer changed and clears the flag.
func (b *InstanceBuffer) ConsumeDirty() bool {
	d := b.dirty
	b.dirty = false
	return d
}

// ComposeTransform builds T * Ry * Rx * Rz * S from a position, Euler
// rotation and uniform scale.
func ComposeTransform(pos, rot mgl32.Vec3, scale float32) mgl32.Mat4 {
	t := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	r := mgl32.HomogRotate3DY(rot.Y()).
		Mul4(mgl32.HomogRotate3DX(rot.X())).
		Mul4(mgl32.HomogRotate3DZ(rot.Z()))
	s := mgl32.Scale3D(scale, scale, scale)
	return t.Mul4(r).Mul4(s)
}

// WriteInstances evaluates every particle of the system and writes exactly
// one transform per slot, then marks the buffer dirty once for the whole
// batch. The buffer must be sized to the pool.
func WriteInstances(s *FlowSystem, b *InstanceBuffer) {
	n := s.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		pos, rot, scale := s.Transform(i)
		b.SetTransform(i, ComposeTransform(pos, rot, scale))
	}
	b.MarkDirty()
}
