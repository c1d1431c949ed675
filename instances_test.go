package tidefall

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInstanceBuffer_SlotStability(t *testing.T) {
	sys := NewFlowSystem(DefaultWaterfallCurve(), 32, NewRand(7), 0.1, 0.5)
	buf := NewInstanceBuffer(sys.Len())

	for frame := 0; frame < 50; frame++ {
		sys.Advance(1.0 / 60)
		WriteInstances(sys, buf)

		for i := 0; i < sys.Len(); i++ {
			pos, rot, scale := sys.Transform(i)
			want := ComposeTransform(pos, rot, scale)
			if buf.Transform(i) != want {
				t.Fatalf("frame %d slot %d does not match particle %d", frame, i, i)
			}
		}
	}
}

func TestInstanceBuffer_DirtyOncePerBatch(t *testing.T) {
	sys := NewFlowSystem(DefaultWaterfallCurve(), 8, NewRand(3), 0.1, 0.5)
	buf := NewInstanceBuffer(sys.Len())

	if buf.ConsumeDirty() {
		t.Fatal("fresh buffer reported dirty")
	}

	WriteInstances(sys, buf)
	if !buf.ConsumeDirty() {
		t.Fatal("batch write did not mark dirty")
	}
	if buf.ConsumeDirty() {
		t.Fatal("dirty flag not cleared by consume")
	}

	// Individual slot writes never signal on their own.
	buf.SetTransform(0, mgl32.Ident4())
	if buf.ConsumeDirty() {
		t.Fatal("SetTransform marked the buffer dirty")
	}
}

func TestInstanceBuffer_LengthMatchesPool(t *testing.T) {
	buf := NewInstanceBuffer(WaterfallPoolSize)
	if buf.Len() != WaterfallPoolSize {
		t.Fatalf("buffer length %d, want %d", buf.Len(), WaterfallPoolSize)
	}
}

func TestComposeTransform_TranslationAndScale(t *testing.T) {
	m := ComposeTransform(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, 2)

	p := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if p != (mgl32.Vec4{1, 2, 3, 1}) {
		t.Fatalf("origin mapped to %v, want (1,2,3,1)", p)
	}

	q := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if q != (mgl32.Vec4{3, 2, 3, 1}) {
		t.Fatalf("unit x mapped to %v, want (3,2,3,1)", q)
	}
}
