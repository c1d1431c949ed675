package tidefall

import (
	"testing"
)

func findObject(s *Scene, name string) *SceneObject {
	for _, obj := range s.Objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

func TestBuildTableau_Contents(t *testing.T) {
	tab := BuildTableau(7, NewAssetServer(), NewNopLogger())

	for _, name := range []string{"ground", "rock", "bottle", "pump-base", "pump-pipe", "moon"} {
		if findObject(tab.Scene, name) == nil {
			t.Errorf("Missing scene object %q", name)
		}
	}
	if len(tab.Scene.Batches) != 2 {
		t.Fatalf("Expected 2 instanced batches, got %d", len(tab.Scene.Batches))
	}
	if tab.Waterfall.Len() != WaterfallPoolSize {
		t.Errorf("Waterfall pool: got %d want %d", tab.Waterfall.Len(), WaterfallPoolSize)
	}
	if tab.Spray.Len() != SprayPoolSize {
		t.Errorf("Spray pool: got %d want %d", tab.Spray.Len(), SprayPoolSize)
	}
	if tab.WaterfallInstances.Len() != WaterfallPoolSize {
		t.Errorf("Waterfall instance buffer: got %d want %d", tab.WaterfallInstances.Len(), WaterfallPoolSize)
	}
}

func TestBuildTableau_BottleHasLabel(t *testing.T) {
	tab := BuildTableau(7, NewAssetServer(), NewNopLogger())
	bottle := findObject(tab.Scene, "bottle")
	if bottle == nil {
		t.Fatal("No bottle in scene")
	}
	if bottle.Material.Texture == nil {
		t.Error("Bottle should carry the painted label texture")
	}
	if bottle.Material.Alpha >= 1 {
		t.Error("Bottle glass should be translucent")
	}
}

func TestBuildTableau_Deterministic(t *testing.T) {
	a := BuildTableau(42, NewAssetServer(), NewNopLogger())
	b := BuildTableau(42, NewAssetServer(), NewNopLogger())

	rockA := findObject(a.Scene, "rock").Mesh
	rockB := findObject(b.Scene, "rock").Mesh
	if len(rockA.Positions) != len(rockB.Positions) {
		t.Fatal("Rock vertex counts differ between identical seeds")
	}
	for i := range rockA.Positions {
		if rockA.Positions[i] != rockB.Positions[i] {
			t.Fatalf("Rock vertex %d differs between identical seeds", i)
		}
	}

	for i := 0; i < a.Waterfall.Len(); i++ {
		if *a.Waterfall.Particle(i) != *b.Waterfall.Particle(i) {
			t.Fatalf("Waterfall particle %d differs between identical seeds", i)
		}
	}
}

func TestBuildTableau_SeedsDiffer(t *testing.T) {
	a := BuildTableau(1, NewAssetServer(), NewNopLogger())
	b := BuildTableau(2, NewAssetServer(), NewNopLogger())

	rockA := findObject(a.Scene, "rock").Mesh
	rockB := findObject(b.Scene, "rock").Mesh
	same := true
	for i := range rockA.Positions {
		if rockA.Positions[i] != rockB.Positions[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds should roughen the rock differently")
	}
}

func TestTableau_AdvanceRewritesInstances(t *testing.T) {
	tab := BuildTableau(7, NewAssetServer(), NewNopLogger())

	// BuildTableau leaves freshly written buffers behind.
	if !tab.WaterfallInstances.ConsumeDirty() {
		t.Fatal("Initial instance write should mark the buffer dirty")
	}
	if !tab.SprayInstances.ConsumeDirty() {
		t.Fatal("Initial spray write should mark the buffer dirty")
	}

	before := tab.WaterfallInstances.Transform(0)
	tab.Advance(0.016)

	if !tab.WaterfallInstances.ConsumeDirty() {
		t.Error("Advance should mark the waterfall buffer dirty once")
	}
	if tab.WaterfallInstances.ConsumeDirty() {
		t.Error("Dirty flag should be consumed after one read")
	}
	if tab.WaterfallInstances.Transform(0) == before {
		t.Error("Advancing should move the first droplet")
	}
}
