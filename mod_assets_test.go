package tidefall

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestAssetServer_MeshRoundTrip(t *testing.T) {
	server := NewAssetServer()

	mesh := NewBoxMesh(1, 1, 1)
	id := server.AddMesh(mesh)

	if got := server.Mesh(id); got != mesh {
		t.Errorf("Expected the same mesh pointer back, got %v", got)
	}
	if got := server.Mesh("no-such-id"); got != nil {
		t.Errorf("Expected nil for unknown id, got %v", got)
	}
}

func TestAssetServer_IdsAreUnique(t *testing.T) {
	server := NewAssetServer()

	mesh := NewPlaneMesh(1, 1)
	seen := make(map[AssetId]bool)
	for i := 0; i < 100; i++ {
		id := server.AddMesh(mesh)
		if seen[id] {
			t.Fatalf("Duplicate asset id %s", id)
		}
		seen[id] = true
	}
}

func TestAssetServer_LoadTexture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")

	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	server := NewAssetServer()
	id, err := server.LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}

	tex := server.Texture(id)
	if tex == nil {
		t.Fatal("Expected a registered texture")
	}
	if tex.Bounds().Dx() != 3 || tex.Bounds().Dy() != 2 {
		t.Errorf("Expected 3x2 texture, got %v", tex.Bounds())
	}
}

func TestAssetServer_LoadTextureMissingFile(t *testing.T) {
	server := NewAssetServer()
	if _, err := server.LoadTexture(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
