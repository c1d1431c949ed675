package tidefall

import (
	"image/color"
	"testing"
)

func TestPaintLabel_Size(t *testing.T) {
	img, err := PaintLabel("TIDEFALL", 256, 128)
	if err != nil {
		t.Fatalf("PaintLabel failed: %v", err)
	}
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 128 {
		t.Errorf("Expected 256x128, got %v", img.Bounds())
	}
}

func TestPaintLabel_InvalidSize(t *testing.T) {
	if _, err := PaintLabel("X", 0, 64); err == nil {
		t.Error("Expected an error for zero width")
	}
	if _, err := PaintLabel("X", 64, -1); err == nil {
		t.Error("Expected an error for negative height")
	}
}

func TestPaintLabel_DrawsInk(t *testing.T) {
	img, err := PaintLabel("TIDEFALL", 128, 64)
	if err != nil {
		t.Fatalf("PaintLabel failed: %v", err)
	}

	// The frame and glyphs use a dark ink; the ground does not.
	ink := color.RGBA{72, 52, 36, 255}
	found := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == ink {
				found++
			}
		}
	}
	if found == 0 {
		t.Error("Expected some dark ink pixels on the label")
	}
}

func TestPaintLabel_Opaque(t *testing.T) {
	img, err := PaintLabel("A", 32, 32)
	if err != nil {
		t.Fatalf("PaintLabel failed: %v", err)
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A != 255 {
				t.Fatalf("Transparent pixel at %d,%d", x, y)
			}
		}
	}
}
