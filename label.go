package tidefall

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelFontEnv names an optional OpenType font file for label text.
// Without it the built-in bitmap face is used.
const labelFontEnv = "TIDEFALL_LABEL_FONT"

// PaintLabel draws a product label texture: parchment ground, frame and
// centered text.
func PaintLabel(text string, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("paint label: invalid size %dx%d", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	// Parchment ground, slightly darker towards the bottom.
	for y := 0; y < h; y++ {
		shade := uint8(236 - 16*y/h)
		row := color.RGBA{shade, uint8(int(shade) - 10), uint8(int(shade) - 32), 255}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, row)
		}
	}

	frame := color.RGBA{72, 52, 36, 255}
	inset := w / 24
	if inset < 2 {
		inset = 2
	}
	drawFrame(img, inset, frame)
	drawFrame(img, inset+2, frame)

	face, err := labelFace(float64(h) / 3)
	if err != nil {
		return nil, err
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(frame),
		Face: face,
	}
	bounds, _ := d.BoundString(text)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()
	d.Dot = fixed.P((w-textW)/2, (h+textH)/2)
	d.DrawString(text)

	return img, nil
}

func drawFrame(img *image.RGBA, inset int, c color.RGBA) {
	b := img.Bounds()
	x0, y0 := b.Min.X+inset, b.Min.Y+inset
	x1, y1 := b.Max.X-inset-1, b.Max.Y-inset-1
	if x1 <= x0 || y1 <= y0 {
		return
	}
	draw.Draw(img, image.Rect(x0, y0, x1+1, y0+1), image.NewUniform(c), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(x0, y1, x1+1, y1+1), image.NewUniform(c), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(x0, y0, x0+1, y1+1), image.NewUniform(c), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(x1, y0, x1+1, y1+1), image.NewUniform(c), image.Point{}, draw.Src)
}

func labelFace(size float64) (font.Face, error) {
	path := os.Getenv(labelFontEnv)
	if path == "" {
		return basicfont.Face7x13, nil
	}

	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	return face, nil
}
