package tidefall

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Export resolution: a tall portrait still.
const (
	ExportWidth  = 3200
	ExportHeight = 4000
)

var (
	// ErrExportBusy is returned while a previous export is still running.
	// The running export always completes and restores state.
	ErrExportBusy = errors.New("export already in progress")

	// ErrExportUnavailable is returned when the render target, camera or
	// scene does not exist yet. Expected during initial mount; callers
	// treat it as a no-op.
	ErrExportUnavailable = errors.New("export unavailable: renderer not ready")
)

// captureState snapshots everything the export mutates on the live view so
// it can be restored exactly. Created and discarded within one export.
type captureState struct {
	density float64
	width   int
	height  int
	aspect  float32
}

// Exporter renders the scene once at the fixed export resolution and writes
// a PNG, then puts the live view back exactly as it found it.
type Exporter struct {
	Target RenderTarget
	Camera *Camera
	Scene  *Scene

	// OutDir receives the exported files; empty means current directory.
	OutDir string

	// Width/Height override the export resolution when non-zero.
	Width  int
	Height int

	log  Logger
	busy bool

	// nowMillis stamps filenames; swapped out in tests.
	nowMillis func() int64
}

// NewExporter wires an exporter to the live render target and camera.
func NewExporter(target RenderTarget, cam *Camera, scene *Scene, log Logger) *Exporter {
	if log == nil {
		log = NewNopLogger()
	}
	return &Exporter{
		Target:    target,
		Camera:    cam,
		Scene:     scene,
		log:       log,
		nowMillis: func() int64 { return time.Now().UnixMilli() },
	}
}

// Busy reports whether an export is running.
func (e *Exporter) Busy() bool {
	return e.busy
}

// Export runs the full resize-render-restore sequence and returns the path
// of the written PNG. Requests while busy or before the renderer exists are
// rejected with sentinel errors and have no effect on the live view.
//
// The restore step is unconditional: once the viewport has been touched,
// every snapshotted value is put back even if encoding fails.
func (e *Exporter) Export() (string, error) {
	if e.Target == nil || e.Camera == nil || e.Scene == nil {
		return "", ErrExportUnavailable
	}
	if e.busy {
		return "", ErrExportBusy
	}
	e.busy = true
	defer func() { e.busy = false }()

	w, h := e.Width, e.Height
	if w <= 0 || h <= 0 {
		w, h = ExportWidth, ExportHeight
	}

	vw, vh := e.Target.ViewportSize()
	snap := captureState{
		density: e.Target.PixelDensity(),
		width:   vw,
		height:  vh,
		aspect:  e.Camera.Aspect,
	}

	// Size before projection, on the way in and on the way out, so the
	// live view never renders at a mismatched aspect.
	restore := func() {
		e.Target.SetPixelDensity(snap.density)
		e.Target.SetViewportSize(snap.width, snap.height)
		e.Camera.Aspect = snap.aspect
		e.Camera.RecomputeProjection()
		e.Target.Render(e.Scene, e.Camera)
	}
	defer restore()

	e.Target.SetPixelDensity(1)
	e.Target.SetViewportSize(w, h)
	e.Camera.Aspect = float32(w) / float32(h)
	e.Camera.RecomputeProjection()

	e.Target.Render(e.Scene, e.Camera)

	name := fmt.Sprintf("tidefall-%d.png", e.nowMillis())
	path := filepath.Join(e.OutDir, name)
	if err := writePNG(path, e.Target); err != nil {
		return "", fmt.Errorf("export %s: %w", name, err)
	}

	e.log.Infof("exported %s (%dx%d)", path, w, h)
	return path, nil
}

func writePNG(path string, target RenderTarget) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, target.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
