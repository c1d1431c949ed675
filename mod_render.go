package tidefall

// RenderModule installs the CPU renderer and the fixed tableau camera.
// The viewer blits the resulting framebuffer; headless runs read it
// straight from the exporter.
type RenderModule struct {
	Width  int
	Height int
}

func (mod RenderModule) Install(app *App) {
	w, h := mod.Width, mod.Height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 720
	}

	renderer := NewRenderer(w, h, app.Logger())
	cam := NewCamera(float32(w) / float32(h))
	app.AddResources(renderer, cam)

	app.UseSystem(
		System(renderSystem).
			InStage(Render),
	)
}

func renderSystem(renderer *Renderer, cam *Camera, tableau *Tableau) {
	renderer.Render(tableau.Scene, cam)
}
