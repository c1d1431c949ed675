package tidefall

import (
	"errors"
)

// ExportRequest is the one-shot flag other systems (the viewer's key
// handler, headless runs) raise to ask for a still.
type ExportRequest struct {
	Requested bool
}

// ExportModule wires the exporter to the live renderer and camera and
// services export requests at the end of each frame.
type ExportModule struct {
	OutDir string
}

func (mod ExportModule) Install(app *App) {
	var renderer *Renderer
	var cam *Camera
	var tableau *Tableau
	if !app.Resource(&renderer) || !app.Resource(&cam) || !app.Resource(&tableau) {
		panic("export: renderer, camera and tableau must be installed first")
	}
	log := app.Logger()

	exporter := NewExporter(renderer, cam, tableau.Scene, log)
	exporter.OutDir = mod.OutDir
	app.AddResources(exporter, &ExportRequest{})

	app.UseSystem(
		System(func(req *ExportRequest, exp *Exporter) {
			if !req.Requested {
				return
			}
			req.Requested = false
			if _, err := exp.Export(); err != nil {
				if errors.Is(err, ErrExportBusy) || errors.Is(err, ErrExportUnavailable) {
					log.Debugf("export skipped: %v", err)
					return
				}
				log.Errorf("export failed: %v", err)
			}
		}).InStage(PostRender),
	)
}
