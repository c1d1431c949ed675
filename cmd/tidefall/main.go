package main

import (
	"flag"
	"time"

	"github.com/tidefall3d/tidefall"
)

func main() {
	seed := flag.Int("seed", 7, "seed for the procedural tableau")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	exportDir := flag.String("export-dir", ".", "directory that receives exported stills")
	headless := flag.Bool("headless", false, "render without a window and export one still")
	warmup := flag.Int("warmup", 120, "headless frames to simulate before exporting")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	builder := tidefall.NewAppBuilder().
		UseModule(
			tidefall.LoggingModule{Prefix: "tidefall", Debug: *debug},
			tidefall.AssetServerModule{},
			tidefall.SimulationModule{Seed: int32(*seed)},
			tidefall.RenderModule{Width: *width, Height: *height},
			tidefall.ExportModule{OutDir: *exportDir},
		)

	if *headless {
		// Fixed timestep keeps the still reproducible for a given seed.
		builder.UseModule(tidefall.TimeModule{FixedStep: time.Second / 60})
		app := builder.Build()

		for i := 0; i < *warmup; i++ {
			app.Step()
		}

		var req *tidefall.ExportRequest
		if !app.Resource(&req) {
			panic("export module not installed")
		}
		req.Requested = true
		app.Step()
		return
	}

	builder.UseModule(
		tidefall.TimeModule{},
		tidefall.ViewerModule{
			WindowWidth:  *width,
			WindowHeight: *height,
			WindowTitle:  "Tidefall",
		},
	)
	builder.Build().Run()
}
