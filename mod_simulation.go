package tidefall

// SimulationModule builds the tableau from a seed and advances its two
// particle systems every frame.
type SimulationModule struct {
	Seed int32
}

func (mod SimulationModule) Install(app *App) {
	var assets *AssetServer
	if !app.Resource(&assets) {
		assets = NewAssetServer()
		app.AddResources(assets)
	}

	app.AddResources(BuildTableau(mod.Seed, assets, app.Logger()))

	app.UseSystem(
		System(advanceTableauSystem).
			InStage(Update),
	)
}

func advanceTableauSystem(t *Tableau, clock *Time) {
	t.Advance(clock.DtSeconds())
}
