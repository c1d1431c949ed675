package tidefall

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Material describes how a surface is shaded. A nil Texture means flat
// color; Alpha below 1 makes the surface blend over what is already drawn.
type Material struct {
	Color   mgl32.Vec3
	Alpha   float32
	Texture *image.RGBA
	Unlit   bool
}

// SceneObject is one static mesh placed in the world.
type SceneObject struct {
	Name      string
	Mesh      *Mesh
	Transform mgl32.Mat4
	Material  Material
}

// InstancedBatch renders one mesh many times with per-instance transforms
// from a shared buffer.
type InstancedBatch struct {
	Name     string
	Mesh     *Mesh
	Buffer   *InstanceBuffer
	Material Material
}

// Lighting is one directional light plus an ambient floor — all the tableau
// needs for its moonlit look.
type Lighting struct {
	Direction mgl32.Vec3 // toward the light
	Intensity float32
	Ambient   float32
}

// Scene holds everything a render pass consumes.
type Scene struct {
	Objects  []*SceneObject
	Batches  []*InstancedBatch
	Lighting Lighting

	// Vertical background gradient.
	SkyTop    mgl32.Vec3
	SkyBottom mgl32.Vec3
}

// Tableau bundles the assembled scene with the simulations that animate it.
type Tableau struct {
	Scene *Scene

	Waterfall          *FlowSystem
	Spray              *FlowSystem
	WaterfallInstances *InstanceBuffer
	SprayInstances     *InstanceBuffer
}

// Advance steps both particle systems and rewrites their instance buffers.
func (t *Tableau) Advance(dt float32) {
	t.Waterfall.Advance(dt)
	t.Spray.Advance(dt)
	WriteInstances(t.Waterfall, t.WaterfallInstances)
	WriteInstances(t.Spray, t.SprayInstances)
}

// BuildTableau assembles the full scene from a seed: jagged rock, bottle
// with label, moon, pump parts, ground, and the two particle effects.
// Everything derives from the one seed, so the same seed always yields the
// same tableau.
func BuildTableau(seed int32, assets *AssetServer, log Logger) *Tableau {
	r := NewRand(seed)
	field := NewNoiseField(r)

	scene := &Scene{
		Lighting: Lighting{
			Direction: mgl32.Vec3{-0.35, 0.8, 0.45}.Normalize(),
			Intensity: 0.85,
			Ambient:   0.3,
		},
		SkyTop:    mgl32.Vec3{0.02, 0.03, 0.08},
		SkyBottom: mgl32.Vec3{0.09, 0.10, 0.18},
	}

	// Ground.
	groundID := assets.AddMesh(NewPlaneMesh(30, 30))
	scene.Objects = append(scene.Objects, &SceneObject{
		Name:      "ground",
		Mesh:      assets.Mesh(groundID),
		Transform: mgl32.Ident4(),
		Material:  Material{Color: mgl32.Vec3{0.07, 0.08, 0.11}, Alpha: 1},
	})

	// Rock: smooth lathed silhouette roughened by the noise field.
	rockID := assets.AddMesh(jaggedRockMesh(field, 2.0, 1.3, 40))
	scene.Objects = append(scene.Objects, &SceneObject{
		Name:      "rock",
		Mesh:      assets.Mesh(rockID),
		Transform: mgl32.Ident4(),
		Material:  Material{Color: mgl32.Vec3{0.32, 0.30, 0.33}, Alpha: 1},
	})

	// Bottle on top of the rock.
	bottleID := assets.AddMesh(NewLatheMesh(bottleProfile(), 32))
	bottleMat := Material{Color: mgl32.Vec3{0.18, 0.35, 0.30}, Alpha: 0.82}
	if label, err := PaintLabel("TIDEFALL", 256, 128); err != nil {
		// The label is decoration; the bottle renders fine without it.
		log.Warnf("skipping bottle label: %v", err)
	} else {
		bottleMat.Texture = label
	}
	scene.Objects = append(scene.Objects, &SceneObject{
		Name:      "bottle",
		Mesh:      assets.Mesh(bottleID),
		Transform: mgl32.Translate3D(0, 1.25, 0),
		Material:  bottleMat,
	})

	// Pump: a small block and pipe feeding the spout.
	pumpBaseID := assets.AddMesh(NewBoxMesh(0.5, 0.35, 0.4))
	scene.Objects = append(scene.Objects, &SceneObject{
		Name:      "pump-base",
		Mesh:      assets.Mesh(pumpBaseID),
		Transform: mgl32.Translate3D(0.45, 2.25, 0),
		Material:  Material{Color: mgl32.Vec3{0.45, 0.38, 0.25}, Alpha: 1},
	})
	pumpPipeID := assets.AddMesh(NewCylinderMesh(0.05, 0.6, 12))
	scene.Objects = append(scene.Objects, &SceneObject{
		Name: "pump-pipe",
		Mesh: assets.Mesh(pumpPipeID),
		Transform: mgl32.Translate3D(0.62, 2.5, 0).
			Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(75))),
		Material: Material{Color: mgl32.Vec3{0.55, 0.48, 0.35}, Alpha: 1},
	})

	// Moon, unlit so it glows against the night sky.
	moonID := assets.AddMesh(NewSphereMesh(0.9, 24, 16))
	scene.Objects = append(scene.Objects, &SceneObject{
		Name:      "moon",
		Mesh:      assets.Mesh(moonID),
		Transform: mgl32.Translate3D(-2.6, 5.4, -6),
		Material:  Material{Color: mgl32.Vec3{0.95, 0.93, 0.82}, Alpha: 1, Unlit: true},
	})

	// Shared droplet mesh for both instanced effects. Kept deliberately
	// low-poly: it is drawn over a thousand times per frame.
	dropletID := assets.AddMesh(NewSphereMesh(1, 6, 4))

	waterfall := NewFlowSystem(DefaultWaterfallCurve(), WaterfallPoolSize, r, 0.25, 0.6)
	spray := NewFlowSystem(DefaultSprayCurve(), SprayPoolSize, r, 0.3, 0.9)

	tab := &Tableau{
		Scene:              scene,
		Waterfall:          waterfall,
		Spray:              spray,
		WaterfallInstances: NewInstanceBuffer(waterfall.Len()),
		SprayInstances:     NewInstanceBuffer(spray.Len()),
	}

	scene.Batches = append(scene.Batches,
		&InstancedBatch{
			Name:     "waterfall",
			Mesh:     assets.Mesh(dropletID),
			Buffer:   tab.WaterfallInstances,
			Material: Material{Color: mgl32.Vec3{0.55, 0.75, 0.9}, Alpha: 0.55},
		},
		&InstancedBatch{
			Name:     "spray",
			Mesh:     assets.Mesh(dropletID),
			Buffer:   tab.SprayInstances,
			Material: Material{Color: mgl32.Vec3{0.8, 0.88, 0.95}, Alpha: 0.22},
		},
	)

	// Transforms are valid from the first frame, not the first tick.
	WriteInstances(waterfall, tab.WaterfallInstances)
	WriteInstances(spray, tab.SprayInstances)

	return tab
}

// bottleProfile is the revolved silhouette of the bottle: base, shoulder,
// neck and lip. x = radius, y = height above the bottle base.
func bottleProfile() []mgl32.Vec2 {
	return []mgl32.Vec2{
		{0.0, 0.0},
		{0.42, 0.0},
		{0.46, 0.08},
		{0.46, 0.72},
		{0.40, 0.92},
		{0.18, 1.08},
		{0.13, 1.18},
		{0.13, 1.38},
		{0.16, 1.40},
		{0.16, 1.46},
		{0.0, 1.46},
	}
}
