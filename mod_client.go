package tidefall

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// ViewerModule opens the interactive window. Each frame the CPU-rendered
// framebuffer is uploaded to a texture and blitted to the surface with a
// fullscreen triangle. P saves a still; Escape quits.
type ViewerModule struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
}

type viewerState struct {
	window *WindowState
	gpu    *GpuState

	blitPipeline *wgpu.RenderPipeline
	frameTexture *wgpu.Texture
	frameView    *wgpu.TextureView
	frameSampler *wgpu.Sampler
	blitGroup    *wgpu.BindGroup

	// physical size of the uploaded frame; the texture is rebuilt when
	// the renderer's framebuffer stops matching it
	frameW int
	frameH int
}

func (mod ViewerModule) Install(app *App) {
	NewPlatformWindow(mod.WindowWidth, mod.WindowHeight, mod.WindowTitle).Install(app)

	var windowState *WindowState
	if !app.Resource(&windowState) {
		panic("viewer: no window state")
	}

	gpuState := createGpuState(windowState)

	state := &viewerState{
		window:       windowState,
		gpu:          gpuState,
		blitPipeline: createBlitPipeline(gpuState),
		frameSampler: createFrameSampler(gpuState),
	}
	app.AddResources(gpuState, state)

	var req *ExportRequest
	if app.Resource(&req) {
		windowState.windowGlfw.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
			if action != glfw.Press {
				return
			}
			switch key {
			case glfw.KeyP:
				req.Requested = true
			case glfw.KeyEscape:
				w.SetShouldClose(true)
			}
		})
	}

	app.UseSystem(
		System(windowEventsSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(presentSystem).
			InStage(PostRender),
	)
}

func windowEventsSystem(state *viewerState, ctl *RunControl) {
	glfw.PollEvents()
	if state.window.windowGlfw.ShouldClose() {
		ctl.Quit = true
	}
}

func (state *viewerState) ensureFrameTexture(w, h int) {
	if state.frameTexture != nil && state.frameW == w && state.frameH == h {
		return
	}
	if state.frameTexture != nil {
		state.blitGroup.Release()
		state.frameView.Release()
		state.frameTexture.Release()
	}

	state.frameTexture, state.frameView = createFrameTexture(state.gpu, w, h)
	state.frameW, state.frameH = w, h

	layout := state.blitPipeline.GetBindGroupLayout(0)
	defer layout.Release()
	group, err := state.gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: state.frameView},
			{Binding: 1, Sampler: state.frameSampler},
		},
	})
	if err != nil {
		panic(err)
	}
	state.blitGroup = group
}

// presentSystem puts the finished CPU frame on screen.
func presentSystem(state *viewerState, renderer *Renderer) {
	img := renderer.Image()
	state.ensureFrameTexture(img.Bounds().Dx(), img.Bounds().Dy())
	uploadFrame(state.gpu, state.frameTexture, img)

	nextTexture, err := state.gpu.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := state.gpu.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
			},
		},
	})
	defer renderPass.Release()

	renderPass.SetPipeline(state.blitPipeline)
	renderPass.SetBindGroup(0, state.blitGroup, nil)
	renderPass.Draw(3, 1, 0, 0)

	if err := renderPass.End(); err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	state.gpu.queue.Submit(cmdBuffer)
	state.gpu.surface.Present()
}
