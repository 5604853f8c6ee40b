package main

import (
	"galaxy-wallpaper/internal/animation"
	"galaxy-wallpaper/internal/config"
	"galaxy-wallpaper/internal/debug"
	"galaxy-wallpaper/internal/engine3D"
	"galaxy-wallpaper/internal/galaxy"
	"galaxy-wallpaper/internal/postfx"
	"galaxy-wallpaper/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Window struct {
	cfg      *config.Config
	field    *galaxy.Field
	renderer *engine3D.Renderer
	state    *animation.FrameState
	input    animation.PendingInput
	clock    *animation.Clock
	uniforms animation.Uniforms

	debugOverlay *debug.DebugOverlay

	// global pointer through X11, for the desktop window type
	useX11Pointer bool

	lastMouseX, lastMouseY float64
	hasMouse               bool
	lastWidth, lastHeight  int
	lastPixelRatio         float64
}

func devicePixelRatio() float64 {
	scale := rl.GetWindowScaleDPI()
	if scale.X <= 0 {
		return 1
	}
	return float64(scale.X)
}

func NewWindow(cfg *config.Config, field *galaxy.Field) (*Window, error) {
	if cfg.Window.Wallpaper {
		setupWallpaper(cfg.Window.Title)
	}

	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
	dpr := devicePixelRatio()

	renderer, err := engine3D.NewRenderer(engine3D.RendererOptions{
		Field:          field,
		MouseInfluence: float32(cfg.Motion.MouseInfluence),
		Radius:         float32(cfg.Galaxy.Radius),
		Bloom:          postfx.DefaultBloom(),
	})
	if err != nil {
		return nil, err
	}

	window := &Window{
		cfg:            cfg,
		field:          field,
		renderer:       renderer,
		state:          animation.NewFrameState(cfg.FrameOptions(width, height, dpr)),
		clock:          animation.NewClock(),
		debugOverlay:   debug.NewDebugOverlay(),
		useX11Pointer:  cfg.Window.Wallpaper,
		lastWidth:      width,
		lastHeight:     height,
		lastPixelRatio: dpr,
	}
	renderer.UpdateViewport(window.state.Viewport)
	window.uniforms = window.state.Uniforms()

	return window, nil
}

// setupWallpaper stretches the window over the current monitor and asks the
// window manager to treat it as the desktop. Failures leave a normal window.
func setupWallpaper(title string) {
	monitor := rl.GetCurrentMonitor()
	rl.SetWindowPosition(0, 0)
	rl.SetWindowSize(rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor))

	if err := utils.InitX11(); err != nil {
		utils.Warn("X11 unavailable, running as a normal window: %v", err)
		return
	}
	xw, err := utils.FindWindowByName(title)
	if err != nil {
		utils.Warn("Wallpaper mode: %v", err)
		return
	}
	if err := utils.SetDesktopWindowType(xw); err != nil {
		utils.Warn("Wallpaper mode: %v", err)
		return
	}
	utils.Info("Wallpaper mode: window 0x%x marked as desktop", uint32(xw))
}

func (window *Window) Run() {
	rl.SetTargetFPS(int32(window.cfg.Window.FPS))

	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
}

// pollInput forwards host changes to the pending input buffer. Unchanged
// pointer or size produce no event.
func (window *Window) pollInput() {
	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
	dpr := devicePixelRatio()
	if rl.IsWindowResized() || width != window.lastWidth || height != window.lastHeight || dpr != window.lastPixelRatio {
		window.input.SetViewport(width, height, dpr)
		window.lastWidth, window.lastHeight, window.lastPixelRatio = width, height, dpr
	}

	x, y := window.mousePosition()
	if !window.hasMouse || x != window.lastMouseX || y != window.lastMouseY {
		window.input.SetPointer(x, y)
		window.lastMouseX, window.lastMouseY = x, y
		window.hasMouse = true
	}
}

func (window *Window) mousePosition() (float64, float64) {
	if window.useX11Pointer {
		gx, gy, err := utils.GetGlobalMousePosition()
		if err == nil {
			pos := rl.GetWindowPosition()
			return float64(gx) - float64(pos.X), float64(gy) - float64(pos.Y)
		}
		utils.Warn("X11 pointer query failed, using window pointer: %v", err)
		window.useX11Pointer = false
	}

	mPos := rl.GetMousePosition()
	return float64(mPos.X), float64(mPos.Y)
}

func (window *Window) Update() {
	deltaTime, _ := window.clock.Tick()

	window.pollInput()

	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}
	if utils.ShowDebugUI && window.debugOverlay.FreezeMotion {
		deltaTime = 0
	}

	window.uniforms = animation.Advance(window.state, deltaTime, &window.input)
	if window.state.Resized {
		window.renderer.UpdateViewport(window.state.Viewport)
	}

	if utils.ShowDebugUI {
		window.debugOverlay.Update()
	}
}

func (window *Window) Draw() {
	window.renderer.Render(window.uniforms)

	rl.ClearBackground(rl.Black)
	window.renderer.Present()

	if utils.ShowDebugUI {
		window.debugOverlay.Draw(debug.FrameInfo{
			State:        window.state,
			Seed:         window.cfg.Galaxy.Seed,
			Particles:    window.field.Count(),
			Drawn:        window.renderer.Drawn,
			RenderWidth:  window.renderer.Width,
			RenderHeight: window.renderer.Height,
			Bloom:        window.renderer.Bloom.Params,
			Wallpaper:    window.useX11Pointer,
		})
	}
}

func (window *Window) Unload() {
	window.debugOverlay.Unload()
	window.renderer.Unload()
}
