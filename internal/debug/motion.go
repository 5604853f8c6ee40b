package debug

import (
	"fmt"
	"math"
)

func (d *DebugOverlay) drawMotion(startY int, info FrameInfo) {
	ui := NewUIContext(10, startY, d.lineHeight, d.fontHeight, d.font, d.mouseX, d.mouseY, d.clicked)

	if ui.Checkbox("Freeze motion", d.FreezeMotion) {
		d.FreezeMotion = !d.FreezeMotion
	}
	if ui.Checkbox("Show pointer", d.ShowPointer) {
		d.ShowPointer = !d.ShowPointer
	}

	ui.Separator()

	state := info.State
	if state == nil {
		ui.Label("No frame state")
		return
	}

	ui.Header("Clock:")
	ui.IndentLabel(fmt.Sprintf("Elapsed: %.2f s", state.Elapsed), 10)
	ui.IndentLabel(fmt.Sprintf("Delta: %.2f ms", state.Delta*1000), 10)

	ui.Separator()

	ui.Header("Galaxy:")
	ui.IndentLabel(fmt.Sprintf("Rotation Y: %.3f rad (%.1f deg)", state.GalaxyRotationY, math.Mod(state.GalaxyRotationY*180/math.Pi, 360)), 10)
	ui.IndentLabel(fmt.Sprintf("Rotation Speed: %.3f rad/s", state.RotationSpeed), 10)

	ui.Separator()

	ui.Header("Pointer:")
	ui.IndentLabel(fmt.Sprintf("NDC: (%.3f, %.3f)", state.PointerNDC.X(), state.PointerNDC.Y()), 10)
	ui.IndentLabel(fmt.Sprintf("World XZ: (%.3f, %.3f)", state.PointerWorld.X(), state.PointerWorld.Y()), 10)
	source := "window"
	if info.Wallpaper {
		source = "X11 root"
	}
	ui.IndentLabel(fmt.Sprintf("Source: %s", source), 10)

	ui.Separator()

	cam := state.Camera
	pos := cam.Position()
	ui.Header("Camera:")
	ui.IndentLabel(fmt.Sprintf("Orbit Angle: %.3f rad", cam.Angle), 10)
	ui.IndentLabel(fmt.Sprintf("Target: (%.3f, %.3f)", cam.Target.X(), cam.Target.Y()), 10)
	ui.IndentLabel(fmt.Sprintf("Position: (%.3f, %.3f, %.3f)", pos.X(), pos.Y(), pos.Z()), 10)
	mode := "per frame"
	if cam.FrameRateIndependent {
		mode = "per second"
	}
	ui.IndentLabel(fmt.Sprintf("Lerp: %.3f (%s)", cam.Lerp, mode), 10)
}

func (d *DebugOverlay) drawRender(startY int, info FrameInfo) {
	ui := NewUIContext(10, startY, d.lineHeight, d.fontHeight, d.font, d.mouseX, d.mouseY, d.clicked)

	ui.Header("Field:")
	ui.IndentLabel(fmt.Sprintf("Particles: %d", info.Particles), 10)
	ui.IndentLabel(fmt.Sprintf("Drawn: %d", info.Drawn), 10)
	if info.Seed != 0 {
		ui.IndentLabel(fmt.Sprintf("Seed: %d", info.Seed), 10)
	} else {
		ui.IndentLabel("Seed: random", 10)
	}

	ui.Separator()

	ui.Header("Targets:")
	ui.IndentLabel(fmt.Sprintf("Scene: %dx%d", info.RenderWidth, info.RenderHeight), 10)
	if info.State != nil {
		vp := info.State.Viewport
		ui.IndentLabel(fmt.Sprintf("Viewport: %dx%d", vp.Width, vp.Height), 10)
		ui.IndentLabel(fmt.Sprintf("Pixel Ratio: %.2f (max %.2f)", vp.PixelRatio, vp.MaxPixelRatio), 10)
		ui.IndentLabel(fmt.Sprintf("Aspect: %.3f", vp.Aspect), 10)
		ui.IndentLabel(fmt.Sprintf("FOV: %.1f deg", info.State.FOV), 10)
	}

	ui.Separator()

	ui.Header("Bloom:")
	ui.IndentLabel(fmt.Sprintf("Strength: %.2f", info.Bloom.Strength), 10)
	ui.IndentLabel(fmt.Sprintf("Radius: %.2f", info.Bloom.Radius), 10)
	ui.IndentLabel(fmt.Sprintf("Threshold: %.2f", info.Bloom.Threshold), 10)
	ui.IndentLabel(fmt.Sprintf("Exposure: %.2f (ACES filmic)", info.Bloom.Exposure), 10)
}
