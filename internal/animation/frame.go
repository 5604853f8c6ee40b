// Package animation holds the per-frame motion kernel: it drains pending host
// input, advances time and rotation, and steers the camera.
package animation

import (
	"galaxy-wallpaper/internal/camera"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	RotationSpeed = 0.035 // rad/s
	DefaultFOV    = 60.0
)

type FrameState struct {
	Elapsed float64
	Delta   float64

	PointerNDC   mgl64.Vec2
	PointerWorld mgl64.Vec2

	GalaxyRotationY float64
	RotationSpeed   float64

	Camera   *camera.Orbit
	Viewport Viewport
	FOV      float64

	// set when the last Advance applied a viewport change
	Resized bool
}

type FrameOptions struct {
	RotationSpeed float64
	FOV           float64
	Camera        camera.Options
	Width         int
	Height        int
	PixelRatio    float64
	MaxPixelRatio float64
}

func DefaultFrameOptions() FrameOptions {
	return FrameOptions{
		RotationSpeed: RotationSpeed,
		FOV:           DefaultFOV,
		Camera:        camera.DefaultOptions(),
		Width:         1280,
		Height:        720,
		PixelRatio:    1,
		MaxPixelRatio: DefaultMaxPixelRatio,
	}
}

func NewFrameState(opts FrameOptions) *FrameState {
	return &FrameState{
		RotationSpeed: opts.RotationSpeed,
		Camera:        camera.NewOrbit(opts.Camera),
		Viewport:      NewViewport(opts.Width, opts.Height, opts.PixelRatio, opts.MaxPixelRatio),
		FOV:           opts.FOV,
	}
}

// Uniforms is the per-frame snapshot handed to the render stage.
type Uniforms struct {
	Time           float64
	PixelRatio     float64
	PointerWorld   mgl64.Vec2
	RotationY      float64
	CameraPosition mgl64.Vec3
	CameraTarget   mgl64.Vec3
	Aspect         float64
	FOV            float64
	Width          int
	Height         int
}

// Advance runs one tick of the kernel. Negative deltas count as zero; a zero
// delta leaves rotation and camera exactly where they were.
func Advance(state *FrameState, delta float64, in *PendingInput) Uniforms {
	if delta < 0 {
		delta = 0
	}
	state.Delta = delta
	state.Resized = false

	if in != nil {
		drain(state, in)
	}

	state.Elapsed += delta
	state.GalaxyRotationY += state.RotationSpeed * delta
	state.Camera.Advance(delta, state.PointerNDC)

	return state.Uniforms()
}

func drain(state *FrameState, in *PendingInput) {
	if in.resized {
		state.Resized = state.Viewport.Resize(in.width, in.height, in.pixelRatio)
		in.resized = false
	}
	if in.pointerMoved {
		state.PointerNDC, state.PointerWorld = PointerFromClient(in.clientX, in.clientY, state.Viewport.Width, state.Viewport.Height)
		in.pointerMoved = false
	}
}

func (state *FrameState) Uniforms() Uniforms {
	return Uniforms{
		Time:           state.Elapsed,
		PixelRatio:     state.Viewport.PixelRatio,
		PointerWorld:   state.PointerWorld,
		RotationY:      state.GalaxyRotationY,
		CameraPosition: state.Camera.Position(),
		CameraTarget:   state.Camera.LookAt(),
		Aspect:         state.Viewport.Aspect,
		FOV:            state.FOV,
		Width:          state.Viewport.Width,
		Height:         state.Viewport.Height,
	}
}
