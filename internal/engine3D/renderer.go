package engine3D

import (
	"galaxy-wallpaper/internal/animation"
	"galaxy-wallpaper/internal/galaxy"
	"galaxy-wallpaper/internal/postfx"
	"galaxy-wallpaper/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	nearPlane = 0.1
	farPlane  = 200.0
)

type RendererOptions struct {
	Field          *galaxy.Field
	MouseInfluence float32
	Radius         float32
	Bloom          postfx.BloomParams
}

// Renderer handles drawing of the particle field and its post-processing.
type Renderer struct {
	Field          *galaxy.Field
	MouseInfluence float32
	Radius         float32

	Scene  *rl.RenderTexture2D
	Sprite rl.Texture2D
	Bloom  *Bloom

	// render target size in device pixels
	Width  int
	Height int

	// particles drawn in the last frame
	Drawn int
}

func NewRenderer(opts RendererOptions) (*Renderer, error) {
	bloom, err := NewBloom(opts.Bloom)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		Field:          opts.Field,
		MouseInfluence: opts.MouseInfluence,
		Radius:         opts.Radius,
		Sprite:         loadSpriteTexture(),
		Bloom:          bloom,
	}
	utils.Info("Renderer: %d particles", opts.Field.Count())
	return r, nil
}

// UpdateViewport resizes the off-screen targets to the drawing buffer size.
// Calling it again with the same size does nothing.
func (r *Renderer) UpdateViewport(vp animation.Viewport) {
	w, h := vp.RenderSize()
	w, h = max(w, 1), max(h, 1)
	if r.Scene != nil && r.Width == w && r.Height == h {
		return
	}

	if r.Scene != nil {
		rl.UnloadRenderTexture(*r.Scene)
	}
	r.Scene = loadTarget(int32(w), int32(h))
	r.Width, r.Height = w, h
	r.Bloom.Resize(w, h)

	utils.Debug("Renderer: render targets %dx%d (pixel ratio %.2f)", w, h, vp.PixelRatio)
}

func mat4To32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}

// ShadeParams builds the per-frame shading inputs from the kernel uniforms.
func (r *Renderer) ShadeParams(u animation.Uniforms) *galaxy.ShadeParams {
	view := mgl64.LookAtV(u.CameraPosition, u.CameraTarget, mgl64.Vec3{0, 1, 0})
	projection := mgl64.Perspective(mgl64.DegToRad(u.FOV), u.Aspect, nearPlane, farPlane)

	return &galaxy.ShadeParams{
		Time:           float32(u.Time),
		PixelRatio:     float32(u.PixelRatio),
		Pointer:        mgl32.Vec2{float32(u.PointerWorld.X()), float32(u.PointerWorld.Y())},
		MouseInfluence: r.MouseInfluence,
		Radius:         r.Radius,
		Model:          mgl32.HomogRotate3DY(float32(u.RotationY)),
		View:           mat4To32(view),
		Projection:     mat4To32(projection),
		Width:          float32(r.Width),
		Height:         float32(r.Height),
	}
}

// Render draws the field into the scene target and runs the bloom passes.
// The result reaches the screen with Present.
func (r *Renderer) Render(u animation.Uniforms) {
	params := r.ShadeParams(u)

	rl.BeginTextureMode(*r.Scene)
	rl.ClearBackground(rl.Black)
	r.Drawn = drawPoints(r.Field, r.Sprite, params)
	rl.EndTextureMode()

	r.Bloom.Process(r.Scene.Texture)
}

// Present composites scene and bloom over the whole window.
func (r *Renderer) Present() {
	dest := rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	r.Bloom.Composite(r.Scene.Texture, dest)
}

func (r *Renderer) Unload() {
	if r.Scene != nil {
		rl.UnloadRenderTexture(*r.Scene)
		r.Scene = nil
	}
	rl.UnloadTexture(r.Sprite)
	r.Bloom.Unload()
}
