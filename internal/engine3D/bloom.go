package engine3D

import (
	"galaxy-wallpaper/internal/postfx"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bloom is the bright-pass, mip blur and composite chain.
type Bloom struct {
	Params postfx.BloomParams

	passes *bloomPasses

	bright *rl.RenderTexture2D
	// per level: [0] horizontal result, [1] vertical result
	mips [postfx.MipLevels][2]*rl.RenderTexture2D

	width  int32
	height int32
}

func NewBloom(params postfx.BloomParams) (*Bloom, error) {
	passes, err := loadBloomPasses()
	if err != nil {
		return nil, err
	}
	return &Bloom{Params: params, passes: passes}, nil
}

func loadTarget(w, h int32) *rl.RenderTexture2D {
	rt := rl.LoadRenderTexture(w, h)
	rl.SetTextureFilter(rt.Texture, rl.FilterBilinear)
	rl.SetTextureWrap(rt.Texture, rl.TextureWrapClamp)
	return &rt
}

func unloadTarget(rt *rl.RenderTexture2D) {
	if rt != nil {
		rl.UnloadRenderTexture(*rt)
	}
}

// Resize reallocates the targets only when the render size changed.
func (b *Bloom) Resize(width, height int) {
	w, h := int32(width), int32(height)
	if b.bright != nil && b.width == w && b.height == h {
		return
	}
	b.unloadTargets()

	b.width, b.height = w, h
	b.bright = loadTarget(w, h)
	for i, size := range postfx.MipSizes(width, height) {
		b.mips[i][0] = loadTarget(int32(size[0]), int32(size[1]))
		b.mips[i][1] = loadTarget(int32(size[0]), int32(size[1]))
	}
}

func (b *Bloom) unloadTargets() {
	unloadTarget(b.bright)
	b.bright = nil
	for i := range b.mips {
		unloadTarget(b.mips[i][0])
		unloadTarget(b.mips[i][1])
		b.mips[i] = [2]*rl.RenderTexture2D{}
	}
}

// blit draws a render texture into target through pass. Render textures are
// stored upside down, so the source is always flipped.
func blit(src rl.Texture2D, target *rl.RenderTexture2D, pass *ShaderPass, setup func()) {
	rl.BeginTextureMode(*target)
	rl.ClearBackground(rl.Blank)
	rl.BeginShaderMode(pass.Shader)
	if setup != nil {
		setup()
	}

	srcRec := rl.NewRectangle(0, 0, float32(src.Width), -float32(src.Height))
	dstRec := rl.NewRectangle(0, 0, float32(target.Texture.Width), float32(target.Texture.Height))
	rl.DrawTexturePro(src, srcRec, dstRec, rl.NewVector2(0, 0), 0, rl.White)

	rl.EndShaderMode()
	rl.EndTextureMode()
}

// Process runs bright pass and blur on the scene texture.
func (b *Bloom) Process(scene rl.Texture2D) {
	bright := b.passes.bright
	blit(scene, b.bright, bright, func() {
		bright.SetFloat("threshold", b.Params.Threshold)
		bright.SetFloat("smoothWidth", b.Params.SmoothWidth)
	})

	input := b.bright.Texture
	for i := range b.mips {
		blur := b.passes.blur[i]
		level := b.mips[i]
		texelX := 1 / float32(level[0].Texture.Width)
		texelY := 1 / float32(level[0].Texture.Height)

		blit(input, level[0], blur, func() {
			blur.SetVec2("texelSize", texelX, texelY)
			blur.SetVec2("direction", 1, 0)
		})
		blit(level[0].Texture, level[1], blur, func() {
			blur.SetVec2("texelSize", texelX, texelY)
			blur.SetVec2("direction", 0, 1)
		})
		input = level[1].Texture
	}
}

// Composite draws scene plus bloom, tone mapped, into dest on the current
// framebuffer.
func (b *Bloom) Composite(scene rl.Texture2D, dest rl.Rectangle) {
	composite := b.passes.composite
	factors := b.Params.MipFactors()

	rl.BeginShaderMode(composite.Shader)
	composite.SetFloat("bloomStrength", b.Params.Strength)
	composite.SetFloat("exposure", b.Params.Exposure)
	composite.SetFloats("bloomFactors", factors[:])
	for i := range b.mips {
		composite.SetTexture(postfx.MipSamplerName(i), b.mips[i][1].Texture)
	}

	srcRec := rl.NewRectangle(0, 0, float32(scene.Width), -float32(scene.Height))
	rl.DrawTexturePro(scene, srcRec, dest, rl.NewVector2(0, 0), 0, rl.White)
	rl.EndShaderMode()
}

func (b *Bloom) Unload() {
	b.unloadTargets()
	b.passes.Unload()
}
