// Package engine3D draws the galaxy field with raylib: pre-shaded point
// sprites into an off-screen scene target, then bloom onto the screen.
package engine3D

import (
	"errors"
	"fmt"

	"galaxy-wallpaper/internal/postfx"
	"galaxy-wallpaper/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrUnsupported = errors.New("rendering not supported")

// Probe checks once, after the window opened, that everything the renderer
// needs is available: a GL context, off-screen framebuffers and the bloom
// shaders.
func Probe() error {
	if !rl.IsWindowReady() {
		return fmt.Errorf("%w: window not ready", ErrUnsupported)
	}

	rt := rl.LoadRenderTexture(4, 4)
	if rt.ID == 0 || rt.Texture.ID == 0 {
		return fmt.Errorf("%w: framebuffer objects unavailable", ErrUnsupported)
	}
	rl.UnloadRenderTexture(rt)

	passes, err := loadBloomPasses()
	if err != nil {
		return err
	}
	passes.Unload()

	utils.Debug("Probe: rendering capabilities available")
	return nil
}

type bloomPasses struct {
	bright    *ShaderPass
	blur      [postfx.MipLevels]*ShaderPass
	composite *ShaderPass
}

func loadBloomPasses() (*bloomPasses, error) {
	p := &bloomPasses{}
	var err error

	p.bright, err = LoadShaderPass("brightpass", postfx.BrightPassShader(), "texture0", "threshold", "smoothWidth")
	if err != nil {
		return nil, err
	}

	for i := range p.blur {
		name := fmt.Sprintf("blur%d", i)
		p.blur[i], err = LoadShaderPass(name, postfx.BlurShader(postfx.KernelRadius(i)), "texture0", "texelSize", "direction")
		if err != nil {
			p.Unload()
			return nil, err
		}
	}

	uniforms := []string{"texture0", "bloomStrength", "bloomFactors", "exposure"}
	for i := 0; i < postfx.MipLevels; i++ {
		uniforms = append(uniforms, postfx.MipSamplerName(i))
	}
	p.composite, err = LoadShaderPass("composite", postfx.CompositeShader(), uniforms...)
	if err != nil {
		p.Unload()
		return nil, err
	}
	return p, nil
}

func (p *bloomPasses) Unload() {
	p.bright.Unload()
	for _, b := range p.blur {
		b.Unload()
	}
	p.composite.Unload()
}
