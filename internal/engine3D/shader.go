package engine3D

import (
	"fmt"

	"galaxy-wallpaper/internal/postfx"
	"galaxy-wallpaper/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ShaderPass is a compiled post-processing shader with its resolved uniforms.
type ShaderPass struct {
	Name      string
	Shader    rl.Shader
	Locations map[string]int32
}

// LoadShaderPass compiles fs against the shared vertex stage and resolves the
// named uniforms. raylib falls back to its default shader when compilation
// fails, so an unresolved uniform is the failure signal.
func LoadShaderPass(name, fs string, uniforms ...string) (*ShaderPass, error) {
	shader := rl.LoadShaderFromMemory(postfx.VertexShader(), fs)
	if shader.ID == 0 {
		return nil, fmt.Errorf("%w: shader %s failed to compile", ErrUnsupported, name)
	}

	pass := &ShaderPass{
		Name:      name,
		Shader:    shader,
		Locations: make(map[string]int32, len(uniforms)),
	}
	for _, uniform := range uniforms {
		loc := rl.GetShaderLocation(shader, uniform)
		if loc == -1 {
			pass.Unload()
			return nil, fmt.Errorf("%w: shader %s has no uniform %q", ErrUnsupported, name, uniform)
		}
		pass.Locations[uniform] = loc
	}

	utils.Debug("Shader: %s - Loaded successfully (ID: %d)", name, shader.ID)
	return pass, nil
}

func (p *ShaderPass) SetFloat(uniform string, v float32) {
	rl.SetShaderValue(p.Shader, p.Locations[uniform], []float32{v}, rl.ShaderUniformFloat)
}

func (p *ShaderPass) SetVec2(uniform string, x, y float32) {
	rl.SetShaderValue(p.Shader, p.Locations[uniform], []float32{x, y}, rl.ShaderUniformVec2)
}

func (p *ShaderPass) SetFloats(uniform string, values []float32) {
	rl.SetShaderValueV(p.Shader, p.Locations[uniform], values, rl.ShaderUniformFloat, int32(len(values)))
}

func (p *ShaderPass) SetTexture(uniform string, texture rl.Texture2D) {
	rl.SetShaderValueTexture(p.Shader, p.Locations[uniform], texture)
}

func (p *ShaderPass) Unload() {
	if p == nil || p.Shader.ID == 0 {
		return
	}
	rl.UnloadShader(p.Shader)
	p.Shader = rl.Shader{}
}
