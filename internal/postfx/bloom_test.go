package postfx

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBloom(t *testing.T) {
	p := DefaultBloom()
	assert.InDelta(t, 1.1, p.Strength, 1e-6)
	assert.InDelta(t, 0.5, p.Radius, 1e-6)
	assert.InDelta(t, 0.05, p.Threshold, 1e-6)
}

func TestGaussianKernel_Normalised(t *testing.T) {
	for level := 0; level < MipLevels; level++ {
		radius := KernelRadius(level)
		weights := GaussianKernel(radius)
		require.Len(t, weights, radius)

		total := weights[0]
		for i := 1; i < len(weights); i++ {
			total += 2 * weights[i]
			assert.Less(t, weights[i], weights[i-1], "weights fall off from the centre")
		}
		assert.InDelta(t, 1.0, total, 1e-5, "radius %d", radius)
	}

	assert.Equal(t, []float32{1}, GaussianKernel(0))
}

func TestMipFactors(t *testing.T) {
	// radius 0.5 flattens every level to 0.6
	for _, f := range DefaultBloom().MipFactors() {
		assert.InDelta(t, 0.6, f, 1e-6)
	}

	p := DefaultBloom()
	p.Radius = 0
	assert.Equal(t, baseFactors, p.MipFactors())
}

func TestMipSizes(t *testing.T) {
	sizes := MipSizes(1920, 1080)
	assert.Equal(t, [2]int{960, 540}, sizes[0])
	assert.Equal(t, [2]int{60, 33}, sizes[4])

	tiny := MipSizes(3, 1)
	for _, s := range tiny {
		assert.GreaterOrEqual(t, s[0], 1)
		assert.GreaterOrEqual(t, s[1], 1)
	}
}

func TestBrightPass(t *testing.T) {
	p := DefaultBloom()

	assert.Equal(t, mgl32.Vec3{}, p.BrightPass(mgl32.Vec3{0.01, 0.01, 0.01}))
	bright := mgl32.Vec3{0.8, 0.6, 0.9}
	assert.Equal(t, bright, p.BrightPass(bright))

	// inside the ramp the colour is scaled, not replaced
	mid := p.BrightPass(mgl32.Vec3{0.055, 0.055, 0.055})
	assert.Greater(t, mid.X(), float32(0))
	assert.Less(t, mid.X(), float32(0.055))
}

func TestACESFilmic(t *testing.T) {
	black := ACESFilmic(mgl32.Vec3{}, 1)
	for _, c := range black {
		assert.InDelta(t, 0, c, 1e-3)
	}

	prev := float32(-1)
	for _, v := range []float32{0.05, 0.2, 0.5, 1, 2, 8} {
		out := ACESFilmic(mgl32.Vec3{v, v, v}, 1)
		assert.Greater(t, out.X(), prev)
		assert.LessOrEqual(t, out.X(), float32(1))
		prev = out.X()
	}
}

func TestShaderSources(t *testing.T) {
	blur := BlurShader(5)
	assert.True(t, strings.HasPrefix(blur, "#version 330\n"))
	assert.Contains(t, blur, "#define KERNEL_RADIUS 5")
	assert.Contains(t, blur, "uniform vec2 direction;")

	composite := CompositeShader()
	for i := 0; i < MipLevels; i++ {
		assert.Contains(t, composite, "uniform sampler2D "+MipSamplerName(i)+";")
	}
	assert.NotContains(t, composite, "SAMPLE_MIPS")
	assert.Contains(t, composite, "uniform float bloomStrength;")

	assert.Contains(t, BrightPassShader(), "uniform float threshold;")
}
