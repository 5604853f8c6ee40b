// Package postfx holds the CPU side of the bloom and tone-mapping passes:
// parameters, blur kernels and the GLSL sources the renderer compiles.
package postfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MipLevels   = 5
	smoothWidth = 0.01
)

// Blur kernel radius per mip level, smallest mip last.
var kernelRadii = [MipLevels]int{3, 5, 7, 9, 11}

// Base contribution per mip before the radius blend.
var baseFactors = [MipLevels]float32{1.0, 0.8, 0.6, 0.4, 0.2}

type BloomParams struct {
	Strength    float32
	Radius      float32
	Threshold   float32
	SmoothWidth float32
	Exposure    float32
}

// DefaultBloom returns the fixed bloom used by the renderer.
func DefaultBloom() BloomParams {
	return BloomParams{
		Strength:    1.1,
		Radius:      0.5,
		Threshold:   0.05,
		SmoothWidth: smoothWidth,
		Exposure:    1.0,
	}
}

// MipFactors blends each level's weight toward its mirror as radius grows,
// so a larger radius favours the wider mips.
func (p BloomParams) MipFactors() [MipLevels]float32 {
	var out [MipLevels]float32
	for i, f := range baseFactors {
		out[i] = f + (1.2-f-f)*p.Radius
	}
	return out
}

func KernelRadius(level int) int {
	if level < 0 {
		level = 0
	}
	if level >= MipLevels {
		level = MipLevels - 1
	}
	return kernelRadii[level]
}

// MipSizes halves the render size once per level, never below one pixel.
func MipSizes(width, height int) [MipLevels][2]int {
	var sizes [MipLevels][2]int
	w, h := width, height
	for i := range sizes {
		w = max(w/2, 1)
		h = max(h/2, 1)
		sizes[i] = [2]int{w, h}
	}
	return sizes
}

// GaussianKernel returns the one-sided weights of a separable blur with the
// given radius. Index 0 is the centre tap; the full kernel sums to 1.
func GaussianKernel(radius int) []float32 {
	if radius < 1 {
		return []float32{1}
	}

	sigma := float64(radius)
	weights := make([]float64, radius)
	total := 0.0
	for i := range weights {
		weights[i] = 0.39894 * math.Exp(-0.5*float64(i*i)/(sigma*sigma)) / sigma
		if i == 0 {
			total += weights[i]
		} else {
			total += 2 * weights[i]
		}
	}

	out := make([]float32, radius)
	for i, w := range weights {
		out[i] = float32(w / total)
	}
	return out
}

func Luminance(c mgl32.Vec3) float32 {
	return c.Dot(mgl32.Vec3{0.299, 0.587, 0.114})
}

// BrightPass keeps the colour of pixels above the threshold with a short
// smooth ramp and drops the rest.
func (p BloomParams) BrightPass(c mgl32.Vec3) mgl32.Vec3 {
	l := Luminance(c)
	t := (l - p.Threshold) / p.SmoothWidth
	if t <= 0 {
		return mgl32.Vec3{}
	}
	if t >= 1 {
		return c
	}
	return c.Mul(t * t * (3 - 2*t))
}

var (
	acesInput = mgl32.Mat3FromCols(
		mgl32.Vec3{0.59719, 0.07600, 0.02840},
		mgl32.Vec3{0.35458, 0.90834, 0.13383},
		mgl32.Vec3{0.04823, 0.01566, 0.83777},
	)
	acesOutput = mgl32.Mat3FromCols(
		mgl32.Vec3{1.60475, -0.10208, -0.00327},
		mgl32.Vec3{-0.53108, 1.10813, -0.07276},
		mgl32.Vec3{-0.07367, -0.00605, 1.07602},
	)
)

func rrtAndODTFit(v float32) float32 {
	a := v*(v+0.0245786) - 0.000090537
	b := v*(0.983729*v+0.4329510) + 0.238081
	return a / b
}

// ACESFilmic is the filmic curve applied by the composite pass.
func ACESFilmic(c mgl32.Vec3, exposure float32) mgl32.Vec3 {
	c = c.Mul(exposure / 0.6)
	c = acesInput.Mul3x1(c)
	c = mgl32.Vec3{rrtAndODTFit(c[0]), rrtAndODTFit(c[1]), rrtAndODTFit(c[2])}
	c = acesOutput.Mul3x1(c)
	for i := range c {
		c[i] = mgl32.Clamp(c[i], 0, 1)
	}
	return c
}
