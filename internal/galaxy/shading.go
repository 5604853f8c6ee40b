package galaxy

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MouseInfluence = 2.8

	repulseScale  = 0.35
	depthScale    = 300.0
	alphaDiscard  = 0.01
	glowStrength  = 0.4
	baseAlpha     = 0.55
	fadeAlphaSpan = 0.45
)

var glowWhite = mgl32.Vec3{1.0, 0.95, 1.0}

// ShadeParams are the per-frame inputs of the particle shading.
type ShadeParams struct {
	Time           float32
	PixelRatio     float32
	Pointer        mgl32.Vec2 // world XZ
	MouseInfluence float32
	Radius         float32 // normalises the radial distance used for glow and fade
	Model          mgl32.Mat4
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	Width          float32 // render target size in pixels
	Height         float32
}

// Sample is one shaded particle ready to be drawn as a point sprite.
type Sample struct {
	X, Y    float32 // render target pixels, origin top-left
	Depth   float32
	Size    float32 // sprite diameter in pixels
	Color   mgl32.Vec3
	Alpha   float32
	Visible bool
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }

// Breathe applies the slow per-particle oscillation.
func Breathe(pos mgl32.Vec3, phase, t float32) mgl32.Vec3 {
	pos[1] += sin32(t*0.8+phase) * 0.04
	pos[0] += cos32(t*0.6+phase) * 0.025
	return pos
}

// Repulse pushes the local position away from the pointer. The direction is
// measured in world XZ but applied to the local X and Z.
func Repulse(local, world mgl32.Vec3, pointer mgl32.Vec2, influence float32) mgl32.Vec3 {
	toMouse := mgl32.Vec2{world.X() - pointer.X(), world.Z() - pointer.Y()}
	distSq := toMouse.Dot(toMouse)
	if distSq == 0 {
		return local
	}

	repulse := influence / (distSq + 1)
	dir := toMouse.Mul(1 / float32(math.Sqrt(float64(distSq))))
	local[0] += dir.X() * repulse * repulseScale
	local[2] += dir.Y() * repulse * repulseScale
	return local
}

// Twinkle is the size modulation in [0.5, 1.0].
func Twinkle(t, phase float32) float32 {
	return 0.75 + 0.25*sin32(t*3+phase*2*math.Pi)
}

// PointSize returns the sprite diameter for a particle at the given view depth.
// Points at or behind the camera plane get no size.
func PointSize(baseSize, depth, t, phase, pixelRatio float32) float32 {
	if depth <= 0 {
		return 0
	}
	return baseSize * (depthScale / depth) * Twinkle(t, phase) * pixelRatio
}

// SpriteAlpha is the circular falloff across a point sprite, r being the distance
// from the centre scaled so the sprite edge is 1.
func SpriteAlpha(r float32) float32 {
	alpha := 1 - smoothstep(0.6, 1.0, r)
	if alpha < alphaDiscard {
		return 0
	}
	return alpha
}

// RadialDistance is the XZ distance from the centre normalised by radius.
func RadialDistance(pos mgl32.Vec3, radius float32) float32 {
	return mgl32.Vec2{pos.X(), pos.Z()}.Len() / radius
}

// GlowColor blends inner particles toward near-white.
func GlowColor(col mgl32.Vec3, dist float32) mgl32.Vec3 {
	glow := 1 - smoothstep(0.0, 0.9, dist)
	amount := glow * glowStrength
	return col.Mul(1 - amount).Add(glowWhite.Mul(amount))
}

// FadeAlpha dims outer particles.
func FadeAlpha(dist float32) float32 {
	fade := 1 - smoothstep(0.5, 1.0, dist)
	return baseAlpha + fadeAlphaSpan*fade
}

// Shade evaluates particle i of the field for the current frame.
func Shade(field *Field, i int, params *ShadeParams) Sample {
	rest := field.Position(i)
	phase := field.Phases[i]

	pos := Breathe(rest, phase, params.Time)
	world := params.Model.Mul4x1(pos.Vec4(1)).Vec3()
	pos = Repulse(pos, world, params.Pointer, params.MouseInfluence)

	mv := params.View.Mul4x1(params.Model.Mul4x1(pos.Vec4(1)))
	depth := -mv.Z()
	if depth <= 0 {
		return Sample{Depth: depth}
	}

	clip := params.Projection.Mul4x1(mv)
	if clip.W() <= 0 {
		return Sample{Depth: depth}
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()

	size := PointSize(field.Sizes[i], depth, params.Time, phase, params.PixelRatio)
	x := (ndcX*0.5 + 0.5) * params.Width
	y := (0.5 - ndcY*0.5) * params.Height

	half := size / 2
	if x+half < 0 || x-half > params.Width || y+half < 0 || y-half > params.Height {
		return Sample{X: x, Y: y, Depth: depth, Size: size}
	}

	dist := RadialDistance(rest, params.Radius)
	return Sample{
		X:       x,
		Y:       y,
		Depth:   depth,
		Size:    size,
		Color:   GlowColor(field.Color(i), dist),
		Alpha:   FadeAlpha(dist),
		Visible: size > 0,
	}
}

// SpriteImage renders the point sprite mask as white RGBA pixels whose alpha
// follows SpriteAlpha.
func SpriteImage(size int) []byte {
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			u := (float32(x)+0.5)/float32(size) - 0.5
			v := (float32(y)+0.5)/float32(size) - 0.5
			r := float32(math.Sqrt(float64(u*u+v*v))) * 2
			alpha := SpriteAlpha(r)

			idx := (y*size + x) * 4
			pix[idx] = 255
			pix[idx+1] = 255
			pix[idx+2] = 255
			pix[idx+3] = uint8(alpha*255 + 0.5)
		}
	}
	return pix
}
