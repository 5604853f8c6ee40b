package animation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// pointer NDC to world-space scale
	pointerWorldX = 9.0
	pointerWorldY = 5.0

	DefaultMaxPixelRatio = 2.0
)

// PendingInput buffers host events between frames. Event handlers only write
// here; Advance drains it at the start of the next tick.
type PendingInput struct {
	pointerMoved bool
	clientX      float64
	clientY      float64

	resized    bool
	width      int
	height     int
	pixelRatio float64
}

func (p *PendingInput) SetPointer(clientX, clientY float64) {
	p.pointerMoved = true
	p.clientX = clientX
	p.clientY = clientY
}

func (p *PendingInput) SetViewport(width, height int, devicePixelRatio float64) {
	p.resized = true
	p.width = width
	p.height = height
	p.pixelRatio = devicePixelRatio
}

// Pending reports whether anything is waiting to be drained.
func (p *PendingInput) Pending() bool {
	return p.pointerMoved || p.resized
}

// PointerFromClient maps client pixels to NDC ([-1,1], y up) and to the world
// XZ offset used by the repulsion. A zero-sized viewport maps to the centre.
func PointerFromClient(clientX, clientY float64, width, height int) (ndc, world mgl64.Vec2) {
	if width <= 0 || height <= 0 {
		return mgl64.Vec2{}, mgl64.Vec2{}
	}

	ndc = mgl64.Vec2{
		clientX/float64(width)*2 - 1,
		-(clientY/float64(height))*2 + 1,
	}
	world = mgl64.Vec2{ndc.X() * pointerWorldX, -ndc.Y() * pointerWorldY}
	return ndc, world
}

type Viewport struct {
	Width         int
	Height        int
	Aspect        float64
	PixelRatio    float64
	MaxPixelRatio float64
}

func NewViewport(width, height int, devicePixelRatio, maxPixelRatio float64) Viewport {
	vp := Viewport{MaxPixelRatio: maxPixelRatio}
	vp.Resize(width, height, devicePixelRatio)
	return vp
}

// Resize applies new dimensions and reports whether anything changed, so a
// repeated resize to the same size is a no-op for the render targets.
func (vp *Viewport) Resize(width, height int, devicePixelRatio float64) bool {
	limit := vp.MaxPixelRatio
	if limit <= 0 {
		limit = DefaultMaxPixelRatio
	}
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	ratio := math.Min(devicePixelRatio, limit)

	aspect := 1.0
	if width > 0 && height > 0 {
		aspect = float64(width) / float64(height)
	}

	if width == vp.Width && height == vp.Height && ratio == vp.PixelRatio && aspect == vp.Aspect {
		return false
	}

	vp.Width = width
	vp.Height = height
	vp.Aspect = aspect
	vp.PixelRatio = ratio
	return true
}

// RenderSize is the drawing buffer size in device pixels.
func (vp Viewport) RenderSize() (int, int) {
	return int(math.Round(float64(vp.Width) * vp.PixelRatio)), int(math.Round(float64(vp.Height) * vp.PixelRatio))
}
