// Package camera implements the auto-orbiting, pointer-influenced camera that
// circles the galaxy.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultRadius    = 14.0
	DefaultHeight    = 6.0
	DefaultOrbitRate = 0.08 // rad/s
	DefaultLerp      = 0.035

	pointerSwayX = 1.2
	pointerSwayY = 0.8

	// reference frame rate for the frame-rate independent lerp
	referenceFPS = 60.0
)

type Options struct {
	Radius    float64
	Height    float64
	OrbitRate float64
	Lerp      float64

	// FrameRateIndependent rescales the lerp by the frame delta. Off by default:
	// the smoothing speed then follows the frame rate.
	FrameRateIndependent bool
}

func DefaultOptions() Options {
	return Options{
		Radius:    DefaultRadius,
		Height:    DefaultHeight,
		OrbitRate: DefaultOrbitRate,
		Lerp:      DefaultLerp,
	}
}

// Orbit holds the orbit angle and the smoothed camera position. Target is
// recomputed every frame; Current approaches it exponentially.
type Orbit struct {
	Options

	Angle   float64
	Target  mgl64.Vec2 // x, y
	Current mgl64.Vec2
}

// NewOrbit starts the camera settled at the front of the orbit.
func NewOrbit(opts Options) *Orbit {
	start := mgl64.Vec2{0, opts.Height}
	return &Orbit{
		Options: opts,
		Target:  start,
		Current: start,
	}
}

// Advance moves the orbit forward by delta seconds. A zero (or negative) step
// leaves the camera untouched.
func (o *Orbit) Advance(delta float64, pointerNDC mgl64.Vec2) {
	if delta <= 0 {
		return
	}

	o.Angle += o.OrbitRate * delta
	o.Target = mgl64.Vec2{
		math.Sin(o.Angle)*o.Radius + pointerNDC.X()*pointerSwayX,
		o.Height + pointerNDC.Y()*pointerSwayY,
	}

	factor := o.lerpFactor(delta)
	o.Current = o.Current.Add(o.Target.Sub(o.Current).Mul(factor))
}

func (o *Orbit) lerpFactor(delta float64) float64 {
	if !o.FrameRateIndependent {
		return o.Lerp
	}
	return 1 - math.Pow(1-o.Lerp, delta*referenceFPS)
}

// Position is the camera eye. It always looks at the origin.
func (o *Orbit) Position() mgl64.Vec3 {
	return mgl64.Vec3{o.Current.X(), o.Current.Y(), math.Cos(o.Angle) * o.Radius}
}

func (o *Orbit) LookAt() mgl64.Vec3 {
	return mgl64.Vec3{}
}

// View returns the look-at matrix for the current position.
func (o *Orbit) View() mgl64.Mat4 {
	return mgl64.LookAtV(o.Position(), o.LookAt(), mgl64.Vec3{0, 1, 0})
}
