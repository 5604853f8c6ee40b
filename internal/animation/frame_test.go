package animation

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_ZeroDelta(t *testing.T) {
	state := NewFrameState(DefaultFrameOptions())
	in := &PendingInput{}

	// leave the camera unsettled before the zero step
	in.SetPointer(900, 100)
	Advance(state, 0.25, in)
	Advance(state, 0.25, nil)

	rotation := state.GalaxyRotationY
	angle := state.Camera.Angle
	current := state.Camera.Current
	elapsed := state.Elapsed

	u := Advance(state, 0, nil)

	assert.Equal(t, rotation, state.GalaxyRotationY)
	assert.Equal(t, angle, state.Camera.Angle)
	assert.Equal(t, current, state.Camera.Current)
	assert.Equal(t, elapsed, state.Elapsed)
	assert.Equal(t, rotation, u.RotationY)
}

func TestAdvance_NegativeDeltaClamped(t *testing.T) {
	state := NewFrameState(DefaultFrameOptions())

	Advance(state, -1, nil)
	assert.Equal(t, 0.0, state.Delta)
	assert.Equal(t, 0.0, state.Elapsed)
	assert.Equal(t, 0.0, state.GalaxyRotationY)
}

func TestAdvance_AccumulatesRotation(t *testing.T) {
	state := NewFrameState(DefaultFrameOptions())
	for i := 0; i < 60; i++ {
		Advance(state, 1.0/60, nil)
	}

	assert.InDelta(t, 1.0, state.Elapsed, 1e-9)
	assert.InDelta(t, RotationSpeed, state.GalaxyRotationY, 1e-9)
	assert.InDelta(t, 0.08, state.Camera.Angle, 1e-9)
}

func TestAdvance_DrainsPendingInput(t *testing.T) {
	opts := DefaultFrameOptions()
	opts.Width, opts.Height = 1000, 800
	state := NewFrameState(opts)
	in := &PendingInput{}

	in.SetPointer(0, 0)
	require.True(t, in.Pending())

	u := Advance(state, 1.0/60, in)
	assert.False(t, in.Pending())
	assert.Equal(t, mgl64.Vec2{-1, 1}, state.PointerNDC)
	assert.Equal(t, mgl64.Vec2{-9, -5}, u.PointerWorld)

	// without a new move the projection holds
	Advance(state, 1.0/60, in)
	assert.Equal(t, mgl64.Vec2{-9, -5}, state.PointerWorld)
}

func TestAdvance_ResizeBeforePointer(t *testing.T) {
	state := NewFrameState(DefaultFrameOptions())
	in := &PendingInput{}

	in.SetViewport(200, 100, 3)
	in.SetPointer(200, 100)
	u := Advance(state, 0, in)

	assert.True(t, state.Resized)
	assert.Equal(t, 200, u.Width)
	assert.Equal(t, 100, u.Height)
	assert.InDelta(t, 2.0, u.Aspect, 1e-12)
	assert.InDelta(t, 2.0, u.PixelRatio, 1e-12)
	assert.Equal(t, mgl64.Vec2{1, -1}, state.PointerNDC)
}

func TestUniforms_CameraPosition(t *testing.T) {
	state := NewFrameState(DefaultFrameOptions())
	u := Advance(state, 0, nil)

	assert.Equal(t, mgl64.Vec3{0, 6, 14}, u.CameraPosition)
	assert.Equal(t, mgl64.Vec3{}, u.CameraTarget)
	assert.InDelta(t, DefaultFOV, u.FOV, 1e-12)
}

func TestClock_Tick(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	clock := NewClockWithSource(func() time.Time { return now })

	now = base.Add(16 * time.Millisecond)
	delta, elapsed := clock.Tick()
	assert.InDelta(t, 0.016, delta, 1e-9)
	assert.InDelta(t, 0.016, elapsed, 1e-9)

	now = base.Add(50 * time.Millisecond)
	delta, elapsed = clock.Tick()
	assert.InDelta(t, 0.034, delta, 1e-9)
	assert.InDelta(t, 0.05, elapsed, 1e-9)

	// a clock stepping backwards never yields a negative delta
	now = base.Add(10 * time.Millisecond)
	delta, _ = clock.Tick()
	assert.Equal(t, 0.0, delta)
}
