// Package galaxy builds the static particle field and evaluates the per-particle
// shading of the animated galaxy.
package galaxy

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ParticleCount = 12000
	Arms          = 5
	ArmSpread     = 0.55
	Radius        = 8.0
	Thickness     = 0.6

	// MaxParticles bounds the field size accepted from config and snapshots.
	MaxParticles = 1 << 20

	// colour noise amplitude per channel, uniform in [-colorJitter, +colorJitter]
	colorJitter = 0.15
	minSize     = 0.4
	maxSize     = 2.0
	radialBias  = 0.6
	spiralTwist = 3 * math.Pi
)

var DefaultPaletteHex = []string{
	"#4fc3f7", // electric blue
	"#b388ff", // cosmic purple
	"#f48fb1", // soft pink
	"#e1f5fe", // icy white-blue
	"#ce93d8", // light purple
	"#ffffff",
}

// Field is the static vertex data of the galaxy. The four slices are parallel:
// particle i owns Positions[3i:3i+3], Colors[3i:3i+3], Sizes[i] and Phases[i].
type Field struct {
	Positions []float32
	Colors    []float32
	Sizes     []float32
	Phases    []float32
}

type GeneratorOptions struct {
	Count     int
	Arms      int
	Spread    float64
	Radius    float64
	Thickness float64
	Palette   []mgl32.Vec3
}

func DefaultPalette() []mgl32.Vec3 {
	palette, _ := ParsePalette(DefaultPaletteHex)
	return palette
}

func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Count:     ParticleCount,
		Arms:      Arms,
		Spread:    ArmSpread,
		Radius:    Radius,
		Thickness: Thickness,
		Palette:   DefaultPalette(),
	}
}

// NewRand returns a seeded source. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (f *Field) Count() int {
	return len(f.Sizes)
}

func (f *Field) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{f.Positions[i*3], f.Positions[i*3+1], f.Positions[i*3+2]}
}

func (f *Field) Color(i int) mgl32.Vec3 {
	return mgl32.Vec3{f.Colors[i*3], f.Colors[i*3+1], f.Colors[i*3+2]}
}

// Generate places opts.Count particles along opts.Arms spiral arms. The random
// draws happen in a fixed order per particle, so a seeded rng reproduces the
// field bit for bit.
func Generate(opts GeneratorOptions, rng *rand.Rand) *Field {
	count := opts.Count
	if count < 0 {
		count = 0
	}
	arms := opts.Arms
	if arms < 1 {
		arms = 1
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = []mgl32.Vec3{{1, 1, 1}}
	}
	if rng == nil {
		rng = NewRand(0)
	}

	field := &Field{
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*3),
		Sizes:     make([]float32, count),
		Phases:    make([]float32, count),
	}

	for i := 0; i < count; i++ {
		i3 := i * 3

		arm := rng.Intn(arms)
		t := math.Pow(rng.Float64(), radialBias)
		radius := t * opts.Radius
		angle := float64(arm)/float64(arms)*2*math.Pi +
			t*spiralTwist +
			(rng.Float64()-0.5)*opts.Spread

		field.Positions[i3] = float32(math.Cos(angle)*radius + (rng.Float64()-0.5)*opts.Spread*radius*0.3)
		field.Positions[i3+1] = float32((rng.Float64() - 0.5) * opts.Thickness * (1 - t*0.6))
		field.Positions[i3+2] = float32(math.Sin(angle)*radius + (rng.Float64()-0.5)*opts.Spread*radius*0.3)

		base := palette[rng.Intn(len(palette))]
		for c := 0; c < 3; c++ {
			noisy := float64(base[c]) + (rng.Float64()*2-1)*colorJitter
			field.Colors[i3+c] = float32(clamp01(noisy))
		}

		field.Sizes[i] = float32(minSize + rng.Float64()*(maxSize-minSize))
		field.Phases[i] = wrapPhase(float32(rng.Float64() * 2 * math.Pi))
	}

	return field
}

// wrapPhase keeps the phase below 2π after rounding to float32.
func wrapPhase(phase float32) float32 {
	const fullTurn = float32(2 * math.Pi)
	if phase >= fullTurn {
		return math.Nextafter32(fullTurn, 0)
	}
	return phase
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
