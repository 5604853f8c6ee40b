package galaxy

import (
	"math"
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DefaultScenario(t *testing.T) {
	field := Generate(DefaultGeneratorOptions(), NewRand(7))

	require.Len(t, field.Positions, ParticleCount*3)
	require.Len(t, field.Colors, ParticleCount*3)
	require.Len(t, field.Sizes, ParticleCount)
	require.Len(t, field.Phases, ParticleCount)
	assert.Equal(t, ParticleCount, field.Count())

	for _, buf := range [][]float32{field.Positions, field.Colors, field.Sizes, field.Phases} {
		for i, v := range buf {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				t.Fatalf("non-finite value %v at index %d", v, i)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(DefaultGeneratorOptions(), NewRand(1234))
	b := Generate(DefaultGeneratorOptions(), NewRand(1234))
	c := Generate(DefaultGeneratorOptions(), NewRand(4321))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Positions, c.Positions)
}

func TestGenerate_AttributeRanges(t *testing.T) {
	field := Generate(DefaultGeneratorOptions(), NewRand(99))

	for i, c := range field.Colors {
		if c < 0 || c > 1 {
			t.Fatalf("colour channel %d out of range: %v", i, c)
		}
	}
	for i, s := range field.Sizes {
		if s < float32(minSize) || s > float32(maxSize) {
			t.Fatalf("size %d out of range: %v", i, s)
		}
	}
	for i, p := range field.Phases {
		if p < 0 || p >= float32(2*math.Pi) {
			t.Fatalf("phase %d out of range: %v", i, p)
		}
	}
}

func TestGenerate_CentreBias(t *testing.T) {
	opts := DefaultGeneratorOptions()
	opts.Count = 50000
	field := Generate(opts, NewRand(5))

	radii := make([]float64, field.Count())
	inner := 0
	for i := range radii {
		p := field.Position(i)
		radii[i] = math.Hypot(float64(p.X()), float64(p.Z()))
		if radii[i] < opts.Radius/2 {
			inner++
		}
	}
	sort.Float64s(radii)
	median := radii[len(radii)/2]

	// t = u^0.6 puts the median near 0.5^0.6 of the radius, inside the median of
	// a uniformly filled disc (sqrt(0.5) of the radius).
	assert.InDelta(t, math.Pow(0.5, radialBias)*opts.Radius, median, 0.25)
	assert.Less(t, median, math.Sqrt(0.5)*opts.Radius)

	// surface density is higher in the inner half than a uniform disc's 25%
	assert.Greater(t, float64(inner)/float64(field.Count()), 0.28)
}

func TestGenerate_ThicknessShrinksOutward(t *testing.T) {
	field := Generate(DefaultGeneratorOptions(), NewRand(11))

	for i := 0; i < field.Count(); i++ {
		y := math.Abs(float64(field.Positions[i*3+1]))
		assert.LessOrEqual(t, y, Thickness/2+1e-6)
	}
}

func TestGenerate_EdgeCases(t *testing.T) {
	empty := Generate(GeneratorOptions{Count: 0, Arms: 5, Radius: 8}, NewRand(1))
	assert.Equal(t, 0, empty.Count())
	assert.Empty(t, empty.Positions)

	negative := Generate(GeneratorOptions{Count: -3, Arms: 5, Radius: 8}, NewRand(1))
	assert.Equal(t, 0, negative.Count())

	// zero arms and no palette still produce a usable field
	field := Generate(GeneratorOptions{Count: 10, Arms: 0, Radius: 8}, NewRand(1))
	assert.Equal(t, 10, field.Count())
	for i := 0; i < field.Count(); i++ {
		col := field.Color(i)
		for c := 0; c < 3; c++ {
			assert.GreaterOrEqual(t, col[c], float32(1-colorJitter-1e-6))
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    mgl32.Vec3
		wantErr bool
	}{
		{in: "#ffffff", want: mgl32.Vec3{1, 1, 1}},
		{in: "000000", want: mgl32.Vec3{0, 0, 0}},
		{in: "#4fc3f7", want: mgl32.Vec3{0x4f / 255.0, 0xc3 / 255.0, 0xf7 / 255.0}},
		{in: "#fff", wantErr: true},
		{in: "#gg0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.ApproxEqual(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestParsePalette_ReportsIndex(t *testing.T) {
	_, err := ParsePalette([]string{"#ffffff", "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette[1]")

	palette, err := ParsePalette(DefaultPaletteHex)
	require.NoError(t, err)
	assert.Len(t, palette, 6)
}
