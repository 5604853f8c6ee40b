package galaxy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ParseHexColor turns "#rrggbb" (or "rrggbb") into an RGB vector in [0,1].
func ParseHexColor(s string) (mgl32.Vec3, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return mgl32.Vec3{}, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	return mgl32.Vec3{
		float32((value>>16)&0xff) / 255,
		float32((value>>8)&0xff) / 255,
		float32(value&0xff) / 255,
	}, nil
}

// ParsePalette parses every entry and reports the first malformed one.
func ParsePalette(entries []string) ([]mgl32.Vec3, error) {
	palette := make([]mgl32.Vec3, 0, len(entries))
	for i, entry := range entries {
		col, err := ParseHexColor(entry)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		palette = append(palette, col)
	}
	return palette, nil
}
