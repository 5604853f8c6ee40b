package engine3D

import (
	"image/color"

	"galaxy-wallpaper/internal/galaxy"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const spriteSize = 64

// loadSpriteTexture uploads the circular point sprite mask.
func loadSpriteTexture() rl.Texture2D {
	img := rl.NewImage(galaxy.SpriteImage(spriteSize), spriteSize, spriteSize, 1, rl.UncompressedR8g8b8a8)
	tex := rl.LoadTextureFromImage(img)
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	return tex
}

func toColor(c mgl32.Vec3, alpha float32) color.RGBA {
	return rl.NewColor(
		uint8(mgl32.Clamp(c.X(), 0, 1)*255),
		uint8(mgl32.Clamp(c.Y(), 0, 1)*255),
		uint8(mgl32.Clamp(c.Z(), 0, 1)*255),
		uint8(mgl32.Clamp(alpha, 0, 1)*255),
	)
}

// drawPoints shades every particle and draws the visible ones as additive
// sprites. It returns how many were drawn.
func drawPoints(field *galaxy.Field, sprite rl.Texture2D, params *galaxy.ShadeParams) int {
	sourceRec := rl.NewRectangle(0, 0, float32(sprite.Width), float32(sprite.Height))
	drawn := 0

	rl.BeginBlendMode(rl.BlendAdditive)
	for i := 0; i < field.Count(); i++ {
		s := galaxy.Shade(field, i, params)
		if !s.Visible {
			continue
		}

		destRec := rl.NewRectangle(s.X, s.Y, s.Size, s.Size)
		origin := rl.NewVector2(s.Size/2, s.Size/2)
		rl.DrawTexturePro(sprite, sourceRec, destRec, origin, 0, toColor(s.Color, s.Alpha))
		drawn++
	}
	rl.EndBlendMode()
	return drawn
}
