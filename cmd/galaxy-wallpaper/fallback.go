package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const fallbackMessage = "This background needs OpenGL 3.3 with framebuffer and shader support."

// runFallback shows a static notice until the window is closed. Nothing of
// the galaxy is created on this path.
func runFallback(title string) {
	rl.SetTargetFPS(10)

	for !rl.WindowShouldClose() {
		w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		titleSize := int32(28)
		textSize := int32(18)
		titleWidth := rl.MeasureText(title, titleSize)
		textWidth := rl.MeasureText(fallbackMessage, textSize)
		rl.DrawText(title, (w-titleWidth)/2, h/2-titleSize-8, titleSize, rl.RayWhite)
		rl.DrawText(fallbackMessage, (w-textWidth)/2, h/2+8, textSize, rl.Gray)

		rl.EndDrawing()
	}
}
