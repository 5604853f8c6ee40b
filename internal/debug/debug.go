package debug

import (
	"math"
	"os"
	"runtime"
	"time"

	"galaxy-wallpaper/internal/animation"
	"galaxy-wallpaper/internal/postfx"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type DebugTab int

const (
	TabMotion DebugTab = iota
	TabRender
	TabPerformance
)

var tabNames = []string{"Motion", "Render", "Performance"}

// FrameInfo is what the overlay shows about the current frame.
type FrameInfo struct {
	State        *animation.FrameState
	Seed         int64
	Particles    int
	Drawn        int
	RenderWidth  int
	RenderHeight int
	Bloom        postfx.BloomParams
	Wallpaper    bool
}

type DebugOverlay struct {
	ActiveTab    DebugTab
	ShowPointer  bool
	FreezeMotion bool

	// UI State
	fontHeight   int
	lineHeight   int
	tabHeight    int
	sidebarWidth int

	// Input State
	prevLeftMouseButton bool
	mouseX              int
	mouseY              int
	clicked             bool

	// Rendering
	uiBuffer          rl.RenderTexture2D
	uiScale           float64
	font              rl.Font
	cachedWidth       int
	cachedHeight      int
	monitorWidth      int
	monitorHeight     int
	bufferInitialized bool

	// Performance Monitoring
	lastUpdateTime time.Time
	frameCount     int
	fps            float64
	memStats       runtime.MemStats
}

func NewDebugOverlay() *DebugOverlay {
	monitor := rl.GetCurrentMonitor()

	d := &DebugOverlay{
		ActiveTab:      TabMotion,
		monitorWidth:   rl.GetMonitorWidth(monitor),
		monitorHeight:  rl.GetMonitorHeight(monitor),
		lastUpdateTime: time.Now(),
	}

	d.updateLayout()

	// Load system font
	fontPaths := []string{
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/ttf-dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	}

	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			d.font = rl.LoadFontEx(path, 64, nil, 0)
			rl.SetTextureFilter(d.font.Texture, rl.FilterBilinear)
			break
		}
	}

	return d
}

func (d *DebugOverlay) updateLayout() {
	scale := math.Max(1.0, float64(d.monitorHeight)/1080.0)
	d.fontHeight = int(16 * scale)
	d.lineHeight = int(26 * scale)
	d.tabHeight = int(40 * scale)
	d.sidebarWidth = int(420 * scale)
	d.uiScale = scale
}

func (d *DebugOverlay) Update() {
	d.updateLayout()

	d.frameCount++
	now := time.Now()
	if now.Sub(d.lastUpdateTime) >= time.Second {
		d.fps = float64(d.frameCount) / now.Sub(d.lastUpdateTime).Seconds()
		d.frameCount = 0
		d.lastUpdateTime = now
		runtime.ReadMemStats(&d.memStats)
	}

	mPos := rl.GetMousePosition()
	d.mouseX = int(mPos.X)
	d.mouseY = int(mPos.Y)
	x := float64(d.mouseX)
	y := float64(d.mouseY)

	leftPressed := rl.IsMouseButtonDown(rl.MouseLeftButton)
	d.clicked = leftPressed && !d.prevLeftMouseButton
	d.prevLeftMouseButton = leftPressed

	if d.clicked && y < float64(d.tabHeight) && x < float64(d.sidebarWidth) {
		tabWidth := float64(d.sidebarWidth) / float64(len(tabNames))
		d.ActiveTab = DebugTab(int(x / tabWidth))
	}
}

func (d *DebugOverlay) Draw(info FrameInfo) {
	sh := rl.GetScreenHeight()

	if d.cachedWidth != d.sidebarWidth || d.cachedHeight != sh {
		if d.bufferInitialized {
			rl.UnloadRenderTexture(d.uiBuffer)
		}
		d.uiBuffer = rl.LoadRenderTexture(int32(d.sidebarWidth), int32(sh))
		d.bufferInitialized = true
		d.cachedWidth = d.sidebarWidth
		d.cachedHeight = sh
	}

	rl.BeginTextureMode(d.uiBuffer)
	rl.ClearBackground(rl.Blank)

	rl.DrawRectangle(0, 0, int32(d.sidebarWidth), int32(sh), rl.NewColor(0, 0, 0, 200))
	d.drawTabs()

	contentY := d.tabHeight + int(float64(d.tabHeight)*0.5)
	switch d.ActiveTab {
	case TabMotion:
		d.drawMotion(contentY, info)
	case TabRender:
		d.drawRender(contentY, info)
	case TabPerformance:
		d.drawPerformance(contentY)
	}

	rl.EndTextureMode()

	if d.ShowPointer && info.State != nil {
		d.drawPointerMarker(info.State)
	}

	sourceRec := rl.NewRectangle(0, 0, float32(d.sidebarWidth), -float32(sh))
	destRec := rl.NewRectangle(0, 0, float32(d.sidebarWidth), float32(sh))
	rl.DrawTexturePro(d.uiBuffer.Texture, sourceRec, destRec, rl.NewVector2(0, 0), 0, rl.White)
}

func (d *DebugOverlay) drawTabs() {
	tabWidth := d.sidebarWidth / len(tabNames)

	for i, name := range tabNames {
		color := rl.NewColor(100, 100, 100, 255)
		if d.ActiveTab == DebugTab(i) {
			color = rl.NewColor(150, 150, 150, 255)
		}

		x := int32(i * tabWidth)
		rl.DrawRectangle(x, 0, int32(tabWidth), int32(d.tabHeight), color)
		d.DrawText(name, x+10, int32(float64(d.tabHeight)*0.3), int32(d.fontHeight), rl.White)
	}
}

// drawPointerMarker draws a crosshair where the kernel last saw the pointer.
func (d *DebugOverlay) drawPointerMarker(state *animation.FrameState) {
	ndc := state.PointerNDC
	x := int32((ndc.X()*0.5 + 0.5) * float64(rl.GetScreenWidth()))
	y := int32((0.5 - ndc.Y()*0.5) * float64(rl.GetScreenHeight()))

	marker := rl.NewColor(255, 255, 0, 200)
	rl.DrawLine(x-10, y, x+10, y, marker)
	rl.DrawLine(x, y-10, x, y+10, marker)
	rl.DrawCircleLines(x, y, 6, marker)
}

func (d *DebugOverlay) DrawText(text string, x, y int32, fontSize int32, color rl.Color) {
	if d.font.BaseSize > 0 {
		rl.DrawTextEx(d.font, text, rl.NewVector2(float32(x), float32(y)), float32(fontSize), 1, color)
	} else {
		rl.DrawText(text, x, y, fontSize, color)
	}
}

func (d *DebugOverlay) Unload() {
	if d.bufferInitialized {
		rl.UnloadRenderTexture(d.uiBuffer)
		d.bufferInitialized = false
	}
	if d.font.BaseSize > 0 {
		rl.UnloadFont(d.font)
	}
}
