package main

import (
	"errors"
	"flag"
	"os"
	"runtime"

	"galaxy-wallpaper/internal/config"
	"galaxy-wallpaper/internal/engine3D"
	"galaxy-wallpaper/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	// raylib and GL must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to a config file (json, toml or yaml)")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	seed := flag.Int64("seed", 0, "Random seed for the particle field (0 = random)")
	wallpaperFlag := flag.Bool("wallpaper", false, "Run as the X11 desktop background")
	snapshotPath := flag.String("snapshot", "", "Write the particle field to this file and exit")
	fieldPath := flag.String("field", "", "Load the particle field from a snapshot file")
	fps := flag.Int("fps", 0, "Target frame rate (0 = use config)")
	flag.Parse()

	cfg, err := config.Load(utils.ResolveConfigPath(*configPath))
	if err != nil {
		utils.Error("%v", err)
		os.Exit(1)
	}

	// flags win over file and environment, but only when given
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Galaxy.Seed = *seed
		case "wallpaper":
			cfg.Window.Wallpaper = *wallpaperFlag
		case "fps":
			cfg.Window.FPS = *fps
		}
	})

	utils.CurrentLevel = utils.ParseLevel(cfg.LogLevel)
	utils.DebugMode = *debugFlag
	utils.ShowRaylibInfo = cfg.RaylibInfo
	if utils.DebugMode {
		utils.CurrentLevel = utils.LevelDebug
		utils.ShowRaylibInfo = true
	}

	utils.Info("--- Galaxy Wallpaper Start ---")

	if *snapshotPath != "" {
		field, err := loadField(cfg, *fieldPath)
		if err != nil {
			utils.Error("%v", err)
			os.Exit(1)
		}
		if err := writeSnapshot(field, *snapshotPath); err != nil {
			utils.Error("%v", err)
			os.Exit(1)
		}
		return
	}

	rl.SetTraceLogCallback(utils.RaylibLogCallback)

	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if cfg.Window.Wallpaper {
		flags |= rl.FlagWindowUndecorated
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	if !rl.IsWindowReady() {
		utils.Error("Failed to open window")
		os.Exit(1)
	}

	if err := engine3D.Probe(); err != nil {
		utils.Error("Rendering unavailable: %v", err)
		if errors.Is(err, engine3D.ErrUnsupported) {
			runFallback(cfg.Window.Title)
		}
		rl.CloseWindow()
		os.Exit(1)
	}

	// nothing is built until rendering is known to work
	field, err := loadField(cfg, *fieldPath)
	if err != nil {
		utils.Error("%v", err)
		rl.CloseWindow()
		os.Exit(1)
	}

	window, err := NewWindow(cfg, field)
	if err != nil {
		utils.Error("Failed to set up renderer: %v", err)
		rl.CloseWindow()
		os.Exit(1)
	}

	utils.Info("Starting render loop...")
	window.Run()

	window.Unload()
	utils.CloseX11()
	rl.CloseWindow()
}
