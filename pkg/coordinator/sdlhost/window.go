package sdlhost

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/constants"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/veandco/go-sdl2/sdl"
)

type windowPlacement struct {
	X, Y, W, H int32
}

// placeWindow decides where the window goes. Configured sizes win over the
// display size; in development mode the window is offset, decorated and
// sized from WINDOW_WIDTH and WINDOW_HEIGHT.
func placeWindow(opts Options, displayW, displayH int32) windowPlacement {
	p := windowPlacement{W: displayW, H: displayH}
	if opts.Width > 0 {
		p.W = opts.Width
	}
	if opts.Height > 0 {
		p.H = opts.Height
	}

	if constants.IsDevMode() {
		p.X, p.Y = devWindowOffsetX, devWindowOffsetY
		p.W = envDimension(constants.WindowWidthEnvVar, devWindowWidth)
		p.H = envDimension(constants.WindowHeightEnvVar, devWindowHeight)
	}

	return p
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window dimension; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func createWindow(opts Options) (*sdl.Window, *sdl.Renderer, bool, error) {
	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	flagsOpts := opts.Window
	if constants.IsDevMode() {
		flagsOpts.Borderless = false
	}

	p := placeWindow(opts, mode.W, mode.H)
	internal.GetInternalLogger().Debug("Initializing SDL window", "width", p.W, "height", p.H)

	window, err := sdl.CreateWindow(opts.Title, p.X, p.Y, p.W, p.H, flagsOpts.ToSDLFlags())
	if err != nil {
		return nil, nil, false, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, nil, false, err
	}

	renderer.SetLogicalSize(p.W, p.H)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return window, renderer, vsync, nil
}
