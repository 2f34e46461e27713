package sdlhost

import (
	"testing"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/constants"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestToSDLFlags(t *testing.T) {
	assert.Equal(t, uint32(sdl.WINDOW_SHOWN), WindowOptions{}.ToSDLFlags())
	assert.Equal(t, uint32(0), WindowOptions{Hidden: true}.ToSDLFlags())

	flags := WindowOptions{Resizable: true, Borderless: true, AlwaysOnTop: true}.ToSDLFlags()
	assert.NotZero(t, flags&sdl.WINDOW_SHOWN)
	assert.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
	assert.NotZero(t, flags&sdl.WINDOW_BORDERLESS)
	assert.NotZero(t, flags&sdl.WINDOW_ALWAYS_ON_TOP)
	assert.Zero(t, flags&sdl.WINDOW_FULLSCREEN)
}

func TestWithDefaultsWindowOptions(t *testing.T) {
	t.Setenv(constants.EnvironmentEnvVar, "")
	opts := Options{}.withDefaults()
	assert.True(t, opts.Window.Borderless)
	assert.Equal(t, defaultFontSize, opts.FontSize)

	t.Setenv(constants.EnvironmentEnvVar, constants.Development)
	opts = Options{}.withDefaults()
	assert.True(t, opts.Window.Resizable)
	assert.False(t, opts.Window.Borderless)

	kept := Options{Window: WindowOptions{Fullscreen: true}}.withDefaults()
	assert.Equal(t, WindowOptions{Fullscreen: true}, kept.Window)
}

func TestPlaceWindow(t *testing.T) {
	t.Setenv(constants.EnvironmentEnvVar, "")

	assert.Equal(t, windowPlacement{W: 1280, H: 720}, placeWindow(Options{}, 1280, 720))
	assert.Equal(t, windowPlacement{W: 640, H: 480}, placeWindow(Options{Width: 640, Height: 480}, 1280, 720))
}

func TestPlaceWindowDevMode(t *testing.T) {
	t.Setenv(constants.EnvironmentEnvVar, constants.Development)
	t.Setenv(constants.WindowWidthEnvVar, "800")
	t.Setenv(constants.WindowHeightEnvVar, "bogus")

	p := placeWindow(Options{}, 1280, 720)

	assert.Equal(t, windowPlacement{X: devWindowOffsetX, Y: devWindowOffsetY, W: 800, H: devWindowHeight}, p)
}
