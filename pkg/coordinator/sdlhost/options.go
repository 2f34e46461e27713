package sdlhost

import (
	"time"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/constants"
)

// Options configures the SDL host.
type Options struct {
	Title              string        `toml:"title"`               // Window title
	Width              int32         `toml:"width"`               // Window width; 0 uses the display width
	Height             int32         `toml:"height"`              // Window height; 0 uses the display height
	FontPath           string        `toml:"font_path"`           // TTF used for titles; empty draws no text
	FontSize           int           `toml:"font_size"`           // Point size for titles and tabs
	BackgroundPath     string        `toml:"background_path"`     // PNG or JPG drawn behind every screen; empty uses the theme color
	TransitionDuration time.Duration `toml:"transition_duration"` // Time an animated transition takes to complete
	Window             WindowOptions `toml:"window"`
	Theme              ThemeOptions  `toml:"theme"`
}

const (
	defaultFontSize  = 28
	titleBarHeight   = 64
	tabStripHeight   = 56
	chevronSize      = 32
	contentPadding   = 16
	devWindowWidth   = 1024
	devWindowHeight  = 768
	devWindowOffsetX = 50
	devWindowOffsetY = 50
)

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "coordinator"
	}
	if o.FontSize <= 0 {
		o.FontSize = defaultFontSize
	}
	if o.TransitionDuration < 0 {
		o.TransitionDuration = 0
	}
	if o.Window.IsZero() {
		if constants.IsDevMode() {
			o.Window = WindowOptions{Resizable: true}
		} else {
			o.Window = WindowOptions{Borderless: true}
		}
	}
	return o
}
