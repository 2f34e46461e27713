package sdlhost

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// Theme holds the colors used to draw chrome around screens.
type Theme struct {
	Background sdl.Color // Window clear color
	Bar        sdl.Color // Title bar and tab strip
	Text       sdl.Color // Titles and tab labels
	Hint       sdl.Color // Back chevron and inactive tabs
	Accent     sdl.Color // Selected tab
	Sheet      sdl.Color // Sheet card background
	Scrim      sdl.Color // Dims the presenter behind a sheet
}

// ThemeOptions is the configurable form of Theme. Colors are hex strings
// such as "#1E1E2E" or "1E1E2ECC".
type ThemeOptions struct {
	Background string `toml:"background"`
	Bar        string `toml:"bar"`
	Text       string `toml:"text"`
	Hint       string `toml:"hint"`
	Accent     string `toml:"accent"`
	Sheet      string `toml:"sheet"`
	Scrim      string `toml:"scrim"`
}

func DefaultTheme() Theme {
	return Theme{
		Background: HexToColor(0x1E1E2E),
		Bar:        HexToColor(0x313244),
		Text:       HexToColor(0xFFFFFF),
		Hint:       HexToColor(0xA6ADC8),
		Accent:     HexToColor(0x008080),
		Sheet:      HexToColor(0x45475A),
		Scrim:      sdl.Color{R: 0, G: 0, B: 0, A: 0x99},
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// ParseHexColor parses RRGGBB or RRGGBBAA with an optional leading '#'.
func ParseHexColor(raw string) (sdl.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(s) != 6 && len(s) != 8 {
		return sdl.Color{}, fmt.Errorf("invalid hex color %q", raw)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("invalid hex color %q: %w", raw, err)
	}

	if len(s) == 6 {
		return HexToColor(uint32(v)), nil
	}
	return sdl.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Resolve overlays the configured colors on the default theme. Empty fields
// keep their default.
func (o ThemeOptions) Resolve() (Theme, error) {
	theme := DefaultTheme()

	fields := []struct {
		raw string
		dst *sdl.Color
	}{
		{o.Background, &theme.Background},
		{o.Bar, &theme.Bar},
		{o.Text, &theme.Text},
		{o.Hint, &theme.Hint},
		{o.Accent, &theme.Accent},
		{o.Sheet, &theme.Sheet},
		{o.Scrim, &theme.Scrim},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		c, err := ParseHexColor(f.raw)
		if err != nil {
			return Theme{}, err
		}
		*f.dst = c
	}

	return theme, nil
}
