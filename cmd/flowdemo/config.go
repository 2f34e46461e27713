package main

import (
	"fmt"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/sdlhost"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/tui"
	"github.com/BurntSushi/toml"
)

// Config is the demo's TOML file.
type Config struct {
	Log  coordinator.Options `toml:"log"`
	TUI  tui.Options         `toml:"tui"`
	SDL  sdlhost.Options     `toml:"sdl"`
	Demo DemoOptions         `toml:"demo"`
}

type DemoOptions struct {
	Games     []string     `toml:"games"`      // Rows shown in the library
	InfoStyle screen.Style `toml:"info_style"` // How the info screen is presented
}

func defaultConfig() Config {
	return Config{
		TUI: tui.DefaultOptions(),
		SDL: sdlhost.Options{Title: "flowdemo"},
		Demo: DemoOptions{
			Games:     []string{"Portal", "Half-Life", "Celeste", "Hades"},
			InfoStyle: screen.StyleFormSheet,
		},
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}

	return cfg, nil
}
