// Command flowdemo runs a small coordinator tree, a game library with a
// detail flow and an info sheet, on the terminal or SDL host.
package main

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/sdlhost"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/stage"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/tui"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, backendName string

	cmd := &cobra.Command{
		Use:   "flowdemo",
		Short: "Run the coordinator demo flows",
		Long: `flowdemo attaches a tab bar with a game library and a settings screen,
pushes a detail flow for the selected game and presents an info sheet over it.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, backendName)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&backendName, "backend", "b", "tui", "presentation backend: tui or sdl")

	return cmd
}

func run(configPath, backendName string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	coordinator.Init(cfg.Log)
	defer coordinator.Close()

	logger := coordinator.GetLogger()
	st := stage.New()

	switch backendName {
	case "tui":
		app := newAppCoordinator(env{stage: st, backend: tuiBackend{}, logger: logger, config: cfg})
		host := tui.NewHost(st, app, cfg.TUI, app)
		return tui.Run(host)

	case "sdl":
		theme, err := cfg.SDL.Theme.Resolve()
		if err != nil {
			return err
		}
		b := sdlBackend{row: theme.Bar, selected: theme.Accent}
		app := newAppCoordinator(env{stage: st, backend: b, logger: logger, config: cfg})

		host, err := sdlhost.New(st, app, cfg.SDL, app)
		if err != nil {
			return err
		}
		defer host.Close()
		return host.Run()

	default:
		return fmt.Errorf("unknown backend %q", backendName)
	}
}
