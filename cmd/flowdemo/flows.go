package main

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/stage"
)

// env is shared by every flow in the demo.
type env struct {
	stage   *stage.Stage
	backend backend
	logger  *slog.Logger
	config  Config
}

type gameDependency struct {
	env
	game string
}

type infoDependency struct {
	env
	game string
}

// appCoordinator is the root flow: a tab bar with the library and settings.
type appCoordinator struct {
	coordinator.Coordinator
	logger   *slog.Logger
	tabs     *stage.TabBar
	library  *libraryCoordinator
	settings *settingsCoordinator
}

func newAppCoordinator(e env) *appCoordinator {
	library := coordinator.Build(coordinator.NewContainer(e), newLibraryCoordinator)
	settings := coordinator.Build(coordinator.NewContainer(e), newSettingsCoordinator)

	return &appCoordinator{
		logger:   e.logger,
		tabs:     e.stage.NewTabBar(library.nav.Controller(), settings.Controller()),
		library:  library,
		settings: settings,
	}
}

func (a *appCoordinator) Name() string { return "app" }

// Controller makes the app the root the hosts render.
func (a *appCoordinator) Controller() screen.Controller {
	return a.tabs
}

func (a *appCoordinator) Start() {
	a.AddChild(a.library)
	a.AddChild(a.settings)
	a.logger.Debug("flows started", "tree", coordinator.Dump(a))
}

// libraryCoordinator lists games on a navigation stack and pushes a game
// flow for the selected one.
type libraryCoordinator struct {
	*coordinator.Viewable[GamesPresenter]
	env  env
	view *listView
	nav  *screen.Navigation
	game *gameCoordinator
}

func newLibraryCoordinator(e env) *libraryCoordinator {
	view := &listView{title: "Library"}
	sc := e.backend.wrap(e.stage, view)

	c := &libraryCoordinator{
		Viewable: coordinator.NewViewable[GamesPresenter](sc, view),
		env:      e,
		view:     view,
		nav:      screen.NewNavigationWithRoot(e.stage, sc),
	}
	view.onSelect = c.openGame
	return c
}

func (c *libraryCoordinator) Name() string { return "library" }

func (c *libraryCoordinator) Start() {
	c.Presenter().ShowGames(c.env.config.Demo.Games)
}

func (c *libraryCoordinator) openGame(name string) {
	if c.game != nil {
		return
	}

	c.game = coordinator.Build(
		coordinator.NewContainer(gameDependency{env: c.env, game: name}),
		newGameCoordinator,
	)
	c.game.onClose = c.closeGame

	screen.Push(c, c.game, true)
	c.AddChild(c.game)
}

func (c *libraryCoordinator) closeGame() {
	if c.game == nil {
		return
	}

	game := c.game
	c.game = nil
	screen.Pop(game, true, screen.OnComplete(func() {
		c.env.logger.Debug("game screen popped", "game", game.name)
	}))
	c.RemoveChild(game)
}

// gameCoordinator shows one game and can present its info sheet.
type gameCoordinator struct {
	*coordinator.Viewable[GamePresenter]
	env     env
	name    string
	view    *detailView
	info    *infoCoordinator
	onClose func()
}

func newGameCoordinator(dep gameDependency) *gameCoordinator {
	view := &detailView{}
	c := &gameCoordinator{
		Viewable: coordinator.NewViewable[GamePresenter](dep.backend.wrap(dep.stage, view), view),
		env:      dep.env,
		name:     dep.game,
		view:     view,
	}
	view.onInfo = c.openInfo
	view.onBack = func() {
		if c.onClose != nil {
			c.onClose()
		}
	}
	return c
}

func (c *gameCoordinator) Name() string { return "game:" + c.name }

func (c *gameCoordinator) Start() {
	c.env.logger.Info("game opened", "game", c.name, "id", c.ID())
	c.Presenter().ShowGame(c.name)
}

func (c *gameCoordinator) Stop() {
	// The info flow was already detached by the cascade; only its sheet remains.
	if c.info != nil {
		c.info = nil
		screen.Dismiss(c, false)
	}
	c.env.logger.Info("game closed", "game", c.name, "id", c.ID())
}

func (c *gameCoordinator) openInfo() {
	if c.info != nil {
		return
	}

	c.info = coordinator.Build(
		coordinator.NewContainer(infoDependency{env: c.env, game: c.name}),
		newInfoCoordinator,
	)
	c.info.onClose = c.closeInfo

	screen.Present(c, c.info, true, screen.WithStyle(c.env.config.Demo.InfoStyle))
	c.AddChild(c.info)
}

func (c *gameCoordinator) closeInfo() {
	if c.info == nil {
		return
	}

	info := c.info
	c.info = nil
	screen.Dismiss(c, true)
	c.RemoveChild(info)
}

// infoCoordinator is presented over a game.
type infoCoordinator struct {
	*coordinator.Viewable[TextPresenter]
	game    string
	onClose func()
}

func newInfoCoordinator(dep infoDependency) *infoCoordinator {
	view := &textView{title: "Info"}
	c := &infoCoordinator{
		Viewable: coordinator.MustViewable[TextPresenter](screenWithText{dep.backend.wrap(dep.stage, view), view}),
		game:     dep.game,
	}
	view.onBack = func() {
		if c.onClose != nil {
			c.onClose()
		}
	}
	return c
}

func (c *infoCoordinator) Name() string { return "info:" + c.game }

func (c *infoCoordinator) Start() {
	c.Presenter().ShowText([]string{
		c.game,
		"",
		"esc: close",
	})
}

// screenWithText pairs a stage screen with the text view it shows so the
// pair can be bound with MustViewable.
type screenWithText struct {
	*stage.Screen
	*textView
}

// settingsCoordinator shows the effective configuration.
type settingsCoordinator struct {
	*coordinator.Viewable[TextPresenter]
	env env
}

func newSettingsCoordinator(e env) *settingsCoordinator {
	view := &textView{title: "Settings"}
	return &settingsCoordinator{
		Viewable: coordinator.NewViewable[TextPresenter](e.backend.wrap(e.stage, view), view),
		env:      e,
	}
}

func (c *settingsCoordinator) Name() string { return "settings" }

func (c *settingsCoordinator) Start() {
	cfg := c.env.config
	c.Presenter().ShowText([]string{
		fmt.Sprintf("locale: %s", cfg.TUI.Locale),
		fmt.Sprintf("transition: %s", cfg.TUI.TransitionDuration),
		fmt.Sprintf("info style: %s", cfg.Demo.InfoStyle),
		fmt.Sprintf("games: %d", len(cfg.Demo.Games)),
	})
}
