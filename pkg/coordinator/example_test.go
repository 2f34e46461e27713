package coordinator_test

import (
	"fmt"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/stage"
)

// Presenter interfaces - what each coordinator may tell its screen
type GamesPresenter interface {
	ShowGames(names []string)
}

type DetailPresenter interface {
	ShowGame(name string)
}

// Screens - normally built by a host package, here rendered with fmt
type GamesScreen struct {
	*stage.Screen
}

func NewGamesScreen(st *stage.Stage) *GamesScreen {
	s := &GamesScreen{}
	s.Screen = st.NewScreen(s)
	return s
}

func (s *GamesScreen) Title() string { return "Games" }

func (s *GamesScreen) ShowGames(names []string) {
	fmt.Println("games:", names)
}

type DetailScreen struct {
	*stage.Screen
}

func NewDetailScreen(st *stage.Stage) *DetailScreen {
	s := &DetailScreen{}
	s.Screen = st.NewScreen(s)
	return s
}

func (s *DetailScreen) Title() string { return "Detail" }

func (s *DetailScreen) ShowGame(name string) {
	fmt.Println("detail:", name)
}

// Dependencies handed from parent to child
type DetailDependency struct {
	Stage *stage.Stage
	Game  string
}

// Coordinators
type DetailCoordinator struct {
	*coordinator.Viewable[DetailPresenter]
	game string
}

func NewDetailCoordinator(dep DetailDependency) *DetailCoordinator {
	view := NewDetailScreen(dep.Stage)
	return &DetailCoordinator{
		Viewable: coordinator.NewViewable[DetailPresenter](view, view),
		game:     dep.Game,
	}
}

func (c *DetailCoordinator) Start() {
	c.Presenter().ShowGame(c.game)
}

func (c *DetailCoordinator) Stop() {
	fmt.Println("detail stopped")
}

type GamesCoordinator struct {
	*coordinator.Viewable[GamesPresenter]
	stage  *stage.Stage
	detail *DetailCoordinator
}

func (c *GamesCoordinator) Start() {
	c.Presenter().ShowGames([]string{"Portal", "Half-Life"})
}

func (c *GamesCoordinator) Select(game string) {
	c.detail = coordinator.Build(
		coordinator.NewContainer(DetailDependency{Stage: c.stage, Game: game}),
		NewDetailCoordinator,
	)
	screen.Push(c, c.detail, true)
	c.AddChild(c.detail)
}

func (c *GamesCoordinator) Back() {
	screen.Pop(c, true)
	c.RemoveChild(c.detail)
}

// Example wires a two-level flow onto a stage navigator.
func Example() {
	st := stage.New()
	view := NewGamesScreen(st)
	nav := screen.NewNavigationWithRoot(st, view)

	games := &GamesCoordinator{
		Viewable: coordinator.MustViewable[GamesPresenter](view),
		stage:    st,
	}

	var root coordinator.Coordinator
	root.AddChild(games)

	games.Select("Portal")
	st.Settle()
	fmt.Println("top:", stage.Heading(screen.TopMost(nav).Controller()))

	games.Back()
	st.Settle()
	fmt.Println("top:", stage.Heading(screen.TopMost(nav).Controller()))

	// Output:
	// games: [Portal Half-Life]
	// detail: Portal
	// top: Detail
	// detail stopped
	// top: Games
}
