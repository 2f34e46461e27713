package main

import (
	"strings"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/stage"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/veandco/go-sdl2/sdl"
)

// backend builds stage screens whose owners render a view for one host.
type backend interface {
	wrap(st *stage.Stage, v view) *stage.Screen
}

type tuiBackend struct{}

func (tuiBackend) wrap(st *stage.Stage, v view) *stage.Screen {
	s := &tuiScreen{view: v}
	s.Screen = st.NewScreen(s)
	return s.Screen
}

// tuiScreen adapts a view to tui.Renderer and tui.KeyHandler.
type tuiScreen struct {
	*stage.Screen
	view view
}

func (s *tuiScreen) Title() string { return s.view.Title() }

func (s *tuiScreen) Render(width, height int) string {
	lines := s.view.Lines()
	if len(lines) > height && height > 0 {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (s *tuiScreen) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "up", "k":
		return nil, s.view.Act(actionUp)
	case "down", "j":
		return nil, s.view.Act(actionDown)
	case "enter":
		return nil, s.view.Act(actionSelect)
	case "i":
		return nil, s.view.Act(actionInfo)
	case "esc", "backspace":
		return nil, s.view.Act(actionBack)
	}
	return nil, false
}

type sdlBackend struct {
	row      sdl.Color
	selected sdl.Color
}

func (b sdlBackend) wrap(st *stage.Stage, v view) *stage.Screen {
	s := &sdlScreen{view: v, row: b.row, selected: b.selected}
	s.Screen = st.NewScreen(s)
	return s.Screen
}

const (
	sdlRowHeight = 40
	sdlRowGap    = 8
)

// sdlScreen adapts a view to sdlhost.Drawer and sdlhost.KeyHandler. Rows
// are drawn as bars; the row marked by the view's cursor is highlighted.
type sdlScreen struct {
	*stage.Screen
	view     view
	row      sdl.Color
	selected sdl.Color
}

func (s *sdlScreen) Title() string { return s.view.Title() }

func (s *sdlScreen) Draw(renderer *sdl.Renderer, bounds sdl.Rect) {
	y := bounds.Y
	for _, line := range s.view.Lines() {
		if y+sdlRowHeight > bounds.Y+bounds.H {
			return
		}
		c := s.row
		if strings.HasPrefix(line, "> ") {
			c = s.selected
		}
		if line != "" {
			renderer.SetDrawColor(c.R, c.G, c.B, c.A)
			renderer.FillRect(&sdl.Rect{X: bounds.X, Y: y, W: bounds.W, H: sdlRowHeight})
		}
		y += sdlRowHeight + sdlRowGap
	}
}

func (s *sdlScreen) HandleKey(key sdl.Keycode) bool {
	switch key {
	case sdl.K_UP:
		return s.view.Act(actionUp)
	case sdl.K_DOWN:
		return s.view.Act(actionDown)
	case sdl.K_RETURN:
		return s.view.Act(actionSelect)
	case sdl.K_i:
		return s.view.Act(actionInfo)
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		return s.view.Act(actionBack)
	}
	return false
}
