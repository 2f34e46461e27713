package stage

import "github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"

// Titled is implemented by screen owners that provide their own title.
type Titled interface {
	Title() string
}

// Screen is a leaf controller. Application screens embed *Screen and pass
// themselves as the owner so routing resolves back to the application type:
//
//	type ListScreen struct {
//	    *stage.Screen
//	    items []string
//	}
//
//	func NewListScreen(st *stage.Stage) *ListScreen {
//	    s := &ListScreen{}
//	    s.Screen = st.NewScreen(s)
//	    return s
//	}
type Screen struct {
	node
	owner any
	title string
}

var (
	_ screen.Controller   = (*Screen)(nil)
	_ screen.Controllable = (*Screen)(nil)
	_ screen.Owned        = (*Screen)(nil)
)

// NewScreen creates a screen owned by owner. owner may be nil.
func (s *Stage) NewScreen(owner any) *Screen {
	sc := &Screen{owner: owner}
	sc.stage = s
	sc.self = sc
	return sc
}

// Controller returns the screen itself.
func (sc *Screen) Controller() screen.Controller {
	return sc
}

// Owner returns the application object that embeds this screen, if it is routable.
func (sc *Screen) Owner() screen.Controllable {
	if c, ok := sc.owner.(screen.Controllable); ok {
		return c
	}
	return nil
}

// Content returns the owner as given to NewScreen. Hosts type-assert it to
// their rendering interfaces.
func (sc *Screen) Content() any {
	return sc.owner
}

// SetTitle sets the heading used when the owner does not implement Titled.
func (sc *Screen) SetTitle(title string) {
	sc.title = title
}

// Heading returns the owner's title, falling back to the one set with SetTitle.
func (sc *Screen) Heading() string {
	if t, ok := sc.owner.(Titled); ok {
		return t.Title()
	}
	return sc.title
}
