package stage

import "github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"

// Heading returns the title hosts show for c: a screen's own heading, or the
// heading of whatever a navigator or tab bar currently shows.
func Heading(c screen.Controller) string {
	for depth := 0; c != nil && depth < screen.MaxTopMostDepth; depth++ {
		switch v := c.(type) {
		case *Screen:
			return v.Heading()
		case *Navigator:
			c = v.Top()
		case *TabBar:
			c = v.Selected()
		default:
			return ""
		}
	}
	return ""
}

// StyleOf returns the style c was presented with. Controllers not built by a
// stage report StyleAutomatic.
func StyleOf(c screen.Controller) screen.Style {
	if m, ok := c.(member); ok {
		return m.base().style
	}
	return screen.StyleAutomatic
}
