package stage

import (
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
)

// member is implemented by every controller a Stage builds.
type member interface {
	screen.Controller
	base() *node
}

// container is implemented by controllers that hold children.
type container interface {
	release(child screen.Controller)
}

// node carries the presentation relations shared by all stage controllers.
type node struct {
	stage      *Stage
	self       screen.Controller
	parent     screen.Controller
	presented  screen.Controller
	presenting screen.Controller
	style      screen.Style
}

func (n *node) base() *node {
	return n
}

// Parent returns the stack or tab bar containing this controller.
func (n *node) Parent() screen.Controller {
	return n.parent
}

// Presented returns the overlay shown above this controller.
func (n *node) Presented() screen.Controller {
	return n.presented
}

// Presenting returns the controller this one is presented over, or nil.
func (n *node) Presenting() screen.Controller {
	return n.presenting
}

// Style returns the style this controller was presented with.
func (n *node) Style() screen.Style {
	return n.style
}

// Present shows c above this controller. A controller presents at most one
// overlay at a time; presenting while another is shown is refused.
func (n *node) Present(c screen.Controller, animated bool, style screen.Style, done func()) {
	logger := internal.GetInternalLogger()

	if c == nil || c == n.self {
		return
	}
	if n.presented != nil {
		logger.Warn("present refused: controller already presents an overlay")
		return
	}

	if m, ok := c.(member); ok {
		b := m.base()
		if b.presenting != nil {
			logger.Warn("present refused: controller is already presented elsewhere")
			return
		}
		b.presenting = n.self
		b.style = style
	}

	n.presented = c
	n.stage.schedule(TransitionPresent, animated, done)
}

// Dismiss removes the overlay above this controller together with anything
// presented above that overlay. A controller that presents nothing asks its
// own presenter to dismiss it.
func (n *node) Dismiss(animated bool, done func()) {
	if n.presented == nil {
		if n.presenting != nil {
			n.presenting.Dismiss(animated, done)
			return
		}
		// Nothing to dismiss; the callback still fires so callers waiting on it proceed.
		n.stage.schedule(TransitionDismiss, false, done)
		return
	}

	overlay := n.presented
	n.presented = nil
	for depth := 0; overlay != nil && depth < screen.MaxTopMostDepth; depth++ {
		m, ok := overlay.(member)
		if !ok {
			break
		}
		b := m.base()
		overlay = b.presented
		b.presenting = nil
		b.presented = nil
	}

	n.stage.schedule(TransitionDismiss, animated, done)
}

// adopt makes c a child of n.self, taking it away from any previous container.
func (n *node) adopt(c screen.Controller) {
	m, ok := c.(member)
	if !ok {
		return
	}
	b := m.base()
	if b.parent != nil && b.parent != n.self {
		if prev, ok := b.parent.(container); ok {
			prev.release(c)
		}
	}
	b.parent = n.self
}

// disown clears the parent link of a child that left n.self.
func (n *node) disown(c screen.Controller) {
	if m, ok := c.(member); ok && m.base().parent == n.self {
		m.base().parent = nil
	}
}
