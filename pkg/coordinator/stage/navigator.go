package stage

import (
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
)

// Navigator is a stack container.
type Navigator struct {
	node
	stack controllerStack
}

var (
	_ screen.Stack        = (*Navigator)(nil)
	_ screen.Controllable = (*Navigator)(nil)
)

// NewNavigator creates a navigator, optionally rooted at root.
func (s *Stage) NewNavigator(root screen.Controller) *Navigator {
	nav := &Navigator{}
	nav.stage = s
	nav.self = nav
	if root != nil {
		nav.adopt(root)
		nav.stack.Push(root)
	}
	return nav
}

// Controller returns the navigator itself.
func (nav *Navigator) Controller() screen.Controller {
	return nav
}

// Controllers returns a copy of the stack, root first.
func (nav *Navigator) Controllers() []screen.Controller {
	return nav.stack.All()
}

// Len returns the stack depth.
func (nav *Navigator) Len() int {
	return nav.stack.Len()
}

// Top returns the controller on top of the stack, or nil when empty.
func (nav *Navigator) Top() screen.Controller {
	return nav.stack.Peek()
}

// Visible returns the overlay presented on the navigator, if any, otherwise the top controller.
func (nav *Navigator) Visible() screen.Controller {
	if nav.presented != nil {
		return nav.presented
	}
	return nav.stack.Peek()
}

// CanGoBack reports whether Pop would remove anything.
func (nav *Navigator) CanGoBack() bool {
	return nav.stack.Len() > 1
}

// Push puts c on top of the stack. Pushing a controller that is already on
// this stack is refused.
func (nav *Navigator) Push(c screen.Controller, animated bool, done func()) {
	if c == nil {
		return
	}
	if nav.stack.IndexOf(c) >= 0 {
		internal.GetInternalLogger().Warn("push refused: controller already on the stack")
		return
	}
	nav.adopt(c)
	nav.stack.Push(c)
	nav.stage.schedule(TransitionPush, animated, done)
}

// Pop removes the top controller. The root is never popped.
func (nav *Navigator) Pop(animated bool, done func()) {
	if nav.stack.Len() <= 1 {
		nav.stage.schedule(TransitionPop, false, done)
		return
	}
	nav.disown(nav.stack.Pop())
	nav.stage.schedule(TransitionPop, animated, done)
}

// PopToRoot removes every controller above the root.
func (nav *Navigator) PopToRoot(animated bool, done func()) {
	if nav.stack.Len() <= 1 {
		nav.stage.schedule(TransitionPopToRoot, false, done)
		return
	}
	for nav.stack.Len() > 1 {
		nav.disown(nav.stack.Pop())
	}
	nav.stage.schedule(TransitionPopToRoot, animated, done)
}

// SetControllers replaces the whole stack. Duplicate entries keep their first position.
func (nav *Navigator) SetControllers(cs []screen.Controller, animated bool, done func()) {
	next := controllerStack{}
	for _, c := range cs {
		if c == nil || next.IndexOf(c) >= 0 {
			continue
		}
		next.Push(c)
	}

	for _, old := range nav.stack.All() {
		if next.IndexOf(old) < 0 {
			nav.disown(old)
		}
	}
	for _, c := range next.All() {
		nav.adopt(c)
	}

	nav.stack = next
	nav.stage.schedule(TransitionSetStack, animated, done)
}

func (nav *Navigator) release(child screen.Controller) {
	if nav.stack.Remove(child) {
		nav.disown(child)
	}
}
