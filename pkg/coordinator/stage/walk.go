package stage

import "github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"

type presentingController interface {
	Presenting() screen.Controller
}

// Back performs the default "go back" for the screen a user is looking at:
// it pops the nearest stack when there is something beneath the top, and
// otherwise dismisses the nearest presented overlay. It reports whether
// anything was done.
func Back(top screen.Controllable, animated bool) bool {
	if top == nil {
		return false
	}

	if stack := screen.NearestStack(top); stack != nil && len(stack.Controllers()) > 1 {
		screen.Pop(top, animated)
		return true
	}

	if presenter := EnclosingPresenter(top.Controller()); presenter != nil {
		presenter.Dismiss(animated, nil)
		return true
	}
	return false
}

// EnclosingPresenter walks up from c through containers to the first
// controller that was presented and returns the controller that presented it.
func EnclosingPresenter(c screen.Controller) screen.Controller {
	for depth := 0; c != nil && depth < screen.MaxTopMostDepth; depth++ {
		if p, ok := c.(presentingController); ok {
			if presenter := p.Presenting(); presenter != nil {
				return presenter
			}
		}
		c = c.Parent()
	}
	return nil
}

// EnclosingTabBar returns the nearest tab bar containing c, or c itself.
func EnclosingTabBar(c screen.Controller) *TabBar {
	for depth := 0; c != nil && depth < screen.MaxTopMostDepth; depth++ {
		if tb, ok := c.(*TabBar); ok {
			return tb
		}
		c = c.Parent()
	}
	return nil
}
