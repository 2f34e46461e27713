package screen

import (
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
)

// MaxTopMostDepth bounds TopMost and ancestor walks. Real presentation graphs
// are shallow; hitting the bound means the graph contains a cycle.
const MaxTopMostDepth = 64

// Option adjusts a single routing call.
type Option func(*routeOptions)

type routeOptions struct {
	style Style
	done  func()
}

// WithStyle selects the overlay style for Present. Other calls ignore it.
func WithStyle(style Style) Option {
	return func(o *routeOptions) {
		o.style = style
	}
}

// OnComplete registers a callback that runs once the transition has finished.
// It is a notification, not a wait: the call returns before done runs.
func OnComplete(done func()) Option {
	return func(o *routeOptions) {
		o.done = done
	}
}

func collect(opts []Option) routeOptions {
	var o routeOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func controllerOf(c Controllable) Controller {
	if c == nil {
		return nil
	}
	return c.Controller()
}

// Present shows to as an overlay above from.
func Present(from, to Controllable, animated bool, opts ...Option) {
	o := collect(opts)
	anchor, target := controllerOf(from), controllerOf(to)
	if anchor == nil || target == nil {
		internal.GetInternalLogger().Warn("present dropped: missing controller",
			"has_anchor", anchor != nil, "has_target", target != nil)
		return
	}
	anchor.Present(target, animated, o.style, o.done)
}

// Dismiss removes the overlay presented above from.
func Dismiss(from Controllable, animated bool, opts ...Option) {
	o := collect(opts)
	anchor := controllerOf(from)
	if anchor == nil {
		return
	}
	anchor.Dismiss(animated, o.done)
}

// NearestStack returns the stack that routes on behalf of c: c itself when it
// is a stack, otherwise its closest containing ancestor. It returns nil when
// no stack is reachable.
func NearestStack(c Controllable) Stack {
	current := controllerOf(c)
	for depth := 0; current != nil && depth < MaxTopMostDepth; depth++ {
		if s, ok := current.(Stack); ok {
			return s
		}
		current = current.Parent()
	}
	return nil
}

// Push appends to onto the stack reachable from from. It is a no-op when no
// stack is reachable.
func Push(from, to Controllable, animated bool, opts ...Option) {
	target := controllerOf(to)
	if target == nil {
		return
	}
	stack := NearestStack(from)
	if stack == nil {
		internal.GetInternalLogger().Debug("push dropped: no stack reachable")
		return
	}
	stack.Push(target, animated, collect(opts).done)
}

// Pop removes the top of the stack reachable from from.
func Pop(from Controllable, animated bool, opts ...Option) {
	stack := NearestStack(from)
	if stack == nil {
		internal.GetInternalLogger().Debug("pop dropped: no stack reachable")
		return
	}
	stack.Pop(animated, collect(opts).done)
}

// PopToRoot unwinds the stack reachable from from down to its root.
func PopToRoot(from Controllable, animated bool, opts ...Option) {
	stack := NearestStack(from)
	if stack == nil {
		internal.GetInternalLogger().Debug("pop to root dropped: no stack reachable")
		return
	}
	stack.PopToRoot(animated, collect(opts).done)
}

// SetStack replaces the contents of the stack reachable from from. The
// replacement is always animated.
func SetStack(from Controllable, to []Controllable, opts ...Option) {
	stack := NearestStack(from)
	if stack == nil {
		internal.GetInternalLogger().Debug("set stack dropped: no stack reachable")
		return
	}

	controllers := make([]Controller, 0, len(to))
	for _, c := range to {
		if ctrl := controllerOf(c); ctrl != nil {
			controllers = append(controllers, ctrl)
		}
	}
	stack.SetControllers(controllers, true, collect(opts).done)
}

// unwrap returns the controller layered directly above c, if any.
func unwrap(c Controller) Controller {
	switch v := c.(type) {
	case Stack:
		return v.Visible()
	case Tabs:
		// An overlay on the tab container covers whichever tab is selected.
		if presented := v.Presented(); presented != nil {
			return presented
		}
		return v.Selected()
	default:
		return c.Presented()
	}
}

// TopMost returns the controllable that is currently visible above from.
// It returns from itself when nothing is layered above it.
func TopMost(from Controllable) Controllable {
	top := from
	for depth := 0; depth < MaxTopMostDepth; depth++ {
		current := controllerOf(top)
		if current == nil {
			return top
		}
		next := unwrap(current)
		if next == nil || next == current {
			return top
		}
		c, ok := AsControllable(next)
		if !ok {
			return top
		}
		top = c
	}
	internal.GetInternalLogger().Warn("top-most resolution hit depth limit", "limit", MaxTopMostDepth)
	return top
}
