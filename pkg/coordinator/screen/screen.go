package screen

// Controller is a single displayable unit supplied by the presentation layer.
type Controller interface {
	// Parent returns the container (stack or tabs) holding this controller, or nil.
	// It is a relation only; the container owns the child, not the reverse.
	Parent() Controller

	// Presented returns the overlay presented above this controller, or nil.
	Presented() Controller

	// Present displays c as an overlay above this controller. done, when
	// non-nil, runs once the transition has finished.
	Present(c Controller, animated bool, style Style, done func())

	// Dismiss removes the overlay presented above this controller.
	Dismiss(animated bool, done func())
}

// Stack is a Controller that owns an ordered, back-navigable sequence of controllers.
type Stack interface {
	Controller

	// Controllers returns a copy of the stack, root first.
	Controllers() []Controller

	// Visible returns the overlay presented on the stack if any, otherwise the top controller.
	Visible() Controller

	Push(c Controller, animated bool, done func())
	Pop(animated bool, done func())
	PopToRoot(animated bool, done func())
	SetControllers(cs []Controller, animated bool, done func())
}

// Tabs is a Controller that shows one of several child controllers at a time.
type Tabs interface {
	Controller

	Selected() Controller
}

// Toolkit constructs stack containers in the presentation layer.
// root may be nil for an empty stack.
type Toolkit interface {
	NewStack(root Controller) Stack
}

// Controllable is anything that can be routed to: a screen, a navigation
// stack or a composite container. It exposes the presentation-layer
// controller that anchors it.
type Controllable interface {
	Controller() Controller
}

// Owned is implemented by controllers that are embedded in an application
// object. TopMost reports the owner instead of the bare controller so callers
// can reach presenter methods defined on the application type.
type Owned interface {
	Owner() Controllable
}

// AsControllable maps a presentation-layer controller back to the object
// that routes with it. It reports false when c is neither Owned nor Controllable.
func AsControllable(c Controller) (Controllable, bool) {
	if c == nil {
		return nil, false
	}
	if o, ok := c.(Owned); ok {
		if owner := o.Owner(); owner != nil {
			return owner, true
		}
	}
	cc, ok := c.(Controllable)
	return cc, ok
}
