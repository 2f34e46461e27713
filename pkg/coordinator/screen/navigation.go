package screen

// Navigation is a Controllable that directly owns a stack container. Routing
// calls made on it apply to its own stack without an ancestor lookup.
type Navigation struct {
	stack Stack
}

// NewNavigation creates a navigation with an empty stack.
func NewNavigation(tk Toolkit) *Navigation {
	return &Navigation{stack: tk.NewStack(nil)}
}

// NewNavigationWithRoot creates a navigation whose stack starts with root.
func NewNavigationWithRoot(tk Toolkit, root Controllable) *Navigation {
	return &Navigation{stack: tk.NewStack(controllerOf(root))}
}

// WrapStack adopts a stack that was built, and possibly populated, elsewhere.
func WrapStack(stack Stack) *Navigation {
	return &Navigation{stack: stack}
}

// Controller returns the owned stack.
func (n *Navigation) Controller() Controller {
	return n.stack
}

// Stack returns the owned stack.
func (n *Navigation) Stack() Stack {
	return n.stack
}

// Len returns the number of controllers currently on the stack.
func (n *Navigation) Len() int {
	return len(n.stack.Controllers())
}
