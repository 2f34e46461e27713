package coordinator

// Container carries the dependencies a coordinator and the screens it owns
// need. A parent builds one when it creates a child; the child keeps it for
// its whole lifetime and never mutates it.
type Container[D any] struct {
	dependency D
}

// NewContainer wraps dependency.
func NewContainer[D any](dependency D) *Container[D] {
	return &Container[D]{dependency: dependency}
}

// Dependency returns the wrapped dependency bundle.
func (c *Container[D]) Dependency() D {
	return c.dependency
}

// Build hands the container's dependency to a constructor. Parents use it to
// create a child coordinator from the container they prepared for it.
func Build[D, T any](c *Container[D], build func(D) T) T {
	return build(c.dependency)
}
