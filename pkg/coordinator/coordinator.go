package coordinator

import (
	"slices"
	"sync"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Coordinating is a node in the coordinator tree.
//
// Implement it by embedding Coordinator and overriding Start and Stop:
//
//	type Settings struct {
//	    coordinator.Coordinator
//	}
//
//	func (s *Settings) Start() { ... }
type Coordinating interface {
	// Start runs once each time the node is attached to a parent.
	Start()
	// Stop runs once each time the node is detached from its parent, after
	// all of its own children have been detached and stopped.
	Stop()

	Children() []Coordinating
	AddChild(child Coordinating)
	RemoveChild(child Coordinating)

	node() *Coordinator
}

// Coordinator holds the child list and lifecycle state of a tree node. The
// zero value is ready to use and doubles as a holder for a root coordinator.
// A Coordinator must not be copied after first use.
type Coordinator struct {
	mu       sync.Mutex
	children []Coordinating
	parent   *Coordinator
	active   atomic.Bool

	idOnce sync.Once
	id     string
}

func (c *Coordinator) node() *Coordinator {
	return c
}

// Start does nothing. Override it to route the screen the coordinator owns.
func (c *Coordinator) Start() {}

// Stop does nothing. Children are detached by RemoveChild before Stop runs,
// so overrides do not need to call it.
func (c *Coordinator) Stop() {}

// ID returns a stable identity token for logs and dumps.
func (c *Coordinator) ID() string {
	c.idOnce.Do(func() {
		c.id = uuid.NewString()
	})
	return c.id
}

// IsActive reports whether the node is currently attached to a parent.
func (c *Coordinator) IsActive() bool {
	return c.active.Load()
}

// Children returns a snapshot of the attached children in insertion order.
func (c *Coordinator) Children() []Coordinating {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.children)
}

// indexOf must be called with mu held.
func (c *Coordinator) indexOf(n *Coordinator) int {
	return slices.IndexFunc(c.children, func(child Coordinating) bool {
		return child.node() == n
	})
}

// AddChild attaches child and starts it. Attaching a child that is already
// present is a no-op and does not start it again.
func (c *Coordinator) AddChild(child Coordinating) {
	if child == nil {
		return
	}

	n := child.node()
	logger := internal.GetInternalLogger()

	if n == c {
		logger.Warn("coordinator cannot be its own child", "id", c.ID())
		return
	}

	c.mu.Lock()
	if c.indexOf(n) >= 0 {
		c.mu.Unlock()
		return
	}
	c.children = append(c.children, child)
	c.mu.Unlock()

	n.mu.Lock()
	previous := n.parent
	n.parent = c
	n.mu.Unlock()

	if previous != nil && previous != c {
		logger.Warn("coordinator attached to a second parent",
			"child", n.ID(), "parent", c.ID(), "previous_parent", previous.ID())
	}

	n.active.Store(true)
	logger.Debug("coordinator attached", "parent", c.ID(), "child", n.ID())

	child.Start()
}

// RemoveChild detaches child and stops it. The child is unlinked first, then
// its own children are removed depth-first, then its Stop runs. Removing a
// node that is not a child is a no-op.
func (c *Coordinator) RemoveChild(child Coordinating) {
	if child == nil {
		return
	}

	n := child.node()

	c.mu.Lock()
	i := c.indexOf(n)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	c.mu.Unlock()

	n.mu.Lock()
	if n.parent == c {
		n.parent = nil
	}
	n.mu.Unlock()

	n.RemoveAllChildren()
	n.active.Store(false)
	internal.GetInternalLogger().Debug("coordinator detached", "parent", c.ID(), "child", n.ID())

	child.Stop()
}

// RemoveAllChildren detaches every current child in insertion order. The
// child list is snapshotted first, so children attached by a Stop hook while
// this runs are kept.
func (c *Coordinator) RemoveAllChildren() {
	for _, child := range c.Children() {
		c.RemoveChild(child)
	}
}
