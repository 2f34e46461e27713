// Package screen defines the screen-routing contract used by coordinators.
//
// A coordinator never talks to a global navigator. It holds the Controllable
// of the screen it manages and routes relative to it:
//
//	func (c *DetailCoordinator) Start() {
//	    screen.Push(c.parentScreen, c.Controllable(), true)
//	}
//
//	func (c *DetailCoordinator) Stop() {
//	    screen.Pop(c.parentScreen, true)
//	}
//
// # Presentation layer
//
// The concrete presentation technology is supplied through the Controller,
// Stack, Tabs and Toolkit interfaces. The stage package provides an in-memory
// implementation that the tui and sdlhost packages render.
//
// # Resolution rules
//
// Push, Pop, PopToRoot and SetStack act on the stack that is either the
// routed controller itself or its nearest containing ancestor, found by
// following Parent back-references at call time. When no stack is reachable
// the call is dropped.
//
// TopMost follows stack -> visible, tabs -> selected, otherwise the presented
// overlay, until nothing further is layered above.
package screen
