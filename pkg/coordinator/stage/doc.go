// Package stage is an in-memory presentation layer for the screen package.
//
// A Stage builds screens, navigation stacks and tab bars and keeps the
// relations between them: which stack contains a controller, which overlay is
// presented above it and with which style. It does not draw anything. Hosts
// (tui, sdlhost) walk the controller tree to render it and drive transitions:
//
//	for _, tr := range st.Drain() {
//	    // wait tr.Animated ? duration : 0, then
//	    st.Complete(tr.ID)
//	}
//
// Completion callbacks passed to Present, Dismiss, Push and friends run only
// from Complete, so they always fire on the host's goroutine.
//
// A Stage and everything built from it belong to a single goroutine.
package stage
