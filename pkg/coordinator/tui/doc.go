// Package tui hosts a coordinator tree in the terminal.
//
// Host is a bubbletea model that renders the controllers of a stage: a
// navigator draws a title bar with a back hint, a tab bar draws its tabs,
// screens draw whatever their owner's Render returns, and overlays are drawn
// as centered sheets or full-screen replacements depending on their style.
//
// Keys go to the top-most screen when it implements KeyHandler. Animated
// transitions complete after Options.TransitionDuration, which is when the
// completion callbacks passed to the screen routing functions run.
//
//	st := stage.New()
//	list := NewListScreen(st)
//	nav := screen.NewNavigationWithRoot(st, list)
//	host := tui.NewHost(st, nav, tui.DefaultOptions(), NewListCoordinator(list))
//	if err := tui.Run(host); err != nil {
//	    log.Fatal(err)
//	}
package tui
