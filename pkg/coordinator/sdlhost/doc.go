// Package sdlhost renders a stage with SDL2 for handheld and desktop builds.
//
// A Host owns the window, the renderer and a font. Each frame it polls input,
// completes transitions whose animation time has elapsed and draws the
// controller tree: a title bar with a back chevron for navigators, a tab strip
// for tab bars, and sheets as inset cards over their presenter.
//
// Screen owners draw their own content by implementing Drawer and react to
// input by implementing KeyHandler.
package sdlhost
