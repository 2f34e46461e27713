package sdlhost

import (
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/stage"
	"github.com/veandco/go-sdl2/sdl"
)

func (h *Host) handleKey(key sdl.Keycode) {
	top := screen.TopMost(h.root)
	if top == nil {
		return
	}

	if handler := keyHandlerOf(top); handler != nil && handler.HandleKey(key) {
		return
	}

	switch key {
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		stage.Back(top, true)
	case sdl.K_TAB:
		if tb := stage.EnclosingTabBar(top.Controller()); tb != nil {
			tb.SelectNext()
		}
	}
}

func keyHandlerOf(top screen.Controllable) KeyHandler {
	if handler, ok := top.(KeyHandler); ok {
		return handler
	}
	if sc, ok := top.Controller().(*stage.Screen); ok {
		if handler, ok := sc.Content().(KeyHandler); ok {
			return handler
		}
	}
	return nil
}
