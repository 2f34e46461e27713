package stage

import "github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"

// TabBar shows one of several child controllers at a time.
type TabBar struct {
	node
	tabs     []screen.Controller
	selected int
}

var (
	_ screen.Tabs         = (*TabBar)(nil)
	_ screen.Controllable = (*TabBar)(nil)
)

// NewTabBar creates a tab bar with tabs in order. The first tab is selected.
func (s *Stage) NewTabBar(tabs ...screen.Controller) *TabBar {
	tb := &TabBar{}
	tb.stage = s
	tb.self = tb
	for _, c := range tabs {
		if c == nil {
			continue
		}
		tb.adopt(c)
		tb.tabs = append(tb.tabs, c)
	}
	return tb
}

// Controller returns the tab bar itself.
func (tb *TabBar) Controller() screen.Controller {
	return tb
}

// Tabs returns a copy of the tabs in order.
func (tb *TabBar) Tabs() []screen.Controller {
	return append([]screen.Controller(nil), tb.tabs...)
}

// Selected returns the selected tab, or nil when there are none.
func (tb *TabBar) Selected() screen.Controller {
	if len(tb.tabs) == 0 {
		return nil
	}
	return tb.tabs[tb.selected]
}

// SelectedIndex returns the position of the selected tab.
func (tb *TabBar) SelectedIndex() int {
	return tb.selected
}

// Select switches to the tab at index i. Out of range indexes are ignored.
func (tb *TabBar) Select(i int) {
	if i < 0 || i >= len(tb.tabs) || i == tb.selected {
		return
	}
	tb.selected = i
	tb.stage.schedule(TransitionSelect, false, nil)
}

// SelectNext moves the selection one tab to the right, wrapping around.
func (tb *TabBar) SelectNext() {
	if len(tb.tabs) == 0 {
		return
	}
	tb.Select((tb.selected + 1) % len(tb.tabs))
}

func (tb *TabBar) release(child screen.Controller) {
	for i, c := range tb.tabs {
		if c != child {
			continue
		}
		tb.tabs = append(tb.tabs[:i], tb.tabs[i+1:]...)
		if i < tb.selected || tb.selected >= len(tb.tabs) {
			tb.selected = max(tb.selected-1, 0)
		}
		tb.disown(child)
		return
	}
}
