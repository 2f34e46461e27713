package tui

import (
	"strings"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/stage"
	"github.com/charmbracelet/lipgloss"
)

func (h *Host) render(c screen.Controller, width, height int) string {
	if c == nil {
		return ""
	}

	var body string
	switch v := c.(type) {
	case *stage.Navigator:
		body = h.renderNavigator(v, width, height)
	case *stage.TabBar:
		body = h.renderTabs(v, width, height)
	case *stage.Screen:
		body = h.renderScreen(v, width, height)
	}

	if overlay := c.Presented(); overlay != nil {
		body = h.renderOverlay(overlay, width, height)
	}
	return body
}

func (h *Host) renderNavigator(nav *stage.Navigator, width, height int) string {
	top := nav.Top()

	header := h.styles.Title.Render(stage.Heading(top))
	if nav.CanGoBack() {
		header = lipgloss.JoinHorizontal(lipgloss.Top,
			h.styles.Hint.Render(h.tr.text(msgNavigationBack, nil)), "  ", header)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		h.styles.Hint.Render(strings.Repeat("─", max(width, 0))),
		h.render(top, width, max(height-2, 0)),
	)
}

func (h *Host) renderTabs(tb *stage.TabBar, width, height int) string {
	labels := make([]string, 0, len(tb.Tabs()))
	for i, tab := range tb.Tabs() {
		label := stage.Heading(tab)
		if label == "" {
			label = h.tr.text(msgUntitledTab, map[string]any{"Index": i + 1})
		}
		if i == tb.SelectedIndex() {
			labels = append(labels, h.styles.TabActive.Render(label))
		} else {
			labels = append(labels, h.styles.TabInactive.Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, labels...),
		h.render(tb.Selected(), width, max(height-2, 0)),
		h.styles.Hint.Render(h.tr.text(msgTabSwitchHint, nil)),
	)
}

func (h *Host) renderScreen(sc *stage.Screen, width, height int) string {
	if r, ok := sc.Content().(Renderer); ok {
		return r.Render(width, height)
	}
	return h.styles.Hint.Render(h.tr.text(msgEmptyScreen, nil))
}

// renderOverlay draws a sheet as a centered card and anything else full screen.
func (h *Host) renderOverlay(overlay screen.Controller, width, height int) string {
	style := stage.StyleOf(overlay)
	if !style.IsSheet() {
		return h.render(overlay, width, height)
	}

	w, hgt := sheetSize(style, width, height)
	// Border and padding take two columns each side and one row top and bottom.
	content := h.render(overlay, max(w-4, 0), max(hgt-2, 0))
	card := h.styles.Sheet.Width(max(w-2, 0)).Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// sheetSize returns the outer size of a sheet card for the available area.
func sheetSize(style screen.Style, width, height int) (int, int) {
	switch style {
	case screen.StyleFormSheet:
		return width / 2, height / 2
	default:
		return width * 3 / 4, height * 3 / 4
	}
}
