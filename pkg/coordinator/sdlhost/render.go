package sdlhost

import (
	"fmt"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/stage"
	"github.com/veandco/go-sdl2/sdl"
)

func (h *Host) draw() error {
	w, hgt, err := h.renderer.GetOutputSize()
	if err != nil {
		return fmt.Errorf("sdlhost: output size: %w", err)
	}
	if lw, lh := h.renderer.GetLogicalSize(); lw > 0 && lh > 0 {
		w, hgt = lw, lh
	}

	bounds := sdl.Rect{W: w, H: hgt}
	h.fill(bounds, h.theme.Background)
	if h.background != nil {
		h.renderer.Copy(h.background, nil, &bounds)
	}
	h.drawController(h.root.Controller(), bounds, 0)
	return nil
}

func (h *Host) drawController(c screen.Controller, bounds sdl.Rect, depth int) {
	if c == nil || depth >= screen.MaxTopMostDepth {
		return
	}

	switch v := c.(type) {
	case *stage.Navigator:
		h.drawNavigator(v, bounds, depth)
	case *stage.TabBar:
		h.drawTabBar(v, bounds, depth)
	case *stage.Screen:
		h.drawScreen(v, bounds)
	}

	if overlay := c.Presented(); overlay != nil {
		h.drawOverlay(overlay, bounds, depth+1)
	}
}

func (h *Host) drawNavigator(nav *stage.Navigator, bounds sdl.Rect, depth int) {
	bar, content := splitTop(bounds, titleBarHeight)
	h.fill(bar, h.theme.Bar)

	if nav.CanGoBack() && h.chevron != nil {
		slot := sdl.Rect{X: bar.X, Y: bar.Y, W: bar.H, H: bar.H}
		dst := centerIn(slot, chevronSize, chevronSize)
		h.chevron.SetColorMod(h.theme.Hint.R, h.theme.Hint.G, h.theme.Hint.B)
		h.renderer.Copy(h.chevron, nil, &dst)
	}
	h.drawText(stage.Heading(nav.Top()), h.theme.Text, bar)

	h.drawController(nav.Top(), content, depth+1)
}

func (h *Host) drawTabBar(tb *stage.TabBar, bounds sdl.Rect, depth int) {
	content, strip := splitBottom(bounds, tabStripHeight)
	h.drawController(tb.Selected(), content, depth+1)

	h.fill(strip, h.theme.Bar)
	tabs := tb.Tabs()
	for i, r := range tabRects(strip, len(tabs)) {
		color := h.theme.Hint
		if i == tb.SelectedIndex() {
			h.fill(r, h.theme.Accent)
			color = h.theme.Text
		}
		label := stage.Heading(tabs[i])
		if label == "" {
			label = fmt.Sprintf("Tab %d", i+1)
		}
		h.drawText(label, color, r)
	}
}

func (h *Host) drawScreen(sc *stage.Screen, bounds sdl.Rect) {
	if d, ok := sc.Content().(Drawer); ok {
		d.Draw(h.renderer, UniformPadding(contentPadding).Inset(bounds))
	}
}

// drawOverlay draws sheets as an inset card over a dimmed presenter and
// anything else over the whole area.
func (h *Host) drawOverlay(overlay screen.Controller, bounds sdl.Rect, depth int) {
	style := stage.StyleOf(overlay)
	if !style.IsSheet() {
		h.fill(bounds, h.theme.Background)
		h.drawController(overlay, bounds, depth)
		return
	}

	h.fill(bounds, h.theme.Scrim)
	card := sheetRect(style, bounds)
	h.fill(card, h.theme.Sheet)
	h.drawController(overlay, card, depth)
}

func (h *Host) fill(r sdl.Rect, c sdl.Color) {
	h.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	h.renderer.FillRect(&r)
}

// drawText centers text in r, clipping it to r.
func (h *Host) drawText(text string, c sdl.Color, r sdl.Rect) {
	if h.font == nil || text == "" {
		return
	}

	texture, err := h.label(text, c)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to render label", "text", text, "error", err)
		return
	}

	_, _, w, hgt, err := texture.Query()
	if err != nil {
		return
	}
	w, hgt = min(w, r.W), min(hgt, r.H)

	src := sdl.Rect{W: w, H: hgt}
	dst := centerIn(r, w, hgt)
	h.renderer.Copy(texture, &src, &dst)
}

func (h *Host) label(text string, c sdl.Color) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s#%02X%02X%02X%02X", text, c.R, c.G, c.B, c.A)
	if texture, ok := h.labels.Get(key); ok && texture != nil {
		return texture, nil
	}

	surface, err := h.font.RenderUTF8Blended(text, c)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := h.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	h.labels.Set(key, texture)
	return texture, nil
}
