package sdlhost

import (
	"fmt"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/constants"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/stage"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Drawer is implemented by screen owners that draw their own content.
// bounds is the area below the host's chrome.
type Drawer interface {
	Draw(renderer *sdl.Renderer, bounds sdl.Rect)
}

// KeyHandler is implemented by screen owners that react to keys while they
// are top-most. Returning false lets the host apply its defaults: escape and
// backspace go back, tab selects the next tab.
type KeyHandler interface {
	HandleKey(key sdl.Keycode) bool
}

// Host drives a stage with an SDL window.
type Host struct {
	stage  *stage.Stage
	root   screen.Controllable
	flows  []coordinator.Coordinating
	holder coordinator.Coordinator

	opts  Options
	theme Theme

	window     *sdl.Window
	renderer   *sdl.Renderer
	font       *ttf.Font
	chevron    *sdl.Texture
	background *sdl.Texture
	labels     *textureCache

	clock       transitionClock
	hasVSync    bool
	lastPresent uint64
	running     bool
}

// New initializes SDL and opens a window that renders root. flows are
// attached when Run starts and detached when it returns.
func New(st *stage.Stage, root screen.Controllable, opts Options, flows ...coordinator.Coordinating) (*Host, error) {
	opts = opts.withDefaults()

	theme, err := opts.Theme.Resolve()
	if err != nil {
		return nil, fmt.Errorf("sdlhost: theme: %w", err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdlhost: init sdl: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: init ttf: %w", err)
	}

	h := &Host{
		stage:  st,
		root:   root,
		flows:  flows,
		opts:   opts,
		theme:  theme,
		labels: newTextureCache(defaultMaxCacheSize),
		clock:  transitionClock{duration: opts.TransitionDuration},
	}

	h.window, h.renderer, h.hasVSync, err = createWindow(opts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: create window: %w", err)
	}

	if opts.FontPath != "" {
		h.font, err = ttf.OpenFont(opts.FontPath, opts.FontSize)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to open font; titles will not be drawn", "path", opts.FontPath, "error", err)
		}
	}

	h.chevron, err = iconTexture(h.renderer, chevronSVG, chevronSize)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load back chevron", "error", err)
	}

	h.loadBackground()

	return h, nil
}

func (h *Host) loadBackground() {
	if h.opts.BackgroundPath == "" {
		return
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	texture, err := img.LoadTexture(h.renderer, h.opts.BackgroundPath)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load background image", "path", h.opts.BackgroundPath, "error", err)
		return
	}
	h.background = texture
}

// Holder returns the coordinator that owns the host's flows.
func (h *Host) Holder() *coordinator.Coordinator {
	return &h.holder
}

// Run starts the flows and processes frames until the window is closed or
// Stop is called. The flows are stopped before Run returns.
func (h *Host) Run() error {
	for _, flow := range h.flows {
		h.holder.AddChild(flow)
	}
	defer h.holder.RemoveAllChildren()

	h.running = true
	for h.running {
		h.pollEvents()
		h.advance(sdl.GetTicks64())
		if err := h.draw(); err != nil {
			return err
		}
		h.present()
	}

	return nil
}

// Stop ends the frame loop after the current frame.
func (h *Host) Stop() {
	h.running = false
}

func (h *Host) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			h.running = false
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				h.handleKey(e.Keysym.Sym)
			}
		}
	}
}

// advance schedules newly requested transitions and completes the ones
// whose animation time has passed.
func (h *Host) advance(now uint64) {
	h.clock.add(h.stage.Drain(), now)
	for _, id := range h.clock.due(now) {
		if !h.stage.Complete(id) {
			internal.GetInternalLogger().Debug("unknown transition completed", "id", id)
		}
	}
}

// present swaps the render buffer and enforces ~60fps frame timing when
// vsync is not available.
func (h *Host) present() {
	h.renderer.Present()
	if h.hasVSync {
		return
	}

	interval := uint64(constants.FrameInterval.Milliseconds())
	now := sdl.GetTicks64()
	if elapsed := now - h.lastPresent; elapsed < interval {
		sdl.Delay(uint32(interval - elapsed))
	}
	h.lastPresent = sdl.GetTicks64()
}

// Close releases every SDL resource the host created.
func (h *Host) Close() {
	h.labels.Destroy()
	destroyTexture(h.chevron)
	if h.background != nil {
		h.background.Destroy()
		img.Quit()
	}
	if h.font != nil {
		h.font.Close()
	}
	if h.renderer != nil {
		h.renderer.Destroy()
	}
	if h.window != nil {
		h.window.Destroy()
	}
	ttf.Quit()
	sdl.Quit()
}
