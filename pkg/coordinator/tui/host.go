package tui

import (
	"time"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/stage"
	tea "github.com/charmbracelet/bubbletea"
)

// Renderer is implemented by screen owners that draw content.
type Renderer interface {
	Render(width, height int) string
}

// KeyHandler is implemented by screen owners that react to keys while they
// are top-most. Reporting false lets the host apply its defaults: esc goes
// back and tab selects the next tab.
type KeyHandler interface {
	HandleKey(msg tea.KeyMsg) (tea.Cmd, bool)
}

// TransitionDoneMsg completes a stage transition.
type TransitionDoneMsg struct {
	ID int64
}

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Host is the bubbletea model for a coordinator tree rendered from a stage.
type Host struct {
	stage  *stage.Stage
	root   screen.Controllable
	flows  []coordinator.Coordinating
	holder coordinator.Coordinator

	opts   Options
	styles styles
	tr     translator

	width  int
	height int
}

// NewHost creates a host that renders root. flows are attached to the host's
// holder when the program starts and detached when it quits.
func NewHost(st *stage.Stage, root screen.Controllable, opts Options, flows ...coordinator.Coordinating) *Host {
	opts = opts.withDefaults()
	return &Host{
		stage:  st,
		root:   root,
		flows:  flows,
		opts:   opts,
		styles: newStyles(opts),
		tr:     newTranslator(opts.Locale),
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Holder returns the coordinator that owns the host's flows.
func (h *Host) Holder() *coordinator.Coordinator {
	return &h.holder
}

// Init starts the flows.
func (h *Host) Init() tea.Cmd {
	for _, flow := range h.flows {
		h.holder.AddChild(flow)
	}
	return h.flush()
}

// Update handles window sizing, keys and transition completion.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			h.Shutdown()
			return h, tea.Quit
		}
		cmd = h.handleKey(msg)

	case TransitionDoneMsg:
		if !h.stage.Complete(msg.ID) {
			internal.GetInternalLogger().Debug("unknown transition completed", "id", msg.ID)
		}
	}

	return h, tea.Batch(cmd, h.flush())
}

// Shutdown detaches every flow, stopping the whole tree depth-first.
func (h *Host) Shutdown() {
	h.holder.RemoveAllChildren()
}

func (h *Host) handleKey(msg tea.KeyMsg) tea.Cmd {
	top := screen.TopMost(h.root)
	if top == nil {
		return nil
	}

	if handler := keyHandlerOf(top); handler != nil {
		if cmd, handled := handler.HandleKey(msg); handled {
			return cmd
		}
	}

	switch msg.Type {
	case tea.KeyEsc:
		stage.Back(top, true)
	case tea.KeyTab:
		if tb := stage.EnclosingTabBar(top.Controller()); tb != nil {
			tb.SelectNext()
		}
	}
	return nil
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

// flush turns pending stage transitions into commands that complete them.
func (h *Host) flush() tea.Cmd {
	transitions := h.stage.Drain()
	if len(transitions) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(transitions))
	for _, t := range transitions {
		id := t.ID
		if t.Animated && h.opts.TransitionDuration > 0 {
			cmds = append(cmds, tea.Tick(h.opts.TransitionDuration, func(time.Time) tea.Msg {
				return TransitionDoneMsg{ID: id}
			}))
			continue
		}
		cmds = append(cmds, func() tea.Msg {
			return TransitionDoneMsg{ID: id}
		})
	}
	return tea.Batch(cmds...)
}

// View renders the controller tree.
func (h *Host) View() string {
	return h.render(h.root.Controller(), h.width, h.height)
}
