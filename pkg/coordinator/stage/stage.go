package stage

import (
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"go.uber.org/atomic"
)

// TransitionKind names the mutation a transition animates.
type TransitionKind int

const (
	TransitionPresent TransitionKind = iota
	TransitionDismiss
	TransitionPush
	TransitionPop
	TransitionPopToRoot
	TransitionSetStack
	TransitionSelect
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionPresent:
		return "present"
	case TransitionDismiss:
		return "dismiss"
	case TransitionPush:
		return "push"
	case TransitionPop:
		return "pop"
	case TransitionPopToRoot:
		return "pop_to_root"
	case TransitionSetStack:
		return "set_stack"
	case TransitionSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Transition is a state change waiting for its host to finish animating it.
type Transition struct {
	ID       int64
	Kind     TransitionKind
	Animated bool
}

// Stage owns the transition queue shared by every controller it builds.
type Stage struct {
	nextID    *atomic.Int64
	pending   []Transition
	callbacks map[int64]func()
	inFlight  map[int64]Transition
}

var _ screen.Toolkit = (*Stage)(nil)

// New creates an empty stage.
func New() *Stage {
	return &Stage{
		nextID:    atomic.NewInt64(0),
		callbacks: make(map[int64]func()),
		inFlight:  make(map[int64]Transition),
	}
}

// NewStack implements screen.Toolkit.
func (s *Stage) NewStack(root screen.Controller) screen.Stack {
	return s.NewNavigator(root)
}

func (s *Stage) schedule(kind TransitionKind, animated bool, done func()) {
	t := Transition{ID: s.nextID.Inc(), Kind: kind, Animated: animated}
	s.pending = append(s.pending, t)
	s.inFlight[t.ID] = t
	if done != nil {
		s.callbacks[t.ID] = done
	}
	internal.GetInternalLogger().Debug("transition scheduled",
		"id", t.ID, "kind", kind.String(), "animated", animated)
}

// Drain returns and clears the transitions scheduled since the last call.
func (s *Stage) Drain() []Transition {
	out := s.pending
	s.pending = nil
	return out
}

// Complete marks a transition finished and runs its completion callback.
// It reports false for unknown or already completed ids.
func (s *Stage) Complete(id int64) bool {
	if _, ok := s.inFlight[id]; !ok {
		return false
	}
	delete(s.inFlight, id)

	done := s.callbacks[id]
	delete(s.callbacks, id)
	if done != nil {
		done()
	}
	return true
}

// Settle completes every scheduled transition, including ones scheduled by
// completion callbacks, as if all animations had finished. It is meant for
// headless use and tests.
func (s *Stage) Settle() {
	for len(s.pending) > 0 {
		for _, t := range s.Drain() {
			s.Complete(t.ID)
		}
	}
}

// InFlight returns the number of transitions that have not completed.
func (s *Stage) InFlight() int {
	return len(s.inFlight)
}
