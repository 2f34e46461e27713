package sdlhost

import (
	"slices"
	"time"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/stage"
)

// transitionClock tracks when each drained transition should complete.
// Times are SDL ticks in milliseconds.
type transitionClock struct {
	duration time.Duration
	pending  []pendingTransition
}

type pendingTransition struct {
	id       int64
	deadline uint64
}

func (c *transitionClock) add(ts []stage.Transition, now uint64) {
	for _, t := range ts {
		deadline := now
		if t.Animated {
			deadline += uint64(c.duration.Milliseconds())
		}
		c.pending = append(c.pending, pendingTransition{id: t.ID, deadline: deadline})
	}
}

// due removes and returns the transitions whose deadline is at or before
// now, in the order they were added.
func (c *transitionClock) due(now uint64) []int64 {
	var ids []int64
	c.pending = slices.DeleteFunc(c.pending, func(p pendingTransition) bool {
		if p.deadline <= now {
			ids = append(ids, p.id)
			return true
		}
		return false
	})
	return ids
}

func (c *transitionClock) Len() int {
	return len(c.pending)
}
