package sdlhost

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/stage"
	"github.com/stretchr/testify/assert"
)

func TestTransitionClock(t *testing.T) {
	clock := transitionClock{duration: 250 * time.Millisecond}

	clock.add([]stage.Transition{
		{ID: 1, Kind: stage.TransitionPush, Animated: true},
		{ID: 2, Kind: stage.TransitionPop, Animated: false},
		{ID: 3, Kind: stage.TransitionPresent, Animated: true},
	}, 1000)

	assert.Equal(t, []int64{2}, clock.due(1000))
	assert.Empty(t, clock.due(1249))
	assert.Equal(t, []int64{1, 3}, clock.due(1250))
	assert.Equal(t, 0, clock.Len())
}

func TestTransitionClockZeroDuration(t *testing.T) {
	clock := transitionClock{}

	clock.add([]stage.Transition{{ID: 7, Animated: true}}, 50)

	assert.Equal(t, []int64{7}, clock.due(50))
}

func TestAdvanceCompletesDueTransitions(t *testing.T) {
	st := stage.New()
	root := st.NewScreen(nil)
	nav := st.NewNavigator(root)
	h := &Host{stage: st, clock: transitionClock{duration: 100 * time.Millisecond}}

	done := 0
	nav.Push(st.NewScreen(nil), true, func() { done++ })

	h.advance(0)
	assert.Equal(t, 0, done)
	assert.Equal(t, 1, st.InFlight())

	h.advance(100)
	assert.Equal(t, 1, done)
	assert.Equal(t, 0, st.InFlight())
}
