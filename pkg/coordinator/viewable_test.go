package coordinator

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loadingPresenter interface {
	ShowLoading(bool)
}

type plainScreen struct{}

func (s *plainScreen) Controller() screen.Controller { return nil }

type loadingScreen struct {
	plainScreen
	loading bool
}

func (s *loadingScreen) ShowLoading(on bool) { s.loading = on }

type loadingCoordinator struct {
	*Viewable[loadingPresenter]
	started bool
}

func (c *loadingCoordinator) Start() {
	c.started = true
	c.Presenter().ShowLoading(true)
}

func TestTryViewableNarrowsPresenter(t *testing.T) {
	view := &loadingScreen{}

	v, err := TryViewable[loadingPresenter](view)
	require.NoError(t, err)

	assert.Same(t, view, v.Controllable())
	v.Presenter().ShowLoading(true)
	assert.True(t, view.loading)
}

func TestTryViewableRejectsScreenWithoutPresenter(t *testing.T) {
	v, err := TryViewable[loadingPresenter](&plainScreen{})

	assert.Nil(t, v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPresenterMismatch)
	assert.True(t, IsPreconditionError(err))
	assert.Contains(t, err.Error(), "*coordinator.plainScreen should implement coordinator.loadingPresenter")
}

func TestTryViewableRejectsNilScreen(t *testing.T) {
	_, err := TryViewable[loadingPresenter](nil)

	assert.ErrorIs(t, err, ErrNilControllable)
}

func TestMustViewablePanicsOnMismatch(t *testing.T) {
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		MustViewable[loadingPresenter](&plainScreen{})
	}()

	require.NotNil(t, recovered, "construction must fail fatally")
	err, ok := recovered.(error)
	require.True(t, ok)
	assert.True(t, errors.Is(err, ErrPresenterMismatch))
}

func TestNewViewablePanicsOnNilScreen(t *testing.T) {
	assert.Panics(t, func() {
		NewViewable[loadingPresenter](nil, &loadingScreen{})
	})
}

func TestViewableRunsAsTreeNode(t *testing.T) {
	view := &loadingScreen{}
	child := &loadingCoordinator{Viewable: NewViewable[loadingPresenter](view, view)}
	holder := &Coordinator{}

	holder.AddChild(child)

	assert.True(t, child.started)
	assert.True(t, view.loading)
	assert.True(t, child.IsActive())

	var vc ViewableCoordinating = child
	assert.Same(t, view, vc.Controllable())

	holder.RemoveChild(child)
	assert.False(t, child.IsActive())
}
