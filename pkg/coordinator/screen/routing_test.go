package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushOnStackAppliesDirectly(t *testing.T) {
	root := newFake("root")
	nav := newFakeStack("nav", root)
	detail := newFake("detail")

	Push(nav, detail, true)

	require.Len(t, nav.items, 2)
	assert.Same(t, detail, nav.items[1])
	assert.Same(t, nav, detail.parent)
}

func TestPushFromChildDelegatesToContainingStack(t *testing.T) {
	root := newFake("root")
	nav := newFakeStack("nav", root)
	detail := newFake("detail")

	done := 0
	Push(root, detail, false, OnComplete(func() { done++ }))

	require.Len(t, nav.items, 2)
	assert.Same(t, detail, nav.items[1])
	assert.Equal(t, 1, done)
}

func TestPushWalksThroughTabsToStack(t *testing.T) {
	leaf := newFake("leaf")
	tabs := &fakeTabs{fakeController: fakeController{name: "tabs"}, tabs: []Controller{leaf}}
	leaf.parent = tabs
	nav := newFakeStack("nav", tabs)

	Push(leaf, newFake("next"), true)

	assert.Len(t, nav.items, 2)
}

func TestRoutingWithoutStackIsNoOp(t *testing.T) {
	lone := newFake("lone")
	other := newFake("other")
	called := false

	assert.NotPanics(t, func() {
		Push(lone, other, true, OnComplete(func() { called = true }))
		Pop(lone, true)
		PopToRoot(lone, true)
		SetStack(lone, []Controllable{other})
	})

	assert.Nil(t, lone.parent)
	assert.Nil(t, lone.presented)
	assert.Nil(t, other.parent)
	assert.False(t, called)
	assert.Nil(t, NearestStack(lone))
}

func TestPopAndPopToRoot(t *testing.T) {
	a, b, c := newFake("a"), newFake("b"), newFake("c")
	nav := newFakeStack("nav", a, b, c)

	Pop(c, true)
	assert.Equal(t, []Controller{a, b}, nav.items)

	Push(nav, c, true)
	PopToRoot(b, false)
	assert.Equal(t, []Controller{a}, nav.items)
}

func TestSetStackReplacesContents(t *testing.T) {
	a, b, c := newFake("a"), newFake("b"), newFake("c")
	nav := newFakeStack("nav", a)

	SetStack(a, []Controllable{b, c, nil})

	assert.Equal(t, []Controller{b, c}, nav.items)
}

func TestPresentPassesStyleAndCompletion(t *testing.T) {
	home := newFake("home")
	sheet := newFake("sheet")
	done := false

	Present(home, sheet, true, WithStyle(StyleFormSheet), OnComplete(func() { done = true }))

	assert.Same(t, sheet, home.presented)
	assert.Equal(t, StyleFormSheet, home.style)
	assert.True(t, done)

	Dismiss(home, true)
	assert.Nil(t, home.presented)
	assert.Equal(t, 1, home.dismissed)
}

func TestPresentDefaultsToAutomatic(t *testing.T) {
	home := newFake("home")
	home.style = StyleFullScreen

	Present(home, newFake("sheet"), false)

	assert.Equal(t, StyleAutomatic, home.style)
}

func TestPresentWithNilTargetIsDropped(t *testing.T) {
	home := newFake("home")

	Present(home, nil, true)
	Present(nil, home, true)

	assert.Nil(t, home.presented)
}

func TestTopMostReturnsSelfWhenNothingLayered(t *testing.T) {
	home := newFake("home")

	assert.Same(t, home, TopMost(home))
}

func TestTopMostUnwrapsStackTabsAndOverlays(t *testing.T) {
	first := newFake("first")
	second := newFake("second")
	tabs := &fakeTabs{fakeController: fakeController{name: "tabs"}, tabs: []Controller{first, second}, selected: 1}
	nav := newFakeStack("nav", tabs)
	modal := newFake("modal")
	second.presented = modal

	assert.Same(t, modal, TopMost(nav))
}

func TestTopMostPrefersOverlayOnStack(t *testing.T) {
	nav := newFakeStack("nav", newFake("root"))
	overlay := newFake("overlay")
	nav.presented = overlay

	assert.Same(t, overlay, TopMost(nav))
}

func TestTopMostReportsOwner(t *testing.T) {
	app := newAppScreen("list")
	nav := newFakeStack("nav", app.ownedController)

	top := TopMost(nav)

	require.Same(t, app, top)
	presenter, ok := top.(interface{ Render([]string) })
	require.True(t, ok)
	presenter.Render([]string{"x"})
	assert.Equal(t, []string{"x"}, app.rendered)
}

func TestTopMostStopsAtNonControllable(t *testing.T) {
	home := newFake("home")
	var opaque Controller = &struct{ Controller }{newFake("hidden")}
	home.presented = opaque

	assert.Same(t, home, TopMost(home))
}

func TestTopMostTerminatesOnCycle(t *testing.T) {
	a := newFake("a")
	b := newFake("b")
	a.presented = b
	b.presented = a

	var top Controllable
	assert.NotPanics(t, func() { top = TopMost(a) })
	assert.NotNil(t, top)
}

func TestNearestStackTerminatesOnParentCycle(t *testing.T) {
	a := newFake("a")
	b := newFake("b")
	a.parent = b
	b.parent = a

	assert.Nil(t, NearestStack(a))
}

func TestNilControllableIsTolerated(t *testing.T) {
	assert.NotPanics(t, func() {
		Push(nil, nil, true)
		Pop(nil, true)
		Dismiss(nil, true)
	})
	assert.Nil(t, TopMost(nil))
}
