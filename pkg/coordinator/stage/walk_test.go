package stage

import (
	"testing"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/stretchr/testify/assert"
)

func TestBackPopsBeforeDismissing(t *testing.T) {
	st := New()
	home := st.NewScreen(nil)
	modalRoot := st.NewScreen(nil)
	modal := st.NewNavigator(modalRoot)
	home.Present(modal, false, screen.StylePageSheet, nil)
	detail := st.NewScreen(nil)
	modal.Push(detail, false, nil)

	assert.True(t, Back(detail, false))
	assert.Equal(t, []screen.Controller{modalRoot}, modal.Controllers())
	assert.Same(t, modal, home.Presented())

	assert.True(t, Back(modalRoot, false))
	assert.Nil(t, home.Presented())

	assert.False(t, Back(home, false))
	assert.False(t, Back(nil, false))
}

func TestEnclosingPresenter(t *testing.T) {
	st := New()
	home := st.NewScreen(nil)
	sheet := st.NewScreen(nil)
	tabs := st.NewTabBar(sheet)
	home.Present(tabs, false, screen.StyleFormSheet, nil)

	assert.Same(t, home, EnclosingPresenter(sheet))
	assert.Same(t, home, EnclosingPresenter(tabs))
	assert.Nil(t, EnclosingPresenter(home))
}

func TestEnclosingTabBar(t *testing.T) {
	st := New()
	root := st.NewScreen(nil)
	nav := st.NewNavigator(root)
	tabs := st.NewTabBar(nav)

	assert.Same(t, tabs, EnclosingTabBar(root))
	assert.Same(t, tabs, EnclosingTabBar(tabs))
	assert.Nil(t, EnclosingTabBar(st.NewScreen(nil)))
}
