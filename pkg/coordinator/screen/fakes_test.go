package screen

// Minimal presentation layer used to observe what the routing functions ask for.

type fakeController struct {
	name      string
	parent    Controller
	presented Controller
	style     Style
	dismissed int
}

func newFake(name string) *fakeController {
	return &fakeController{name: name}
}

func (f *fakeController) Controller() Controller { return f }
func (f *fakeController) Parent() Controller     { return f.parent }
func (f *fakeController) Presented() Controller  { return f.presented }

func (f *fakeController) Present(c Controller, animated bool, style Style, done func()) {
	f.presented = c
	f.style = style
	if done != nil {
		done()
	}
}

func (f *fakeController) Dismiss(animated bool, done func()) {
	f.presented = nil
	f.dismissed++
	if done != nil {
		done()
	}
}

type fakeStack struct {
	fakeController
	items []Controller
}

func newFakeStack(name string, items ...Controller) *fakeStack {
	s := &fakeStack{fakeController: fakeController{name: name}}
	for _, c := range items {
		s.adopt(c)
	}
	return s
}

func (s *fakeStack) Controller() Controller { return s }

func (s *fakeStack) adopt(c Controller) {
	switch v := c.(type) {
	case *fakeController:
		v.parent = s
	case *fakeTabs:
		v.parent = s
	}
	s.items = append(s.items, c)
}

func (s *fakeStack) Controllers() []Controller {
	return append([]Controller(nil), s.items...)
}

func (s *fakeStack) Visible() Controller {
	if s.presented != nil {
		return s.presented
	}
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *fakeStack) Push(c Controller, animated bool, done func()) {
	s.adopt(c)
	if done != nil {
		done()
	}
}

func (s *fakeStack) Pop(animated bool, done func()) {
	if len(s.items) > 1 {
		s.items = s.items[:len(s.items)-1]
	}
	if done != nil {
		done()
	}
}

func (s *fakeStack) PopToRoot(animated bool, done func()) {
	if len(s.items) > 1 {
		s.items = s.items[:1]
	}
	if done != nil {
		done()
	}
}

func (s *fakeStack) SetControllers(cs []Controller, animated bool, done func()) {
	s.items = nil
	for _, c := range cs {
		s.adopt(c)
	}
	if done != nil {
		done()
	}
}

type fakeTabs struct {
	fakeController
	tabs     []Controller
	selected int
}

func (t *fakeTabs) Controller() Controller { return t }

func (t *fakeTabs) Selected() Controller {
	if len(t.tabs) == 0 {
		return nil
	}
	return t.tabs[t.selected]
}

type fakeToolkit struct {
	built int
}

func (tk *fakeToolkit) NewStack(root Controller) Stack {
	tk.built++
	if root == nil {
		return newFakeStack("nav")
	}
	return newFakeStack("nav", root)
}

// ownedController is a controller embedded in an application type.
type ownedController struct {
	fakeController
	owner Controllable
}

func (o *ownedController) Controller() Controller { return o }
func (o *ownedController) Owner() Controllable    { return o.owner }

type appScreen struct {
	*ownedController
	rendered []string
}

func newAppScreen(name string) *appScreen {
	a := &appScreen{ownedController: &ownedController{fakeController: fakeController{name: name}}}
	a.owner = a
	return a
}

func (a *appScreen) Render(items []string) {
	a.rendered = items
}
