package coordinator

import (
	"fmt"
	"reflect"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
)

// ViewableCoordinating is a coordinator bound to the screen it routes with.
type ViewableCoordinating interface {
	Coordinating
	Controllable() screen.Controllable
}

// Viewable is a Coordinator that owns exactly one screen. It keeps the screen
// twice: as a Controllable for routing, and narrowed to P for pushing events
// ("show loading", "render items") to it.
//
// Embed a *Viewable in the application coordinator:
//
//	type ListPresenter interface {
//	    ShowItems([]string)
//	}
//
//	type ListCoordinator struct {
//	    *coordinator.Viewable[ListPresenter]
//	}
//
//	func NewListCoordinator(view *ListScreen) *ListCoordinator {
//	    return &ListCoordinator{Viewable: coordinator.NewViewable[ListPresenter](view, view)}
//	}
type Viewable[P any] struct {
	Coordinator

	controllable screen.Controllable
	presenter    P
}

// NewViewable binds a coordinator to controllable, using presenter for
// event delivery. Passing the presenter explicitly lets the compiler check it;
// usually both arguments are the same screen value.
func NewViewable[P any](controllable screen.Controllable, presenter P) *Viewable[P] {
	if controllable == nil {
		panic(NewPreconditionError("viewable", ErrNilControllable, ""))
	}
	return &Viewable[P]{
		controllable: controllable,
		presenter:    presenter,
	}
}

// TryViewable binds a coordinator to controllable, requiring that it also
// implements P. It returns a *PreconditionError wrapping ErrPresenterMismatch
// when it does not.
func TryViewable[P any](controllable screen.Controllable) (*Viewable[P], error) {
	if controllable == nil {
		return nil, NewPreconditionError("viewable", ErrNilControllable, "")
	}

	presenter, ok := controllable.(P)
	if !ok {
		detail := fmt.Sprintf("%T should implement %v", controllable, reflect.TypeOf((*P)(nil)).Elem())
		return nil, NewPreconditionError("viewable", ErrPresenterMismatch, detail)
	}

	return &Viewable[P]{
		controllable: controllable,
		presenter:    presenter,
	}, nil
}

// MustViewable is TryViewable for wiring code: a screen that does not
// implement P is a programming error, so it panics.
func MustViewable[P any](controllable screen.Controllable) *Viewable[P] {
	v, err := TryViewable[P](controllable)
	if err != nil {
		panic(err)
	}
	return v
}

// Controllable returns the screen the coordinator routes with.
func (v *Viewable[P]) Controllable() screen.Controllable {
	return v.controllable
}

// Controller lets a Viewable be passed directly to the screen routing functions.
func (v *Viewable[P]) Controller() screen.Controller {
	return v.controllable.Controller()
}

// Presenter returns the screen narrowed to the coordinator's presenter interface.
func (v *Viewable[P]) Presenter() P {
	return v.presenter
}
