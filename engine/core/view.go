package core

// View is a single game screen. The driver holds exactly one current view at
// a time; the set of implementations is open-ended, so dispatch is dynamic.
//
// Resume runs after a view becomes current, Pause right before it stops
// being current (including loop exit). Render draws one frame and reports
// what should happen next. Views that own resources outside the shared cache
// may additionally implement io.Closer; Close runs once when the view is
// discarded, after Pause.
type View interface {
	Resume(ctx *Context)
	Pause(ctx *Context)
	Render(ctx *Context, dt float64) ViewAction
}

// BaseView provides no-op Resume/Pause for views that only need Render.
type BaseView struct{}

func (BaseView) Resume(*Context) {}
func (BaseView) Pause(*Context)  {}

// ViewAction is the tagged outcome of a Render call.
type ViewAction interface{ isViewAction() }

// Continue keeps the current view; the frame is presented.
type Continue struct{}

func (Continue) isViewAction() {}

// Quit terminates the loop after pausing the current view.
type Quit struct{}

func (Quit) isViewAction() {}

// ChangeView discards the current view and hands ownership of Next to the
// driver. Next is resumed before the following frame.
type ChangeView struct{ Next View }

func (ChangeView) isViewAction() {}

// InitFunc builds the initial view once the runtime context is ready.
type InitFunc func(ctx *Context) (View, error)
