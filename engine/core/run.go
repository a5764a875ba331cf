package core

import (
	"fmt"
	"io"
	"runtime"
	"time"
)

// FrameInterval is the minimum wall-clock duration between render calls.
const FrameInterval = time.Second / 60

type NewWindowFunc func(Config) (Window, error)
type NewSurfaceFunc func(Window, Config) (Surface, error)

// Run wires the platform window + surface, builds the runtime context and
// the initial view, and executes the main loop until the current view
// returns Quit. Initialization failure is fatal: no frame can be produced
// without a window and surface, so the error is returned undegraded.
func Run(cfg Config, init InitFunc, newWindow NewWindowFunc, newSurface NewSurfaceFunc) error {
	// Window/GL contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Close()

	surf, err := newSurface(win, cfg)
	if err != nil {
		return fmt.Errorf("create surface: %w", err)
	}
	defer surf.Shutdown()

	ctx := NewContext(surf)
	defer ctx.Close()

	view, err := init(ctx)
	if err != nil {
		return fmt.Errorf("build initial view: %w", err)
	}

	LogInfo("%q started (%dx%d)", cfg.Title, cfg.Width, cfg.Height)
	newLoop(ctx, win, view).run()
	LogInfo("%q exit", cfg.Title)
	return nil
}

// loop drives the view state machine at a fixed frame rate. now/sleep are
// fields so tests can drive the pacing with a fake clock.
type loop struct {
	ctx  *Context
	win  Window
	view View

	now   func() time.Time
	sleep func(time.Duration)

	before   time.Time
	frames   int
	fpsStart time.Time
}

func newLoop(ctx *Context, win Window, view View) *loop {
	start := time.Now()
	return &loop{
		ctx:      ctx,
		win:      win,
		view:     view,
		now:      time.Now,
		sleep:    time.Sleep,
		before:   start,
		fpsStart: start,
	}
}

func (l *loop) run() {
	l.view.Resume(l.ctx)
	for l.step() {
	}
}

// step executes one loop iteration and reports whether the loop continues.
// Sub-interval ticks sleep off the remainder and retry without advancing any
// state: no pump, no render, no frame accounting.
func (l *loop) step() bool {
	now := l.now()
	dt := now.Sub(l.before)
	if dt < FrameInterval {
		l.sleep(FrameInterval - dt)
		return true
	}
	l.before = now

	l.frames++
	if now.Sub(l.fpsStart) >= time.Second {
		l.ctx.fps = l.frames
		LogDebug("fps: %d", l.frames)
		l.frames = 0
		l.fpsStart = now
	}

	// Events are pumped before the view runs, so the view always observes
	// the snapshot for the frame being rendered.
	l.ctx.Input.Pump(l.win)

	switch a := l.view.Render(l.ctx, dt.Seconds()).(type) {
	case Quit:
		l.view.Pause(l.ctx)
		discardView(l.view)
		l.view = nil
		return false
	case ChangeView:
		l.view.Pause(l.ctx)
		discardView(l.view)
		l.view = a.Next
		l.view.Resume(l.ctx)
	default:
		l.ctx.Surface.Present()
	}
	return true
}

// discardView runs a view's release logic, if any, before control returns to
// the loop.
func discardView(v View) {
	if c, ok := v.(io.Closer); ok {
		if err := c.Close(); err != nil {
			LogWarn("view close: %v", err)
		}
	}
}
