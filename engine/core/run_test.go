package core

import (
	"testing"
	"time"
)

// testLoop builds a loop around stubs with a fake clock. Sleeping advances
// the clock by exactly the requested duration.
func testLoop(view View) (*loop, *stubWindow, *stubSurface, *time.Time) {
	win := newStubWindow(800, 600)
	surf := &stubSurface{width: 800, height: 600}
	ctx := NewContext(surf)

	current := time.Unix(0, 0)
	l := newLoop(ctx, win, view)
	l.now = func() time.Time { return current }
	l.sleep = func(d time.Duration) { current = current.Add(d) }
	l.before = current
	l.fpsStart = current
	return l, win, surf, &current
}

func TestSubIntervalTickRunsNoLogic(t *testing.T) {
	view := &scriptView{name: "v"}
	l, win, _, clock := testLoop(view)

	before := l.before
	*clock = clock.Add(FrameInterval / 2)

	if !l.step() {
		t.Fatal("step() ended the loop on a sub-interval tick")
	}
	if view.renders != 0 {
		t.Errorf("renders = %d, expected 0", view.renders)
	}
	if l.frames != 0 {
		t.Errorf("frame counter = %d, expected 0", l.frames)
	}
	if !l.before.Equal(before) {
		t.Errorf("before advanced on sub-interval tick")
	}
	if win.polls != 0 {
		t.Errorf("events pumped on sub-interval tick")
	}
}

func TestSubIntervalTickSleepsRemainder(t *testing.T) {
	view := &scriptView{name: "v"}
	l, _, _, clock := testLoop(view)

	var slept time.Duration
	l.sleep = func(d time.Duration) {
		slept = d
		*clock = clock.Add(d)
	}

	*clock = clock.Add(FrameInterval / 4)
	l.step()
	if want := FrameInterval - FrameInterval/4; slept != want {
		t.Errorf("slept %v, expected %v", slept, want)
	}

	// The retry after the sleep completes a full tick.
	if !l.step() {
		t.Fatal("step() ended the loop")
	}
	if view.renders != 1 {
		t.Errorf("renders = %d, expected 1 after sleep completes the interval", view.renders)
	}
}

func TestFullTickRendersOnceAndAdvances(t *testing.T) {
	view := &scriptView{name: "v"}
	l, win, surf, clock := testLoop(view)

	*clock = clock.Add(FrameInterval)
	now := *clock

	if !l.step() {
		t.Fatal("step() ended the loop")
	}
	if view.renders != 1 {
		t.Errorf("renders = %d, expected exactly 1", view.renders)
	}
	if !l.before.Equal(now) {
		t.Errorf("before = %v, expected %v", l.before, now)
	}
	if l.frames != 1 {
		t.Errorf("frame counter = %d, expected 1", l.frames)
	}
	if win.polls != 1 {
		t.Errorf("polls = %d, expected events pumped once", win.polls)
	}
	if surf.presents != 1 {
		t.Errorf("presents = %d, expected 1 on Continue", surf.presents)
	}
}

func TestEventsPumpedBeforeRender(t *testing.T) {
	var sawQuit bool
	view := &viewFunc{render: func(ctx *Context, _ float64) ViewAction {
		sawQuit = ctx.Input.Snapshot().Quit
		return Quit{}
	}}
	l, win, _, clock := testLoop(view)

	win.push(EventCloseRequested{})
	*clock = clock.Add(FrameInterval)

	if l.step() {
		t.Fatal("step() continued after Quit")
	}
	if !sawQuit {
		t.Error("render did not observe the quit flag pumped this frame")
	}
}

func TestChangeViewLifecycle(t *testing.T) {
	var order []string
	next := &scriptView{name: "next", order: &order}
	first := &scriptView{name: "first", order: &order, actions: []ViewAction{ChangeView{Next: next}}}

	l, _, _, clock := testLoop(first)
	l.view.Resume(l.ctx)

	*clock = clock.Add(FrameInterval)
	if !l.step() {
		t.Fatal("step() ended the loop on ChangeView")
	}

	expected := []string{"first.resume", "first.render", "first.pause", "first.close", "next.resume"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("order = %v, expected %v", order, expected)
		}
	}
	if first.pauses != 1 || first.closes != 1 || next.resumes != 1 {
		t.Errorf("pauses=%d closes=%d resumes=%d, expected 1/1/1",
			first.pauses, first.closes, next.resumes)
	}

	// The new view owns the next frame.
	*clock = clock.Add(FrameInterval)
	l.step()
	if next.renders != 1 || first.renders != 1 {
		t.Errorf("renders first=%d next=%d, expected 1/1", first.renders, next.renders)
	}
}

func TestQuitPausesOnceAndSkipsPresent(t *testing.T) {
	view := &scriptView{name: "v", actions: []ViewAction{Quit{}}}
	l, _, surf, clock := testLoop(view)
	l.view.Resume(l.ctx)

	*clock = clock.Add(FrameInterval)
	if l.step() {
		t.Fatal("step() continued after Quit")
	}
	if view.pauses != 1 {
		t.Errorf("pauses = %d, expected exactly 1", view.pauses)
	}
	if view.closes != 1 {
		t.Errorf("closes = %d, expected release logic to run on discard", view.closes)
	}
	if surf.presents != 0 {
		t.Errorf("presents = %d, expected no present after Quit", surf.presents)
	}
}

func TestFPSWindowRollsOverOncePerSecond(t *testing.T) {
	view := &scriptView{name: "v"}
	l, _, _, clock := testLoop(view)

	// Nine 100ms ticks inside the first second: counter accumulates.
	for i := 0; i < 9; i++ {
		*clock = clock.Add(100 * time.Millisecond)
		l.step()
	}
	if l.ctx.FPS() != 0 {
		t.Errorf("FPS() = %d before the window completed, expected 0", l.ctx.FPS())
	}

	// The tenth tick crosses the one-second boundary.
	*clock = clock.Add(100 * time.Millisecond)
	l.step()
	if l.ctx.FPS() != 10 {
		t.Errorf("FPS() = %d, expected 10", l.ctx.FPS())
	}
	if l.frames != 0 {
		t.Errorf("frame counter = %d, expected reset after emission", l.frames)
	}
}

// viewFunc adapts a render func to View for one-off tests.
type viewFunc struct {
	BaseView
	render func(*Context, float64) ViewAction
}

func (v *viewFunc) Render(ctx *Context, dt float64) ViewAction { return v.render(ctx, dt) }
