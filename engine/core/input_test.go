package core

import "testing"

func TestPumpKeyTransitions(t *testing.T) {
	win := newStubWindow(800, 600)
	in := NewInput()

	// Frame 1: key goes down.
	win.push(EventKey{Key: KeyW, Down: true})
	snap := in.Pump(win)
	if !snap.Pressed(KeyW) {
		t.Error("Pressed(W) = false on the press frame")
	}
	if !in.IsKeyHeld(KeyW) {
		t.Error("IsKeyHeld(W) = false on the press frame")
	}

	// Frame 2: no events. Pressed resets, held persists.
	snap = in.Pump(win)
	if snap.Pressed(KeyW) {
		t.Error("Pressed(W) = true while merely held")
	}
	if !in.IsKeyHeld(KeyW) {
		t.Error("IsKeyHeld(W) = false while held")
	}

	// Frame 3: key released.
	win.push(EventKey{Key: KeyW, Down: false})
	snap = in.Pump(win)
	if snap.Pressed(KeyW) {
		t.Error("Pressed(W) = true on the release frame")
	}
	if !snap.Released(KeyW) {
		t.Error("Released(W) = false on the release frame")
	}
	if in.IsKeyHeld(KeyW) {
		t.Error("IsKeyHeld(W) = true after release")
	}
}

func TestPumpIgnoresRepeats(t *testing.T) {
	win := newStubWindow(800, 600)
	in := NewInput()

	win.push(EventKey{Key: KeyA, Down: true})
	in.Pump(win)

	// A second down for an already-held key is not a transition.
	win.push(EventKey{Key: KeyA, Down: true})
	snap := in.Pump(win)
	if snap.Pressed(KeyA) {
		t.Error("Pressed(A) = true for a repeated down event")
	}
	if !in.IsKeyHeld(KeyA) {
		t.Error("IsKeyHeld(A) = false after repeat")
	}
}

func TestPumpDistinctKeysIndependent(t *testing.T) {
	win := newStubWindow(800, 600)
	in := NewInput()

	win.push(EventKey{Key: KeyUp, Down: true}, EventKey{Key: KeyLeft, Down: true})
	snap := in.Pump(win)
	if !snap.Pressed(KeyUp) || !snap.Pressed(KeyLeft) {
		t.Error("both keys pressed in one frame should both report transitions")
	}

	win.push(EventKey{Key: KeyUp, Down: false})
	snap = in.Pump(win)
	if !snap.Released(KeyUp) {
		t.Error("Released(Up) = false on its release frame")
	}
	if !in.IsKeyHeld(KeyLeft) {
		t.Error("IsKeyHeld(Left) lost by another key's release")
	}
}

func TestPumpResizeRequeriesWindow(t *testing.T) {
	win := newStubWindow(800, 600)
	in := NewInput()

	// The window has already changed size by the time the event is seen;
	// the snapshot reports the queried size, not the payload.
	win.width, win.height = 1024, 768
	win.push(EventResize{W: 640, H: 480})
	snap := in.Pump(win)
	if !snap.Resized {
		t.Fatal("Resized = false after resize event")
	}
	if snap.Width != 1024 || snap.Height != 768 {
		t.Errorf("snapshot size = %dx%d, expected re-queried 1024x768", snap.Width, snap.Height)
	}

	// Resize does not persist into the next frame.
	snap = in.Pump(win)
	if snap.Resized {
		t.Error("Resized persisted across frames")
	}
}

func TestPumpQuitFlag(t *testing.T) {
	win := newStubWindow(800, 600)
	in := NewInput()

	win.push(EventCloseRequested{})
	if snap := in.Pump(win); !snap.Quit {
		t.Error("Quit = false after close request")
	}
	if snap := in.Pump(win); snap.Quit {
		t.Error("Quit persisted across frames")
	}
}

func TestPumpMouseState(t *testing.T) {
	win := newStubWindow(800, 600)
	in := NewInput()

	win.push(EventMouseMove{X: 12, Y: 34})
	in.Pump(win)
	x, y := in.Mouse()
	if x != 12 || y != 34 {
		t.Errorf("Mouse() = (%v, %v), expected (12, 34)", x, y)
	}
}
