package core

// Snapshot is the input state valid for exactly one frame: key transitions,
// resize, and quit. It is rebuilt on every pump; held state lives on Input
// and survives across frames.
type Snapshot struct {
	Quit    bool
	Resized bool
	Width   int
	Height  int
	keys    map[Key]bool // true: pressed this frame; false: released this frame
}

// Pressed reports whether k transitioned to pressed this frame. It stays
// false while the key is merely held; use Input.IsKeyHeld for that.
func (s *Snapshot) Pressed(k Key) bool {
	v, ok := s.keys[k]
	return ok && v
}

// Released reports whether k transitioned to released this frame.
func (s *Snapshot) Released(k Key) bool {
	v, ok := s.keys[k]
	return ok && !v
}

// Input turns the platform event stream into the per-frame snapshot and the
// persistent held-key map. Single-threaded: only the driver pumps it, and it
// lends the result to one view at a time.
type Input struct {
	held           map[Key]bool
	snap           Snapshot
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{held: map[Key]bool{}} }

// Pump drains all pending window events once and rebuilds the snapshot.
// Events not drained here are lost to history except for their effect on the
// held map. Resize re-queries the window size rather than trusting the event
// payload, so the snapshot always agrees with OutputSize.
func (in *Input) Pump(win Window) *Snapshot {
	in.snap = Snapshot{keys: map[Key]bool{}}
	win.SetEventCallback(func(ev Event) { in.handle(win, ev) })
	win.PollEvents()
	return &in.snap
}

func (in *Input) handle(win Window, ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if in.held[e.Key] == e.Down {
			return // key repeat, not a transition
		}
		in.held[e.Key] = e.Down
		in.snap.keys[e.Key] = e.Down
	case EventResize:
		w, h := win.OutputSize()
		in.snap.Resized = true
		in.snap.Width, in.snap.Height = w, h
	case EventCloseRequested:
		in.snap.Quit = true
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

// IsKeyHeld reports whether k is currently down, regardless of when it was
// pressed.
func (in *Input) IsKeyHeld(k Key) bool { return in.held[k] }

// Snapshot returns the snapshot produced by the most recent Pump.
func (in *Input) Snapshot() *Snapshot { return &in.snap }

func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
