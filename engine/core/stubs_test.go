package core

import (
	"github.com/hubastard/ember/engine/geom"
)

// stubWindow feeds one scripted event batch per PollEvents call.
type stubWindow struct {
	cb     func(Event)
	queue  [][]Event
	width  int
	height int
	polls  int
}

func newStubWindow(w, h int) *stubWindow {
	return &stubWindow{width: w, height: h}
}

func (w *stubWindow) push(evs ...Event) { w.queue = append(w.queue, evs) }

func (w *stubWindow) PollEvents() {
	w.polls++
	if len(w.queue) == 0 {
		return
	}
	evs := w.queue[0]
	w.queue = w.queue[1:]
	for _, ev := range evs {
		w.cb(ev)
	}
}

func (w *stubWindow) SetEventCallback(cb func(Event)) { w.cb = cb }
func (w *stubWindow) SwapBuffers()                    {}
func (w *stubWindow) OutputSize() (int, int)          { return w.width, w.height }
func (w *stubWindow) SetTitle(string)                 {}
func (w *stubWindow) Close()                          {}

// stubSurface records presents; everything else is inert.
type stubSurface struct {
	presents int
	width    int
	height   int
}

func (s *stubSurface) Clear()                                     {}
func (s *stubSurface) SetDrawColor(_, _, _ float32)               {}
func (s *stubSurface) FillRect(geom.Rect)                         {}
func (s *stubSurface) Copy(Texture, *geom.Rect, *geom.Rect) error { return nil }
func (s *stubSurface) Present()                                   { s.presents++ }
func (s *stubSurface) OutputSize() (int, int)                     { return s.width, s.height }
func (s *stubSurface) Shutdown()                                  {}

func (s *stubSurface) CreateTexture(desc TextureDesc) (Texture, error) {
	return &stubTexture{w: desc.Width, h: desc.Height}, nil
}

type stubTexture struct {
	w, h     int
	released int
}

func (t *stubTexture) Size() (int, int) { return t.w, t.h }
func (t *stubTexture) Release()         { t.released++ }

// scriptView returns scripted actions in order and counts its lifecycle
// calls; order records the interleaving across views.
type scriptView struct {
	name    string
	actions []ViewAction
	order   *[]string

	resumes int
	pauses  int
	renders int
	closes  int
}

func (v *scriptView) Resume(*Context) {
	v.resumes++
	v.record("resume")
}

func (v *scriptView) Pause(*Context) {
	v.pauses++
	v.record("pause")
}

func (v *scriptView) Render(*Context, float64) ViewAction {
	v.renders++
	v.record("render")
	if len(v.actions) == 0 {
		return Continue{}
	}
	a := v.actions[0]
	v.actions = v.actions[1:]
	return a
}

func (v *scriptView) Close() error {
	v.closes++
	v.record("close")
	return nil
}

func (v *scriptView) record(what string) {
	if v.order != nil {
		*v.order = append(*v.order, v.name+"."+what)
	}
}
