package core

import "github.com/hubastard/ember/engine/geom"

// Window abstraction. The platform implementation pushes translated input
// events through the callback installed with SetEventCallback while
// PollEvents runs.
type Window interface {
	PollEvents()
	SetEventCallback(cb func(Event))
	SwapBuffers()
	OutputSize() (int, int)
	SetTitle(title string)
	Close()
}

// Surface is the opaque drawing target handed to views. Coordinates are in
// pixels with the origin at the top-left of the window.
type Surface interface {
	Clear()
	SetDrawColor(r, g, b float32)
	FillRect(rect geom.Rect)
	Copy(tex Texture, src, dst *geom.Rect) error
	Present()
	OutputSize() (int, int)
	CreateTexture(desc TextureDesc) (Texture, error)
	Shutdown()
}

// Texture is a GPU-resident image owned by the surface that created it.
type Texture interface {
	Size() (int, int)
	Release()
}

// TextureDesc describes pixel data for texture upload.
type TextureDesc struct {
	Width  int
	Height int
	Pixels []byte // tightly packed RGBA8, row-major, top-left origin
}
