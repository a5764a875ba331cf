package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/ember/engine/core"
	"github.com/hubastard/ember/engine/geom"
)

// Surface implements core.Surface on OpenGL 3.3 core. It draws in
// immediate mode: one dynamic quad buffer, a solid-color program for fills
// and a textured program for copies. Coordinates arrive in window pixels
// (top-left origin) and are converted to NDC per draw.
type Surface struct {
	win core.Window

	solidProg uint32
	texProg   uint32
	vao       uint32
	vbo       uint32

	solidColorLoc int32
	texSamplerLoc int32

	clearColor [4]float32
	drawColor  [4]float32
}

func NewSurface(win core.Window, cfg core.Config) (*Surface, error) {
	s := &Surface{
		win:        win,
		clearColor: cfg.ClearColor,
		drawColor:  [4]float32{1, 1, 1, 1},
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Surface) init() error {
	var err error
	s.solidProg, err = makeProgram(solidVertexSource, solidFragmentSource)
	if err != nil {
		return err
	}
	s.texProg, err = makeProgram(texVertexSource, texFragmentSource)
	if err != nil {
		return err
	}
	s.solidColorLoc = gl.GetUniformLocation(s.solidProg, gl.Str("uColor\x00"))
	s.texSamplerLoc = gl.GetUniformLocation(s.texProg, gl.Str("uTex\x00"))

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)

	// quad buffer: 6 verts × (pos2 + uv2), updated per draw
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	const stride = 4 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

// core.Surface impl

func (s *Surface) Clear() {
	w, h := s.win.OutputSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	c := s.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (s *Surface) SetDrawColor(r, g, b float32) {
	s.drawColor = [4]float32{r, g, b, 1}
}

func (s *Surface) FillRect(rect geom.Rect) {
	verts := s.quadVerts(rect, geom.Rect{X: 0, Y: 0, W: 1, H: 1})
	gl.UseProgram(s.solidProg)
	gl.Uniform4f(s.solidColorLoc, s.drawColor[0], s.drawColor[1], s.drawColor[2], s.drawColor[3])
	s.drawQuad(verts)
	gl.UseProgram(0)
}

func (s *Surface) Copy(tex core.Texture, src, dst *geom.Rect) error {
	t, ok := tex.(*texture)
	if !ok {
		return fmt.Errorf("copy: texture not created by this surface")
	}

	tw, th := float64(t.w), float64(t.h)
	uv := geom.Rect{X: 0, Y: 0, W: 1, H: 1}
	if src != nil {
		uv = geom.Rect{X: src.X / tw, Y: src.Y / th, W: src.W / tw, H: src.H / th}
	}
	target := geom.Rect{W: tw, H: th}
	if src != nil {
		target.W, target.H = src.W, src.H
	}
	if dst != nil {
		target = *dst
	}

	gl.UseProgram(s.texProg)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.Uniform1i(s.texSamplerLoc, 0)
	s.drawQuad(s.quadVerts(target, uv))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	return nil
}

func (s *Surface) Present() { s.win.SwapBuffers() }

func (s *Surface) OutputSize() (int, int) { return s.win.OutputSize() }

func (s *Surface) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width < 1 || desc.Height < 1 {
		return nil, fmt.Errorf("create texture: bad size %dx%d", desc.Width, desc.Height)
	}
	if len(desc.Pixels) != desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("create texture: pixel data is %d bytes, want %d",
			len(desc.Pixels), desc.Width*desc.Height*4)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &texture{id: id, w: desc.Width, h: desc.Height}, nil
}

// Shutdown deletes the GL objects owned by the surface. Textures are owned
// by their creators (the cache releases the ones it loaded).
func (s *Surface) Shutdown() {
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.solidProg != 0 {
		gl.DeleteProgram(s.solidProg)
	}
	if s.texProg != 0 {
		gl.DeleteProgram(s.texProg)
	}
}

// quadVerts builds two triangles for rect in NDC, with uv mapped so uv.Y
// increases downward like the pixel rows uploaded by CreateTexture.
func (s *Surface) quadVerts(rect, uv geom.Rect) [24]float32 {
	w, h := s.win.OutputSize()
	fw, fh := float32(w), float32(h)

	ndcX := func(x float64) float32 { return 2*float32(x)/fw - 1 }
	ndcY := func(y float64) float32 { return 1 - 2*float32(y)/fh }

	x0, y0 := ndcX(rect.X), ndcY(rect.Y)
	x1, y1 := ndcX(rect.Right()), ndcY(rect.Bottom())
	u0, v0 := float32(uv.X), float32(uv.Y)
	u1, v1 := float32(uv.Right()), float32(uv.Bottom())

	return [24]float32{
		x0, y0, u0, v0,
		x1, y0, u1, v0,
		x1, y1, u1, v1,
		x0, y0, u0, v0,
		x1, y1, u1, v1,
		x0, y1, u0, v1,
	}
}

func (s *Surface) drawQuad(verts [24]float32) {
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

type texture struct {
	id   uint32
	w, h int
}

func (t *texture) Size() (int, int) { return t.w, t.h }

func (t *texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
