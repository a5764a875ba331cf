package assets

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font is a loaded typeface at a fixed pixel size. Instances are shared
// through the resource cache; Close releases the underlying face once, at
// cache teardown.
type Font struct {
	SizePx                   int
	Ascent, Descent, LineGap float64
	face                     font.Face
}

// LoadTTF parses the TrueType/OpenType file at path and builds a face at
// sizePx. A missing or malformed file is an error for the caller to judge;
// the runtime never substitutes a default face.
func LoadTTF(path string, sizePx int) (*Font, error) {
	ttfData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	ascent := float64(m.Ascent.Round())
	descent := float64(-m.Descent.Round())
	lineGap := float64(m.Height.Round()) - ascent + descent

	return &Font{
		SizePx:  sizePx,
		Ascent:  ascent,
		Descent: descent,
		LineGap: lineGap,
		face:    face,
	}, nil
}

// Measure returns the pixel width of text at this face's size.
func (f *Font) Measure(text string) int {
	return font.MeasureString(f.face, text).Ceil()
}

// Rasterize draws one line of text as white-on-transparent RGBA8 pixels,
// tightly packed, row-major, top-left origin — ready for texture upload.
func (f *Font) Rasterize(text string) (w, h int, rgba []byte) {
	w = f.Measure(text)
	h = int(f.Ascent - f.Descent)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: f.face,
		Dot:  fixed.P(0, int(f.Ascent)),
	}
	d.DrawString(text)

	// Repack in tight rows (stride == 4*w)
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], dst.Pix[y*dst.Stride:y*dst.Stride+w*4])
	}
	return w, h, out
}

func (f *Font) Close() {
	if f != nil && f.face != nil {
		f.face.Close()
		f.face = nil
	}
}
