package core

import (
	"fmt"

	"github.com/hubastard/ember/engine/assets"
)

type fontKey struct {
	path string
	size int
}

// Cache memoizes expensive-to-construct resources behind composite keys and
// hands out shared handles on repeat requests. Entries are loaded once and
// never evicted; the point is one-time-cost amortization, not memory
// bounding. Not locked: it is reachable only through the Context, which the
// driver owns exclusively.
type Cache struct {
	fonts    map[fontKey]*assets.Font
	textures map[string]Texture

	// loaders are fields so tests can substitute them
	loadFont    func(path string, size int) (*assets.Font, error)
	loadTexture func(s Surface, path string) (Texture, error)
}

func NewCache() *Cache {
	return &Cache{
		fonts:       map[fontKey]*assets.Font{},
		textures:    map[string]Texture{},
		loadFont:    assets.LoadTTF,
		loadTexture: loadTexturePNG,
	}
}

// GetOrLoadFont returns the font for (path, size), loading it on the first
// request. A loader failure is returned to the caller and nothing is cached
// for that key; the runtime never substitutes a default.
func (c *Cache) GetOrLoadFont(path string, size int) (*assets.Font, error) {
	key := fontKey{path: path, size: size}
	if f, ok := c.fonts[key]; ok {
		return f, nil
	}
	f, err := c.loadFont(path, size)
	if err != nil {
		return nil, fmt.Errorf("load font %q size %d: %w", path, size, err)
	}
	c.fonts[key] = f
	return f, nil
}

// GetOrLoadTexture returns the texture decoded from the image at path,
// uploading it through s on the first request.
func (c *Cache) GetOrLoadTexture(s Surface, path string) (Texture, error) {
	if t, ok := c.textures[path]; ok {
		return t, nil
	}
	t, err := c.loadTexture(s, path)
	if err != nil {
		return nil, fmt.Errorf("load texture %q: %w", path, err)
	}
	c.textures[path] = t
	return t, nil
}

// Release frees every cached entry. Only the owning Context calls it, at
// shutdown.
func (c *Cache) Release() {
	for k, f := range c.fonts {
		f.Close()
		delete(c.fonts, k)
	}
	for k, t := range c.textures {
		t.Release()
		delete(c.textures, k)
	}
}

func loadTexturePNG(s Surface, path string) (Texture, error) {
	w, h, pixels, err := assets.LoadPNG(path)
	if err != nil {
		return nil, err
	}
	return s.CreateTexture(TextureDesc{Width: w, Height: h, Pixels: pixels})
}
