package core

// Context bundles the services every view works against: the drawing
// surface, the per-frame input snapshot, and the resource cache. The driver
// owns it exclusively and lends it to the current view for the duration of
// one Render call. It must outlive every view it is used to construct.
type Context struct {
	Surface   Surface
	Input     *Input
	Resources *Cache

	fps int
}

func NewContext(s Surface) *Context {
	return &Context{
		Surface:   s,
		Input:     NewInput(),
		Resources: NewCache(),
	}
}

// FPS returns the frame count of the last completed one-second window.
// Zero until the first window completes.
func (c *Context) FPS() int { return c.fps }

// Close releases every cached resource. The driver calls it on every exit
// path, before the surface itself is torn down.
func (c *Context) Close() {
	c.Resources.Release()
}
