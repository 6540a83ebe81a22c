package mandel

// Key identifies a recognized input key, independent of the windowing
// collaborator's key codes.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyZoomIn
	KeyZoomOut
	KeyQuit
	KeyRecolor
	KeyReset
)

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// InputState is the per-tick polling boundary provided by the windowing
// collaborator. CursorPosition reports the cursor clamped to the window
// bounds, or ok == false when no position is available.
type InputState interface {
	KeyHeld(Key) bool
	MouseHeld(Button) bool
	CursorPosition() (x, y float64, ok bool)
}

// Controller owns the viewport, the rendering parameters and the pixel
// buffer, and dispatches one input transition per tick. Every mutation
// triggers exactly one full re-render; the quit key terminates without
// rendering.
type Controller struct {
	cfg    Config
	view   Viewport
	params *Params
	buf    PixelBuffer
	gen    uint64

	recolorWait int
}

// NewController builds the controller from the configuration and renders
// the initial frame.
func NewController(cfg Config) *Controller {
	c := &Controller{
		cfg:    cfg,
		view:   cfg.InitialView,
		params: NewParams(cfg),
		buf:    NewPixelBuffer(cfg.Width, cfg.Height),
	}
	c.render()
	return c
}

// Buffer exposes the current frame for presentation. The returned slice is
// owned by the controller and rewritten in place on the next mutation.
func (c *Controller) Buffer() PixelBuffer {
	return c.buf
}

// View returns the current viewport.
func (c *Controller) View() Viewport {
	return c.view
}

// Params returns the current rendering parameters.
func (c *Controller) Params() Params {
	return *c.params
}

// Generation counts completed render passes; sinks can use it to skip
// frames they have already presented.
func (c *Controller) Generation() uint64 {
	return c.gen
}

func (c *Controller) render() {
	Render(&c.view, c.params, c.buf, c.cfg.Width, c.cfg.Height)
	c.gen++
}

// Tick samples the input state and applies at most one transition, in
// fixed priority order: mouse zoom, directional pan, keyboard zoom at the
// window midpoint, quit, recolor, reset. It reports whether the caller
// should terminate the loop.
func (c *Controller) Tick(in InputState) (quit bool) {
	if c.recolorWait > 0 {
		c.recolorWait--
	}

	if in.MouseHeld(ButtonLeft) {
		if x, y, ok := in.CursorPosition(); ok {
			c.zoom(x, y, false)
			return false
		}
	}
	if in.MouseHeld(ButtonRight) {
		if x, y, ok := in.CursorPosition(); ok {
			c.zoom(x, y, true)
			return false
		}
	}
	for _, k := range [...]struct {
		key Key
		dir Direction
	}{
		{KeyLeft, DirLeft},
		{KeyRight, DirRight},
		{KeyUp, DirUp},
		{KeyDown, DirDown},
	} {
		if in.KeyHeld(k.key) {
			c.view.Shift(k.dir, c.cfg.PanStep)
			c.render()
			return false
		}
	}
	if in.KeyHeld(KeyZoomIn) {
		c.zoom(float64(c.cfg.Width)/2, float64(c.cfg.Height)/2, false)
		return false
	}
	if in.KeyHeld(KeyZoomOut) {
		c.zoom(float64(c.cfg.Width)/2, float64(c.cfg.Height)/2, true)
		return false
	}
	if in.KeyHeld(KeyQuit) {
		return true
	}
	if in.KeyHeld(KeyRecolor) {
		// A held key fires on every tick; the cooldown keeps one press
		// from racing through the whole color cycle.
		if c.recolorWait == 0 {
			c.params.NextColor()
			c.render()
			c.recolorWait = c.cfg.DebounceTicks
		}
		return false
	}
	if in.KeyHeld(KeyReset) {
		c.view = c.cfg.InitialView
		c.params.MaxIterations = c.cfg.MaxIterations
		c.render()
		return false
	}
	return false
}

func (c *Controller) zoom(x, y float64, out bool) {
	c.view.Zoom(x, y, c.cfg.Width, c.cfg.Height, out, c.params)
	c.render()
}
