package mandel

import (
	"fmt"
	"time"
)

// Config carries the compiled-in startup settings of the viewer: window
// dimensions, the starting view, zoom factor, iteration cap, frame budget,
// pan step fraction and the color cycle.
type Config struct {
	Width, Height int
	InitialView   Viewport
	ZoomFactor    float64
	MaxIterations int
	FrameBudget   time.Duration
	PanStep       float64
	ColorCycle    []uint32
	DebounceTicks int
}

// DefaultConfig returns the settings the viewer starts with: a 640×480
// window over the full set, zoom factor 2, 255 iterations and a 17ms
// frame budget (~60Hz).
func DefaultConfig() Config {
	return Config{
		Width:         640,
		Height:        480,
		InitialView:   FullSet,
		ZoomFactor:    2.0,
		MaxIterations: 255,
		FrameBudget:   17 * time.Millisecond,
		PanStep:       0.1,
		ColorCycle:    []uint32{65536, 1, 256},
		DebounceTicks: 15,
	}
}

// TPS derives the display tick rate from the frame budget.
func (c Config) TPS() int {
	return int(time.Second / c.FrameBudget)
}

// Validate reports the first configuration defect, if any.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.ZoomFactor <= 1 {
		return fmt.Errorf("zoom factor must be greater than 1, got %v", c.ZoomFactor)
	}
	if c.MaxIterations < minIterations {
		return fmt.Errorf("iteration cap must be at least %d, got %d", minIterations, c.MaxIterations)
	}
	if c.FrameBudget <= 0 {
		return fmt.Errorf("frame budget must be positive, got %v", c.FrameBudget)
	}
	if c.PanStep <= 0 {
		return fmt.Errorf("pan step must be positive, got %v", c.PanStep)
	}
	if len(c.ColorCycle) == 0 {
		return fmt.Errorf("color cycle must not be empty")
	}
	if c.DebounceTicks < 0 {
		return fmt.Errorf("debounce ticks must not be negative, got %d", c.DebounceTicks)
	}
	v := c.InitialView
	if real(v.TopLeft) >= real(v.BottomRight) || imag(v.TopLeft) <= imag(v.BottomRight) {
		return fmt.Errorf("initial view %v is degenerate or misoriented", v)
	}
	return nil
}
