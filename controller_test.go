package mandel

import (
	"math"
	"testing"
)

type fakeInput struct {
	keys    map[Key]bool
	buttons map[Button]bool
	x, y    float64
	cursor  bool
}

func (f fakeInput) KeyHeld(k Key) bool      { return f.keys[k] }
func (f fakeInput) MouseHeld(b Button) bool { return f.buttons[b] }
func (f fakeInput) CursorPosition() (float64, float64, bool) {
	return f.x, f.y, f.cursor
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 64, 48
	cfg.MaxIterations = 30
	cfg.DebounceTicks = 3
	return cfg
}

func TestNewControllerRendersInitialFrame(t *testing.T) {
	c := NewController(testConfig())
	if c.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", c.Generation())
	}
	if len(c.Buffer()) != 64*48 {
		t.Fatalf("buffer length = %d, want %d", len(c.Buffer()), 64*48)
	}
}

func TestTickIdleDoesNothing(t *testing.T) {
	c := NewController(testConfig())
	view, gen := c.View(), c.Generation()

	if c.Tick(fakeInput{}) {
		t.Fatal("idle tick requested quit")
	}
	if c.View() != view || c.Generation() != gen {
		t.Fatal("idle tick mutated state")
	}
}

func TestTickMouseZoomWinsPriority(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)
	origWidth := c.View().Width()
	origScale := c.Params().ColorScale

	// Everything held at once: the left-mouse zoom must be the single
	// transition that fires.
	in := fakeInput{
		buttons: map[Button]bool{ButtonLeft: true, ButtonRight: true},
		keys:    map[Key]bool{KeyLeft: true, KeyRecolor: true},
		x:       32, y: 24, cursor: true,
	}
	if c.Tick(in) {
		t.Fatal("tick requested quit")
	}

	wantWidth := origWidth / cfg.ZoomFactor
	if math.Abs(c.View().Width()-wantWidth) > eps {
		t.Fatalf("width = %v, want zoomed-in %v", c.View().Width(), wantWidth)
	}
	if got := c.Params().MaxIterations; got != cfg.MaxIterations+iterationStep {
		t.Fatalf("iteration cap = %d, want %d", got, cfg.MaxIterations+iterationStep)
	}
	if c.Params().ColorScale != origScale {
		t.Fatal("recolor fired on the same tick as a zoom")
	}
	if c.Generation() != 2 {
		t.Fatalf("generation = %d, want exactly one re-render", c.Generation())
	}
}

func TestTickRightMouseZoomsOut(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)
	origWidth := c.View().Width()

	in := fakeInput{
		buttons: map[Button]bool{ButtonRight: true},
		x:       32, y: 24, cursor: true,
	}
	c.Tick(in)

	wantWidth := origWidth * cfg.ZoomFactor
	if math.Abs(c.View().Width()-wantWidth) > eps {
		t.Fatalf("width = %v, want zoomed-out %v", c.View().Width(), wantWidth)
	}
}

func TestTickMouseZoomNeedsCursor(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)
	origWidth := c.View().Width()

	// Without a cursor position the mouse transitions cannot fire; the
	// held arrow key is next in line.
	in := fakeInput{
		buttons: map[Button]bool{ButtonLeft: true},
		keys:    map[Key]bool{KeyLeft: true},
		cursor:  false,
	}
	c.Tick(in)

	if math.Abs(c.View().Width()-origWidth) > eps {
		t.Fatal("zoom fired without a cursor position")
	}
	wantRe := real(cfg.InitialView.TopLeft) - cfg.PanStep*origWidth
	if math.Abs(real(c.View().TopLeft)-wantRe) > eps {
		t.Fatalf("top left re = %v, want panned %v", real(c.View().TopLeft), wantRe)
	}
}

func TestTickPansInHeldDirection(t *testing.T) {
	cfg := testConfig()
	for _, tc := range []struct {
		key   Key
		delta complex128
	}{
		{KeyLeft, complex(-1, 0)},
		{KeyRight, complex(1, 0)},
		{KeyUp, complex(0, 1)},
		{KeyDown, complex(0, -1)},
	} {
		c := NewController(cfg)
		want := c.View().TopLeft + tc.delta*complex(cfg.PanStep*c.View().Width(), 0)

		c.Tick(fakeInput{keys: map[Key]bool{tc.key: true}})
		if !almostEqual(c.View().TopLeft, want) {
			t.Fatalf("key %v: top left = %v, want %v", tc.key, c.View().TopLeft, want)
		}
	}
}

func TestTickKeyboardZoomUsesMidpoint(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)
	orig := c.View()
	mid := (orig.TopLeft + orig.BottomRight) / 2

	c.Tick(fakeInput{keys: map[Key]bool{KeyZoomIn: true}})
	got := (c.View().TopLeft + c.View().BottomRight) / 2
	if !almostEqual(got, mid) {
		t.Fatalf("zoom center = %v, want window midpoint %v", got, mid)
	}

	c.Tick(fakeInput{keys: map[Key]bool{KeyZoomOut: true}})
	if !almostEqual(c.View().TopLeft, orig.TopLeft) || !almostEqual(c.View().BottomRight, orig.BottomRight) {
		t.Fatalf("midpoint zoom round trip = %+v, want %+v", c.View(), orig)
	}
}

func TestTickQuitWithoutRender(t *testing.T) {
	c := NewController(testConfig())
	gen := c.Generation()
	scale := c.Params().ColorScale

	in := fakeInput{keys: map[Key]bool{KeyQuit: true, KeyRecolor: true}}
	if !c.Tick(in) {
		t.Fatal("quit key did not terminate")
	}
	if c.Generation() != gen {
		t.Fatal("quit triggered a render")
	}
	if c.Params().ColorScale != scale {
		t.Fatal("recolor fired on the quit tick")
	}
}

func TestRecolorDebounce(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)
	in := fakeInput{keys: map[Key]bool{KeyRecolor: true}}

	c.Tick(in)
	if c.Params().ColorScale != 1 {
		t.Fatalf("color scale = %d, want 1 after first recolor", c.Params().ColorScale)
	}

	// Held across the cooldown: no further advance until it expires.
	for i := 0; i < cfg.DebounceTicks-1; i++ {
		c.Tick(in)
		if c.Params().ColorScale != 1 {
			t.Fatalf("tick %d: color scale = %d, want debounced 1", i, c.Params().ColorScale)
		}
	}
	c.Tick(in)
	if c.Params().ColorScale != 256 {
		t.Fatalf("color scale = %d, want 256 after cooldown", c.Params().ColorScale)
	}
}

func TestRecolorCycleReturnsToStart(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)
	start := c.Params().ColorScale
	in := fakeInput{keys: map[Key]bool{KeyRecolor: true}}

	for i := 0; i < 3; i++ {
		c.Tick(in)
		for j := 0; j < cfg.DebounceTicks; j++ {
			c.Tick(fakeInput{})
		}
	}
	if c.Params().ColorScale != start {
		t.Fatalf("color scale = %d after full cycle, want %d", c.Params().ColorScale, start)
	}
}

func TestZoomOutNeverUnderflowsIterationCap(t *testing.T) {
	cfg := testConfig()
	cfg.MaxIterations = 3
	c := NewController(cfg)

	in := fakeInput{
		buttons: map[Button]bool{ButtonRight: true},
		x:       32, y: 24, cursor: true,
	}
	for i := 0; i < 5; i++ {
		c.Tick(in)
		if got := c.Params().MaxIterations; got < minIterations {
			t.Fatalf("iteration cap underflowed to %d", got)
		}
	}
	if got := c.Params().MaxIterations; got != minIterations {
		t.Fatalf("iteration cap = %d, want floor %d", got, minIterations)
	}
}

func TestResetRestoresInitialView(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)

	c.Tick(fakeInput{buttons: map[Button]bool{ButtonLeft: true}, x: 10, y: 10, cursor: true})
	c.Tick(fakeInput{keys: map[Key]bool{KeyDown: true}})

	c.Tick(fakeInput{keys: map[Key]bool{KeyReset: true}})
	if c.View() != cfg.InitialView {
		t.Fatalf("view = %+v after reset, want %+v", c.View(), cfg.InitialView)
	}
	if c.Params().MaxIterations != cfg.MaxIterations {
		t.Fatalf("iteration cap = %d after reset, want %d", c.Params().MaxIterations, cfg.MaxIterations)
	}
}
