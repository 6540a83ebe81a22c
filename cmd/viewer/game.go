package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	mandel "github.com/christiankuhl/mandelbrot-go"
)

// game adapts the controller to the ebiten run loop: Update polls input
// and ticks the controller, Draw presents the current pixel buffer. Frame
// pacing is ebiten's, configured from the frame budget via SetTPS.
type game struct {
	cfg  mandel.Config
	ctrl *mandel.Controller
	in   input

	img  *ebiten.Image
	pix  []byte
	live *liveView
}

func newGame(cfg mandel.Config) *game {
	return &game{
		cfg:  cfg,
		ctrl: mandel.NewController(cfg),
		in:   input{width: cfg.Width, height: cfg.Height},
		img:  ebiten.NewImage(cfg.Width, cfg.Height),
		pix:  make([]byte, cfg.Width*cfg.Height*4),
	}
}

func (g *game) Update() error {
	if g.ctrl.Tick(g.in) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	buf := g.ctrl.Buffer()
	for i, v := range buf {
		j := i * 4
		g.pix[j+0] = uint8(v >> 16)
		g.pix[j+1] = uint8(v >> 8)
		g.pix[j+2] = uint8(v)
		g.pix[j+3] = 0xff
	}
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)

	if g.live != nil {
		g.live.setFrame(buf, g.ctrl.Generation())
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// input answers the controller's polling queries from ebiten's input state.
type input struct {
	width, height int
}

func (in input) KeyHeld(k mandel.Key) bool {
	switch k {
	case mandel.KeyLeft:
		return ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	case mandel.KeyRight:
		return ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	case mandel.KeyUp:
		return ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	case mandel.KeyDown:
		return ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	case mandel.KeyZoomIn:
		return ebiten.IsKeyPressed(ebiten.KeyI)
	case mandel.KeyZoomOut:
		return ebiten.IsKeyPressed(ebiten.KeyO)
	case mandel.KeyQuit:
		return ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape)
	case mandel.KeyRecolor:
		return ebiten.IsKeyPressed(ebiten.KeyC)
	case mandel.KeyReset:
		return ebiten.IsKeyPressed(ebiten.KeyR)
	}
	return false
}

func (in input) MouseHeld(b mandel.Button) bool {
	switch b {
	case mandel.ButtonLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case mandel.ButtonRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	}
	return false
}

// CursorPosition clamps the cursor to the window bounds; ebiten keeps
// reporting positions outside the window while a button is held.
func (in input) CursorPosition() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	return clamp(x, in.width-1), clamp(y, in.height-1), true
}

func clamp(v, max int) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return float64(max)
	}
	return float64(v)
}
