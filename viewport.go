package mandel

// Direction of a pan step.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Iteration-cap adjustment applied per zoom step. Zooming in buys detail,
// zooming out gives it back, never dropping below minIterations.
const (
	iterationStep = 5
	minIterations = 1
)

// Viewport is the rectangle of the complex plane currently mapped onto the
// pixel grid. Real values increase rightward, imaginary values decrease
// downward, matching screen row order, so TopLeft holds the smallest real
// and the largest imaginary coordinate and Height is algebraically negative.
type Viewport struct {
	TopLeft     complex128
	BottomRight complex128
}

// Width is the real extent of the viewport (positive).
func (v Viewport) Width() float64 {
	return real(v.BottomRight) - real(v.TopLeft)
}

// Height is the imaginary extent of the viewport (negative, see Viewport).
func (v Viewport) Height() float64 {
	return imag(v.BottomRight) - imag(v.TopLeft)
}

// IndexToPoint maps a linear, row-major pixel index of a width×height grid
// to the corresponding point of the complex plane. Index 0 maps to TopLeft
// exactly.
func (v *Viewport) IndexToPoint(index, width, height int) complex128 {
	re := float64(index%width)/float64(width)*v.Width() + real(v.TopLeft)
	im := float64(index/width)/float64(height)*v.Height() + imag(v.TopLeft)
	return complex(re, im)
}

// PixelToPoint maps a (possibly fractional) pixel coordinate to the
// corresponding point of the complex plane.
func (v *Viewport) PixelToPoint(px, py float64, width, height int) complex128 {
	re := px/float64(width)*v.Width() + real(v.TopLeft)
	im := py/float64(height)*v.Height() + imag(v.TopLeft)
	return complex(re, im)
}

// Zoom recenters the viewport on the complex point under the given pixel,
// then scales it by the configured zoom factor (its reciprocal when zooming
// out). The iteration cap in p follows the zoom direction: +iterationStep
// per zoom-in, -iterationStep per zoom-out, floored at minIterations.
func (v *Viewport) Zoom(px, py float64, width, height int, out bool, p *Params) {
	w := v.Width()
	h := v.Height()
	mid := v.PixelToPoint(px, py, width, height)

	factor := p.ZoomFactor
	if out {
		factor = 1 / factor
	}
	half := complex(w/(2*factor), h/(2*factor))
	v.TopLeft = mid - half
	v.BottomRight = mid + half

	if out {
		p.MaxIterations -= iterationStep
		if p.MaxIterations < minIterations {
			p.MaxIterations = minIterations
		}
	} else {
		p.MaxIterations += iterationStep
	}
}

// Shift translates the viewport by step*Width() in the given direction.
// Width is used for both axes so panning speed is aspect-correct regardless
// of the window shape. Unknown directions are a no-op.
func (v *Viewport) Shift(dir Direction, step float64) {
	d := step * v.Width()

	var delta complex128
	switch dir {
	case DirLeft:
		delta = complex(-d, 0)
	case DirRight:
		delta = complex(d, 0)
	case DirUp:
		delta = complex(0, d)
	case DirDown:
		delta = complex(0, -d)
	default:
		return
	}
	v.TopLeft += delta
	v.BottomRight += delta
}
