package mandel

import "image"

// Params are the mutable rendering parameters owned by the controller.
// The color palette is stored as an owned slice plus a cyclic index; the
// current scale is the palette entry under that index.
type Params struct {
	ZoomFactor    float64
	MaxIterations int
	ColorScale    uint32

	palette    []uint32
	paletteIdx int
}

// NewParams builds rendering parameters from the configuration, starting
// on the first palette entry.
func NewParams(cfg Config) *Params {
	palette := make([]uint32, len(cfg.ColorCycle))
	copy(palette, cfg.ColorCycle)
	return &Params{
		ZoomFactor:    cfg.ZoomFactor,
		MaxIterations: cfg.MaxIterations,
		ColorScale:    palette[0],
		palette:       palette,
	}
}

// NextColor advances the color scale to the next palette entry, wrapping
// around at the end of the cycle.
func (p *Params) NextColor() {
	p.paletteIdx = (p.paletteIdx + 1) % len(p.palette)
	p.ColorScale = p.palette[p.paletteIdx]
}

// PixelBuffer holds width*height packed 0x00RRGGBB values in row-major
// order (index = y*width + x).
type PixelBuffer []uint32

// NewPixelBuffer allocates a zeroed buffer for a width×height grid.
func NewPixelBuffer(width, height int) PixelBuffer {
	return make(PixelBuffer, width*height)
}

// ToRGBA expands the packed buffer into a standard RGBA image for sinks
// that consume byte-per-channel pixels (window presentation, PNG encoding).
func (b PixelBuffer) ToRGBA(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, v := range b {
		j := i * 4
		img.Pix[j+0] = uint8(v >> 16)
		img.Pix[j+1] = uint8(v >> 8)
		img.Pix[j+2] = uint8(v)
		img.Pix[j+3] = 0xff
	}
	return img
}

// Render recomputes every pixel of buf from the current viewport and
// parameters. Bounded points get shade 0; escaped points get the color
// scale times the truncated continuous escape count. The buffer is fully
// overwritten on every call.
func Render(v *Viewport, p *Params, buf PixelBuffer, width, height int) {
	for i := range buf {
		shade, _ := EscapeTime(v.IndexToPoint(i, width, height), p.MaxIterations)
		buf[i] = p.ColorScale * uint32(shade)
	}
}
