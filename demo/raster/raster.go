// Package raster turns fixed-point colours into packed RGB565 pixels and
// stores them in a framebuffer.
package raster

import (
	"vramdemo/demo/fixed"
	"vramdemo/hal"
)

// Channels holds the per-channel magnitude a colour value of 1.0 maps to.
type Channels struct {
	R, G, B int
}

// DefaultChannels matches the 5:6:5 field widths.
var DefaultChannels = Channels{R: hal.RedMask, G: hal.GreenMask, B: hal.BlueMask}

// Encoder converts colours with channels in [0,1] to RGB565.
//
// Channel values are truncated to integers and then masked to their field
// width; nothing is clamped, so out-of-range colours wrap.
//
// With Compat set the encoder reproduces the first shipped demo bit for bit:
// the channel product is not rescaled and the blue field is fed from the red
// component.
type Encoder struct {
	Max    Channels
	Compat bool
}

func NewEncoder(compat bool) Encoder {
	return Encoder{Max: DefaultChannels, Compat: compat}
}

func (e Encoder) arith() fixed.Arith {
	if e.Compat {
		return fixed.Unscaled
	}
	return fixed.Scaled
}

func (e Encoder) Encode(c fixed.Vec3) hal.RGB565 {
	a := e.arith()
	blue := c.B()
	if e.Compat {
		blue = c.R()
	}
	r := a.Mul(c.R(), fixed.FromInt(e.Max.R)).ToInt()
	g := a.Mul(c.G(), fixed.FromInt(e.Max.G)).ToInt()
	b := a.Mul(blue, fixed.FromInt(e.Max.B)).ToInt()
	return hal.PackRGB565(uint8(r), uint8(g), uint8(b))
}

// WritePixel encodes c and stores it at the linear index. The index is not
// checked here.
func WritePixel(fb hal.Framebuffer, e Encoder, c fixed.Vec3, index int) {
	fb.WritePixel(index, uint16(e.Encode(c)))
}
