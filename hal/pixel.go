package hal

import "image/color"

// RGB565 field layout: rrrrrggggggbbbbb.
const (
	BlueShift  = 0
	BlueBits   = 5
	BlueMask   = 1<<BlueBits - 1
	GreenShift = BlueShift + BlueBits
	GreenBits  = 6
	GreenMask  = 1<<GreenBits - 1
	RedShift   = GreenShift + GreenBits
	RedBits    = 5
	RedMask    = 1<<RedBits - 1
)

// RGB565 is one packed 16bpp pixel.
type RGB565 uint16

// PackRGB565 packs channel values into their fields. Each value is masked to
// its field width, so out-of-range values wrap (63 in the red field is 31).
func PackRGB565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&RedMask)<<RedShift | uint16(g&GreenMask)<<GreenShift | uint16(b&BlueMask)<<BlueShift)
}

func (p RGB565) Unpack() (r, g, b uint8) { return p.R(), p.G(), p.B() }

func (p RGB565) R() uint8 { return uint8(p>>RedShift) & RedMask }
func (p RGB565) G() uint8 { return uint8(p>>GreenShift) & GreenMask }
func (p RGB565) B() uint8 { return uint8(p>>BlueShift) & BlueMask }

func (p RGB565) WithR(r uint8) RGB565 {
	return p&^(RedMask<<RedShift) | RGB565(r&RedMask)<<RedShift
}

func (p RGB565) WithG(g uint8) RGB565 {
	return p&^(GreenMask<<GreenShift) | RGB565(g&GreenMask)<<GreenShift
}

func (p RGB565) WithB(b uint8) RGB565 {
	return p&^(BlueMask<<BlueShift) | RGB565(b&BlueMask)<<BlueShift
}

// RGB565From888 drops the low bits of 8-bit channels.
func RGB565From888(r, g, b uint8) RGB565 {
	return PackRGB565(r>>3, g>>2, b>>3)
}

// RGB888 expands each field back to 8 bits.
func (p RGB565) RGB888() (r, g, b uint8) {
	rr, gg, bb := p.Unpack()
	r = uint8((uint16(rr) * 255) / RedMask)
	g = uint8((uint16(gg) * 255) / GreenMask)
	b = uint8((uint16(bb) * 255) / BlueMask)
	return r, g, b
}

// RGBA implements color.Color.
func (p RGB565) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := p.RGB888()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xFFFF
}

// RGB565Model converts any colour to RGB565.
var RGB565Model = color.ModelFunc(func(c color.Color) color.Color {
	if p, ok := c.(RGB565); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return RGB565From888(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})
