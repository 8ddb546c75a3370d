package app

import (
	"image/color"

	"vramdemo/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var captionFont = &proggy.TinySZ8pt7b

const (
	captionPad    = 3
	captionHeight = 12
)

// fbDisplay lets tinyfont draw into a hal.Framebuffer.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = fbDisplay{}

func (d fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}
	d.fb.WritePixel(iy*w+ix, uint16(hal.RGB565From888(c.R, c.G, c.B)))
}

func (d fbDisplay) Display() error { return nil }

func (d fbDisplay) fillRect(x0, y0, x1, y1 int, p hal.RGB565) {
	w := d.fb.Width()
	x0, x1 = clampInt(x0, 0, w), clampInt(x1, 0, w)
	y0, y1 = clampInt(y0, 0, d.fb.Height()), clampInt(y1, 0, d.fb.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			d.fb.WritePixel(y*w+x, uint16(p))
		}
	}
}

// drawCaption puts s on a dark strip in the bottom-left corner.
func drawCaption(fb hal.Framebuffer, s string) {
	d := fbDisplay{fb: fb}
	_, outbox := tinyfont.LineWidth(captionFont, s)
	h := fb.Height()
	d.fillRect(0, h-captionHeight-captionPad, int(outbox)+2*captionPad, h, hal.PackRGB565(0, 0, 0))
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(d, captionFont, captionPad, int16(h-captionPad-2), s, fg)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
