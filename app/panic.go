package app

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"vramdemo/hal"

	"tinygo.org/x/tinyfont"
)

const panicLineHeight = 12

// reportPanic logs a recovered demo panic and paints it on screen, since the
// device has no other way to show it.
func reportPanic(l hal.Logger, fb hal.Framebuffer, demo string, v any) {
	msg := fmt.Sprintf("panic: %v", v)
	if l != nil {
		l.WriteLineString(fmt.Sprintf("demo %s: %s", demo, msg))
	}
	if fb == nil {
		return
	}

	fb.Clear(uint16(hal.PackRGB565(hal.RedMask, hal.GreenMask, hal.BlueMask)))

	d := fbDisplay{fb: fb}
	fg := color.RGBA{A: 0xFF}

	_, charWidth := tinyfont.LineWidth(captionFont, "0")
	cols := 1
	if charWidth > 0 {
		cols = max(1, fb.Width()/int(charWidth))
	}

	y := panicLineHeight
	for _, line := range []string{"demo " + demo, msg} {
		for len(line) > 0 && y <= fb.Height() {
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, captionFont, 0, int16(y), chunk, fg)
			y += panicLineHeight
			line = rest
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
