package hal

import (
	"image/color"
	"testing"
)

func TestPackRGB565Layout(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		out     RGB565
	}{
		{31, 63, 0, 31<<11 | 63<<5},
		{0, 0, 31, 0x001F},
		{0, 63, 0, 0x07E0},
		{31, 0, 0, 0xF800},
		{31, 63, 31, 0xFFFF},
		{0, 0, 0, 0},
	}
	for i, test := range tests {
		got := PackRGB565(test.r, test.g, test.b)
		if got != test.out {
			t.Fatalf("test #%d: PackRGB565(%d,%d,%d) = %#04x, want %#04x", i, test.r, test.g, test.b, got, test.out)
		}
		r, g, b := got.Unpack()
		if r != test.r || g != test.g || b != test.b {
			t.Fatalf("test #%d: Unpack = %d,%d,%d", i, r, g, b)
		}
	}
}

func TestPackRGB565WrapsOverflow(t *testing.T) {
	p := PackRGB565(63, 64, 33)
	if p.R() != 63%32 || p.G() != 0 || p.B() != 1 {
		t.Fatalf("wrapped fields = %d,%d,%d", p.R(), p.G(), p.B())
	}
}

func TestWithFieldKeepsOthers(t *testing.T) {
	p := PackRGB565(1, 2, 3)
	if got := p.WithR(31); got != PackRGB565(31, 2, 3) {
		t.Fatalf("WithR = %#04x", got)
	}
	if got := p.WithG(63); got != PackRGB565(1, 63, 3) {
		t.Fatalf("WithG = %#04x", got)
	}
	if got := p.WithB(0); got != PackRGB565(1, 2, 0) {
		t.Fatalf("WithB = %#04x", got)
	}
	if got := RGB565(0).WithR(63); got.R() != 31 {
		t.Fatalf("WithR(63).R() = %d, want 31", got.R())
	}
}

func TestRGB888RoundTrip(t *testing.T) {
	r, g, b := PackRGB565(31, 63, 31).RGB888()
	if r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatalf("white = %d,%d,%d", r, g, b)
	}
	if got := RGB565From888(0xFF, 0x80, 0x00); got != PackRGB565(31, 32, 0) {
		t.Fatalf("RGB565From888 = %#04x", got)
	}
}

func TestRGB565Model(t *testing.T) {
	c := RGB565Model.Convert(color.RGBA{R: 0xFF, G: 0xFF, B: 0, A: 0xFF})
	p, ok := c.(RGB565)
	if !ok {
		t.Fatalf("Convert returned %T", c)
	}
	if p != PackRGB565(31, 63, 0) {
		t.Fatalf("Convert = %#04x", p)
	}
	r, g, b, a := p.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0 || a != 0xFFFF {
		t.Fatalf("RGBA = %d,%d,%d,%d", r, g, b, a)
	}
}
