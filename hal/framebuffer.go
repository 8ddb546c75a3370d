package hal

import (
	"image"
	"image/color"
	"sync"
)

// MemFramebuffer is an in-memory RGB565 framebuffer stored little-endian.
//
// It backs the host and TinyGo-on-host builds and is what tests render into.
// Out-of-range writes are dropped and out-of-range reads return 0.
type MemFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func NewMemFramebuffer(width, height int) *MemFramebuffer {
	stride := width * 2
	return &MemFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *MemFramebuffer) Width() int          { return f.width }
func (f *MemFramebuffer) Height() int         { return f.height }
func (f *MemFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemFramebuffer) BufferSize() int     { return f.width * f.height }
func (f *MemFramebuffer) Present() error      { return nil }

func (f *MemFramebuffer) WritePixel(index int, p uint16) {
	off := index * 2
	if index < 0 || off+1 >= len(f.buf) {
		return
	}
	f.mu.Lock()
	f.buf[off] = byte(p)
	f.buf[off+1] = byte(p >> 8)
	f.mu.Unlock()
}

func (f *MemFramebuffer) ReadPixel(index int) uint16 {
	off := index * 2
	if index < 0 || off+1 >= len(f.buf) {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func (f *MemFramebuffer) Clear(p uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()

	lo := byte(p)
	hi := byte(p >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Snapshot copies the current contents into an image.
func (f *MemFramebuffer) Snapshot() *RGB565Image {
	f.mu.Lock()
	defer f.mu.Unlock()

	img := NewRGB565Image(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.buf)
	return img
}

// RGB565Image is an image.Image over little-endian RGB565 pixels.
type RGB565Image struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

func NewRGB565Image(r image.Rectangle) *RGB565Image {
	stride := r.Dx() * 2
	return &RGB565Image{
		Pix:    make([]byte, stride*r.Dy()),
		Stride: stride,
		Rect:   r,
	}
}

func (i *RGB565Image) Bounds() image.Rectangle { return i.Rect }
func (i *RGB565Image) ColorModel() color.Model { return RGB565Model }

func (i *RGB565Image) PixOffset(x, y int) int {
	return (y-i.Rect.Min.Y)*i.Stride + (x-i.Rect.Min.X)*2
}

func (i *RGB565Image) At(x, y int) color.Color {
	return i.RGB565At(x, y)
}

func (i *RGB565Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{x, y}.In(i.Rect)) {
		return 0
	}
	n := i.PixOffset(x, y)
	return RGB565(uint16(i.Pix[n]) | uint16(i.Pix[n+1])<<8)
}

func (i *RGB565Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	p := RGB565Model.Convert(c).(RGB565)
	n := i.PixOffset(x, y)
	i.Pix[n] = byte(p)
	i.Pix[n+1] = byte(p >> 8)
}
